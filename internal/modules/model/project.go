package model

// Project is a single design project: the user's uploaded floor plan and,
// once generated, its 3D visualization. Stored as JSON in the KV store under
// one key per project; field names are part of the wire format consumed by
// the web client.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`

	// SourceImage is the uploaded floor plan, as a data URI or URL.
	// SourcePath is set once the image has been published to hosting.
	SourceImage string `json:"sourceImage"`
	SourcePath  string `json:"sourcePath,omitempty"`

	// Rendered fields are absent until a visualization has been generated.
	RenderedImage string `json:"renderedImage,omitempty"`
	RenderedPath  string `json:"renderedPath,omitempty"`
	PublicPath    string `json:"publicPath,omitempty"`

	OwnerID  string `json:"ownerId,omitempty"`
	IsPublic bool   `json:"isPublic"`

	// Timestamp is client-side creation time in epoch milliseconds.
	// UpdatedAt is stamped server-side on every save, RFC 3339.
	Timestamp int64  `json:"timestamp,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`

	SharedBy string `json:"sharedBy,omitempty"`
	SharedAt string `json:"sharedAt,omitempty"`
}

// HostingConfig records the per-user hosting site. A user has at most one;
// the subdomain never changes once assigned.
type HostingConfig struct {
	Subdomain string `json:"subdomain"`
}

// HostedAsset is the result of publishing an image to hosting.
type HostedAsset struct {
	URL string `json:"url"`
}
