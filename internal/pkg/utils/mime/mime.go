package mime

import (
	"net/url"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Detect returns the MIME type of content without parameters, e.g. "image/png".
func Detect(content []byte) string {
	mt := mimetype.Detect(content).String()
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}

// ExtensionFor maps a content type to a file extension (with leading dot).
// When the content type is unknown it falls back to the extension in the
// source URL path, then to ".bin".
func ExtensionFor(contentType, sourceURL string) string {
	ct := contentType
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	ct = strings.TrimSpace(ct)

	if ct != "" {
		if mt := mimetype.Lookup(ct); mt != nil && mt.Extension() != "" {
			return mt.Extension()
		}
	}

	if u, err := url.Parse(sourceURL); err == nil {
		if ext := path.Ext(u.Path); ext != "" {
			return ext
		}
	}

	return ".bin"
}
