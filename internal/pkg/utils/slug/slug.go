package slug

import (
	"strings"

	"github.com/google/uuid"
)

// Subdomain generates a hosting subdomain slug, e.g. "roomify-3f8a1c92b4d0".
// Randomness comes from a v4 UUID; 12 hex chars keep collisions negligible
// at the expected site counts.
func Subdomain() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "roomify-" + raw[:12]
}
