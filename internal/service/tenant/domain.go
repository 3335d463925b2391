package tenant

import (
	"strings"
)

// MatchDomain reports whether a hostname matches a tenant domain pattern.
// Comparison is case-insensitive. A pattern without a wildcard must match
// exactly. A leading "*." matches any genuine subdomain of the base domain,
// so "notexample.com" does not match "*.example.com". A wildcard anywhere
// else is not supported; such a pattern only matches by exact equality.
func MatchDomain(pattern, hostname string) bool {
	p := strings.ToLower(pattern)
	h := strings.ToLower(hostname)

	if !strings.Contains(p, "*") {
		return p == h
	}

	if strings.HasPrefix(p, "*.") {
		base := p[2:]
		if !strings.HasSuffix(h, base) {
			return false
		}
		// require at least one label and a real separator before the base
		before := h[:len(h)-len(base)]
		return len(before) > 0 && strings.HasSuffix(before, ".")
	}

	return p == h
}
