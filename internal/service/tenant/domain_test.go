package tenant_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meeplelab/ludoteca-service/internal/service/tenant"
)

func TestMatchDomain(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		pattern  string
		hostname string
		want     bool
	}{
		{"wildcard matches subdomain", "*.example.com", "sub.example.com", true},
		{"wildcard matches deep subdomain", "*.example.com", "a.b.example.com", true},
		{"wildcard does not match apex", "*.example.com", "example.com", false},
		{"wildcard requires separator", "*.example.com", "notexample.com", false},
		{"exact match", "example.com", "example.com", true},
		{"exact mismatch", "example.com", "other.com", false},
		{"case-insensitive wildcard", "*.Example.COM", "SUB.example.com", true},
		{"case-insensitive exact", "Example.Com", "example.COM", true},
		{"inner wildcard only matches exactly", "foo.*.com", "foo.bar.com", false},
		{"inner wildcard equal strings", "foo.*.com", "foo.*.com", true},
		{"empty pattern vs hostname", "", "example.com", false},
		{"empty vs empty", "", "", true},
		{"empty hostname vs wildcard", "*.example.com", "", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tenant.MatchDomain(tt.pattern, tt.hostname))
		})
	}
}
