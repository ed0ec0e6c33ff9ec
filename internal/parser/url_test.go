package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name string
		href string
		base string
		want string
	}{
		{
			name: "Root-relative href",
			href: "/products/123",
			base: "https://x.com",
			want: "https://x.com/products/123",
		},
		{
			name: "Relative href against base with trailing slash",
			href: "products/123",
			base: "https://x.com/",
			want: "https://x.com/products/123",
		},
		{
			name: "Absolute href passes through",
			href: "https://other.com/p",
			base: "https://x.com",
			want: "https://other.com/p",
		},
		{
			name: "Empty href resolves to empty",
			href: "",
			base: "https://x.com",
			want: "",
		},
		{
			name: "Protocol-relative href inherits base scheme",
			href: "//cdn.x.com/img/1.jpg",
			base: "https://x.com",
			want: "https://cdn.x.com/img/1.jpg",
		},
		{
			name: "Unexpected scheme passes through verbatim",
			href: "httpx://weird/p",
			base: "https://x.com",
			want: "httpx://weird/p",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveURL(tt.href, tt.base))
		})
	}
}
