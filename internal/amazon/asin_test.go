package amazon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractASIN(t *testing.T) {
	tests := map[string]struct {
		url  string
		want string
		ok   bool
	}{
		"dp path": {
			url:  "https://www.amazon.com/dp/B0DCPKM21Y",
			want: "B0DCPKM21Y",
			ok:   true,
		},
		"gp product path": {
			url:  "https://www.amazon.co.jp/gp/product/B0DCPKM21Y",
			want: "B0DCPKM21Y",
			ok:   true,
		},
		"mobile path": {
			url:  "https://www.amazon.com/gp/aw/d/B0DCPKM21Y",
			want: "B0DCPKM21Y",
			ok:   true,
		},
		"dp embedded in longer path": {
			url:  "https://www.amazon.com/Premium-Headphones/dp/B0DCPKM21Y/ref=sr_1_1",
			want: "B0DCPKM21Y",
			ok:   true,
		},
		"lowercase asin is uppercased": {
			url:  "https://www.amazon.com/dp/b0dcpkm21y",
			want: "B0DCPKM21Y",
			ok:   true,
		},
		"mixed case marker": {
			url:  "https://www.amazon.com/DP/B0DCPKM21Y",
			want: "B0DCPKM21Y",
			ok:   true,
		},
		"non-product url": {
			url: "https://www.amazon.com/about-us",
		},
		"marker followed by too few characters": {
			url: "https://www.amazon.com/dp/B0DCP",
		},
		"empty string": {
			url: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ExtractASIN(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractASINFirstPatternWins(t *testing.T) {
	// A URL carrying both a /dp/ and a /gp/product/ marker resolves via
	// /dp/, which is first in priority order.
	got, ok := ExtractASIN("https://www.amazon.com/gp/product/AAAAAAAAAA/dp/B0DCPKM21Y")
	assert.True(t, ok)
	assert.Equal(t, "B0DCPKM21Y", got)
}
