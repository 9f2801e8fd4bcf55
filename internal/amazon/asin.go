package amazon

import (
	"regexp"
	"strings"
)

// asinPatterns are tried in priority order; the first match wins. Each
// matches a known product path marker immediately followed by a 10-character
// alphanumeric span, anywhere in the string. No full URL parsing.
var asinPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)/dp/([A-Z0-9]{10})`),
	regexp.MustCompile(`(?i)/gp/product/([A-Z0-9]{10})`),
	regexp.MustCompile(`(?i)/gp/aw/d/([A-Z0-9]{10})`),
}

// ExtractASIN recovers a product's ASIN from an Amazon URL. The second
// return is false when no known product path marker is found, which is the
// normal outcome for non-product URLs. The matched span is returned
// uppercased.
func ExtractASIN(url string) (string, bool) {
	for _, re := range asinPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return strings.ToUpper(m[1]), true
		}
	}
	return "", false
}
