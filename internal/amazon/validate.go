package amazon

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// asinFormat is the canonical 10-character ASIN. Records with identifiers
// that don't match still pass validation; the mismatch is only worth a
// warning.
var asinFormat = regexp.MustCompile(`^[A-Z0-9]{10}$`)

// Validate reports whether v, an arbitrary decoded JSON value, has the
// minimum shape Normalize needs: a JSON object with non-blank string asin
// and title fields. Soft anomalies (odd asin format, present-but-empty
// images array) are logged as warnings and never fail the check.
func Validate(v any) bool {
	return ValidateWithLogger(v, &log.Logger)
}

// ValidateWithLogger is Validate with an explicit diagnostics sink.
func ValidateWithLogger(v any, logger *zerolog.Logger) bool {
	record, ok := v.(map[string]any)
	if !ok {
		return false
	}

	asin, ok := record["asin"].(string)
	if !ok || strings.TrimSpace(asin) == "" {
		return false
	}

	title, ok := record["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return false
	}

	if !asinFormat.MatchString(asin) {
		logger.Warn().Str("asin", asin).Msg("asin does not look like a canonical ASIN")
	}
	if images, present := record["images"]; present {
		if arr, ok := images.([]any); ok && len(arr) == 0 {
			logger.Warn().Str("asin", asin).Msg("record has an empty images array")
		}
	}

	return true
}

// DecodeProduct converts a validated JSON value into a typed Product. It is
// the narrowing step callers pair with Validate when they hold raw decoded
// JSON rather than a struct.
func DecodeProduct(v any) (Product, error) {
	var p Product

	if _, ok := v.(map[string]any); !ok {
		return p, fmt.Errorf("expected a JSON object, got %T", v)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return p, fmt.Errorf("failed to re-encode record: %w", err)
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("failed to decode record: %w", err)
	}

	return p, nil
}
