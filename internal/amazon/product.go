// Package amazon adapts Amazon's product representation to the neutral
// catalog model. Everything here is stateless: records go in, records come
// out, and the only side channel is the validator's diagnostics logger.
package amazon

// Source identifies this marketplace in normalized metadata.
const Source = "amazon"

// ImageVariantMain is the variant tag Amazon uses for the primary product
// image. It always sorts first in normalized image order.
const ImageVariantMain = "MAIN"

type Image struct {
	URL     string `json:"url"`
	Variant string `json:"variant,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

type Price struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type Variation struct {
	ASIN      string `json:"asin"`
	Title     string `json:"title"`
	Dimension string `json:"dimension,omitempty"`
	Price     *Price `json:"price,omitempty"`
	Available bool   `json:"available,omitempty"`
}

// Product is a raw product record as produced by an upstream fetch/ingest
// collaborator. Only ASIN and Title are required; see Validate.
type Product struct {
	ASIN         string            `json:"asin"`
	Title        string            `json:"title"`
	Brand        string            `json:"brand,omitempty"`
	BulletPoints []string          `json:"bullet_points,omitempty"`
	Description  string            `json:"description,omitempty"`
	Images       []Image           `json:"images,omitempty"`
	Price        *Price            `json:"price,omitempty"`
	Variations   []Variation       `json:"variations,omitempty"`
	Category     string            `json:"category,omitempty"`
	Features     map[string]string `json:"features,omitempty"`
}
