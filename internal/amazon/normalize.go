package amazon

import (
	"sort"
	"strings"

	"github.com/raine/amazon-feed-normalizer/internal/catalog"
)

// Normalize maps an Amazon product record to the neutral catalog model. The
// input is assumed to have passed Validate; Normalize itself never fails and
// performs no checks of its own.
func Normalize(p Product) catalog.Product {
	return catalog.Product{
		ID:          p.ASIN,
		Title:       p.Title,
		Description: buildDescription(p),
		Images:      orderImages(p.Images),
		Price:       copyPrice(p.Price),
		Variants:    mapVariations(p.Variations),
		Metadata:    buildMetadata(p),
	}
}

// buildDescription joins bullet points with newlines and appends the
// free-text description after a blank line. With only one of the two, the
// result is that one unmodified; with neither, it is empty.
func buildDescription(p Product) string {
	bullets := strings.Join(p.BulletPoints, "\n")

	switch {
	case bullets != "" && p.Description != "":
		return bullets + "\n\n" + p.Description
	case bullets != "":
		return bullets
	default:
		return p.Description
	}
}

// orderImages returns image URLs with the MAIN image first and the rest
// ordered by variant tag. The sort is stable so images sharing a tag keep
// their input order. Duplicate URLs are kept.
func orderImages(images []Image) []string {
	sorted := make([]Image, len(images))
	copy(sorted, images)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Variant, sorted[j].Variant
		if a == ImageVariantMain || b == ImageVariantMain {
			return a == ImageVariantMain && b != ImageVariantMain
		}
		return a < b
	})

	urls := make([]string, len(sorted))
	for i, img := range sorted {
		urls[i] = img.URL
	}
	return urls
}

func mapVariations(variations []Variation) []catalog.Variant {
	if variations == nil {
		return nil
	}

	variants := make([]catalog.Variant, len(variations))
	for i, v := range variations {
		variant := catalog.Variant{ID: v.ASIN, Title: v.Title}
		if v.Price != nil {
			variant.Price = v.Price.Amount
		}
		variants[i] = variant
	}
	return variants
}

// buildMetadata assembles the metadata map: reserved keys first, then every
// feature key on top. A feature named like a reserved key overwrites it; the
// merge is deliberately permissive.
func buildMetadata(p Product) map[string]string {
	metadata := map[string]string{
		"source": Source,
		"asin":   p.ASIN,
	}
	if p.Brand != "" {
		metadata["brand"] = p.Brand
	}
	if p.Category != "" {
		metadata["category"] = p.Category
	}
	for k, v := range p.Features {
		metadata[k] = v
	}
	return metadata
}

func copyPrice(p *Price) *catalog.Price {
	if p == nil {
		return nil
	}
	return &catalog.Price{Amount: p.Amount, Currency: p.Currency}
}
