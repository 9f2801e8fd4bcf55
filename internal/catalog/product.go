// Package catalog defines the platform-neutral product model that every
// marketplace adapter converges to. Values are plain data: constructed per
// call, never mutated after being returned.
package catalog

type Price struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type Variant struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// Price is the bare amount without currency. Empty when the source
	// variation carries no price.
	Price string `json:"price,omitempty"`
}

type Product struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Images      []string          `json:"images"`
	Price       *Price            `json:"price,omitempty"`
	Variants    []Variant         `json:"variants,omitempty"`
	Metadata    map[string]string `json:"metadata"`
}
