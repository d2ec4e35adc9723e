package types

// ColorOption is one selectable color for a product.
type ColorOption struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Product is a catalog record. The catalog is read-only; the cart embeds a
// copy of the product at add-time, so later catalog changes never move the
// price of a line already in the cart.
type Product struct {
	ID              string        `json:"id"`
	Slug            string        `json:"slug"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	FullDescription string        `json:"fullDescription,omitempty"`
	Price           float64       `json:"price"`
	CompareAtPrice  float64       `json:"compareAtPrice,omitempty"`
	Images          []string      `json:"images"`
	Category        string        `json:"category"`
	Sizes           []string      `json:"sizes"`
	Colors          []ColorOption `json:"colors"`
	Rating          float64       `json:"rating"`
	ReviewCount     int           `json:"reviewCount"`
	InStock         bool          `json:"inStock"`
	Featured        bool          `json:"featured,omitempty"`
	New             bool          `json:"new,omitempty"`
}

// OnSale reports whether the product carries a compare-at price, which by
// convention is always higher than the selling price.
func (p Product) OnSale() bool {
	return p.CompareAtPrice > p.Price && p.CompareAtPrice > 0
}

// Review is a customer review attached to a catalog product.
type Review struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Author    string  `json:"author"`
	Rating    float64 `json:"rating"`
	Date      string  `json:"date"`
	Comment   string  `json:"comment"`
	Verified  bool    `json:"verified"`
}
