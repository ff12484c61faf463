package product

// Raw is a product record exactly as the upstream catalog returned it.
// Values keep their decoded JSON types (float64, string, []any, nil).
type Raw map[string]any

// Product is the display-oriented record returned to clients.
// List responses carry ShortDescription; single responses carry Category and Tags.
type Product struct {
	ID               any     `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Price            string  `json:"price"`
	Stock            string  `json:"stock"`
	Thumbnail        string  `json:"thumbnail"`
	ShortDescription *string `json:"short_description,omitempty"`
	Category         *string `json:"category,omitempty"`
	Tags             *string `json:"tags,omitempty"`
}

// Page is one slice of the upstream collection plus the collection size.
// HasProducts/HasTotal record whether the keys were present in the payload.
type Page struct {
	Products    []Raw
	Total       int
	HasProducts bool
	HasTotal    bool
}

// Meta is the pagination block derived from limit, skip and total.
type Meta struct {
	TotalPages int `json:"total_pages"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: Invalid API response
	Error string `json:"error"`
}

// ListResponse represents the paginated response of products.
// swagger:model
type ListResponse struct {
	Data []Product `json:"data"`
	Meta Meta      `json:"meta"`
}
