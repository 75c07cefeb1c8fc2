package product

import "encoding/json"

// Product is the shape the upstream API exchanges. Identifier and the two
// timestamps are assigned upstream and never written by this application.
type Product struct {
	ID          string `json:"product_id,omitempty"`
	Title       string `json:"product_title"`
	Price       int64  `json:"product_price"`
	Description string `json:"product_description,omitempty"`
	Image       string `json:"product_image,omitempty"`
	Category    string `json:"product_category,omitempty"`
	CreatedAt   string `json:"created_timestamp,omitempty"`
	UpdatedAt   string `json:"updated_timestamp,omitempty"`
}

// IsNew reports whether the product has not been persisted upstream yet.
func (p Product) IsNew() bool {
	return p.ID == ""
}

// ListQuery is the transient query state for one list fetch. Page is 1-based.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
}

// Page is the paginated list envelope.
type Page struct {
	Data  []Product `json:"data"`
	Total int       `json:"total,omitempty"`
	Page  int       `json:"page,omitempty"`
	Limit int       `json:"limit,omitempty"`
}

type envelope struct {
	Data  []Product `json:"data"`
	Total *int      `json:"total"`
}

// NormalizePage parses a list response body into a Page. The upstream is not
// consistent about its shape: some deployments return `{data, total}`, older
// ones return a bare array. Precedence is envelope first, bare array second,
// and when no total is supplied it degrades to the length of the current
// page, which makes pagination approximate but keeps the view usable.
func NormalizePage(raw []byte) Page {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil {
		total := len(env.Data)
		if env.Total != nil {
			total = *env.Total
		}
		return Page{Data: env.Data, Total: total}
	}

	var bare []Product
	if err := json.Unmarshal(raw, &bare); err == nil && bare != nil {
		return Page{Data: bare, Total: len(bare)}
	}

	return Page{Data: []Product{}, Total: 0}
}
