package vireo

import (
	"net/url"
	"strconv"
)

// SortOrder controls list ordering by creation timestamp.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// ListParams contains cursor-pagination parameters shared by list endpoints.
// Nil fields are omitted from the query string; the server applies its own
// defaults.
type ListParams struct {
	Limit  *int
	After  *string
	Before *string
	Order  *SortOrder
}

// values renders the parameters as a query string, omitting nil fields.
func (p *ListParams) values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	if p.Limit != nil {
		v.Set("limit", strconv.Itoa(*p.Limit))
	}
	if p.After != nil {
		v.Set("after", *p.After)
	}
	if p.Before != nil {
		v.Set("before", *p.Before)
	}
	if p.Order != nil {
		v.Set("order", string(*p.Order))
	}
	return v
}

// List is the cursor-paginated envelope the API wraps every listing in.
type List[T any] struct {
	Object  string `json:"object"`
	Data    []T    `json:"data"`
	FirstID string `json:"first_id,omitempty"`
	LastID  string `json:"last_id,omitempty"`
	HasMore bool   `json:"has_more"`
}

// Ptr returns a pointer to v. Convenience for optional request fields, which
// are pointer-typed so that omitted, zero, and null stay distinguishable.
func Ptr[T any](v T) *T {
	return &v
}
