// Package core provides the business logic of the inventory dashboard:
// identity resolution, category catalog, product queries and role-gated
// mutations over the tabular store. It has no HTTP dependencies.
package core

import "encoding/json"

// Role is a user's privilege level. Roles form a total order:
// viewer < editor < admin.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// rank returns the numeric privilege rank of a role. Unknown roles rank
// as viewer.
func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleEditor:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r grants at least the privileges of min.
func (r Role) AtLeast(min Role) bool {
	return r.rank() >= min.rank()
}

// ParseRole maps free-form role text to a Role. Unrecognized or empty
// text maps to viewer.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleEditor, RoleAdmin:
		return Role(s)
	default:
		return RoleViewer
	}
}

// User is a resolved identity. Role defaults to viewer when the email is
// not present in the users table.
type User struct {
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
}

// Category is one product tab of the dashboard.
type Category struct {
	Tab     string `json:"tab"`
	Title   string `json:"title"`
	GroupBy string `json:"groupBy"`
}

// QtyLevel is the derived three-state stock indicator.
type QtyLevel string

const (
	QtyIn  QtyLevel = "in"
	QtyLow QtyLevel = "low"
	QtyOut QtyLevel = "out"
)

// Number is a numeric cell value with an explicit absent state, so that
// "no value" stays distinguishable from a literal zero through filtering,
// sorting and display.
type Number struct {
	Value float64
	Valid bool
}

// MarshalJSON renders an absent Number as null.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON accepts a JSON number or null.
func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Number{}
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Product is one inventory row projected from its alias-tolerant source
// columns, annotated with the caller's favorite flag and the stock level.
type Product struct {
	Sku        string   `json:"sku"`
	Brand      string   `json:"brand"`
	Series     string   `json:"series"`
	Model      string   `json:"model"`
	SalesPrice Number   `json:"salesPrice"`
	Qty        Number   `json:"qty"`
	Market     Number   `json:"market"`
	Retail     Number   `json:"retail"`
	Guarantee  string   `json:"guarantee"`
	GrntDu     string   `json:"grntDu"`
	Note       string   `json:"note"`
	Favorite   bool     `json:"favorite"`
	QtyLevel   QtyLevel `json:"qtyLevel"`
}

// SortSpec selects the sort field and direction for a product listing.
type SortSpec struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// ListOptions are the optional knobs of ListProducts.
type ListOptions struct {
	Search        string    `json:"search"`
	OnlyFavorites bool      `json:"onlyFavorites"`
	Sort          *SortSpec `json:"sort"`
}

// ProductList is the result of ListProducts.
type ProductList struct {
	Tab      string    `json:"tab"`
	Count    int       `json:"count"`
	Products []Product `json:"products"`
}

// UpdatePayload carries a partial product update. Tab and Sku are required;
// the value fields are applied only when present. They are declared as any
// because sheet-facing clients send numbers either as JSON numbers or as
// locale-variant text, both of which go through the value normalizer.
type UpdatePayload struct {
	Tab        string `json:"tab"`
	Sku        string `json:"sku"`
	SalesPrice any    `json:"salesPrice"`
	Qty        any    `json:"qty"`
	Market     any    `json:"market"`
	Retail     any    `json:"retail"`
	Note       any    `json:"note"`
}

// UpdateResult reports which fields a product update actually wrote.
type UpdateResult struct {
	Tab     string   `json:"tab"`
	Sku     string   `json:"sku"`
	Updated []string `json:"updated"`
}

// FavoriteResult is the normalized outcome of SetFavorite.
type FavoriteResult struct {
	Sku      string `json:"sku"`
	Favorite bool   `json:"favorite"`
}
