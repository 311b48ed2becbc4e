package entity

// Address is a shipping address owned by a User. The json tags double as the
// storage shape: the whole collection is persisted as one jsonb document on
// the user row, in insertion order.
type Address struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}
