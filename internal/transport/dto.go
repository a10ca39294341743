package transport

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateSweetRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Quantity    *int64   `json:"quantity"`
	Description string   `json:"description"`
}

// UpdateSweetRequest uses pointer fields so a key that is present in
// the payload overwrites the stored value even when it decodes to the
// zero value, while an absent key leaves the field untouched.
type UpdateSweetRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Quantity    *int64   `json:"quantity"`
	Description *string  `json:"description"`
}

type PurchaseRequest struct {
	Quantity *int64 `json:"quantity"`
}

type RestockRequest struct {
	Quantity *int64 `json:"quantity"`
}

type SearchSweetsQuery struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}
