package entity

import "time"

// Client representa un cliente captado por un vendedor. SellerID es el único
// criterio de autorización para sus operaciones y es inmutable tras la creación.
type Client struct {
	ID        string
	FirstName string
	LastName  string
	Company   string
	Email     string // único global
	Phone     string
	SellerID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
