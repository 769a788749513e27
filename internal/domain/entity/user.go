package entity

import "time"

// User representa un vendedor del sistema. El email es único global.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal es la identidad del vendedor autenticado, resuelta desde el token
// por el proveedor de identidad. Vive solo durante una petición; nunca se persiste.
type Principal struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
}
