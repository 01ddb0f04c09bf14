package users

import (
	"fmt"

	"pet-shop-api/internal/domain/pets"
)

// User es dueño de cero o más Pets. Email es único entre todos los users.
type User struct {
	ID           int64
	Email        string
	PasswordHash string

	// Pets se completa en lecturas; no se persiste con el user.
	Pets []pets.Pet
}

// DeleteLabel describe al user en el log de borrado.
func (u User) DeleteLabel() string {
	return fmt.Sprintf("user with id = %d", u.ID)
}
