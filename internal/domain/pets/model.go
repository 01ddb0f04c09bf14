package pets

import "fmt"

// Pet pertenece a exactamente un User (owner_id). Dentro de un mismo owner el par
// (animal_name, description) es único.
type Pet struct {
	ID          int64
	AnimalName  string
	Description *string // nullable
	OwnerID     int64
}

// DeleteLabel describe la mascota en el log de borrado.
func (p Pet) DeleteLabel() string {
	return fmt.Sprintf("pet with owner id = %d and pet id = %d", p.OwnerID, p.ID)
}
