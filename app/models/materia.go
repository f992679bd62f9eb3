package models

import "time"

// Materia is a subject taught in a given school year. The (Nombre, Anio)
// pair is unique. Alumnos holds the enrolled students when the query
// loads them; it is nil otherwise.
type Materia struct {
	ID        string    `json:"id" db:"id"`
	Nombre    string    `json:"nombre" db:"nombre" validate:"required"`
	Anio      int       `json:"anio" db:"anio" validate:"required,min=1,max=6"`
	Profesor  *string   `json:"profesor,omitempty" db:"profesor_id"`
	Alumnos   []*User   `json:"alumnos,omitempty"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	ProfesorNombre *string `json:"profesorNombre,omitempty"`
}
