package models

import "time"

// Anuncio is an announcement a profesor posts to one of their materias.
// Only the creating profesor may update or delete it.
type Anuncio struct {
	ID         string    `json:"id" db:"id"`
	ProfesorID string    `json:"profesor" db:"profesor_id"`
	MateriaID  string    `json:"materia" db:"materia_id" validate:"required,uuid"`
	Titulo     string    `json:"titulo" db:"titulo" validate:"required"`
	Mensaje    string    `json:"mensaje" db:"mensaje" validate:"required"`
	Fecha      time.Time `json:"fecha" db:"fecha"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	ProfesorNombre *string `json:"profesorNombre,omitempty"`
	MateriaNombre  *string `json:"materiaNombre,omitempty"`
}
