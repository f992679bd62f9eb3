package models

import "time"

// Tarea is an assignment published by the profesor of a Materia.
// Archivo is the storage object name of the optional attachment.
type Tarea struct {
	ID           string    `json:"id" db:"id"`
	Titulo       string    `json:"titulo" db:"titulo" validate:"required"`
	Descripcion  string    `json:"descripcion" db:"descripcion"`
	FechaEntrega time.Time `json:"fechaEntrega" db:"fecha_entrega"`
	MateriaID    string    `json:"materia" db:"materia_id" validate:"required,uuid"`
	ProfesorID   string    `json:"profesor" db:"profesor_id"`
	Archivo      *string   `json:"archivo,omitempty" db:"archivo"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
