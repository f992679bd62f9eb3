package models

import "time"

// Calificacion is a one-off graded assessment a profesor records
// against an alumno in a materia (an oral exam, a practical work).
// Unlike Nota it is append-style per event, not one row per
// (clase, alumno).
type Calificacion struct {
	ID          string    `json:"id" db:"id"`
	MateriaID   string    `json:"materia" db:"materia_id" validate:"required,uuid"`
	AlumnoID    string    `json:"alumno" db:"alumno_id" validate:"required,uuid"`
	ProfesorID  string    `json:"profesor" db:"profesor_id"`
	Descripcion string    `json:"descripcion" db:"descripcion" validate:"required"`
	Nota        float64   `json:"nota" db:"nota" validate:"required,min=1,max=10"`
	Fecha       time.Time `json:"fecha" db:"fecha"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	AlumnoNombre  *string `json:"alumnoNombre,omitempty"`
	AlumnoEmail   *string `json:"alumnoEmail,omitempty"`
	MateriaNombre *string `json:"materiaNombre,omitempty"`
	MateriaAnio   *int    `json:"materiaAnio,omitempty"`
}
