package models

import "time"

// Asistencia is one student's attendance state for a materia on a date.
// Fecha is always normalized to midnight; the (MateriaID, AlumnoID,
// Fecha) triple is unique and later writes for the same key upsert in
// place.
type Asistencia struct {
	ID         string           `json:"id" db:"id"`
	MateriaID  string           `json:"materia" db:"materia_id"`
	AlumnoID   string           `json:"alumno" db:"alumno_id"`
	Fecha      time.Time        `json:"fecha" db:"fecha"`
	Estado     EstadoAsistencia `json:"estado" db:"estado"`
	CargadoPor string           `json:"cargadoPor" db:"cargado_por"`
	CreatedAt  time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time        `json:"updatedAt" db:"updated_at"`

	MateriaNombre *string `json:"materiaNombre,omitempty"`
	AlumnoNombre  *string `json:"alumnoNombre,omitempty"`
}

// NormalizarFecha truncates t to midnight local time.
func NormalizarFecha(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
