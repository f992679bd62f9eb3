package models

import "time"

// Clase is a scheduled weekly slot of a Materia taught by a Profesor.
// HoraInicio and HoraFin are zero-padded HH:MM strings; Duracion is
// derived in minutes when the row is written.
type Clase struct {
	ID         string    `json:"id" db:"id"`
	MateriaID  string    `json:"materia" db:"materia_id" validate:"required,uuid"`
	ProfesorID string    `json:"profesor" db:"profesor_id" validate:"required,uuid"`
	Anio       int       `json:"anio" db:"anio" validate:"required,min=1,max=6"`
	DiaSemana  DiaSemana `json:"diaSemana" db:"dia_semana"`
	HoraInicio string    `json:"horaInicio" db:"hora_inicio"`
	HoraFin    string    `json:"horaFin" db:"hora_fin"`
	Duracion   int       `json:"duracion" db:"duracion"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	MateriaNombre  *string `json:"materiaNombre,omitempty"`
	ProfesorNombre *string `json:"profesorNombre,omitempty"`
}

// Horario formats the slot the way the frontend displays it.
func (c *Clase) Horario() string {
	return c.HoraInicio + " - " + c.HoraFin
}
