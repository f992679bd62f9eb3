package models

import "time"

// Entrega is a student's submission for a Tarea. A student may submit a
// given tarea at most once; the (TareaID, AlumnoID) pair is unique.
type Entrega struct {
	ID              string     `json:"id" db:"id"`
	TareaID         string     `json:"tarea" db:"tarea_id" validate:"required,uuid"`
	AlumnoID        string     `json:"alumno" db:"alumno_id"`
	Archivo         string     `json:"archivo" db:"archivo"`
	Comentario      *string    `json:"comentario,omitempty" db:"comentario"`
	FechaEntrega    time.Time  `json:"fechaEntrega" db:"fecha_entrega"`
	Nota            *float64   `json:"nota,omitempty" db:"nota" validate:"omitempty,min=1,max=10"`
	ComentarioProfe *string    `json:"comentarioProfe,omitempty" db:"comentario_profe"`
	FechaCorreccion *time.Time `json:"fechaCorreccion,omitempty" db:"fecha_correccion"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`

	AlumnoNombre *string `json:"alumnoNombre,omitempty"`
	AlumnoEmail  *string `json:"alumnoEmail,omitempty"`
	TareaTitulo  *string `json:"tareaTitulo,omitempty"`
}
