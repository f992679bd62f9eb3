package models

import (
	"math"
	"time"
)

// Nota holds the per-term grades of an alumno in a Clase. NotaFinal is
// derived: the mean of whichever terms are present, rounded to one
// decimal, or absent when no term grade is set. The (ClaseID, AlumnoID)
// pair is unique.
type Nota struct {
	ID             string    `json:"id" db:"id"`
	ClaseID        string    `json:"clase" db:"clase_id"`
	AlumnoID       string    `json:"alumno" db:"alumno_id"`
	Trimestre1     *float64  `json:"trimestre1,omitempty" db:"trimestre1"`
	Trimestre2     *float64  `json:"trimestre2,omitempty" db:"trimestre2"`
	Trimestre3     *float64  `json:"trimestre3,omitempty" db:"trimestre3"`
	NotaFinal      *float64  `json:"notaFinal,omitempty" db:"nota_final"`
	ActualizadoPor string    `json:"actualizadoPor" db:"actualizado_por"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`

	AlumnoNombre *string `json:"alumnoNombre,omitempty"`
	AlumnoEmail  *string `json:"alumnoEmail,omitempty"`
}

// RecalcularFinal recomputes NotaFinal from the present term grades.
// It must run on every term write, inside the same transaction.
func (n *Nota) RecalcularFinal() {
	n.NotaFinal = CalcularNotaFinal(n.Trimestre1, n.Trimestre2, n.Trimestre3)
}

// CalcularNotaFinal returns the mean of the present terms rounded to one
// decimal, or nil when every term is nil.
func CalcularNotaFinal(terms ...*float64) *float64 {
	var sum float64
	var count int
	for _, t := range terms {
		if t != nil {
			sum += *t
			count++
		}
	}
	if count == 0 {
		return nil
	}
	final := math.Round(sum/float64(count)*10) / 10
	return &final
}
