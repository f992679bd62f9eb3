package calificaciones

import (
	"testing"

	"colegio-api/app/validation"

	"github.com/stretchr/testify/assert"
)

func TestCalificacionRequestValidation(t *testing.T) {
	valid := calificacionRequest{
		Materia:     "3f2f1a40-8f2e-4f7c-9a3b-1c2d3e4f5a6b",
		Alumno:      "7b8c9d0e-1f2a-4b3c-8d4e-5f6a7b8c9d0e",
		Descripcion: "Trabajo práctico 1",
		Nota:        7.5,
	}

	tests := []struct {
		name    string
		mutate  func(r *calificacionRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *calificacionRequest) {}},
		{name: "lower bound", mutate: func(r *calificacionRequest) { r.Nota = 1 }},
		{name: "upper bound", mutate: func(r *calificacionRequest) { r.Nota = 10 }},
		{name: "nota below range", mutate: func(r *calificacionRequest) { r.Nota = 0.5 }, wantErr: true},
		{name: "nota above range", mutate: func(r *calificacionRequest) { r.Nota = 10.5 }, wantErr: true},
		{name: "missing descripcion", mutate: func(r *calificacionRequest) { r.Descripcion = "" }, wantErr: true},
		{name: "bad materia id", mutate: func(r *calificacionRequest) { r.Materia = "nope" }, wantErr: true},
		{name: "missing alumno", mutate: func(r *calificacionRequest) { r.Alumno = "" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := validation.Struct(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
