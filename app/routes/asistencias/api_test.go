package asistencias

import (
	"testing"
	"time"

	"colegio-api/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	materiaUUID = "3f2f1a40-8f2e-4f7c-9a3b-1c2d3e4f5a6b"
	alumnoUUID  = "7b8c9d0e-1f2a-4b3c-8d4e-5f6a7b8c9d0e"
	alumnoUUID2 = "9d0e1f2a-3b4c-4d5e-8f6a-7b8c9d0e1f2a"
)

func TestValidarBatch(t *testing.T) {
	tests := []struct {
		name    string
		req     tomarRequest
		wantErr string
	}{
		{
			name: "valid batch",
			req: tomarRequest{
				Materia: materiaUUID,
				Asistencias: []asistenciaItem{
					{Alumno: alumnoUUID, Estado: "presente"},
					{Alumno: alumnoUUID2, Estado: "ausente"},
				},
			},
		},
		{
			name:    "bad materia id",
			req:     tomarRequest{Materia: "not-a-uuid", Asistencias: []asistenciaItem{{Alumno: alumnoUUID, Estado: "presente"}}},
			wantErr: "ID de materia inválido",
		},
		{
			name:    "empty batch",
			req:     tomarRequest{Materia: materiaUUID},
			wantErr: "El lote de asistencias está vacío",
		},
		{
			name: "bad alumno id rejects whole batch",
			req: tomarRequest{
				Materia: materiaUUID,
				Asistencias: []asistenciaItem{
					{Alumno: alumnoUUID, Estado: "presente"},
					{Alumno: "nope", Estado: "presente"},
				},
			},
			wantErr: "asistencias[1]: ID de alumno inválido",
		},
		{
			name: "bad estado rejects whole batch",
			req: tomarRequest{
				Materia: materiaUUID,
				Asistencias: []asistenciaItem{
					{Alumno: alumnoUUID, Estado: "presente"},
					{Alumno: alumnoUUID2, Estado: "falto"},
				},
			},
			wantErr: `asistencias[1]: estado inválido "falto"`,
		},
		{
			name: "duplicate alumno",
			req: tomarRequest{
				Materia: materiaUUID,
				Asistencias: []asistenciaItem{
					{Alumno: alumnoUUID, Estado: "presente"},
					{Alumno: alumnoUUID, Estado: "tarde"},
				},
			},
			wantErr: "asistencias[1]: alumno repetido en el lote",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := validarBatch(&tt.req)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			require.Len(t, items, len(tt.req.Asistencias))
			assert.Equal(t, models.Presente, items[0].Estado)
		})
	}
}

func TestParseFecha(t *testing.T) {
	got, err := parseFecha("2025-04-17")
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.April, got.Month())
	assert.Equal(t, 17, got.Day())
	assert.Equal(t, 0, got.Hour())

	_, err = parseFecha("17/04/2025")
	require.Error(t, err)

	// empty defaults to today at midnight
	hoy, err := parseFecha("")
	require.NoError(t, err)
	assert.Equal(t, models.NormalizarFecha(time.Now()), hoy)
}
