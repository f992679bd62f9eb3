package notas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCambios(t *testing.T) {
	body := []byte(`{
		"clase": "3f2f1a40-8f2e-4f7c-9a3b-1c2d3e4f5a6b",
		"alumno": "7b8c9d0e-1f2a-4b3c-8d4e-5f6a7b8c9d0e",
		"trimestre1": 8,
		"trimestre2": null
	}`)

	claseID, alumnoID, cambios, err := parseCambios(body)
	require.NoError(t, err)
	assert.Equal(t, "3f2f1a40-8f2e-4f7c-9a3b-1c2d3e4f5a6b", claseID)
	assert.Equal(t, "7b8c9d0e-1f2a-4b3c-8d4e-5f6a7b8c9d0e", alumnoID)

	// sent with a value: set
	require.True(t, cambios[0].Presente)
	require.NotNil(t, cambios[0].Valor)
	assert.InDelta(t, 8.0, *cambios[0].Valor, 0.001)

	// sent as null: clear
	assert.True(t, cambios[1].Presente)
	assert.Nil(t, cambios[1].Valor)

	// not sent at all: untouched
	assert.False(t, cambios[2].Presente)
	assert.Nil(t, cambios[2].Valor)
}

func TestParseCambiosRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "below lower bound", body: `{"trimestre1": 0.5}`},
		{name: "zero", body: `{"trimestre2": 0}`},
		{name: "above upper bound", body: `{"trimestre3": 10.5}`},
		{name: "negative", body: `{"trimestre1": -3}`},
		{name: "not a number", body: `{"trimestre1": "ocho"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := parseCambios([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestParseCambiosBoundaryGrades(t *testing.T) {
	_, _, cambios, err := parseCambios([]byte(`{"trimestre1": 1, "trimestre2": 10}`))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, *cambios[0].Valor, 0.001)
	assert.InDelta(t, 10.0, *cambios[1].Valor, 0.001)
}

func TestParseCambiosBadJSON(t *testing.T) {
	_, _, _, err := parseCambios([]byte(`{`))
	assert.Error(t, err)
}
