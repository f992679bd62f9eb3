package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizarFecha(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	in := time.Date(2025, 4, 17, 23, 59, 59, 123, loc)
	got := NormalizarFecha(in)

	assert.Equal(t, time.Date(2025, 4, 17, 0, 0, 0, 0, loc), got)

	// two timestamps on the same day normalize to the same key
	otra := time.Date(2025, 4, 17, 8, 15, 0, 0, loc)
	assert.Equal(t, got, NormalizarFecha(otra))

	// already-midnight values are a fixed point
	assert.Equal(t, got, NormalizarFecha(got))
}

func TestValidEnums(t *testing.T) {
	assert.True(t, ValidRol("admin"))
	assert.True(t, ValidRol("profesor"))
	assert.True(t, ValidRol("alumno"))
	assert.False(t, ValidRol("superuser"))
	assert.False(t, ValidRol(""))

	assert.True(t, ValidEstadoAsistencia("presente"))
	assert.True(t, ValidEstadoAsistencia("ausente"))
	assert.True(t, ValidEstadoAsistencia("tarde"))
	assert.True(t, ValidEstadoAsistencia("justificado"))
	assert.False(t, ValidEstadoAsistencia("Presente"))

	assert.True(t, ValidDiaSemana("Lunes"))
	assert.True(t, ValidDiaSemana("Miércoles"))
	assert.True(t, ValidDiaSemana("Sábado"))
	assert.False(t, ValidDiaSemana("Domingo"))
	assert.False(t, ValidDiaSemana("lunes"))
}
