package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(f float64) *float64 { return &f }

func TestCalcularNotaFinal(t *testing.T) {
	tests := []struct {
		name  string
		terms []*float64
		want  *float64
	}{
		{name: "no terms", terms: []*float64{nil, nil, nil}, want: nil},
		{name: "single term", terms: []*float64{fptr(7), nil, nil}, want: fptr(7)},
		{name: "two terms", terms: []*float64{fptr(8), fptr(6), nil}, want: fptr(7)},
		{name: "three terms", terms: []*float64{fptr(8), fptr(6), fptr(10)}, want: fptr(8)},
		{name: "rounds to one decimal", terms: []*float64{fptr(7), fptr(8), nil}, want: fptr(7.5)},
		{name: "rounds up", terms: []*float64{fptr(7), fptr(7), fptr(8)}, want: fptr(7.3)},
		{name: "rounds half away", terms: []*float64{fptr(7.1), fptr(7.2), nil}, want: fptr(7.2)},
		{name: "gap in the middle", terms: []*float64{fptr(4), nil, fptr(9)}, want: fptr(6.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcularNotaFinal(tt.terms...)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 0.001)
		})
	}
}

func TestRecalcularFinal(t *testing.T) {
	n := Nota{Trimestre1: fptr(8), Trimestre2: fptr(6)}
	n.RecalcularFinal()
	require.NotNil(t, n.NotaFinal)
	assert.InDelta(t, 7.0, *n.NotaFinal, 0.001)

	// adding the third term moves the mean
	n.Trimestre3 = fptr(10)
	n.RecalcularFinal()
	require.NotNil(t, n.NotaFinal)
	assert.InDelta(t, 8.0, *n.NotaFinal, 0.001)

	// clearing everything clears the final grade
	n.Trimestre1, n.Trimestre2, n.Trimestre3 = nil, nil, nil
	n.RecalcularFinal()
	assert.Nil(t, n.NotaFinal)
}
