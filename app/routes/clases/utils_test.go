package clases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHora(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "08:00", want: 480},
		{in: "8:00", want: 480},
		{in: "00:00", want: 0},
		{in: "23:59", want: 1439},
		{in: "13:30", want: 810},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "8", wantErr: true},
		{in: "ocho", wantErr: true},
		{in: "", wantErr: true},
		{in: "08:00:00", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHora(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatHora(t *testing.T) {
	assert.Equal(t, "08:00", FormatHora(480))
	assert.Equal(t, "00:05", FormatHora(5))
	assert.Equal(t, "23:59", FormatHora(1439))

	// parse and format round-trip to the canonical zero-padded form
	m, err := ParseHora("9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", FormatHora(m))
}

func TestSuperpuestas(t *testing.T) {
	tests := []struct {
		name                         string
		inicio1, fin1, inicio2, fin2 int
		want                         bool
	}{
		{name: "identical slots", inicio1: 480, fin1: 600, inicio2: 480, fin2: 600, want: true},
		{name: "partial overlap right", inicio1: 480, fin1: 600, inicio2: 540, fin2: 660, want: true},
		{name: "partial overlap left", inicio1: 540, fin1: 660, inicio2: 480, fin2: 600, want: true},
		{name: "second contained in first", inicio1: 480, fin1: 720, inicio2: 540, fin2: 600, want: true},
		{name: "first contained in second", inicio1: 540, fin1: 600, inicio2: 480, fin2: 720, want: true},
		{name: "one minute overlap", inicio1: 480, fin1: 541, inicio2: 540, fin2: 600, want: true},
		{name: "back to back", inicio1: 480, fin1: 540, inicio2: 540, fin2: 600, want: false},
		{name: "back to back reversed", inicio1: 540, fin1: 600, inicio2: 480, fin2: 540, want: false},
		{name: "disjoint", inicio1: 480, fin1: 540, inicio2: 600, fin2: 660, want: false},
		{name: "disjoint reversed", inicio1: 600, fin1: 660, inicio2: 480, fin2: 540, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Superpuestas(tt.inicio1, tt.fin1, tt.inicio2, tt.fin2))
			// overlap is symmetric
			assert.Equal(t, tt.want, Superpuestas(tt.inicio2, tt.fin2, tt.inicio1, tt.fin1))
		})
	}
}

func TestValidarHorario(t *testing.T) {
	tests := []struct {
		name    string
		dia     string
		inicio  string
		fin     string
		wantErr bool
	}{
		{name: "valid slot", dia: "Lunes", inicio: "08:00", fin: "10:00"},
		{name: "valid with accent", dia: "Miércoles", inicio: "14:00", fin: "16:00"},
		{name: "bad day", dia: "Domingo", inicio: "08:00", fin: "10:00", wantErr: true},
		{name: "bad start format", dia: "Lunes", inicio: "8h00", fin: "10:00", wantErr: true},
		{name: "bad end format", dia: "Lunes", inicio: "08:00", fin: "25:00", wantErr: true},
		{name: "inverted interval", dia: "Lunes", inicio: "10:00", fin: "08:00", wantErr: true},
		{name: "zero length", dia: "Lunes", inicio: "08:00", fin: "08:00", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inicio, fin, err := validarHorario(tt.dia, tt.inicio, tt.fin)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Less(t, inicio, fin)
		})
	}
}
