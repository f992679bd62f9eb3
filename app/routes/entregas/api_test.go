package entregas

import (
	"testing"

	"colegio-api/app/validation"

	"github.com/stretchr/testify/assert"
)

func notaPtr(f float64) *float64 { return &f }

func TestCorreccionRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     correccionRequest
		wantErr bool
	}{
		{name: "valid", req: correccionRequest{Nota: notaPtr(8)}},
		{name: "lower bound", req: correccionRequest{Nota: notaPtr(1)}},
		{name: "upper bound", req: correccionRequest{Nota: notaPtr(10)}},
		{name: "with comentario", req: correccionRequest{Nota: notaPtr(6), ComentarioProfe: notaComentario("Bien resuelto")}},
		{name: "missing nota", req: correccionRequest{}, wantErr: true},
		{name: "below range", req: correccionRequest{Nota: notaPtr(0.5)}, wantErr: true},
		{name: "above range", req: correccionRequest{Nota: notaPtr(11)}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func notaComentario(s string) *string { return &s }
