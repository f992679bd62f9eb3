package clases

import (
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"colegio-api/app/database"
	"colegio-api/app/models"
)

var horaRe = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ParseHora converts an HH:MM string to minutes since midnight.
func ParseHora(s string) (int, error) {
	if !horaRe.MatchString(s) {
		return 0, fmt.Errorf("el formato de hora debe ser HH:MM")
	}
	parts := strings.Split(s, ":")
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m, nil
}

// FormatHora renders minutes since midnight as zero-padded HH:MM, the
// canonical stored form.
func FormatHora(minutos int) string {
	return fmt.Sprintf("%02d:%02d", minutos/60, minutos%60)
}

// Superpuestas reports whether the half-open intervals [inicio1, fin1)
// and [inicio2, fin2) overlap. Back-to-back slots (fin1 == inicio2) do
// not conflict.
func Superpuestas(inicio1, fin1, inicio2, fin2 int) bool {
	return inicio1 < fin2 && inicio2 < fin1
}

// BuscarConflicto returns the first existing clase of the profesor on
// the given weekday whose slot overlaps [inicio, fin), or nil when the
// slot is free. excludeID skips the clase being edited.
func BuscarConflicto(db *sql.DB, profesorID string, dia models.DiaSemana, inicio, fin int, excludeID string) (*models.Clase, error) {
	existentes, err := database.GetClasesByProfesorYDia(db, profesorID, dia, excludeID)
	if err != nil {
		return nil, err
	}

	for _, clase := range existentes {
		claseInicio, err := ParseHora(clase.HoraInicio)
		if err != nil {
			return nil, err
		}
		claseFin, err := ParseHora(clase.HoraFin)
		if err != nil {
			return nil, err
		}
		if Superpuestas(inicio, fin, claseInicio, claseFin) {
			return clase, nil
		}
	}
	return nil, nil
}
