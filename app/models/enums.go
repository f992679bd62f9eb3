package models

// Rol defines the user roles recognized by the API.
type Rol string

const (
	RolAdmin    Rol = "admin"
	RolProfesor Rol = "profesor"
	RolAlumno   Rol = "alumno"
)

// ValidRol reports whether s is one of the known roles.
func ValidRol(s string) bool {
	switch Rol(s) {
	case RolAdmin, RolProfesor, RolAlumno:
		return true
	}
	return false
}

// EstadoAsistencia defines the possible attendance states.
type EstadoAsistencia string

const (
	Presente    EstadoAsistencia = "presente"
	Ausente     EstadoAsistencia = "ausente"
	Tarde       EstadoAsistencia = "tarde"
	Justificado EstadoAsistencia = "justificado"
)

// ValidEstadoAsistencia reports whether s is one of the four attendance states.
func ValidEstadoAsistencia(s string) bool {
	switch EstadoAsistencia(s) {
	case Presente, Ausente, Tarde, Justificado:
		return true
	}
	return false
}

// DiaSemana defines the school days. Classes are never scheduled on Sundays.
type DiaSemana string

const (
	Lunes     DiaSemana = "Lunes"
	Martes    DiaSemana = "Martes"
	Miercoles DiaSemana = "Miércoles"
	Jueves    DiaSemana = "Jueves"
	Viernes   DiaSemana = "Viernes"
	Sabado    DiaSemana = "Sábado"
)

// ValidDiaSemana reports whether s is a school day.
func ValidDiaSemana(s string) bool {
	switch DiaSemana(s) {
	case Lunes, Martes, Miercoles, Jueves, Viernes, Sabado:
		return true
	}
	return false
}
