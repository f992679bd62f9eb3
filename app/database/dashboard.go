package database

import (
	"database/sql"
	"time"
)

// Resumen holds the admin dashboard counters.
type Resumen struct {
	Usuarios       map[string]int `json:"usuarios"`
	Materias       int            `json:"materias"`
	Clases         int            `json:"clases"`
	Anuncios       int            `json:"anuncios"`
	AsistenciasHoy map[string]int `json:"asistenciasHoy"`
}

// GetResumen gathers the dashboard counters: users per rol, totals per
// entity and today's attendance per estado.
func GetResumen(db *sql.DB, hoy time.Time) (*Resumen, error) {
	r := &Resumen{
		Usuarios:       make(map[string]int),
		AsistenciasHoy: make(map[string]int),
	}

	rows, err := db.Query(`SELECT rol, COUNT(*) FROM users GROUP BY rol`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var rol string
		var count int
		if err := rows.Scan(&rol, &count); err != nil {
			return nil, err
		}
		r.Usuarios[rol] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT
			(SELECT COUNT(*) FROM materias),
			(SELECT COUNT(*) FROM clases),
			(SELECT COUNT(*) FROM anuncios)`).
		Scan(&r.Materias, &r.Clases, &r.Anuncios)
	if err != nil {
		return nil, err
	}

	estadoRows, err := db.Query(`SELECT estado, COUNT(*) FROM asistencias WHERE fecha = $1 GROUP BY estado`, hoy)
	if err != nil {
		return nil, err
	}
	defer estadoRows.Close()
	for estadoRows.Next() {
		var estado string
		var count int
		if err := estadoRows.Scan(&estado, &count); err != nil {
			return nil, err
		}
		r.AsistenciasHoy[estado] = count
	}
	return r, estadoRows.Err()
}
