package database

import (
	"database/sql"
	"fmt"
	"time"

	"colegio-api/app/models"
)

// AsistenciaItem is one roster entry of a batch write.
type AsistenciaItem struct {
	AlumnoID string
	Estado   models.EstadoAsistencia
}

// BatchResult reports what a batch upsert did.
type BatchResult struct {
	Insertados   int `json:"insertados"`
	Actualizados int `json:"actualizados"`
}

// UpsertAsistencias writes the whole roster batch in one transaction,
// keyed (materia, alumno, fecha). Re-running the identical batch updates
// the same rows instead of creating duplicates. The xmax = 0 check tells
// a fresh insert apart from a conflict-update.
func UpsertAsistencias(db *sql.DB, materiaID string, fecha time.Time, items []AsistenciaItem, cargadoPor string) (*BatchResult, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO asistencias (materia_id, alumno_id, fecha, estado, cargado_por)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT ON CONSTRAINT unique_asistencia_por_dia_materia DO UPDATE SET
			estado = EXCLUDED.estado,
			cargado_por = EXCLUDED.cargado_por,
			updated_at = NOW()
		 RETURNING (xmax = 0)`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	result := &BatchResult{}
	for _, item := range items {
		var inserted bool
		if err := stmt.QueryRow(materiaID, item.AlumnoID, fecha, item.Estado, cargadoPor).Scan(&inserted); err != nil {
			return nil, err
		}
		if inserted {
			result.Insertados++
		} else {
			result.Actualizados++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}

const asistenciaSelect = `SELECT a.id, a.materia_id, a.alumno_id, a.fecha, a.estado, a.cargado_por,
			  a.created_at, a.updated_at,
			  m.nombre, u.nombre
			  FROM asistencias a
			  JOIN materias m ON a.materia_id = m.id
			  JOIN users u ON a.alumno_id = u.id`

func scanAsistenciaRows(rows *sql.Rows) ([]*models.Asistencia, error) {
	var asistencias []*models.Asistencia
	for rows.Next() {
		a := &models.Asistencia{}
		if err := rows.Scan(
			&a.ID, &a.MateriaID, &a.AlumnoID, &a.Fecha, &a.Estado, &a.CargadoPor,
			&a.CreatedAt, &a.UpdatedAt,
			&a.MateriaNombre, &a.AlumnoNombre,
		); err != nil {
			return nil, err
		}
		asistencias = append(asistencias, a)
	}
	return asistencias, rows.Err()
}

// AsistenciaFilters narrows GetAsistencias. ProfesorID limits the
// result to materias taught by that profesor.
type AsistenciaFilters struct {
	MateriaID  string
	AlumnoID   string
	Desde      *time.Time
	Hasta      *time.Time
	ProfesorID string
}

func GetAsistencias(db *sql.DB, f AsistenciaFilters) ([]*models.Asistencia, error) {
	query := asistenciaSelect + ` WHERE 1=1`
	var args []interface{}

	if f.MateriaID != "" {
		args = append(args, f.MateriaID)
		query += fmt.Sprintf(" AND a.materia_id = $%d", len(args))
	}
	if f.AlumnoID != "" {
		args = append(args, f.AlumnoID)
		query += fmt.Sprintf(" AND a.alumno_id = $%d", len(args))
	}
	if f.Desde != nil {
		args = append(args, *f.Desde)
		query += fmt.Sprintf(" AND a.fecha >= $%d", len(args))
	}
	if f.Hasta != nil {
		args = append(args, *f.Hasta)
		query += fmt.Sprintf(" AND a.fecha <= $%d", len(args))
	}
	if f.ProfesorID != "" {
		args = append(args, f.ProfesorID)
		query += fmt.Sprintf(" AND a.materia_id IN (SELECT id FROM materias WHERE profesor_id = $%d)", len(args))
	}
	query += ` ORDER BY a.fecha DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAsistenciaRows(rows)
}

func GetAsistenciasByAlumno(db *sql.DB, alumnoID string) ([]*models.Asistencia, error) {
	rows, err := db.Query(asistenciaSelect+` WHERE a.alumno_id = $1 ORDER BY a.fecha DESC`, alumnoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAsistenciaRows(rows)
}

func DeleteAsistencia(db *sql.DB, asistenciaID string) error {
	result, err := db.Exec(`DELETE FROM asistencias WHERE id = $1`, asistenciaID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
