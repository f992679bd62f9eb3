package database

import (
	"database/sql"
	"fmt"

	"colegio-api/app/models"
)

// TrimestreCambio describes one term field of a nota upsert request.
// Presente distinguishes "field absent, leave as is" from "field null,
// clear the term".
type TrimestreCambio struct {
	Presente bool
	Valor    *float64
}

// UpsertNota writes the requested term changes for (claseID, alumnoID),
// creating the record when absent, and recomputes nota_final inside the
// same transaction. Returns the stored row.
func UpsertNota(db *sql.DB, claseID, alumnoID, actualizadoPor string, cambios [3]TrimestreCambio) (*models.Nota, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	n := &models.Nota{ClaseID: claseID, AlumnoID: alumnoID, ActualizadoPor: actualizadoPor}

	err = tx.QueryRow(
		`SELECT trimestre1, trimestre2, trimestre3 FROM notas
		 WHERE clase_id = $1 AND alumno_id = $2 FOR UPDATE`,
		claseID, alumnoID,
	).Scan(&n.Trimestre1, &n.Trimestre2, &n.Trimestre3)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	terms := []**float64{&n.Trimestre1, &n.Trimestre2, &n.Trimestre3}
	for i, c := range cambios {
		if c.Presente {
			*terms[i] = c.Valor
		}
	}
	n.RecalcularFinal()

	err = tx.QueryRow(
		`INSERT INTO notas (clase_id, alumno_id, trimestre1, trimestre2, trimestre3, nota_final, actualizado_por)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT ON CONSTRAINT unique_nota_por_clase_alumno DO UPDATE SET
			trimestre1 = EXCLUDED.trimestre1,
			trimestre2 = EXCLUDED.trimestre2,
			trimestre3 = EXCLUDED.trimestre3,
			nota_final = EXCLUDED.nota_final,
			actualizado_por = EXCLUDED.actualizado_por,
			updated_at = NOW()
		 RETURNING id, created_at, updated_at`,
		claseID, alumnoID, n.Trimestre1, n.Trimestre2, n.Trimestre3, n.NotaFinal, actualizadoPor,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return n, nil
}

const notaSelect = `SELECT n.id, n.clase_id, n.alumno_id, n.trimestre1, n.trimestre2, n.trimestre3,
			  n.nota_final, n.actualizado_por, n.created_at, n.updated_at,
			  u.nombre, u.email
			  FROM notas n
			  JOIN users u ON n.alumno_id = u.id`

func scanNotaRows(rows *sql.Rows) ([]*models.Nota, error) {
	var notas []*models.Nota
	for rows.Next() {
		n := &models.Nota{}
		if err := rows.Scan(
			&n.ID, &n.ClaseID, &n.AlumnoID, &n.Trimestre1, &n.Trimestre2, &n.Trimestre3,
			&n.NotaFinal, &n.ActualizadoPor, &n.CreatedAt, &n.UpdatedAt,
			&n.AlumnoNombre, &n.AlumnoEmail,
		); err != nil {
			return nil, err
		}
		notas = append(notas, n)
	}
	return notas, rows.Err()
}

// NotaFilters narrows GetNotas. ProfesorID limits the result to clases
// taught by that profesor.
type NotaFilters struct {
	ClaseID    string
	AlumnoID   string
	ProfesorID string
}

func GetNotas(db *sql.DB, f NotaFilters) ([]*models.Nota, error) {
	query := notaSelect + ` WHERE 1=1`
	var args []interface{}

	if f.ClaseID != "" {
		args = append(args, f.ClaseID)
		query += fmt.Sprintf(" AND n.clase_id = $%d", len(args))
	}
	if f.AlumnoID != "" {
		args = append(args, f.AlumnoID)
		query += fmt.Sprintf(" AND n.alumno_id = $%d", len(args))
	}
	if f.ProfesorID != "" {
		args = append(args, f.ProfesorID)
		query += fmt.Sprintf(" AND n.clase_id IN (SELECT id FROM clases WHERE profesor_id = $%d)", len(args))
	}
	query += ` ORDER BY u.nombre`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotaRows(rows)
}

func GetNotasByAlumno(db *sql.DB, alumnoID string) ([]*models.Nota, error) {
	rows, err := db.Query(notaSelect+` WHERE n.alumno_id = $1 ORDER BY n.created_at`, alumnoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotaRows(rows)
}

func GetNotasByClase(db *sql.DB, claseID string) ([]*models.Nota, error) {
	rows, err := db.Query(notaSelect+` WHERE n.clase_id = $1 ORDER BY u.nombre`, claseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotaRows(rows)
}
