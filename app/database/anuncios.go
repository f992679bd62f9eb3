package database

import (
	"database/sql"

	"colegio-api/app/models"
)

const anuncioSelect = `SELECT a.id, a.profesor_id, a.materia_id, a.titulo, a.mensaje, a.fecha, a.updated_at,
			  u.nombre, m.nombre
			  FROM anuncios a
			  JOIN users u ON a.profesor_id = u.id
			  JOIN materias m ON a.materia_id = m.id`

func scanAnuncio(row interface{ Scan(...interface{}) error }, a *models.Anuncio) error {
	return row.Scan(
		&a.ID, &a.ProfesorID, &a.MateriaID, &a.Titulo, &a.Mensaje, &a.Fecha, &a.UpdatedAt,
		&a.ProfesorNombre, &a.MateriaNombre,
	)
}

func scanAnuncioRows(rows *sql.Rows) ([]*models.Anuncio, error) {
	var anuncios []*models.Anuncio
	for rows.Next() {
		a := &models.Anuncio{}
		if err := scanAnuncio(rows, a); err != nil {
			return nil, err
		}
		anuncios = append(anuncios, a)
	}
	return anuncios, rows.Err()
}

func CreateAnuncio(db *sql.DB, a *models.Anuncio) error {
	query := `INSERT INTO anuncios (profesor_id, materia_id, titulo, mensaje)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, fecha, updated_at`
	return db.QueryRow(query, a.ProfesorID, a.MateriaID, a.Titulo, a.Mensaje).
		Scan(&a.ID, &a.Fecha, &a.UpdatedAt)
}

func GetAnuncioByID(db *sql.DB, anuncioID string) (*models.Anuncio, error) {
	a := &models.Anuncio{}
	if err := scanAnuncio(db.QueryRow(anuncioSelect+` WHERE a.id = $1`, anuncioID), a); err != nil {
		return nil, err
	}
	return a, nil
}

func GetAnunciosByProfesor(db *sql.DB, profesorID string) ([]*models.Anuncio, error) {
	rows, err := db.Query(anuncioSelect+` WHERE a.profesor_id = $1 ORDER BY a.fecha DESC`, profesorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAnuncioRows(rows)
}

// GetAnunciosByAlumno returns announcements of every materia the alumno
// is enrolled in.
func GetAnunciosByAlumno(db *sql.DB, alumnoID string) ([]*models.Anuncio, error) {
	rows, err := db.Query(anuncioSelect+`
			  JOIN materia_alumnos ma ON ma.materia_id = a.materia_id
			  WHERE ma.alumno_id = $1
			  ORDER BY a.fecha DESC`, alumnoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAnuncioRows(rows)
}

func UpdateAnuncio(db *sql.DB, a *models.Anuncio) error {
	query := `UPDATE anuncios SET titulo = $1, mensaje = $2, materia_id = $3, updated_at = NOW()
			  WHERE id = $4`
	result, err := db.Exec(query, a.Titulo, a.Mensaje, a.MateriaID, a.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteAnuncio(db *sql.DB, anuncioID string) error {
	result, err := db.Exec(`DELETE FROM anuncios WHERE id = $1`, anuncioID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
