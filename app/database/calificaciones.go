package database

import (
	"database/sql"

	"colegio-api/app/models"
)

const calificacionSelect = `SELECT c.id, c.materia_id, c.alumno_id, c.profesor_id, c.descripcion,
			  c.nota, c.fecha, c.created_at, c.updated_at,
			  u.nombre, u.email, m.nombre, m.anio
			  FROM calificaciones c
			  JOIN users u ON c.alumno_id = u.id
			  JOIN materias m ON c.materia_id = m.id`

func scanCalificacion(row interface{ Scan(...interface{}) error }, cal *models.Calificacion) error {
	return row.Scan(
		&cal.ID, &cal.MateriaID, &cal.AlumnoID, &cal.ProfesorID, &cal.Descripcion,
		&cal.Nota, &cal.Fecha, &cal.CreatedAt, &cal.UpdatedAt,
		&cal.AlumnoNombre, &cal.AlumnoEmail, &cal.MateriaNombre, &cal.MateriaAnio,
	)
}

func scanCalificacionRows(rows *sql.Rows) ([]*models.Calificacion, error) {
	var calificaciones []*models.Calificacion
	for rows.Next() {
		cal := &models.Calificacion{}
		if err := scanCalificacion(rows, cal); err != nil {
			return nil, err
		}
		calificaciones = append(calificaciones, cal)
	}
	return calificaciones, rows.Err()
}

func CreateCalificacion(db *sql.DB, cal *models.Calificacion) error {
	return db.QueryRow(
		`INSERT INTO calificaciones (materia_id, alumno_id, profesor_id, descripcion, nota)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, fecha, created_at, updated_at`,
		cal.MateriaID, cal.AlumnoID, cal.ProfesorID, cal.Descripcion, cal.Nota,
	).Scan(&cal.ID, &cal.Fecha, &cal.CreatedAt, &cal.UpdatedAt)
}

func GetCalificacionByID(db *sql.DB, calificacionID string) (*models.Calificacion, error) {
	cal := &models.Calificacion{}
	err := scanCalificacion(db.QueryRow(calificacionSelect+` WHERE c.id = $1`, calificacionID), cal)
	if err != nil {
		return nil, err
	}
	return cal, nil
}

func GetCalificacionesByMateria(db *sql.DB, materiaID string) ([]*models.Calificacion, error) {
	rows, err := db.Query(calificacionSelect+` WHERE c.materia_id = $1 ORDER BY c.created_at DESC`, materiaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCalificacionRows(rows)
}

func GetCalificacionesByAlumno(db *sql.DB, alumnoID string) ([]*models.Calificacion, error) {
	rows, err := db.Query(calificacionSelect+` WHERE c.alumno_id = $1 ORDER BY c.created_at DESC`, alumnoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCalificacionRows(rows)
}

func UpdateCalificacionNota(db *sql.DB, calificacionID string, nota float64) error {
	result, err := db.Exec(
		`UPDATE calificaciones SET nota = $1, updated_at = NOW() WHERE id = $2`,
		nota, calificacionID,
	)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteCalificacion(db *sql.DB, calificacionID string) error {
	result, err := db.Exec(`DELETE FROM calificaciones WHERE id = $1`, calificacionID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
