package database

import (
	"database/sql"

	"colegio-api/app/models"
)

func scanMateriaRows(rows *sql.Rows) ([]*models.Materia, error) {
	var materias []*models.Materia
	for rows.Next() {
		m := &models.Materia{}
		if err := rows.Scan(
			&m.ID, &m.Nombre, &m.Anio, &m.Profesor, &m.CreatedAt, &m.UpdatedAt,
			&m.ProfesorNombre,
		); err != nil {
			return nil, err
		}
		materias = append(materias, m)
	}
	return materias, rows.Err()
}

const materiaSelect = `SELECT m.id, m.nombre, m.anio, m.profesor_id, m.created_at, m.updated_at,
			  u.nombre
			  FROM materias m
			  LEFT JOIN users u ON m.profesor_id = u.id`

func CreateMateria(db *sql.DB, m *models.Materia) error {
	query := `INSERT INTO materias (nombre, anio, profesor_id)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, m.Nombre, m.Anio, m.Profesor).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

// MateriaExists reports whether another materia already uses the
// (nombre, anio) pair. excludeID skips the materia being edited.
func MateriaExists(db *sql.DB, nombre string, anio int, excludeID string) (bool, error) {
	query := `SELECT COUNT(*) FROM materias WHERE nombre = $1 AND anio = $2`
	args := []interface{}{nombre, anio}
	if excludeID != "" {
		query += ` AND id != $3`
		args = append(args, excludeID)
	}

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func GetAllMaterias(db *sql.DB) ([]*models.Materia, error) {
	rows, err := db.Query(materiaSelect + ` ORDER BY m.anio, m.nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMateriaRows(rows)
}

func GetMateriaByID(db *sql.DB, materiaID string) (*models.Materia, error) {
	m := &models.Materia{}
	err := db.QueryRow(materiaSelect+` WHERE m.id = $1`, materiaID).Scan(
		&m.ID, &m.Nombre, &m.Anio, &m.Profesor, &m.CreatedAt, &m.UpdatedAt,
		&m.ProfesorNombre,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func GetMateriasByAnio(db *sql.DB, anio int) ([]*models.Materia, error) {
	rows, err := db.Query(materiaSelect+` WHERE m.anio = $1 ORDER BY m.nombre`, anio)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMateriaRows(rows)
}

func GetMateriasByProfesor(db *sql.DB, profesorID string) ([]*models.Materia, error) {
	rows, err := db.Query(materiaSelect+` WHERE m.profesor_id = $1 ORDER BY m.anio, m.nombre`, profesorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMateriaRows(rows)
}

func GetMateriasByAlumno(db *sql.DB, alumnoID string) ([]*models.Materia, error) {
	rows, err := db.Query(materiaSelect+`
			  JOIN materia_alumnos ma ON ma.materia_id = m.id
			  WHERE ma.alumno_id = $1
			  ORDER BY m.anio, m.nombre`, alumnoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMateriaRows(rows)
}

func UpdateMateria(db *sql.DB, m *models.Materia) error {
	query := `UPDATE materias SET nombre = $1, anio = $2, profesor_id = $3, updated_at = NOW()
			  WHERE id = $4`
	result, err := db.Exec(query, m.Nombre, m.Anio, m.Profesor, m.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteMateria(db *sql.DB, materiaID string) error {
	if _, err := db.Exec(`DELETE FROM materia_alumnos WHERE materia_id = $1`, materiaID); err != nil {
		return err
	}
	result, err := db.Exec(`DELETE FROM materias WHERE id = $1`, materiaID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountMateriaDependents returns how many clases and tareas still
// reference the materia. Deleting is forbidden while either is nonzero.
func CountMateriaDependents(db *sql.DB, materiaID string) (clases, tareas int, err error) {
	err = db.QueryRow(
		`SELECT
			(SELECT COUNT(*) FROM clases WHERE materia_id = $1),
			(SELECT COUNT(*) FROM tareas WHERE materia_id = $1)`,
		materiaID,
	).Scan(&clases, &tareas)
	return clases, tareas, err
}

func IsAlumnoInscripto(db *sql.DB, materiaID, alumnoID string) (bool, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM materia_alumnos WHERE materia_id = $1 AND alumno_id = $2`,
		materiaID, alumnoID,
	).Scan(&count)
	return count > 0, err
}

func InscribirAlumno(db *sql.DB, materiaID, alumnoID string) error {
	_, err := db.Exec(
		`INSERT INTO materia_alumnos (materia_id, alumno_id) VALUES ($1, $2)`,
		materiaID, alumnoID,
	)
	return err
}

func BajarAlumno(db *sql.DB, materiaID, alumnoID string) error {
	result, err := db.Exec(
		`DELETE FROM materia_alumnos WHERE materia_id = $1 AND alumno_id = $2`,
		materiaID, alumnoID,
	)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func GetAlumnosByMateria(db *sql.DB, materiaID string) ([]*models.User, error) {
	query := `SELECT u.id, u.nombre, u.email, u.rol, u.anio, u.division, u.created_at, u.updated_at
			  FROM users u
			  JOIN materia_alumnos ma ON ma.alumno_id = u.id
			  WHERE ma.materia_id = $1
			  ORDER BY u.nombre`

	rows, err := db.Query(query, materiaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alumnos []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(
			&u.ID, &u.Nombre, &u.Email, &u.Rol,
			&u.Anio, &u.Division, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		alumnos = append(alumnos, u)
	}
	return alumnos, rows.Err()
}
