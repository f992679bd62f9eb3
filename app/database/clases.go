package database

import (
	"database/sql"
	"fmt"

	"colegio-api/app/models"
)

const claseSelect = `SELECT c.id, c.materia_id, c.profesor_id, c.anio, c.dia_semana,
			  c.hora_inicio, c.hora_fin, c.duracion, c.created_at, c.updated_at,
			  m.nombre, u.nombre
			  FROM clases c
			  JOIN materias m ON c.materia_id = m.id
			  JOIN users u ON c.profesor_id = u.id`

func scanClase(row interface{ Scan(...interface{}) error }, c *models.Clase) error {
	return row.Scan(
		&c.ID, &c.MateriaID, &c.ProfesorID, &c.Anio, &c.DiaSemana,
		&c.HoraInicio, &c.HoraFin, &c.Duracion, &c.CreatedAt, &c.UpdatedAt,
		&c.MateriaNombre, &c.ProfesorNombre,
	)
}

func scanClaseRows(rows *sql.Rows) ([]*models.Clase, error) {
	var clases []*models.Clase
	for rows.Next() {
		c := &models.Clase{}
		if err := scanClase(rows, c); err != nil {
			return nil, err
		}
		clases = append(clases, c)
	}
	return clases, rows.Err()
}

func CreateClase(db *sql.DB, c *models.Clase) error {
	query := `INSERT INTO clases (materia_id, profesor_id, anio, dia_semana, hora_inicio, hora_fin, duracion)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		c.MateriaID, c.ProfesorID, c.Anio, c.DiaSemana, c.HoraInicio, c.HoraFin, c.Duracion,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func GetClaseByID(db *sql.DB, claseID string) (*models.Clase, error) {
	c := &models.Clase{}
	if err := scanClase(db.QueryRow(claseSelect+` WHERE c.id = $1`, claseID), c); err != nil {
		return nil, err
	}
	return c, nil
}

// ClaseFilters narrows GetClases; zero values mean no filter.
type ClaseFilters struct {
	Anio      int
	MateriaID string
	Profesor  string
	DiaSemana string
}

func GetClases(db *sql.DB, f ClaseFilters) ([]*models.Clase, error) {
	query := claseSelect + ` WHERE 1=1`
	var args []interface{}

	if f.Anio != 0 {
		args = append(args, f.Anio)
		query += fmt.Sprintf(" AND c.anio = $%d", len(args))
	}
	if f.MateriaID != "" {
		args = append(args, f.MateriaID)
		query += fmt.Sprintf(" AND c.materia_id = $%d", len(args))
	}
	if f.Profesor != "" {
		args = append(args, f.Profesor)
		query += fmt.Sprintf(" AND c.profesor_id = $%d", len(args))
	}
	if f.DiaSemana != "" {
		args = append(args, f.DiaSemana)
		query += fmt.Sprintf(" AND c.dia_semana = $%d", len(args))
	}
	query += ` ORDER BY c.dia_semana, c.hora_inicio`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClaseRows(rows)
}

// GetClasesByProfesorYDia returns the classes the conflict detector has
// to compare against: same profesor, same weekday, optionally excluding
// the clase being edited.
func GetClasesByProfesorYDia(db *sql.DB, profesorID string, dia models.DiaSemana, excludeID string) ([]*models.Clase, error) {
	query := claseSelect + ` WHERE c.profesor_id = $1 AND c.dia_semana = $2`
	args := []interface{}{profesorID, dia}
	if excludeID != "" {
		query += ` AND c.id != $3`
		args = append(args, excludeID)
	}
	query += ` ORDER BY c.hora_inicio`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClaseRows(rows)
}

func UpdateClase(db *sql.DB, c *models.Clase) error {
	query := `UPDATE clases SET materia_id = $1, profesor_id = $2, anio = $3, dia_semana = $4,
			  hora_inicio = $5, hora_fin = $6, duracion = $7, updated_at = NOW()
			  WHERE id = $8`
	result, err := db.Exec(query,
		c.MateriaID, c.ProfesorID, c.Anio, c.DiaSemana, c.HoraInicio, c.HoraFin, c.Duracion, c.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteClase(db *sql.DB, claseID string) error {
	result, err := db.Exec(`DELETE FROM clases WHERE id = $1`, claseID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountClaseNotas returns how many notas reference the clase. Deleting
// a clase with grade history is forbidden.
func CountClaseNotas(db *sql.DB, claseID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM notas WHERE clase_id = $1`, claseID).Scan(&count)
	return count, err
}
