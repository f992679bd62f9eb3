package database

import (
	"database/sql"

	"colegio-api/app/models"
)

func CreateTarea(db *sql.DB, t *models.Tarea) error {
	query := `INSERT INTO tareas (titulo, descripcion, fecha_entrega, materia_id, profesor_id, archivo)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		t.Titulo, t.Descripcion, t.FechaEntrega, t.MateriaID, t.ProfesorID, t.Archivo,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func GetTareaByID(db *sql.DB, tareaID string) (*models.Tarea, error) {
	t := &models.Tarea{}
	query := `SELECT id, titulo, descripcion, fecha_entrega, materia_id, profesor_id, archivo, created_at, updated_at
			  FROM tareas WHERE id = $1`
	err := db.QueryRow(query, tareaID).Scan(
		&t.ID, &t.Titulo, &t.Descripcion, &t.FechaEntrega,
		&t.MateriaID, &t.ProfesorID, &t.Archivo, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func GetTareasByMateria(db *sql.DB, materiaID string) ([]*models.Tarea, error) {
	query := `SELECT id, titulo, descripcion, fecha_entrega, materia_id, profesor_id, archivo, created_at, updated_at
			  FROM tareas WHERE materia_id = $1 ORDER BY fecha_entrega`

	rows, err := db.Query(query, materiaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tareas []*models.Tarea
	for rows.Next() {
		t := &models.Tarea{}
		if err := rows.Scan(
			&t.ID, &t.Titulo, &t.Descripcion, &t.FechaEntrega,
			&t.MateriaID, &t.ProfesorID, &t.Archivo, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tareas = append(tareas, t)
	}
	return tareas, rows.Err()
}

func GetTareasByProfesor(db *sql.DB, profesorID string) ([]*models.Tarea, error) {
	query := `SELECT id, titulo, descripcion, fecha_entrega, materia_id, profesor_id, archivo, created_at, updated_at
			  FROM tareas WHERE profesor_id = $1 ORDER BY fecha_entrega`

	rows, err := db.Query(query, profesorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tareas []*models.Tarea
	for rows.Next() {
		t := &models.Tarea{}
		if err := rows.Scan(
			&t.ID, &t.Titulo, &t.Descripcion, &t.FechaEntrega,
			&t.MateriaID, &t.ProfesorID, &t.Archivo, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tareas = append(tareas, t)
	}
	return tareas, rows.Err()
}

func UpdateTarea(db *sql.DB, t *models.Tarea) error {
	query := `UPDATE tareas SET titulo = $1, descripcion = $2, fecha_entrega = $3, archivo = $4, updated_at = NOW()
			  WHERE id = $5`
	result, err := db.Exec(query, t.Titulo, t.Descripcion, t.FechaEntrega, t.Archivo, t.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteTarea(db *sql.DB, tareaID string) error {
	result, err := db.Exec(`DELETE FROM tareas WHERE id = $1`, tareaID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountTareaEntregas returns how many entregas reference the tarea.
func CountTareaEntregas(db *sql.DB, tareaID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM entregas WHERE tarea_id = $1`, tareaID).Scan(&count)
	return count, err
}
