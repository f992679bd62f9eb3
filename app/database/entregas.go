package database

import (
	"database/sql"

	"colegio-api/app/models"
)

const entregaSelect = `SELECT e.id, e.tarea_id, e.alumno_id, e.archivo, e.comentario, e.fecha_entrega,
			  e.nota, e.comentario_profe, e.fecha_correccion, e.created_at, e.updated_at,
			  u.nombre, u.email, t.titulo
			  FROM entregas e
			  JOIN users u ON e.alumno_id = u.id
			  JOIN tareas t ON e.tarea_id = t.id`

func scanEntrega(row interface{ Scan(...interface{}) error }, e *models.Entrega) error {
	return row.Scan(
		&e.ID, &e.TareaID, &e.AlumnoID, &e.Archivo, &e.Comentario, &e.FechaEntrega,
		&e.Nota, &e.ComentarioProfe, &e.FechaCorreccion, &e.CreatedAt, &e.UpdatedAt,
		&e.AlumnoNombre, &e.AlumnoEmail, &e.TareaTitulo,
	)
}

func CreateEntrega(db *sql.DB, e *models.Entrega) error {
	query := `INSERT INTO entregas (tarea_id, alumno_id, archivo, comentario)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, fecha_entrega, created_at, updated_at`
	return db.QueryRow(query, e.TareaID, e.AlumnoID, e.Archivo, e.Comentario).
		Scan(&e.ID, &e.FechaEntrega, &e.CreatedAt, &e.UpdatedAt)
}

// EntregaExists reports whether the alumno already submitted the tarea.
// The unique index on (tarea_id, alumno_id) backs this check against
// concurrent first submissions.
func EntregaExists(db *sql.DB, tareaID, alumnoID string) (bool, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM entregas WHERE tarea_id = $1 AND alumno_id = $2`,
		tareaID, alumnoID,
	).Scan(&count)
	return count > 0, err
}

func GetEntregaByID(db *sql.DB, entregaID string) (*models.Entrega, error) {
	e := &models.Entrega{}
	if err := scanEntrega(db.QueryRow(entregaSelect+` WHERE e.id = $1`, entregaID), e); err != nil {
		return nil, err
	}
	return e, nil
}

func GetEntregasByTarea(db *sql.DB, tareaID string) ([]*models.Entrega, error) {
	rows, err := db.Query(entregaSelect+` WHERE e.tarea_id = $1 ORDER BY e.fecha_entrega DESC`, tareaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntregaRows(rows)
}

func GetEntregasByAlumno(db *sql.DB, alumnoID string) ([]*models.Entrega, error) {
	rows, err := db.Query(entregaSelect+` WHERE e.alumno_id = $1 ORDER BY e.fecha_entrega DESC`, alumnoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntregaRows(rows)
}

func scanEntregaRows(rows *sql.Rows) ([]*models.Entrega, error) {
	var entregas []*models.Entrega
	for rows.Next() {
		e := &models.Entrega{}
		if err := scanEntrega(rows, e); err != nil {
			return nil, err
		}
		entregas = append(entregas, e)
	}
	return entregas, rows.Err()
}

// CorregirEntrega writes the profesor's grade and comment.
func CorregirEntrega(db *sql.DB, entregaID string, nota *float64, comentarioProfe *string) error {
	query := `UPDATE entregas SET nota = COALESCE($1, nota),
			  comentario_profe = COALESCE($2, comentario_profe),
			  fecha_correccion = NOW(), updated_at = NOW()
			  WHERE id = $3`
	result, err := db.Exec(query, nota, comentarioProfe, entregaID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
