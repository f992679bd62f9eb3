package database

import (
	"database/sql"

	"colegio-api/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, nombre, email, password, rol, anio, division, created_at, updated_at
			  FROM users WHERE email = $1`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Nombre, &user.Email, &user.Password, &user.Rol,
		&user.Anio, &user.Division, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, nombre, email, password, rol, anio, division, created_at, updated_at
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Nombre, &user.Email, &user.Password, &user.Rol,
		&user.Anio, &user.Division, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (nombre, email, password, rol, anio, division)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		user.Nombre, user.Email, user.Password, user.Rol, user.Anio, user.Division,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func GetAllUsers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT id, nombre, email, rol, anio, division, created_at, updated_at
			  FROM users ORDER BY nombre`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Nombre, &user.Email, &user.Rol,
			&user.Anio, &user.Division, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func GetUsersByRol(db *sql.DB, rol models.Rol) ([]*models.User, error) {
	query := `SELECT id, nombre, email, rol, anio, division, created_at, updated_at
			  FROM users WHERE rol = $1 ORDER BY nombre`

	rows, err := db.Query(query, rol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Nombre, &user.Email, &user.Rol,
			&user.Anio, &user.Division, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func UpdateUser(db *sql.DB, user *models.User) error {
	query := `UPDATE users SET nombre = $1, email = $2, rol = $3, anio = $4, division = $5, updated_at = NOW()
			  WHERE id = $6`
	result, err := db.Exec(query, user.Nombre, user.Email, user.Rol, user.Anio, user.Division, user.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteUser(db *sql.DB, userID string) error {
	result, err := db.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountUserOwnership returns how many materias and clases list the user
// as profesor. Used to block deletes and rol changes that would orphan
// teaching assignments.
func CountUserOwnership(db *sql.DB, userID string) (materias, clases int, err error) {
	err = db.QueryRow(
		`SELECT
			(SELECT COUNT(*) FROM materias WHERE profesor_id = $1),
			(SELECT COUNT(*) FROM clases WHERE profesor_id = $1)`,
		userID,
	).Scan(&materias, &clases)
	return materias, clases, err
}
