package models

import "time"

type User struct {
	ID        string    `json:"id" db:"id"`
	Nombre    string    `json:"nombre" db:"nombre" validate:"required"`
	Email     string    `json:"email" db:"email" validate:"required,email"`
	Password  string    `json:"-" db:"password"`
	Rol       Rol       `json:"rol" db:"rol"`
	Anio      *int      `json:"anio,omitempty" db:"anio" validate:"omitempty,min=1,max=6"`
	Division  *string   `json:"division,omitempty" db:"division" validate:"omitempty,oneof=A B C"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
