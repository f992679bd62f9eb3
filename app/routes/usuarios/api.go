package usuarios

import (
	"database/sql"

	"colegio-api/app/config"
	"colegio-api/app/database"
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"
	"colegio-api/app/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Nombre   string  `json:"nombre" validate:"required"`
		Email    string  `json:"email" validate:"required,email"`
		Password string  `json:"password" validate:"required,min=6"`
		Rol      string  `json:"rol" validate:"required,oneof=admin profesor alumno"`
		Anio     *int    `json:"anio" validate:"omitempty,min=1,max=6"`
		Division *string `json:"division" validate:"omitempty,oneof=A B C"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Password: hashedPassword,
		Rol:      models.Rol(req.Rol),
		Anio:     req.Anio,
		Division: req.Division,
	}

	if err := database.CreateUser(config.GetDB(), user); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return c.Status(409).JSON(fiber.Map{"error": "El usuario ya existe"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(201).JSON(fiber.Map{
		"msg":     "Usuario registrado correctamente",
		"usuario": user,
	})
}

func GetUsuariosAPI(c *fiber.Ctx) error {
	users, err := database.GetAllUsers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	return c.JSON(fiber.Map{
		"usuarios": users,
		"total":    len(users),
	})
}

func GetUsuarioAPI(c *fiber.Ctx) error {
	userID := c.Params("id")
	if uuid.Validate(userID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de usuario inválido"})
	}

	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(user)
}

func GetProfesoresAPI(c *fiber.Ctx) error {
	profesores, err := database.GetUsersByRol(config.GetDB(), models.RolProfesor)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch profesores"})
	}

	return c.JSON(fiber.Map{
		"profesores": profesores,
		"total":      len(profesores),
	})
}

func UpdateUsuarioAPI(c *fiber.Ctx) error {
	userID := c.Params("id")
	if uuid.Validate(userID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de usuario inválido"})
	}

	type UpdateRequest struct {
		Nombre   *string `json:"nombre"`
		Email    *string `json:"email" validate:"omitempty,email"`
		Rol      *string `json:"rol" validate:"omitempty,oneof=admin profesor alumno"`
		Anio     *int    `json:"anio" validate:"omitempty,min=1,max=6"`
		Division *string `json:"division" validate:"omitempty,oneof=A B C"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	user, err := database.GetUserByID(db, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	// A rol change is refused while the user still owns teaching
	// assignments; reassign those first.
	if req.Rol != nil && models.Rol(*req.Rol) != user.Rol {
		materias, clases, err := database.CountUserOwnership(db, userID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if materias > 0 || clases > 0 {
			return c.Status(409).JSON(fiber.Map{
				"error":    "No se puede cambiar el rol: el usuario tiene materias o clases asignadas",
				"materias": materias,
				"clases":   clases,
			})
		}
		user.Rol = models.Rol(*req.Rol)
	}

	if req.Nombre != nil {
		user.Nombre = *req.Nombre
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Anio != nil {
		user.Anio = req.Anio
	}
	if req.Division != nil {
		user.Division = req.Division
	}

	if err := database.UpdateUser(db, user); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return c.Status(409).JSON(fiber.Map{"error": "El email ya está en uso"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{
		"msg":     "Usuario actualizado correctamente",
		"usuario": user,
	})
}

func DeleteUsuarioAPI(c *fiber.Ctx) error {
	userID := c.Params("id")
	if uuid.Validate(userID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de usuario inválido"})
	}

	db := config.GetDB()
	materias, clases, err := database.CountUserOwnership(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if materias > 0 || clases > 0 {
		return c.Status(409).JSON(fiber.Map{
			"error":    "No se puede eliminar: el usuario tiene materias o clases asignadas",
			"materias": materias,
			"clases":   clases,
		})
	}

	if err := database.DeleteUser(db, userID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.JSON(fiber.Map{"msg": "Usuario eliminado correctamente"})
}
