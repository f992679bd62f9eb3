package auth

import (
	"database/sql"

	"colegio-api/app/config"
	"colegio-api/app/database"

	"github.com/gofiber/fiber/v2"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email y password son requeridos"})
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Contraseña incorrecta"})
	}

	token, err := GenerateJWT(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"msg":   "Login exitoso",
		"user":  user,
		"token": token,
	})
}

// VerificarAPI echoes the decoded claims so the SPA can restore a
// session from a stored token.
func VerificarAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"id":     c.Locals("user_id"),
		"rol":    c.Locals("user_rol"),
		"nombre": c.Locals("user_nombre"),
	})
}
