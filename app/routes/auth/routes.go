package auth

import (
	"strings"

	"colegio-api/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/login", LoginAPI)

	auth.Use(AuthMiddleware)
	auth.Get("/verificar", VerificarAPI)
}

// AuthMiddleware validates the bearer token and sets the user context.
func AuthMiddleware(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return c.Status(401).JSON(fiber.Map{"error": "Token faltante"})
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Token inválido o expirado"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("user_rol", claims.Rol)
	c.Locals("user_nombre", claims.Nombre)

	return c.Next()
}

// RoleMiddleware rejects requests whose rol is not in the allowed set.
func RoleMiddleware(allowedRoles ...models.Rol) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := c.Locals("user_rol").(models.Rol)

		for _, allowed := range allowedRoles {
			if rol == allowed {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"error": "Acceso denegado: rol no autorizado"})
	}
}

// UserID returns the authenticated user's id from the request context.
func UserID(c *fiber.Ctx) string {
	return c.Locals("user_id").(string)
}

// UserRol returns the authenticated user's rol from the request context.
func UserRol(c *fiber.Ctx) models.Rol {
	return c.Locals("user_rol").(models.Rol)
}

// IsAdmin reports whether the request was made by an admin.
func IsAdmin(c *fiber.Ctx) bool {
	return UserRol(c) == models.RolAdmin
}
