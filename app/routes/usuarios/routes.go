package usuarios

import (
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupUsuariosRoutes(app *fiber.App) {
	api := app.Group("/api/usuarios")

	api.Post("/register", RegisterAPI)

	api.Use(auth.AuthMiddleware)
	api.Get("/profesores", auth.RoleMiddleware(models.RolAdmin), GetProfesoresAPI)
	api.Get("/", auth.RoleMiddleware(models.RolAdmin), GetUsuariosAPI)
	api.Get("/:id", auth.RoleMiddleware(models.RolAdmin), GetUsuarioAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RolAdmin), UpdateUsuarioAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RolAdmin), DeleteUsuarioAPI)
}
