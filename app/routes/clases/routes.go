package clases

import (
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupClasesRoutes(app *fiber.App) {
	api := app.Group("/api/clases")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.RoleMiddleware(models.RolAdmin), GetClasesAPI)
	api.Post("/", auth.RoleMiddleware(models.RolAdmin), CreateClaseAPI)
	api.Get("/profesor", auth.RoleMiddleware(models.RolProfesor), GetClasesDelProfesorAPI)
	api.Get("/:id", GetClaseAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RolAdmin), UpdateClaseAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RolAdmin), DeleteClaseAPI)
}
