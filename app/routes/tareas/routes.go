package tareas

import (
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"
	"colegio-api/app/storage"

	"github.com/gofiber/fiber/v2"
)

var archivos *storage.Store

func SetupTareasRoutes(app *fiber.App, store *storage.Store) {
	archivos = store

	api := app.Group("/api/tareas")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RoleMiddleware(models.RolProfesor), CreateTareaAPI)
	api.Get("/materia/:materiaId", GetTareasPorMateriaAPI)
	api.Get("/profesor", auth.RoleMiddleware(models.RolProfesor), GetTareasDelProfesorAPI)
	api.Get("/:id/archivo", GetArchivoTareaAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RolProfesor), UpdateTareaAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RolProfesor), DeleteTareaAPI)
}
