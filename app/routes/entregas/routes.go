package entregas

import (
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"
	"colegio-api/app/storage"

	"github.com/gofiber/fiber/v2"
)

var archivos *storage.Store

func SetupEntregasRoutes(app *fiber.App, store *storage.Store) {
	archivos = store

	api := app.Group("/api/entregas")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RoleMiddleware(models.RolAlumno), CreateEntregaAPI)
	api.Get("/mias", auth.RoleMiddleware(models.RolAlumno), GetMisEntregasAPI)
	api.Get("/tarea/:tareaId", auth.RoleMiddleware(models.RolProfesor, models.RolAdmin), GetEntregasPorTareaAPI)
	api.Get("/:id/archivo", GetArchivoEntregaAPI)
	api.Put("/:id/correccion", auth.RoleMiddleware(models.RolProfesor, models.RolAdmin), CorregirEntregaAPI)
}
