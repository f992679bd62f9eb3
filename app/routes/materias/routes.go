package materias

import (
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupMateriasRoutes(app *fiber.App) {
	api := app.Group("/api/materias")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.RoleMiddleware(models.RolAdmin, models.RolProfesor), GetMateriasAPI)
	api.Post("/", auth.RoleMiddleware(models.RolAdmin), CreateMateriaAPI)

	api.Get("/profesor", auth.RoleMiddleware(models.RolProfesor), GetMateriasDelProfesorAPI)
	api.Get("/anio/:anio", auth.RoleMiddleware(models.RolAlumno), GetMateriasPorAnioAPI)
	api.Get("/alumno/:id", GetMateriasPorAlumnoAPI)

	api.Get("/:id", GetMateriaAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RolAdmin), UpdateMateriaAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RolAdmin), DeleteMateriaAPI)

	api.Get("/:id/alumnos", auth.RoleMiddleware(models.RolAdmin, models.RolProfesor), GetAlumnosMateriaAPI)
	api.Post("/:id/inscripcion", auth.RoleMiddleware(models.RolAlumno), InscribirseAPI)
	api.Delete("/:id/inscripcion", auth.RoleMiddleware(models.RolAlumno), BajarseAPI)
}
