package main

import (
	"context"
	"log"

	"colegio-api/app/config"
	"colegio-api/app/database"
	"colegio-api/app/routes/anuncios"
	"colegio-api/app/routes/asistencias"
	"colegio-api/app/routes/auth"
	"colegio-api/app/routes/calificaciones"
	"colegio-api/app/routes/clases"
	"colegio-api/app/routes/dashboard"
	"colegio-api/app/routes/entregas"
	"colegio-api/app/routes/materias"
	"colegio-api/app/routes/notas"
	"colegio-api/app/routes/tareas"
	"colegio-api/app/routes/usuarios"
	"colegio-api/app/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func main() {
	config.Load()

	db := config.GetDB()
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	store, err := storage.Init(context.Background(), config.AppConfig.Minio)
	if err != nil {
		log.Fatalf("Storage init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "colegio-api",
		ErrorHandler: errorHandler,
		BodyLimit:    20 * 1024 * 1024,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.Origen,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "colegio-api"})
	})

	auth.SetupAuthRoutes(app)
	usuarios.SetupUsuariosRoutes(app)
	materias.SetupMateriasRoutes(app)
	clases.SetupClasesRoutes(app)
	tareas.SetupTareasRoutes(app, store)
	entregas.SetupEntregasRoutes(app, store)
	notas.SetupNotasRoutes(app)
	calificaciones.SetupCalificacionesRoutes(app)
	asistencias.SetupAsistenciasRoutes(app)
	anuncios.SetupAnunciosRoutes(app)
	dashboard.SetupDashboardRoutes(app)

	log.Printf("colegio-api listening on :%s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
