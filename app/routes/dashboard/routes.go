package dashboard

import (
	"time"

	"colegio-api/app/config"
	"colegio-api/app/database"
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"

	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"
)

// The resumen runs several aggregate queries; cache it briefly so the
// admin panel polling doesn't hammer the database.
var resumenCache = gocache.New(60*time.Second, 5*time.Minute)

const resumenKey = "resumen"

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/resumen", auth.RoleMiddleware(models.RolAdmin), GetResumenAPI)
}

func GetResumenAPI(c *fiber.Ctx) error {
	if cached, ok := resumenCache.Get(resumenKey); ok {
		return c.JSON(fiber.Map{"resumen": cached, "cached": true})
	}

	hoy := models.NormalizarFecha(time.Now())
	resumen, err := database.GetResumen(config.GetDB(), hoy)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build resumen"})
	}
	resumenCache.Set(resumenKey, resumen, gocache.DefaultExpiration)

	return c.JSON(fiber.Map{"resumen": resumen, "cached": false})
}
