package anuncios

import (
	"database/sql"

	"colegio-api/app/config"
	"colegio-api/app/database"
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"
	"colegio-api/app/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func CreateAnuncioAPI(c *fiber.Ctx) error {
	var anuncio models.Anuncio
	if err := c.BodyParser(&anuncio); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(&anuncio); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	materia, err := database.GetMateriaByID(db, anuncio.MateriaID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Materia no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if materia.Profesor == nil || *materia.Profesor != auth.UserID(c) {
		return c.Status(403).JSON(fiber.Map{"error": "No puedes publicar anuncios en esta materia"})
	}

	anuncio.ProfesorID = auth.UserID(c)
	if err := database.CreateAnuncio(db, &anuncio); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create anuncio"})
	}

	return c.Status(201).JSON(fiber.Map{
		"msg":     "Anuncio publicado",
		"anuncio": anuncio,
	})
}

func GetAnunciosProfesorAPI(c *fiber.Ctx) error {
	anuncios, err := database.GetAnunciosByProfesor(config.GetDB(), auth.UserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch anuncios"})
	}

	return c.JSON(fiber.Map{
		"anuncios": anuncios,
		"total":    len(anuncios),
	})
}

func GetAnunciosAlumnoAPI(c *fiber.Ctx) error {
	anuncios, err := database.GetAnunciosByAlumno(config.GetDB(), auth.UserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch anuncios"})
	}

	return c.JSON(fiber.Map{
		"anuncios": anuncios,
		"total":    len(anuncios),
	})
}

// cargarAnuncioPropio loads the anuncio and rejects anyone but its
// creating profesor.
func cargarAnuncioPropio(c *fiber.Ctx) (*models.Anuncio, *fiber.Error) {
	anuncioID := c.Params("id")
	if uuid.Validate(anuncioID) != nil {
		return nil, fiber.NewError(400, "ID de anuncio inválido")
	}

	anuncio, err := database.GetAnuncioByID(config.GetDB(), anuncioID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fiber.NewError(404, "Anuncio no encontrado")
		}
		return nil, fiber.NewError(500, "Database error")
	}
	if anuncio.ProfesorID != auth.UserID(c) {
		return nil, fiber.NewError(403, "Solo el creador puede modificar este anuncio")
	}
	return anuncio, nil
}

func UpdateAnuncioAPI(c *fiber.Ctx) error {
	anuncio, ferr := cargarAnuncioPropio(c)
	if ferr != nil {
		return c.Status(ferr.Code).JSON(fiber.Map{"error": ferr.Message})
	}

	var req struct {
		Titulo  string `json:"titulo"`
		Mensaje string `json:"mensaje"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Titulo != "" {
		anuncio.Titulo = req.Titulo
	}
	if req.Mensaje != "" {
		anuncio.Mensaje = req.Mensaje
	}

	if err := database.UpdateAnuncio(config.GetDB(), anuncio); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update anuncio"})
	}

	return c.JSON(fiber.Map{
		"msg":     "Anuncio actualizado",
		"anuncio": anuncio,
	})
}

func DeleteAnuncioAPI(c *fiber.Ctx) error {
	anuncio, ferr := cargarAnuncioPropio(c)
	if ferr != nil {
		return c.Status(ferr.Code).JSON(fiber.Map{"error": ferr.Message})
	}

	if err := database.DeleteAnuncio(config.GetDB(), anuncio.ID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete anuncio"})
	}

	return c.JSON(fiber.Map{"msg": "Anuncio eliminado correctamente"})
}
