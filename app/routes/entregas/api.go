package entregas

import (
	"database/sql"

	"colegio-api/app/config"
	"colegio-api/app/database"
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"
	"colegio-api/app/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

func CreateEntregaAPI(c *fiber.Ctx) error {
	tareaID := c.FormValue("tarea")
	comentario := c.FormValue("comentario")

	if uuid.Validate(tareaID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de tarea inválido"})
	}

	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "El archivo es requerido"})
	}

	db := config.GetDB()
	if _, err := database.GetTareaByID(db, tareaID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Tarea no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	alumnoID := auth.UserID(c)
	existe, err := database.EntregaExists(db, tareaID, alumnoID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if existe {
		return c.Status(409).JSON(fiber.Map{"error": "Ya entregaste esta tarea"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to read archivo"})
	}
	defer f.Close()

	objectName, err := archivos.Upload(c.Context(), "entregas", fileHeader.Filename,
		f, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to upload archivo"})
	}

	entrega := &models.Entrega{
		TareaID:  tareaID,
		AlumnoID: alumnoID,
		Archivo:  objectName,
	}
	if comentario != "" {
		entrega.Comentario = &comentario
	}

	if err := database.CreateEntrega(db, entrega); err != nil {
		// Nothing references the object once the insert fails.
		_ = archivos.Remove(c.Context(), objectName)
		// Two alumnos racing past the existence check hit the unique
		// constraint; the second one loses here.
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return c.Status(409).JSON(fiber.Map{"error": "Ya entregaste esta tarea"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create entrega"})
	}

	return c.Status(201).JSON(fiber.Map{
		"msg":     "Entrega realizada con éxito",
		"entrega": entrega,
	})
}

func GetMisEntregasAPI(c *fiber.Ctx) error {
	entregas, err := database.GetEntregasByAlumno(config.GetDB(), auth.UserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch entregas"})
	}

	return c.JSON(fiber.Map{
		"entregas": entregas,
		"total":    len(entregas),
	})
}

func GetEntregasPorTareaAPI(c *fiber.Ctx) error {
	tareaID := c.Params("tareaId")
	if uuid.Validate(tareaID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de tarea inválido"})
	}

	db := config.GetDB()
	tarea, err := database.GetTareaByID(db, tareaID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Tarea no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !auth.IsAdmin(c) && tarea.ProfesorID != auth.UserID(c) {
		return c.Status(403).JSON(fiber.Map{"error": "No tienes acceso a esta tarea"})
	}

	entregas, err := database.GetEntregasByTarea(db, tareaID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch entregas"})
	}

	return c.JSON(fiber.Map{
		"entregas": entregas,
		"total":    len(entregas),
	})
}

type correccionRequest struct {
	Nota            *float64 `json:"nota" validate:"required,min=1,max=10"`
	ComentarioProfe *string  `json:"comentarioProfe"`
}

func CorregirEntregaAPI(c *fiber.Ctx) error {
	entregaID := c.Params("id")
	if uuid.Validate(entregaID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de entrega inválido"})
	}

	var req correccionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	entrega, err := database.GetEntregaByID(db, entregaID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Entrega no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !auth.IsAdmin(c) {
		tarea, err := database.GetTareaByID(db, entrega.TareaID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if tarea.ProfesorID != auth.UserID(c) {
			return c.Status(403).JSON(fiber.Map{"error": "No tienes acceso a esta entrega"})
		}
	}

	if err := database.CorregirEntrega(db, entregaID, req.Nota, req.ComentarioProfe); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update entrega"})
	}

	entrega, err = database.GetEntregaByID(db, entregaID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"msg":     "Entrega corregida",
		"entrega": entrega,
	})
}

func GetArchivoEntregaAPI(c *fiber.Ctx) error {
	entregaID := c.Params("id")
	if uuid.Validate(entregaID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de entrega inválido"})
	}

	db := config.GetDB()
	entrega, err := database.GetEntregaByID(db, entregaID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Entrega no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	// Owner alumno, owning profesor or admin.
	switch auth.UserRol(c) {
	case models.RolAdmin:
	case models.RolAlumno:
		if entrega.AlumnoID != auth.UserID(c) {
			return c.Status(403).JSON(fiber.Map{"error": "Acceso denegado"})
		}
	case models.RolProfesor:
		tarea, err := database.GetTareaByID(db, entrega.TareaID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if tarea.ProfesorID != auth.UserID(c) {
			return c.Status(403).JSON(fiber.Map{"error": "Acceso denegado"})
		}
	}

	url, err := archivos.PresignedURL(c.Context(), entrega.Archivo)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate download URL"})
	}

	return c.JSON(fiber.Map{"url": url})
}
