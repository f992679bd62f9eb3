package calificaciones

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

type calificacionRequest struct {
	Materia     string  `json:"materia" validate:"required,uuid"`
	Alumno      string  `json:"alumno" validate:"required,uuid"`
	Descripcion string  `json:"descripcion" validate:"required"`
	Nota        float64 `json:"nota" validate:"required,min=1,max=10"`
}

func CreateCalificacionAPI(c *fiber.Ctx) error {
	var req calificacionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	materia, err := database.GetMateriaByID(db, req.Materia)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Materia no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	profesorID := auth.UserID(c)
	if materia.Profesor == nil || *materia.Profesor != profesorID {
		return c.Status(403).JSON(fiber.Map{"error": "No tienes acceso a esta materia"})
	}

	inscripto, err := database.IsAlumnoInscripto(db, req.Materia, req.Alumno)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !inscripto {
		return c.Status(400).JSON(fiber.Map{"error": "El alumno no está inscripto"})
	}

	calificacion := &models.Calificacion{
		MateriaID:   req.Materia,
		AlumnoID:    req.Alumno,
		ProfesorID:  profesorID,
		Descripcion: req.Descripcion,
		Nota:        req.Nota,
	}
	if err := database.CreateCalificacion(db, calificacion); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create calificación"})
	}

	return c.Status(201).JSON(fiber.Map{
		"msg":          "Calificación creada",
		"calificacion": calificacion,
	})
}

func GetCalificacionesPorMateriaAPI(c *fiber.Ctx) error {
	materiaID := c.Params("materiaId")
	if uuid.Validate(materiaID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de materia inválido"})
	}

	db := config.GetDB()
	materia, err := database.GetMateriaByID(db, materiaID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Materia no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !auth.IsAdmin(c) && (materia.Profesor == nil || *materia.Profesor != auth.UserID(c)) {
		return c.Status(403).JSON(fiber.Map{"error": "No tienes acceso a esta materia"})
	}

	calificaciones, err := database.GetCalificacionesByMateria(db, materiaID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch calificaciones"})
	}

	return c.JSON(fiber.Map{
		"calificaciones": calificaciones,
		"total":          len(calificaciones),
	})
}

func GetMisCalificacionesAPI(c *fiber.Ctx) error {
	calificaciones, err := database.GetCalificacionesByAlumno(config.GetDB(), auth.UserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch calificaciones"})
	}

	return c.JSON(fiber.Map{
		"calificaciones": calificaciones,
		"total":          len(calificaciones),
	})
}

// cargarCalificacionPropia loads the calificación and rejects
// profesores that don't teach its materia. Admins pass through.
func cargarCalificacionPropia(c *fiber.Ctx) (*models.Calificacion, *fiber.Error) {
	calificacionID := c.Params("id")
	if uuid.Validate(calificacionID) != nil {
		return nil, fiber.NewError(400, "ID de calificación inválido")
	}

	db := config.GetDB()
	calificacion, err := database.GetCalificacionByID(db, calificacionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fiber.NewError(404, "Calificación no encontrada")
		}
		return nil, fiber.NewError(500, "Database error")
	}

	if !auth.IsAdmin(c) {
		materia, err := database.GetMateriaByID(db, calificacion.MateriaID)
		if err != nil {
			return nil, fiber.NewError(500, "Database error")
		}
		if materia.Profesor == nil || *materia.Profesor != auth.UserID(c) {
			return nil, fiber.NewError(403, "Acceso denegado")
		}
	}
	return calificacion, nil
}

func UpdateCalificacionAPI(c *fiber.Ctx) error {
	calificacion, ferr := cargarCalificacionPropia(c)
	if ferr != nil {
		return c.Status(ferr.Code).JSON(fiber.Map{"error": ferr.Message})
	}

	type UpdateRequest struct {
		Nota float64 `json:"nota" validate:"required,min=1,max=10"`
	}
	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateCalificacionNota(config.GetDB(), calificacion.ID, req.Nota); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update calificación"})
	}
	calificacion.Nota = req.Nota

	return c.JSON(fiber.Map{
		"msg":          "Calificación actualizada",
		"calificacion": calificacion,
	})
}

func DeleteCalificacionAPI(c *fiber.Ctx) error {
	calificacion, ferr := cargarCalificacionPropia(c)
	if ferr != nil {
		return c.Status(ferr.Code).JSON(fiber.Map{"error": ferr.Message})
	}

	if err := database.DeleteCalificacion(config.GetDB(), calificacion.ID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete calificación"})
	}

	return c.JSON(fiber.Map{"msg": "Calificación eliminada"})
}
