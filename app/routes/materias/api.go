package materias

import (
	"database/sql"
	"strconv"

	"colegio-api/app/config"
	"colegio-api/app/database"
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"
	"colegio-api/app/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func CreateMateriaAPI(c *fiber.Ctx) error {
	type MateriaRequest struct {
		Nombre   string  `json:"nombre" validate:"required"`
		Anio     int     `json:"anio" validate:"required,min=1,max=6"`
		Profesor *string `json:"profesor" validate:"omitempty,uuid"`
	}

	var req MateriaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()

	if req.Profesor != nil {
		profesor, err := database.GetUserByID(db, *req.Profesor)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(404).JSON(fiber.Map{"error": "Profesor no encontrado"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if profesor.Rol != models.RolProfesor {
			return c.Status(400).JSON(fiber.Map{"error": "El usuario seleccionado no es un profesor"})
		}
	}

	exists, err := database.MateriaExists(db, req.Nombre, req.Anio, "")
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if exists {
		return c.Status(409).JSON(fiber.Map{"error": "La materia ya existe para ese año"})
	}

	materia := &models.Materia{
		Nombre:   req.Nombre,
		Anio:     req.Anio,
		Profesor: req.Profesor,
	}
	if err := database.CreateMateria(db, materia); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create materia"})
	}

	return c.Status(201).JSON(fiber.Map{
		"msg":     "Materia creada correctamente",
		"materia": materia,
	})
}

func GetMateriasAPI(c *fiber.Ctx) error {
	materias, err := database.GetAllMaterias(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch materias"})
	}

	return c.JSON(fiber.Map{
		"materias": materias,
		"total":    len(materias),
	})
}

func GetMateriaAPI(c *fiber.Ctx) error {
	materiaID := c.Params("id")
	if uuid.Validate(materiaID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de materia inválido"})
	}

	materia, err := database.GetMateriaByID(config.GetDB(), materiaID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Materia no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(materia)
}

func GetMateriasPorAnioAPI(c *fiber.Ctx) error {
	anio, err := strconv.Atoi(c.Params("anio"))
	if err != nil || anio < 1 || anio > 6 {
		return c.Status(400).JSON(fiber.Map{"error": "Año inválido"})
	}

	materias, err := database.GetMateriasByAnio(config.GetDB(), anio)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch materias"})
	}

	return c.JSON(fiber.Map{
		"materias": materias,
		"total":    len(materias),
	})
}

func GetMateriasDelProfesorAPI(c *fiber.Ctx) error {
	materias, err := database.GetMateriasByProfesor(config.GetDB(), auth.UserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch materias"})
	}

	return c.JSON(fiber.Map{
		"materias": materias,
		"total":    len(materias),
	})
}

func GetMateriasPorAlumnoAPI(c *fiber.Ctx) error {
	alumnoID := c.Params("id")
	if uuid.Validate(alumnoID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de alumno inválido"})
	}

	// Alumnos can only list their own materias.
	if auth.UserRol(c) == models.RolAlumno && alumnoID != auth.UserID(c) {
		return c.Status(403).JSON(fiber.Map{"error": "Acceso denegado"})
	}

	materias, err := database.GetMateriasByAlumno(config.GetDB(), alumnoID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch materias"})
	}

	return c.JSON(fiber.Map{
		"materias": materias,
		"total":    len(materias),
	})
}

func UpdateMateriaAPI(c *fiber.Ctx) error {
	materiaID := c.Params("id")
	if uuid.Validate(materiaID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de materia inválido"})
	}

	type UpdateRequest struct {
		Nombre   *string `json:"nombre"`
		Anio     *int    `json:"anio" validate:"omitempty,min=1,max=6"`
		Profesor *string `json:"profesor" validate:"omitempty,uuid"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	materia, err := database.GetMateriaByID(db, materiaID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Materia no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if req.Nombre != nil {
		materia.Nombre = *req.Nombre
	}
	if req.Anio != nil {
		materia.Anio = *req.Anio
	}
	if req.Profesor != nil {
		profesor, err := database.GetUserByID(db, *req.Profesor)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(404).JSON(fiber.Map{"error": "Profesor no encontrado"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if profesor.Rol != models.RolProfesor {
			return c.Status(400).JSON(fiber.Map{"error": "El usuario seleccionado no es un profesor"})
		}
		materia.Profesor = req.Profesor
	}

	// The (nombre, anio) pair stays unique through renames too.
	if req.Nombre != nil || req.Anio != nil {
		exists, err := database.MateriaExists(db, materia.Nombre, materia.Anio, materiaID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if exists {
			return c.Status(409).JSON(fiber.Map{"error": "La materia ya existe para ese año"})
		}
	}

	if err := database.UpdateMateria(db, materia); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update materia"})
	}

	return c.JSON(fiber.Map{
		"msg":     "Materia actualizada",
		"materia": materia,
	})
}

func DeleteMateriaAPI(c *fiber.Ctx) error {
	materiaID := c.Params("id")
	if uuid.Validate(materiaID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de materia inválido"})
	}

	db := config.GetDB()
	clases, tareas, err := database.CountMateriaDependents(db, materiaID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if clases > 0 || tareas > 0 {
		return c.Status(409).JSON(fiber.Map{
			"error":  "No se puede eliminar: la materia tiene clases o tareas asociadas",
			"clases": clases,
			"tareas": tareas,
		})
	}

	if err := database.DeleteMateria(db, materiaID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Materia no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete materia"})
	}

	return c.JSON(fiber.Map{"msg": "Materia eliminada con éxito"})
}

func GetAlumnosMateriaAPI(c *fiber.Ctx) error {
	materiaID := c.Params("id")
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

	// Only the assigned profesor or an admin may see the roster.
	if !auth.IsAdmin(c) {
		if materia.Profesor == nil || *materia.Profesor != auth.UserID(c) {
			return c.Status(403).JSON(fiber.Map{"error": "Acceso denegado"})
		}
	}

	alumnos, err := database.GetAlumnosByMateria(db, materiaID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch alumnos"})
	}

	return c.JSON(fiber.Map{
		"alumnos": alumnos,
		"total":   len(alumnos),
	})
}

func InscribirseAPI(c *fiber.Ctx) error {
	materiaID := c.Params("id")
	if uuid.Validate(materiaID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de materia inválido"})
	}
	alumnoID := auth.UserID(c)

	db := config.GetDB()
	if _, err := database.GetMateriaByID(db, materiaID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Materia no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	inscripto, err := database.IsAlumnoInscripto(db, materiaID, alumnoID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if inscripto {
		return c.Status(409).JSON(fiber.Map{"error": "Ya estás inscripto en esta materia"})
	}

	if err := database.InscribirAlumno(db, materiaID, alumnoID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al inscribirse"})
	}

	return c.JSON(fiber.Map{"msg": "Inscripción exitosa"})
}

func BajarseAPI(c *fiber.Ctx) error {
	materiaID := c.Params("id")
	if uuid.Validate(materiaID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de materia inválido"})
	}

	err := database.BajarAlumno(config.GetDB(), materiaID, auth.UserID(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "No estás inscripto en esta materia"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error al darse de baja"})
	}

	return c.JSON(fiber.Map{"msg": "Baja exitosa"})
}
