package clases

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

type claseRequest struct {
	Materia    string `json:"materia" validate:"required,uuid"`
	Profesor   string `json:"profesor" validate:"required,uuid"`
	Anio       int    `json:"anio" validate:"required,min=1,max=6"`
	DiaSemana  string `json:"diaSemana" validate:"required"`
	HoraInicio string `json:"horaInicio" validate:"required"`
	HoraFin    string `json:"horaFin" validate:"required"`
}

// validarHorario checks day and time fields and returns the slot in
// minutes. Interval ordering is a plain validation error, reported
// before any conflict search runs.
func validarHorario(dia, horaInicio, horaFin string) (inicio, fin int, err error) {
	if !models.ValidDiaSemana(dia) {
		return 0, 0, fiber.NewError(400, "El día de la semana no es válido")
	}
	inicio, err = ParseHora(horaInicio)
	if err != nil {
		return 0, 0, fiber.NewError(400, "Hora de inicio inválida: "+err.Error())
	}
	fin, err = ParseHora(horaFin)
	if err != nil {
		return 0, 0, fiber.NewError(400, "Hora de fin inválida: "+err.Error())
	}
	if inicio >= fin {
		return 0, 0, fiber.NewError(400, "La hora de inicio debe ser menor que la hora de fin")
	}
	return inicio, fin, nil
}

func conflictoJSON(c *fiber.Ctx, conflicto *models.Clase) error {
	return c.Status(409).JSON(fiber.Map{
		"error": "El profesor ya tiene una clase en ese horario",
		"claseExistente": fiber.Map{
			"id":        conflicto.ID,
			"materia":   conflicto.MateriaNombre,
			"diaSemana": conflicto.DiaSemana,
			"horario":   conflicto.Horario(),
		},
	})
}

func CreateClaseAPI(c *fiber.Ctx) error {
	var req claseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	inicio, fin, err := validarHorario(req.DiaSemana, req.HoraInicio, req.HoraFin)
	if err != nil {
		ferr := err.(*fiber.Error)
		return c.Status(ferr.Code).JSON(fiber.Map{"error": ferr.Message})
	}

	db := config.GetDB()

	if _, err := database.GetMateriaByID(db, req.Materia); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Materia no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	profesor, err := database.GetUserByID(db, req.Profesor)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Profesor no encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if profesor.Rol != models.RolProfesor {
		return c.Status(400).JSON(fiber.Map{"error": "El usuario seleccionado no es un profesor"})
	}

	conflicto, err := BuscarConflicto(db, req.Profesor, models.DiaSemana(req.DiaSemana), inicio, fin, "")
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if conflicto != nil {
		return conflictoJSON(c, conflicto)
	}

	clase := &models.Clase{
		MateriaID:  req.Materia,
		ProfesorID: req.Profesor,
		Anio:       req.Anio,
		DiaSemana:  models.DiaSemana(req.DiaSemana),
		HoraInicio: FormatHora(inicio),
		HoraFin:    FormatHora(fin),
		Duracion:   fin - inicio,
	}
	if err := database.CreateClase(db, clase); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create clase"})
	}

	return c.Status(201).JSON(fiber.Map{
		"msg":   "Clase creada correctamente",
		"clase": clase,
	})
}

func GetClasesAPI(c *fiber.Ctx) error {
	filters := database.ClaseFilters{
		MateriaID: c.Query("materia"),
		Profesor:  c.Query("profesor"),
		DiaSemana: c.Query("diaSemana"),
	}
	if anioStr := c.Query("anio"); anioStr != "" {
		anio, err := strconv.Atoi(anioStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Año inválido"})
		}
		filters.Anio = anio
	}

	clases, err := database.GetClases(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch clases"})
	}

	return c.JSON(fiber.Map{
		"msg":    "Clases obtenidas correctamente",
		"clases": clases,
		"total":  len(clases),
	})
}

func GetClasesDelProfesorAPI(c *fiber.Ctx) error {
	clases, err := database.GetClases(config.GetDB(), database.ClaseFilters{Profesor: auth.UserID(c)})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch clases"})
	}

	return c.JSON(fiber.Map{
		"clases": clases,
		"total":  len(clases),
	})
}

func GetClaseAPI(c *fiber.Ctx) error {
	claseID := c.Params("id")
	if uuid.Validate(claseID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de clase inválido"})
	}

	clase, err := database.GetClaseByID(config.GetDB(), claseID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Clase no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(clase)
}

func UpdateClaseAPI(c *fiber.Ctx) error {
	claseID := c.Params("id")
	if uuid.Validate(claseID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de clase inválido"})
	}

	type UpdateRequest struct {
		Materia    *string `json:"materia" validate:"omitempty,uuid"`
		Profesor   *string `json:"profesor" validate:"omitempty,uuid"`
		Anio       *int    `json:"anio" validate:"omitempty,min=1,max=6"`
		DiaSemana  *string `json:"diaSemana"`
		HoraInicio *string `json:"horaInicio"`
		HoraFin    *string `json:"horaFin"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	clase, err := database.GetClaseByID(db, claseID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Clase no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if req.Materia != nil {
		if _, err := database.GetMateriaByID(db, *req.Materia); err != nil {
			if err == sql.ErrNoRows {
				return c.Status(404).JSON(fiber.Map{"error": "Materia no encontrada"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		clase.MateriaID = *req.Materia
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
		clase.ProfesorID = *req.Profesor
	}
	if req.Anio != nil {
		clase.Anio = *req.Anio
	}
	if req.DiaSemana != nil {
		clase.DiaSemana = models.DiaSemana(*req.DiaSemana)
	}
	if req.HoraInicio != nil {
		clase.HoraInicio = *req.HoraInicio
	}
	if req.HoraFin != nil {
		clase.HoraFin = *req.HoraFin
	}

	// Any change to profesor, day or times re-runs the full conflict
	// check against the merged combination, excluding this clase.
	inicio, fin, err := validarHorario(string(clase.DiaSemana), clase.HoraInicio, clase.HoraFin)
	if err != nil {
		ferr := err.(*fiber.Error)
		return c.Status(ferr.Code).JSON(fiber.Map{"error": ferr.Message})
	}
	if req.Profesor != nil || req.DiaSemana != nil || req.HoraInicio != nil || req.HoraFin != nil {
		conflicto, err := BuscarConflicto(db, clase.ProfesorID, clase.DiaSemana, inicio, fin, claseID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if conflicto != nil {
			return conflictoJSON(c, conflicto)
		}
	}

	clase.HoraInicio = FormatHora(inicio)
	clase.HoraFin = FormatHora(fin)
	clase.Duracion = fin - inicio

	if err := database.UpdateClase(db, clase); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update clase"})
	}

	return c.JSON(fiber.Map{
		"msg":   "Clase actualizada correctamente",
		"clase": clase,
	})
}

func DeleteClaseAPI(c *fiber.Ctx) error {
	claseID := c.Params("id")
	if uuid.Validate(claseID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de clase inválido"})
	}

	db := config.GetDB()
	notas, err := database.CountClaseNotas(db, claseID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if notas > 0 {
		return c.Status(409).JSON(fiber.Map{
			"error": "No se puede eliminar: la clase tiene notas cargadas",
			"notas": notas,
		})
	}

	if err := database.DeleteClase(db, claseID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Clase no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete clase"})
	}

	return c.JSON(fiber.Map{"msg": "Clase eliminada correctamente"})
}
