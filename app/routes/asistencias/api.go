package asistencias

import (
	"database/sql"
	"fmt"
	"time"

	"colegio-api/app/config"
	"colegio-api/app/database"
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type asistenciaItem struct {
	Alumno string `json:"alumno"`
	Estado string `json:"estado"`
}

type tomarRequest struct {
	Materia     string           `json:"materia"`
	Fecha       string           `json:"fecha"`
	Asistencias []asistenciaItem `json:"asistencias"`
}

// validarBatch checks the whole payload before anything is written. A
// single bad item rejects the entire batch.
func validarBatch(req *tomarRequest) ([]database.AsistenciaItem, error) {
	if uuid.Validate(req.Materia) != nil {
		return nil, fmt.Errorf("ID de materia inválido")
	}
	if len(req.Asistencias) == 0 {
		return nil, fmt.Errorf("El lote de asistencias está vacío")
	}

	items := make([]database.AsistenciaItem, 0, len(req.Asistencias))
	vistos := make(map[string]bool, len(req.Asistencias))
	for i, a := range req.Asistencias {
		if uuid.Validate(a.Alumno) != nil {
			return nil, fmt.Errorf("asistencias[%d]: ID de alumno inválido", i)
		}
		if !models.ValidEstadoAsistencia(a.Estado) {
			return nil, fmt.Errorf("asistencias[%d]: estado inválido %q", i, a.Estado)
		}
		if vistos[a.Alumno] {
			return nil, fmt.Errorf("asistencias[%d]: alumno repetido en el lote", i)
		}
		vistos[a.Alumno] = true
		items = append(items, database.AsistenciaItem{AlumnoID: a.Alumno, Estado: models.EstadoAsistencia(a.Estado)})
	}
	return items, nil
}

func parseFecha(s string) (time.Time, error) {
	if s == "" {
		return models.NormalizarFecha(time.Now()), nil
	}
	fecha, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("Fecha inválida. Use YYYY-MM-DD")
	}
	return models.NormalizarFecha(fecha), nil
}

// checkMateriaOwnership loads the materia and rejects profesores that
// don't teach it. Admins pass through.
func checkMateriaOwnership(c *fiber.Ctx, db *sql.DB, materiaID string) error {
	materia, err := database.GetMateriaByID(db, materiaID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Materia no encontrada")
		}
		return fiber.NewError(500, "Database error")
	}
	if !auth.IsAdmin(c) && (materia.Profesor == nil || *materia.Profesor != auth.UserID(c)) {
		return fiber.NewError(403, "No tienes acceso a esta materia")
	}
	return nil
}

func TomarAsistenciaAPI(c *fiber.Ctx) error {
	var req tomarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	items, err := validarBatch(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	if err := checkMateriaOwnership(c, db, req.Materia); err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	result, err := database.UpsertAsistencias(db, req.Materia, fecha, items, auth.UserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save asistencias"})
	}

	return c.JSON(fiber.Map{
		"msg":          "Asistencia registrada",
		"fecha":        fecha.Format("2006-01-02"),
		"insertados":   result.Insertados,
		"actualizados": result.Actualizados,
	})
}

type simpleRequest struct {
	Materia string `json:"materia"`
	Alumno  string `json:"alumno"`
	Fecha   string `json:"fecha"`
	Estado  string `json:"estado"`
}

func CargarAsistenciaSimpleAPI(c *fiber.Ctx) error {
	var req simpleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	batch := tomarRequest{
		Materia:     req.Materia,
		Fecha:       req.Fecha,
		Asistencias: []asistenciaItem{{Alumno: req.Alumno, Estado: req.Estado}},
	}
	items, err := validarBatch(&batch)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	if err := checkMateriaOwnership(c, db, req.Materia); err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	result, err := database.UpsertAsistencias(db, req.Materia, fecha, items, auth.UserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save asistencia"})
	}

	msg := "Asistencia cargada"
	if result.Actualizados > 0 {
		msg = "Asistencia actualizada"
	}
	return c.JSON(fiber.Map{
		"msg":   msg,
		"fecha": fecha.Format("2006-01-02"),
	})
}

func GetAsistenciasAPI(c *fiber.Ctx) error {
	filters := database.AsistenciaFilters{
		MateriaID: c.Query("materia"),
		AlumnoID:  c.Query("alumno"),
	}
	if filters.MateriaID != "" && uuid.Validate(filters.MateriaID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de materia inválido"})
	}
	if filters.AlumnoID != "" && uuid.Validate(filters.AlumnoID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de alumno inválido"})
	}
	if desde := c.Query("desde"); desde != "" {
		t, err := time.Parse("2006-01-02", desde)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "desde: fecha inválida. Use YYYY-MM-DD"})
		}
		filters.Desde = &t
	}
	if hasta := c.Query("hasta"); hasta != "" {
		t, err := time.Parse("2006-01-02", hasta)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "hasta: fecha inválida. Use YYYY-MM-DD"})
		}
		filters.Hasta = &t
	}
	if !auth.IsAdmin(c) {
		filters.ProfesorID = auth.UserID(c)
	}

	asistencias, err := database.GetAsistencias(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch asistencias"})
	}

	return c.JSON(fiber.Map{
		"asistencias": asistencias,
		"total":       len(asistencias),
	})
}

// DeleteAsistenciaAPI removes a mistaken record outright. Only admins;
// profesores correct by re-submitting the same (materia, alumno, fecha)
// key with the right estado.
func DeleteAsistenciaAPI(c *fiber.Ctx) error {
	asistenciaID := c.Params("id")
	if uuid.Validate(asistenciaID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de asistencia inválido"})
	}

	if err := database.DeleteAsistencia(config.GetDB(), asistenciaID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Asistencia no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete asistencia"})
	}

	return c.JSON(fiber.Map{"msg": "Asistencia eliminada correctamente"})
}

func GetMisAsistenciasAPI(c *fiber.Ctx) error {
	asistencias, err := database.GetAsistenciasByAlumno(config.GetDB(), auth.UserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch asistencias"})
	}

	return c.JSON(fiber.Map{
		"asistencias": asistencias,
		"total":       len(asistencias),
	})
}
