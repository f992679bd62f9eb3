package notas

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"colegio-api/app/config"
	"colegio-api/app/database"
	"colegio-api/app/routes/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var trimestreKeys = [3]string{"trimestre1", "trimestre2", "trimestre3"}

// parseCambios reads the term fields off the raw body so that an
// explicit null (clear the term) can be told apart from a key that was
// never sent (leave the term alone).
func parseCambios(body []byte) (claseID, alumnoID string, cambios [3]database.TrimestreCambio, err error) {
	var raw map[string]json.RawMessage
	if err = json.Unmarshal(body, &raw); err != nil {
		return
	}

	if v, ok := raw["clase"]; ok {
		if err = json.Unmarshal(v, &claseID); err != nil {
			return
		}
	}
	if v, ok := raw["alumno"]; ok {
		if err = json.Unmarshal(v, &alumnoID); err != nil {
			return
		}
	}

	for i, key := range trimestreKeys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		cambios[i].Presente = true
		if string(v) == "null" {
			continue
		}
		var valor float64
		if err = json.Unmarshal(v, &valor); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
			return
		}
		if valor < 1 || valor > 10 {
			err = fmt.Errorf("%s debe estar entre 1 y 10", key)
			return
		}
		cambios[i].Valor = &valor
	}
	return
}

func UpsertNotasAPI(c *fiber.Ctx) error {
	claseID, alumnoID, cambios, err := parseCambios(c.Body())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if uuid.Validate(claseID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de clase inválido"})
	}
	if uuid.Validate(alumnoID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de alumno inválido"})
	}

	db := config.GetDB()
	clase, err := database.GetClaseByID(db, claseID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Clase no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !auth.IsAdmin(c) && clase.ProfesorID != auth.UserID(c) {
		return c.Status(403).JSON(fiber.Map{"error": "No tienes acceso a esta clase"})
	}

	inscripto, err := database.IsAlumnoInscripto(db, clase.MateriaID, alumnoID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !inscripto {
		return c.Status(409).JSON(fiber.Map{"error": "El alumno no está inscripto en la materia de esta clase"})
	}

	nota, err := database.UpsertNota(db, claseID, alumnoID, auth.UserID(c), cambios)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save nota"})
	}

	return c.JSON(fiber.Map{
		"msg":  "Nota guardada",
		"nota": nota,
	})
}

func GetNotasAPI(c *fiber.Ctx) error {
	filters := database.NotaFilters{
		ClaseID:  c.Query("clase"),
		AlumnoID: c.Query("alumno"),
	}
	if filters.ClaseID != "" && uuid.Validate(filters.ClaseID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de clase inválido"})
	}
	if filters.AlumnoID != "" && uuid.Validate(filters.AlumnoID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de alumno inválido"})
	}
	if !auth.IsAdmin(c) {
		filters.ProfesorID = auth.UserID(c)
	}

	notas, err := database.GetNotas(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch notas"})
	}

	return c.JSON(fiber.Map{
		"notas": notas,
		"total": len(notas),
	})
}

func GetMisNotasAPI(c *fiber.Ctx) error {
	notas, err := database.GetNotasByAlumno(config.GetDB(), auth.UserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch notas"})
	}

	return c.JSON(fiber.Map{
		"notas": notas,
		"total": len(notas),
	})
}
