package notas

import (
	"database/sql"
	"fmt"

	"colegio-api/app/config"
	"colegio-api/app/database"
	"colegio-api/app/routes/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ExportNotasClaseAPI streams the grade sheet of a clase as an xlsx
// workbook, one row per alumno.
func ExportNotasClaseAPI(c *fiber.Ctx) error {
	claseID := c.Params("claseId")
	if uuid.Validate(claseID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de clase inválido"})
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

	notas, err := database.GetNotasByClase(db, claseID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch notas"})
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Notas"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Alumno", "Email", "Trimestre 1", "Trimestre 2", "Trimestre 3", "Nota Final"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "F1", bold)
	}
	f.SetColWidth(sheet, "A", "B", 28)
	f.SetColWidth(sheet, "C", "F", 12)

	for row, nota := range notas {
		values := []interface{}{
			derefStr(nota.AlumnoNombre),
			derefStr(nota.AlumnoEmail),
			derefNum(nota.Trimestre1),
			derefNum(nota.Trimestre2),
			derefNum(nota.Trimestre3),
			derefNum(nota.NotaFinal),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	materia := "clase"
	if clase.MateriaNombre != nil {
		materia = *clase.MateriaNombre
	}
	filename := fmt.Sprintf("notas_%s_%s.xlsx", materia, clase.DiaSemana)

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build spreadsheet"})
	}
	return c.Send(buf.Bytes())
}

func derefStr(s *string) interface{} {
	if s == nil {
		return ""
	}
	return *s
}

func derefNum(n *float64) interface{} {
	if n == nil {
		return ""
	}
	return *n
}
