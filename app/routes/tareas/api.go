package tareas

import (
	"database/sql"
	"time"

	"colegio-api/app/config"
	"colegio-api/app/database"
	"colegio-api/app/models"
	"colegio-api/app/routes/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// subirAdjunto uploads the optional multipart attachment and returns
// its object name, or nil when the request carries no file.
func subirAdjunto(c *fiber.Ctx, prefix string) (*string, error) {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		return nil, nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	objectName, err := archivos.Upload(c.Context(), prefix, fileHeader.Filename,
		f, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	return &objectName, nil
}

func CreateTareaAPI(c *fiber.Ctx) error {
	titulo := c.FormValue("titulo")
	descripcion := c.FormValue("descripcion")
	materiaID := c.FormValue("materia")
	fechaStr := c.FormValue("fechaEntrega")

	if titulo == "" || materiaID == "" || fechaStr == "" {
		return c.Status(400).JSON(fiber.Map{"error": "titulo, materia y fechaEntrega son requeridos"})
	}
	if uuid.Validate(materiaID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de materia inválido"})
	}
	fechaEntrega, err := time.Parse("2006-01-02", fechaStr)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Fecha inválida. Use YYYY-MM-DD"})
	}

	db := config.GetDB()
	materia, err := database.GetMateriaByID(db, materiaID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Materia no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	profesorID := auth.UserID(c)
	if materia.Profesor == nil || *materia.Profesor != profesorID {
		return c.Status(403).JSON(fiber.Map{"error": "No puedes crear tareas en esta materia"})
	}

	archivo, err := subirAdjunto(c, "tareas")
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to upload archivo"})
	}

	tarea := &models.Tarea{
		Titulo:       titulo,
		Descripcion:  descripcion,
		FechaEntrega: fechaEntrega,
		MateriaID:    materiaID,
		ProfesorID:   profesorID,
		Archivo:      archivo,
	}
	if err := database.CreateTarea(db, tarea); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create tarea"})
	}

	return c.Status(201).JSON(fiber.Map{
		"msg":   "Tarea creada con éxito",
		"tarea": tarea,
	})
}

func GetTareasPorMateriaAPI(c *fiber.Ctx) error {
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

	// Admins, the assigned profesor and enrolled alumnos may list.
	switch auth.UserRol(c) {
	case models.RolAdmin:
	case models.RolProfesor:
		if materia.Profesor == nil || *materia.Profesor != auth.UserID(c) {
			return c.Status(403).JSON(fiber.Map{"error": "Acceso denegado"})
		}
	case models.RolAlumno:
		inscripto, err := database.IsAlumnoInscripto(db, materiaID, auth.UserID(c))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if !inscripto {
			return c.Status(403).JSON(fiber.Map{"error": "No estás inscripto en esta materia"})
		}
	}

	tareas, err := database.GetTareasByMateria(db, materiaID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tareas"})
	}

	return c.JSON(fiber.Map{
		"tareas": tareas,
		"total":  len(tareas),
	})
}

func GetTareasDelProfesorAPI(c *fiber.Ctx) error {
	tareas, err := database.GetTareasByProfesor(config.GetDB(), auth.UserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tareas"})
	}

	return c.JSON(fiber.Map{
		"tareas": tareas,
		"total":  len(tareas),
	})
}

func GetArchivoTareaAPI(c *fiber.Ctx) error {
	tareaID := c.Params("id")
	if uuid.Validate(tareaID) != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de tarea inválido"})
	}

	tarea, err := database.GetTareaByID(config.GetDB(), tareaID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Tarea no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if tarea.Archivo == nil {
		return c.Status(404).JSON(fiber.Map{"error": "La tarea no tiene archivo adjunto"})
	}

	url, err := archivos.PresignedURL(c.Context(), *tarea.Archivo)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate download URL"})
	}

	return c.JSON(fiber.Map{"url": url})
}

func UpdateTareaAPI(c *fiber.Ctx) error {
	tareaID := c.Params("id")
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
	if tarea.ProfesorID != auth.UserID(c) {
		return c.Status(403).JSON(fiber.Map{"error": "No tienes acceso a esta tarea"})
	}

	if titulo := c.FormValue("titulo"); titulo != "" {
		tarea.Titulo = titulo
	}
	if descripcion := c.FormValue("descripcion"); descripcion != "" {
		tarea.Descripcion = descripcion
	}
	if fechaStr := c.FormValue("fechaEntrega"); fechaStr != "" {
		fechaEntrega, err := time.Parse("2006-01-02", fechaStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Fecha inválida. Use YYYY-MM-DD"})
		}
		tarea.FechaEntrega = fechaEntrega
	}

	archivoAnterior := tarea.Archivo
	nuevoArchivo, err := subirAdjunto(c, "tareas")
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to upload archivo"})
	}
	if nuevoArchivo != nil {
		tarea.Archivo = nuevoArchivo
	}

	if err := database.UpdateTarea(db, tarea); err != nil {
		// The row still points at the old object; drop the new one.
		if nuevoArchivo != nil {
			_ = archivos.Remove(c.Context(), *nuevoArchivo)
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update tarea"})
	}

	// Replaced attachments don't linger in the bucket.
	if nuevoArchivo != nil && archivoAnterior != nil {
		_ = archivos.Remove(c.Context(), *archivoAnterior)
	}

	return c.JSON(fiber.Map{
		"msg":   "Tarea actualizada",
		"tarea": tarea,
	})
}

func DeleteTareaAPI(c *fiber.Ctx) error {
	tareaID := c.Params("id")
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
	if tarea.ProfesorID != auth.UserID(c) {
		return c.Status(403).JSON(fiber.Map{"error": "No tienes acceso a esta tarea"})
	}

	entregas, err := database.CountTareaEntregas(db, tareaID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if entregas > 0 {
		return c.Status(409).JSON(fiber.Map{
			"error":    "No se puede eliminar: la tarea tiene entregas",
			"entregas": entregas,
		})
	}

	if err := database.DeleteTarea(db, tareaID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete tarea"})
	}
	if tarea.Archivo != nil {
		_ = archivos.Remove(c.Context(), *tarea.Archivo)
	}

	return c.JSON(fiber.Map{"msg": "Tarea eliminada correctamente"})
}
