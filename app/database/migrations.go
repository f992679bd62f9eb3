package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema when missing. Every business
// invariant the handlers check also gets a storage-level constraint:
// unique email, unique (nombre, anio) per materia, one entrega per
// (tarea, alumno), one nota per (clase, alumno) and one asistencia per
// (materia, alumno, fecha).
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			nombre TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			rol TEXT NOT NULL CHECK (rol IN ('admin', 'profesor', 'alumno')),
			anio INT CHECK (anio BETWEEN 1 AND 6),
			division VARCHAR(1) CHECK (division IN ('A', 'B', 'C')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS materias (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			nombre TEXT NOT NULL,
			anio INT NOT NULL CHECK (anio BETWEEN 1 AND 6),
			profesor_id UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (nombre, anio)
		)`,

		`CREATE TABLE IF NOT EXISTS materia_alumnos (
			materia_id UUID NOT NULL REFERENCES materias(id),
			alumno_id UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (materia_id, alumno_id)
		)`,

		`CREATE TABLE IF NOT EXISTS clases (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			materia_id UUID NOT NULL REFERENCES materias(id),
			profesor_id UUID NOT NULL REFERENCES users(id),
			anio INT NOT NULL CHECK (anio BETWEEN 1 AND 6),
			dia_semana TEXT NOT NULL,
			hora_inicio CHAR(5) NOT NULL,
			hora_fin CHAR(5) NOT NULL,
			duracion INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_clases_profesor_dia ON clases (profesor_id, dia_semana, hora_inicio)`,
		`CREATE INDEX IF NOT EXISTS idx_clases_materia_anio ON clases (materia_id, anio)`,

		`CREATE TABLE IF NOT EXISTS tareas (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			titulo TEXT NOT NULL,
			descripcion TEXT NOT NULL DEFAULT '',
			fecha_entrega TIMESTAMPTZ NOT NULL,
			materia_id UUID NOT NULL REFERENCES materias(id),
			profesor_id UUID NOT NULL REFERENCES users(id),
			archivo TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tareas_materia ON tareas (materia_id)`,

		`CREATE TABLE IF NOT EXISTS entregas (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			tarea_id UUID NOT NULL REFERENCES tareas(id),
			alumno_id UUID NOT NULL REFERENCES users(id),
			archivo TEXT NOT NULL,
			comentario TEXT,
			fecha_entrega TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			nota NUMERIC(4,1) CHECK (nota BETWEEN 1 AND 10),
			comentario_profe TEXT,
			fecha_correccion TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT unique_entrega_por_alumno UNIQUE (tarea_id, alumno_id)
		)`,

		`CREATE TABLE IF NOT EXISTS notas (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			clase_id UUID NOT NULL REFERENCES clases(id),
			alumno_id UUID NOT NULL REFERENCES users(id),
			trimestre1 NUMERIC(4,1) CHECK (trimestre1 BETWEEN 1 AND 10),
			trimestre2 NUMERIC(4,1) CHECK (trimestre2 BETWEEN 1 AND 10),
			trimestre3 NUMERIC(4,1) CHECK (trimestre3 BETWEEN 1 AND 10),
			nota_final NUMERIC(4,1),
			actualizado_por UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT unique_nota_por_clase_alumno UNIQUE (clase_id, alumno_id)
		)`,

		`CREATE TABLE IF NOT EXISTS asistencias (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			materia_id UUID NOT NULL REFERENCES materias(id),
			alumno_id UUID NOT NULL REFERENCES users(id),
			fecha DATE NOT NULL,
			estado TEXT NOT NULL CHECK (estado IN ('presente', 'ausente', 'tarde', 'justificado')),
			cargado_por UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT unique_asistencia_por_dia_materia UNIQUE (materia_id, alumno_id, fecha)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_asistencias_fecha ON asistencias (fecha DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_asistencias_alumno ON asistencias (alumno_id, fecha DESC)`,

		`CREATE TABLE IF NOT EXISTS anuncios (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			profesor_id UUID NOT NULL REFERENCES users(id),
			materia_id UUID NOT NULL REFERENCES materias(id),
			titulo TEXT NOT NULL,
			mensaje TEXT NOT NULL,
			fecha TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_anuncios_materia ON anuncios (materia_id, fecha DESC)`,

		`CREATE TABLE IF NOT EXISTS calificaciones (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			materia_id UUID NOT NULL REFERENCES materias(id),
			alumno_id UUID NOT NULL REFERENCES users(id),
			profesor_id UUID NOT NULL REFERENCES users(id),
			descripcion TEXT NOT NULL,
			nota NUMERIC(4,2) NOT NULL CHECK (nota BETWEEN 1 AND 10),
			fecha TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_calificaciones_materia ON calificaciones (materia_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_calificaciones_alumno ON calificaciones (alumno_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
