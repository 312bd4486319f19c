package courses_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apex360/sitecms/modules/courses"
	"github.com/apex360/sitecms/pkg/recordstore"
	"github.com/apex360/sitecms/pkg/validator"
)

func newTestService(t *testing.T) (*courses.Service, courses.Config) {
	t.Helper()
	dir := t.TempDir()
	cfg := courses.Config{
		StorePath: filepath.Join(dir, "data", "cursos.json"),
		PagesDir:  filepath.Join(dir, "cursos"),
	}
	return courses.NewService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))), cfg
}

func validCourse(title string) *courses.Course {
	return &courses.Course{
		Title:    title,
		Duration: "16 horas",
		Intro:    "Curso intensivo de prueba.",
		Sections: []courses.Section{
			{Subtitle: "Objetivos", Content: "Aprender.\n* punto uno\n* punto dos"},
		},
	}
}

func TestServiceSaveCreate(t *testing.T) {
	svc, cfg := newTestService(t)

	records, course, err := svc.Save(context.Background(), validCourse("Trabajo en Altura"), false)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 1, course.ID)
	assert.Equal(t, "trabajo-altura.html", course.Filename)

	page, err := os.ReadFile(filepath.Join(cfg.PagesDir, course.Filename))
	require.NoError(t, err)
	assert.Contains(t, string(page), "<h1>Trabajo en Altura</h1>")
	assert.Contains(t, string(page), "<li>punto uno</li>")
	assert.Contains(t, string(page), "Consulta fechas disponibles")

	stored, err := svc.List()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Trabajo en Altura", stored[0].Title)
}

func TestServiceSaveEscapesRecordValues(t *testing.T) {
	svc, cfg := newTestService(t)

	c := validCourse(`Curso <script> "x"`)
	_, course, err := svc.Save(context.Background(), c, false)
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(cfg.PagesDir, course.Filename))
	require.NoError(t, err)
	assert.NotContains(t, string(page), "<script>")
	assert.Contains(t, string(page), "&lt;script&gt;")
}

func TestServiceSaveUpdateRemovesStalePage(t *testing.T) {
	svc, cfg := newTestService(t)
	ctx := context.Background()

	_, created, err := svc.Save(ctx, validCourse("Curso Original"), false)
	require.NoError(t, err)
	oldPage := filepath.Join(cfg.PagesDir, created.Filename)
	require.FileExists(t, oldPage)

	updated := validCourse("Curso Renombrado")
	updated.ID = created.ID
	_, course, err := svc.Save(ctx, updated, true)
	require.NoError(t, err)

	assert.Equal(t, created.ID, course.ID)
	assert.Equal(t, "curso-renombrado.html", course.Filename)
	assert.NoFileExists(t, oldPage)
	assert.FileExists(t, filepath.Join(cfg.PagesDir, course.Filename))
}

func TestServiceSaveUpdateUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	missing := validCourse("Fantasma")
	missing.ID = 42
	_, _, err := svc.Save(context.Background(), missing, true)
	assert.ErrorIs(t, err, recordstore.ErrNotFound)
}

func TestServiceSaveValidation(t *testing.T) {
	svc, _ := newTestService(t)

	invalid := validCourse("Sin Duración")
	invalid.Duration = ""
	_, _, err := svc.Save(context.Background(), invalid, false)
	require.Error(t, err)
	assert.True(t, validator.IsValidationError(err))
}

func TestServiceDelete(t *testing.T) {
	svc, cfg := newTestService(t)
	ctx := context.Background()

	_, first, err := svc.Save(ctx, validCourse("Curso Uno"), false)
	require.NoError(t, err)
	_, _, err = svc.Save(ctx, validCourse("Curso Dos"), false)
	require.NoError(t, err)

	records, err := svc.Delete(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Curso Dos", records[0].Title)
	assert.NoFileExists(t, filepath.Join(cfg.PagesDir, first.Filename))
}

func TestServiceDeleteUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, recordstore.ErrNotFound)
}
