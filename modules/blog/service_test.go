package blog_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apex360/sitecms/modules/blog"
	"github.com/apex360/sitecms/pkg/validator"
)

func newTestService(t *testing.T) (*blog.Service, blog.Config) {
	t.Helper()
	dir := t.TempDir()
	cfg := blog.Config{
		StorePath: filepath.Join(dir, "data", "blog-articulos.json"),
		PagesDir:  filepath.Join(dir, "blog"),
	}
	return blog.NewService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))), cfg
}

func validArticle(title string) *blog.Article {
	return &blog.Article{
		Title:    title,
		Summary:  "Resumen del artículo de prueba.",
		Category: "People Analytics",
		Date:     "15 de marzo, 2025",
		Content:  "Primer párrafo.\n* punto uno\n* punto dos",
	}
}

func TestServiceSaveCreate(t *testing.T) {
	svc, cfg := newTestService(t)

	records, article, err := svc.Save(context.Background(), validArticle("Tendencias en Gestión del Talento"), false)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 1, article.ID)
	assert.Equal(t, "tendencias-gestion-talento.html", article.Filename)

	page, err := os.ReadFile(filepath.Join(cfg.PagesDir, article.Filename))
	require.NoError(t, err)
	assert.Contains(t, string(page), "<h1>Tendencias en Gestión del Talento</h1>")
	assert.Contains(t, string(page), "<li>punto uno</li>")
	assert.Contains(t, string(page), `<span class="badge">People Analytics</span>`)
}

func TestServiceSaveFallsBackToSummary(t *testing.T) {
	svc, cfg := newTestService(t)

	a := validArticle("Artículo sin Cuerpo")
	a.Content = ""
	a.Summary = "Línea uno.\nLínea dos."
	_, article, err := svc.Save(context.Background(), a, false)
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(cfg.PagesDir, article.Filename))
	require.NoError(t, err)
	assert.Contains(t, string(page), "<p>Línea uno.<br />\nLínea dos.</p>")
}

func TestServiceSaveValidation(t *testing.T) {
	svc, _ := newTestService(t)

	invalid := validArticle("Sin Fecha")
	invalid.Date = ""
	_, _, err := svc.Save(context.Background(), invalid, false)
	require.Error(t, err)
	assert.True(t, validator.IsValidationError(err))
}

func TestServiceDelete(t *testing.T) {
	svc, cfg := newTestService(t)
	ctx := context.Background()

	_, article, err := svc.Save(ctx, validArticle("Artículo Efímero"), false)
	require.NoError(t, err)

	records, err := svc.Delete(ctx, article.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoFileExists(t, filepath.Join(cfg.PagesDir, article.Filename))
}
