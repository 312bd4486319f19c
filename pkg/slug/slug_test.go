package slug_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apex360/sitecms/pkg/slug"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple title",
			input:    "Liderazgo Efectivo",
			expected: "liderazgo-efectivo",
		},
		{
			name:     "stopwords dropped",
			input:    "Curso de Excel para Principiantes",
			expected: "curso-excel-principiantes",
		},
		{
			name:     "diacritics folded",
			input:    "Formación en Gestión Ágil",
			expected: "formacion-gestion-agil",
		},
		{
			name:     "punctuation replaced",
			input:    "Excel: Nivel Avanzado (2025)",
			expected: "excel-nivel-avanzado-2025",
		},
		{
			name:     "multiple spaces",
			input:    "Demasiados     Espacios",
			expected: "demasiados-espacios",
		},
		{
			name:     "only stopwords",
			input:    "y o de",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "enie folded",
			input:    "Diseño y Señalética",
			expected: "diseno-senaletica",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.Make(tt.input))
		})
	}
}

func TestFilename(t *testing.T) {
	t.Run("derived from title", func(t *testing.T) {
		assert.Equal(t, "curso-excel.html", slug.Filename("Curso de Excel", "curso"))
	})

	t.Run("slug shape", func(t *testing.T) {
		got := slug.Filename("Gestión del Cambio Organizacional", "curso")
		assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*\.html$`), got)
	})

	t.Run("timestamp fallback for stopword-only title", func(t *testing.T) {
		got := slug.Filename("y o de", "curso")
		assert.Regexp(t, regexp.MustCompile(`^curso-\d+\.html$`), got)
	})

	t.Run("fallback prefix per record type", func(t *testing.T) {
		got := slug.Filename("", "articulo")
		assert.Regexp(t, regexp.MustCompile(`^articulo-\d+\.html$`), got)
	})
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "case preserved",
			input:    "My Report.html",
			expected: "My-Report.html",
		},
		{
			name:     "htm suffix stripped once",
			input:    "informe.htm",
			expected: "informe.html",
		},
		{
			name:     "uppercase extension stripped",
			input:    "Informe.HTML",
			expected: "Informe.html",
		},
		{
			name:     "no extension gains one",
			input:    "mi-curso",
			expected: "mi-curso.html",
		},
		{
			name:     "underscores kept",
			input:    "curso_2025",
			expected: "curso_2025.html",
		},
		{
			name:     "special chars collapsed",
			input:    "a//b??c.html",
			expected: "a-b-c.html",
		},
		{
			name:     "surrounding hyphens trimmed",
			input:    "--curso--",
			expected: "curso.html",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "nothing survives",
			input:    "??!!.html",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.SanitizeFilename(tt.input))
		})
	}
}
