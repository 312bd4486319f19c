package courses

import (
	"fmt"
	"strings"

	"github.com/apex360/sitecms/pkg/htmlpage"
)

const sectionTemplate = `                <div class="section-block">
                    <h2>%s</h2>
                    <div>%s</div>
                </div>
`

const imageTemplate = `            <div class="course-image-container">
                <img src="%s" alt="%s" class="course-image-full">
            </div>`

const pageTemplate = `<!DOCTYPE html>
<html lang="es-CL">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s | OTEC Apex</title>
    <meta name="description" content="%s">
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=Sora:wght@300;400;600;700;800&family=DM+Sans:wght@400;500;700&display=swap" rel="stylesheet">

    <link rel="stylesheet" href="../assets/css/plantilla-curso.css">

</head>
<body>
    <header>
        <nav>
            <a href="../index.html" class="logo">Apex<span>360</span></a>
            <ul class="nav-menu">
                <li><a href="../index.html">Inicio</a></li>
                <li><a href="../otec.html">OTEC</a></li>
                <li><a href="../index.html#servicios">Servicios</a></li>
                <li><a href="../index.html#contacto">Contacto</a></li>
            </ul>
            <a href="../index.html#contacto" class="cta-button">Inscripción</a>
        </nav>
    </header>

    <div class="course-detail">
        <div class="container">
            <a href="../otec.html" class="back-button">← Volver a cursos</a>

            <div class="course-header">
                <div class="container">
                    <div class="course-header-content">
                        <div class="course-badge">%s</div>
                        <h1>%s</h1>
                        <p class="course-intro-text">%s</p>
                    </div>
                </div>
            </div>

            %s

            <div class="course-content">
%s            </div>

            <div class="cta-section">
                <h2>¿Listo para inscribirte?</h2>
                <p>%s</p>
                <a href="../index.html#contacto" class="cta-primary">Solicitar Inscripción</a>
            </div>
        </div>
    </div>

    <footer>
        <div class="container">
            <div class="footer-content">
                <p>&copy; 2025 OTEC Apex Capacitaciones</p>
                <div class="footer-links">
                    <a href="../index.html">Inicio</a>
                    <a href="../otec.html">Cursos</a>
                    <a href="../index.html#contacto">Contacto</a>
                </div>
            </div>
        </div>
    </footer>
</body>
</html>
`

// renderPage produces the complete static HTML document for a course. All
// record values are escaped on interpolation; the only raw HTML comes from
// the templates above and FormatContent's own output.
func renderPage(c *Course) string {
	title := htmlpage.Escape(c.Title)
	duration := htmlpage.Escape(c.Duration)
	intro := htmlpage.Escape(c.Intro)

	dates := "Consulta fechas disponibles"
	if c.Dates != "" {
		dates = htmlpage.Escape(c.Dates)
	}

	var sections strings.Builder
	if len(c.Sections) == 0 {
		sections.WriteString(`                <div class="section-block"><p>No hay contenido disponible para este curso.</p></div>` + "\n")
	} else {
		for _, s := range c.Sections {
			fmt.Fprintf(&sections, sectionTemplate,
				htmlpage.Escape(s.Subtitle),
				htmlpage.FormatContent(s.Content),
			)
		}
	}

	imageHTML := ""
	if c.Image != "" {
		imageHTML = fmt.Sprintf(imageTemplate, htmlpage.Escape(c.Image), title)
	}

	return fmt.Sprintf(pageTemplate,
		title,
		intro,
		duration,
		title,
		intro,
		imageHTML,
		sections.String(),
		dates,
	)
}
