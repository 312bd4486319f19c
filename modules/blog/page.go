package blog

import (
	"fmt"
	"strings"

	"github.com/apex360/sitecms/pkg/htmlpage"
)

const imageTemplate = `            <div class="article-hero-image">
                <img src="%s" alt="%s">
            </div>`

const pageTemplate = `<!DOCTYPE html>
<html lang="es-CL">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s | Blog Apex 360</title>
    <meta name="description" content="%s">
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=Sora:wght@300;400;600;700;800&family=DM+Sans:wght@400;500;700&display=swap" rel="stylesheet">
    <link rel="stylesheet" href="../assets/css/plantilla-blog.css">
</head>
<body>
    <header>
        <nav>
            <a href="../index.html" class="logo">Apex<span>360</span></a>
            <a href="../blog.html" style="color: var(--primary); text-decoration: none; font-weight: 600;">← Volver al blog</a>
        </nav>
    </header>

    <main class="article-wrapper">
        <div class="article-meta">
            <span class="badge">%s</span>
            <span class="date">%s</span>
        </div>

        <h1>%s</h1>
        <p class="article-summary">%s</p>

        %s

        <div class="article-content">
            %s
        </div>

        <a class="back-link" href="../blog.html">← Volver al listado</a>
    </main>

    <footer>
        <p>&copy; 2025 Apex 360 - Consultoría RRHH &amp; People Analytics</p>
    </footer>
</body>
</html>
`

// renderPage produces the complete static HTML document for an article. All
// record values are escaped on interpolation. When the article has no body
// content the summary is shown in its place, with line breaks preserved.
func renderPage(a *Article) string {
	title := htmlpage.Escape(a.Title)
	summary := htmlpage.Escape(a.Summary)
	category := htmlpage.Escape(a.Category)
	date := htmlpage.Escape(a.Date)

	content := ""
	if a.Content != "" {
		content = htmlpage.FormatContent(a.Content)
	} else {
		content = "<p>" + strings.ReplaceAll(summary, "\n", "<br />\n") + "</p>"
	}

	imageHTML := ""
	if a.Image != "" {
		imageHTML = fmt.Sprintf(imageTemplate, htmlpage.Escape(a.Image), title)
	}

	return fmt.Sprintf(pageTemplate,
		title,
		summary,
		category,
		date,
		title,
		summary,
		imageHTML,
		content,
	)
}
