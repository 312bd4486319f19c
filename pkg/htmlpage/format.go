package htmlpage

import (
	"html"
	"strings"
)

// Escape escapes a value for interpolation into an HTML document.
func Escape(s string) string {
	return html.EscapeString(s)
}

// FormatContent renders multi-line text as HTML. Lines starting with "*" or
// "-" become consecutive <li> items grouped into one <ul>; any other
// non-blank line becomes a <p> paragraph. Every fragment is escaped before
// interpolation. When no line produces output, the whole content is returned
// as a single escaped paragraph.
func FormatContent(content string) string {
	var b strings.Builder
	inList := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "-") {
			if !inList {
				b.WriteString("<ul>")
				inList = true
			}
			item := strings.TrimSpace(trimmed[1:])
			b.WriteString("<li>" + Escape(item) + "</li>")
			continue
		}

		if inList {
			b.WriteString("</ul>")
			inList = false
		}
		b.WriteString("<p>" + Escape(trimmed) + "</p>")
	}

	if inList {
		b.WriteString("</ul>")
	}

	if b.Len() == 0 {
		return "<p>" + Escape(content) + "</p>"
	}
	return b.String()
}
