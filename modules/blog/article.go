package blog

import "github.com/apex360/sitecms/pkg/validator"

// Article is a blog post record as persisted in blog-articulos.json.
type Article struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
	Filename string `json:"filename"`
	Date     string `json:"date"`
	Image    string `json:"image"`
	Content  string `json:"content"`
}

func (a *Article) GetID() int          { return a.ID }
func (a *Article) SetID(id int)        { a.ID = id }
func (a *Article) GetTitle() string    { return a.Title }
func (a *Article) GetFilename() string { return a.Filename }

func (a *Article) SetFilename(name string) { a.Filename = name }

// Validate checks the fields an article page cannot be generated without.
// Content is optional; the summary stands in for it on the page.
func (a *Article) Validate() error {
	return validator.Apply(
		validator.Required("title", a.Title),
		validator.Required("summary", a.Summary),
		validator.Required("category", a.Category),
		validator.Required("date", a.Date),
	)
}
