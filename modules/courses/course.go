package courses

import "github.com/apex360/sitecms/pkg/validator"

// Section is one titled content block of a course page.
type Section struct {
	Subtitle string `json:"subtitle"`
	Content  string `json:"content"`
}

// Course is a training course record as persisted in cursos.json.
type Course struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Duration string    `json:"duration"`
	Intro    string    `json:"intro"`
	Image    string    `json:"image"`
	Dates    string    `json:"dates"`
	Filename string    `json:"filename"`
	Sections []Section `json:"sections"`
}

func (c *Course) GetID() int          { return c.ID }
func (c *Course) SetID(id int)        { c.ID = id }
func (c *Course) GetTitle() string    { return c.Title }
func (c *Course) GetFilename() string { return c.Filename }

func (c *Course) SetFilename(name string) { c.Filename = name }

// Validate checks the fields a course page cannot be generated without.
func (c *Course) Validate() error {
	return validator.Apply(
		validator.Required("title", c.Title),
		validator.Required("duration", c.Duration),
		validator.Required("intro", c.Intro),
	)
}
