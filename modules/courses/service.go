package courses

import (
	"context"
	"io"
	"log/slog"

	"github.com/apex360/sitecms/pkg/htmlpage"
	"github.com/apex360/sitecms/pkg/logger"
	"github.com/apex360/sitecms/pkg/recordstore"
)

// fallbackPrefix names timestamp-based filenames for courses whose title
// slugs to nothing.
const fallbackPrefix = "curso"

// Config holds the course store locations.
type Config struct {
	StorePath string `env:"COURSES_STORE_PATH" envDefault:"assets/data/cursos.json"`
	PagesDir  string `env:"COURSES_PAGES_DIR" envDefault:"cursos"`
}

// Service keeps cursos.json and the generated course pages in sync.
type Service struct {
	storePath string
	pages     *htmlpage.Writer
	log       *slog.Logger
}

func NewService(cfg Config, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		storePath: cfg.StorePath,
		pages:     htmlpage.NewWriter(cfg.PagesDir),
		log:       log.With(logger.Component("courses")),
	}
}

// List returns all stored courses in file order.
func (s *Service) List() ([]*Course, error) {
	return recordstore.Load[*Course](s.storePath)
}

// Save creates or updates a course: the JSON store is rewritten first, then
// the static page, then any stale page from a filename change is removed.
// When the page write fails after the store was already saved, the error is
// reported and the store is left as saved; the record is the master copy and
// the next successful save regenerates its page.
func (s *Service) Save(ctx context.Context, input *Course, isUpdate bool) ([]*Course, *Course, error) {
	if input.Sections == nil {
		input.Sections = []Section{}
	}

	records, err := s.List()
	if err != nil {
		return nil, nil, err
	}

	records, course, stale, err := recordstore.Upsert(records, input, isUpdate, fallbackPrefix)
	if err != nil {
		return nil, nil, err
	}

	if err := recordstore.Save(s.storePath, records); err != nil {
		return nil, nil, err
	}

	if err := s.pages.Write(course.Filename, renderPage(course)); err != nil {
		s.log.ErrorContext(ctx, "course saved but page generation failed",
			logger.Error(err), logger.RecordID(course.ID), logger.Filename(course.Filename))
		return nil, nil, err
	}

	if stale != "" {
		if err := s.pages.Remove(stale); err != nil {
			// The new page is already in place; an orphaned old file is
			// only cosmetic.
			s.log.WarnContext(ctx, "failed to remove stale course page",
				logger.Error(err), logger.Filename(stale))
		}
	}

	s.log.InfoContext(ctx, "course saved",
		logger.RecordID(course.ID), logger.Filename(course.Filename))
	return records, course, nil
}

// Delete removes a course from the store and deletes its generated page.
func (s *Service) Delete(ctx context.Context, id int) ([]*Course, error) {
	records, err := s.List()
	if err != nil {
		return nil, err
	}

	records, filename, err := recordstore.DeleteByID(records, id)
	if err != nil {
		return nil, err
	}

	if err := recordstore.Save(s.storePath, records); err != nil {
		return nil, err
	}

	if err := s.pages.Remove(filename); err != nil {
		s.log.WarnContext(ctx, "failed to remove deleted course page",
			logger.Error(err), logger.Filename(filename))
	}

	s.log.InfoContext(ctx, "course deleted", logger.RecordID(id))
	return records, nil
}
