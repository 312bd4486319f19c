package blog

import (
	"context"
	"io"
	"log/slog"

	"github.com/apex360/sitecms/pkg/htmlpage"
	"github.com/apex360/sitecms/pkg/logger"
	"github.com/apex360/sitecms/pkg/recordstore"
)

// fallbackPrefix names timestamp-based filenames for articles whose title
// slugs to nothing.
const fallbackPrefix = "articulo"

// Config holds the blog store locations.
type Config struct {
	StorePath string `env:"BLOG_STORE_PATH" envDefault:"assets/data/blog-articulos.json"`
	PagesDir  string `env:"BLOG_PAGES_DIR" envDefault:"blog"`
}

// Service keeps blog-articulos.json and the generated article pages in sync.
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
		log:       log.With(logger.Component("blog")),
	}
}

// List returns all stored articles in file order.
func (s *Service) List() ([]*Article, error) {
	return recordstore.Load[*Article](s.storePath)
}

// Save creates or updates an article. The JSON store is the master copy: it is
// rewritten first, then the static page, then any stale page from a filename
// change is removed. A page write failure after a successful store save is
// reported without rolling the store back.
func (s *Service) Save(ctx context.Context, input *Article, isUpdate bool) ([]*Article, *Article, error) {
	records, err := s.List()
	if err != nil {
		return nil, nil, err
	}

	records, article, stale, err := recordstore.Upsert(records, input, isUpdate, fallbackPrefix)
	if err != nil {
		return nil, nil, err
	}

	if err := recordstore.Save(s.storePath, records); err != nil {
		return nil, nil, err
	}

	if err := s.pages.Write(article.Filename, renderPage(article)); err != nil {
		s.log.ErrorContext(ctx, "article saved but page generation failed",
			logger.Error(err), logger.RecordID(article.ID), logger.Filename(article.Filename))
		return nil, nil, err
	}

	if stale != "" {
		if err := s.pages.Remove(stale); err != nil {
			s.log.WarnContext(ctx, "failed to remove stale article page",
				logger.Error(err), logger.Filename(stale))
		}
	}

	s.log.InfoContext(ctx, "article saved",
		logger.RecordID(article.ID), logger.Filename(article.Filename))
	return records, article, nil
}

// Delete removes an article from the store and deletes its generated page.
func (s *Service) Delete(ctx context.Context, id int) ([]*Article, error) {
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
		s.log.WarnContext(ctx, "failed to remove deleted article page",
			logger.Error(err), logger.Filename(filename))
	}

	s.log.InfoContext(ctx, "article deleted", logger.RecordID(id))
	return records, nil
}
