package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/apex360/sitecms/modules/blog"
	"github.com/apex360/sitecms/modules/contact"
	"github.com/apex360/sitecms/modules/courses"
	"github.com/apex360/sitecms/pkg/config"
	"github.com/apex360/sitecms/pkg/httpserver"
	"github.com/apex360/sitecms/pkg/logger"
	"github.com/apex360/sitecms/pkg/mailer"
	"github.com/apex360/sitecms/pkg/requestid"
)

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`

	Server  httpserver.Config
	Courses courses.Config
	Blog    blog.Config
	Contact contact.Config
	Mailer  mailer.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Environment, "sitecms"))
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	sender, err := mailer.New(cfg.Mailer, mailer.WithLogger(log))
	if err != nil {
		// The site must keep serving course and blog mutations even when
		// mail delivery is not configured; submissions then fail with 500.
		log.Warn("mail delivery unavailable", logger.Error(err))
		sender = mailer.Unavailable(err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Mount("/generate-course", courses.NewHandler(courses.NewService(cfg.Courses, log), log).Handle())
	r.Mount("/generate-blog", blog.NewHandler(blog.NewService(cfg.Blog, log), log).Handle())
	r.Mount("/send-contact", contact.NewHandler(contact.NewService(cfg.Contact, sender, log), log).Handle())

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	log.InfoContext(ctx, "starting server", slog.String("addr", cfg.Server.Addr))
	return srv.Run(ctx, r)
}
