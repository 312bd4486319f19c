package contact

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apex360/sitecms/pkg/logger"
	"github.com/apex360/sitecms/pkg/requestid"
	"github.com/apex360/sitecms/pkg/validator"
)

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Handler exposes the contact-form endpoint. Submissions arrive as regular
// form posts from the public site.
type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{svc: svc, log: log.With(logger.Component("contact"))}
}

func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusMethodNotAllowed, false, "Método no permitido")
	})
	r.Post("/", h.submit)
	return r
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	req := Request{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Comments: r.PostFormValue("comments"),
	}

	if err := h.svc.Submit(r.Context(), req); err != nil {
		status, message := http.StatusInternalServerError,
			"No pudimos enviar tu mensaje en este momento. Inténtalo más tarde."
		if validator.IsValidationError(err) {
			status = http.StatusBadRequest
			message = "Completa todos los campos para enviar tu mensaje."
			if ve := validator.ExtractValidationErrors(err); len(ve) > 0 && ve[0].Field == "email" {
				message = "Ingresa un correo electrónico válido."
			}
		}

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		h.log.LogAttrs(r.Context(), level, "contact submission rejected",
			logger.Error(err),
			logger.RequestID(requestid.FromContext(r.Context())),
			slog.Int("status_code", status),
		)
		respond(w, status, false, message)
		return
	}

	respond(w, http.StatusOK, true, "¡Gracias! Hemos recibido tu mensaje y te contactaremos pronto.")
}

func respond(w http.ResponseWriter, status int, success bool, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response{Success: success, Message: message})
}
