package blog

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apex360/sitecms/pkg/htmlpage"
	"github.com/apex360/sitecms/pkg/logger"
	"github.com/apex360/sitecms/pkg/recordstore"
	"github.com/apex360/sitecms/pkg/requestid"
	"github.com/apex360/sitecms/pkg/validator"
)

type mutationRequest struct {
	Action  string   `json:"action"`
	Article *Article `json:"article"`
	ID      int      `json:"id"`
}

type mutationResponse struct {
	Success  bool       `json:"success"`
	Article  *Article   `json:"article,omitempty"`
	Articles []*Article `json:"articles"`
	Message  string     `json:"message,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Handler exposes the article mutation endpoint consumed by the admin UI.
type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{svc: svc, log: log.With(logger.Component("blog"))}
}

// Handle returns the module router. Only POST is accepted.
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(corsHeaders)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Método no permitido"})
	})
	r.Post("/", h.mutate)
	return r
}

func (h *Handler) mutate(w http.ResponseWriter, r *http.Request) {
	var req mutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Acción no especificada", err)
		return
	}

	switch req.Action {
	case "create_blog", "update_blog":
		if req.Article == nil {
			h.respondError(w, r, http.StatusBadRequest, "Datos de artículo no proporcionados", nil)
			return
		}

		records, article, err := h.svc.Save(r.Context(), req.Article, req.Action == "update_blog")
		if err != nil {
			h.respondMutationError(w, r, err, "Artículo no encontrado para actualizar")
			return
		}
		respondJSON(w, http.StatusOK, mutationResponse{
			Success:  true,
			Article:  article,
			Articles: records,
			Message:  "Artículo guardado correctamente",
		})

	case "delete_blog":
		id := req.ID
		if req.Article != nil && req.Article.ID != 0 {
			id = req.Article.ID
		}
		if id == 0 {
			h.respondError(w, r, http.StatusBadRequest, "ID de artículo no proporcionado", nil)
			return
		}

		records, err := h.svc.Delete(r.Context(), id)
		if err != nil {
			h.respondMutationError(w, r, err, "Artículo no encontrado para eliminar")
			return
		}
		respondJSON(w, http.StatusOK, mutationResponse{
			Success:  true,
			Articles: records,
			Message:  "Artículo eliminado correctamente",
		})

	case "":
		h.respondError(w, r, http.StatusBadRequest, "Acción no especificada", nil)
	default:
		h.respondError(w, r, http.StatusBadRequest, "Acción no soportada", nil)
	}
}

func (h *Handler) respondMutationError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case validator.IsValidationError(err):
		h.respondError(w, r, http.StatusBadRequest, validationMessage(err), err)
	case errors.Is(err, recordstore.ErrNotFound):
		h.respondError(w, r, http.StatusNotFound, notFoundMsg, err)
	case errors.Is(err, recordstore.ErrLoad), errors.Is(err, recordstore.ErrSave):
		h.respondError(w, r, http.StatusInternalServerError, "No se pudo actualizar blog-articulos.json", err)
	case errors.Is(err, htmlpage.ErrWrite):
		h.respondError(w, r, http.StatusInternalServerError, "Error al escribir archivo", err)
	default:
		h.respondError(w, r, http.StatusInternalServerError, "No se pudo guardar el artículo", err)
	}
}

func validationMessage(err error) string {
	ve := validator.ExtractValidationErrors(err)
	if len(ve) == 0 {
		return "Datos de artículo inválidos"
	}
	if ve[0].Field == "filename" {
		return "Nombre de archivo inválido"
	}
	return "Campo requerido faltante: " + ve[0].Field
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.log.LogAttrs(r.Context(), level, "article mutation rejected",
		logger.Error(err),
		logger.RequestID(requestid.FromContext(r.Context())),
		slog.Int("status_code", status),
	)
	respondJSON(w, status, errorResponse{Error: message})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func corsHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}
