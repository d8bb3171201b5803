// Package http exposes the quiz over REST plus a websocket play endpoint.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"hanzi-quiz-service/internal/app"
	"hanzi-quiz-service/internal/domain"
)

// Handler wires the quiz use cases into HTTP routes.
type Handler struct {
	service *app.GameService
	log     *zap.Logger
}

func NewHandler(service *app.GameService, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Routes builds the router. The API serves a browser client, hence CORS.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/questions", h.getQuestions)
		r.Post("/questions", h.addQuestion)
		r.Get("/questions/export", h.exportQuestions)
		r.Post("/generate-question", h.generateQuestion)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.startSession)
			r.Get("/{id}", h.getSession)
			r.Post("/{id}/answer", h.answer)
			r.Post("/{id}/next", h.next)
			r.Post("/{id}/restart", h.restart)
			r.Delete("/{id}", h.endSession)
		})
	})

	r.Get("/ws/play", h.ServePlay)
	return r
}

// getQuestions serves one round's worth of questions for clients that run the
// game locally. A short draw is a server-side failure, never a shorter round.
func (h *Handler) getQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.SampleQuestions(h.service.SessionSize())
	if err != nil {
		h.log.Warn("question fetch rejected", zap.Error(err))
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, questions)
}

func (h *Handler) addQuestion(w http.ResponseWriter, r *http.Request) {
	var draft domain.QuestionDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "invalid question payload")
		return
	}
	question, err := h.service.AddQuestion(draft)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.log.Info("question added", zap.Int("id", question.ID))
	h.respond(w, http.StatusCreated, question)
}

func (h *Handler) exportQuestions(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, h.service.ExportQuestions())
}

func (h *Handler) generateQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.service.GenerateQuestion(r.Context())
	if err != nil {
		h.log.Warn("question generation failed", zap.Error(err))
		h.writeError(w, err)
		return
	}
	h.log.Info("question generated", zap.Int("id", question.ID))
	h.respond(w, http.StatusCreated, question)
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.StartSession(r.Context())
	if err != nil {
		h.log.Warn("session start rejected", zap.Error(err))
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusCreated, snap)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Snapshot(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, snap)
}

type answerRequest struct {
	OptionIndex int `json:"optionIndex"`
}

func (h *Handler) answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeMessage(w, http.StatusBadRequest, "invalid answer payload")
		return
	}
	snap, err := h.service.SelectOption(chi.URLParam(r, "id"), req.OptionIndex)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, snap)
}

func (h *Handler) next(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Advance(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, snap)
}

func (h *Handler) restart(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Restart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, snap)
}

func (h *Handler) endSession(w http.ResponseWriter, r *http.Request) {
	h.service.EndSession(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error("write response", zap.Error(err))
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

func (h *Handler) writeMessage(w http.ResponseWriter, status int, message string) {
	h.respond(w, status, errorResponse{Message: message})
}

// writeError maps the error taxonomy onto status codes: malformed shapes are
// the client's fault, an undersized bank is ours, a garbled generator reply
// is the upstream's.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidationError(err):
		h.writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrSessionNotFound):
		h.writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInsufficientBank):
		h.writeMessage(w, http.StatusInternalServerError, "Not enough questions available. Please add more questions.")
	case errors.Is(err, domain.ErrGenerationExtraction):
		h.writeMessage(w, http.StatusBadGateway, err.Error())
	default:
		h.log.Error("unhandled service error", zap.Error(err))
		h.writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}
