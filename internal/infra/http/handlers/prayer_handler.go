package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/adbonpastor/church-api/internal/entity"
)

type PrayerRequestRepositoryInterface interface {
	Create(ctx context.Context, p *entity.PrayerRequest) error
	FindAll(ctx context.Context, approvedOnly bool) ([]*entity.PrayerRequest, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	SetAnswered(ctx context.Context, id string, answered bool) error
	Delete(ctx context.Context, id string) error
}

type TestimonyRepositoryInterface interface {
	Create(ctx context.Context, t *entity.Testimony) error
	FindAll(ctx context.Context, approvedOnly bool) ([]*entity.Testimony, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	Delete(ctx context.Context, id string) error
}

// PrayerHandler cobre pedidos de oração e testemunhos: os dois formulários
// públicos passam pelo mesmo rate limit por IP.
type PrayerHandler struct {
	PrayerRepo    PrayerRequestRepositoryInterface
	TestimonyRepo TestimonyRepositoryInterface
	rateLimiter   *RateLimiter
}

func NewPrayerHandler(prayerRepo PrayerRequestRepositoryInterface, testimonyRepo TestimonyRepositoryInterface) *PrayerHandler {
	return &PrayerHandler{
		PrayerRepo:    prayerRepo,
		TestimonyRepo: testimonyRepo,
		rateLimiter:   NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

// SubmitPrayer (POST /prayer-requests)
func (h *PrayerHandler) SubmitPrayer(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	var input struct {
		MemberID    string `json:"member_id"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	request, err := entity.NewPrayerRequest(input.MemberID, input.Title, input.Description)
	if err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.PrayerRepo.Create(r.Context(), request); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao criar pedido de oração")
		return
	}

	writeJSON(w, http.StatusCreated, request)
}

// ListPrayers (GET /prayer-requests) público só vê aprovados;
// ?all=true (admin) lista tudo
func (h *PrayerHandler) ListPrayers(w http.ResponseWriter, r *http.Request) {
	approvedOnly := r.URL.Query().Get("all") != "true"

	requests, err := h.PrayerRepo.FindAll(r.Context(), approvedOnly)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao listar pedidos")
		return
	}

	writeJSON(w, http.StatusOK, requests)
}

// ApprovePrayer (PATCH /admin/prayer-requests/{id}/approve)
func (h *PrayerHandler) ApprovePrayer(w http.ResponseWriter, r *http.Request) {
	h.setPrayerFlag(w, r, h.PrayerRepo.SetApproved)
}

// AnswerPrayer (PATCH /admin/prayer-requests/{id}/answer)
func (h *PrayerHandler) AnswerPrayer(w http.ResponseWriter, r *http.Request) {
	h.setPrayerFlag(w, r, h.PrayerRepo.SetAnswered)
}

func (h *PrayerHandler) setPrayerFlag(w http.ResponseWriter, r *http.Request, set func(context.Context, string, bool) error) {
	id := chi.URLParam(r, "id")

	var input struct {
		Value bool `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if err := set(r.Context(), id, input.Value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "pedido não encontrado")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao atualizar pedido")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"value": input.Value})
}

// SubmitTestimony (POST /testimonies)
func (h *PrayerHandler) SubmitTestimony(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	var input struct {
		MemberID string `json:"member_id"`
		Title    string `json:"title"`
		Content  string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	testimony, err := entity.NewTestimony(input.MemberID, input.Title, input.Content)
	if err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.TestimonyRepo.Create(r.Context(), testimony); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao criar testemunho")
		return
	}

	writeJSON(w, http.StatusCreated, testimony)
}

// ListTestimonies (GET /testimonies)
func (h *PrayerHandler) ListTestimonies(w http.ResponseWriter, r *http.Request) {
	approvedOnly := r.URL.Query().Get("all") != "true"

	testimonies, err := h.TestimonyRepo.FindAll(r.Context(), approvedOnly)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao listar testemunhos")
		return
	}

	writeJSON(w, http.StatusOK, testimonies)
}

// ApproveTestimony (PATCH /admin/testimonies/{id}/approve)
func (h *PrayerHandler) ApproveTestimony(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input struct {
		Value bool `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if err := h.TestimonyRepo.SetApproved(r.Context(), id, input.Value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "testemunho não encontrado")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao atualizar testemunho")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"value": input.Value})
}

func getClientIP(r *http.Request) string {

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
