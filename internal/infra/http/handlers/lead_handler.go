package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/novaclaw/agency-api/internal/entity"
	"github.com/novaclaw/agency-api/internal/infra/http/middleware"
	"github.com/novaclaw/agency-api/internal/usecase"
)

const leadListLimit = 100

type LeadHandler struct {
	CaptureUC   *usecase.CaptureLeadUseCase
	Leads       entity.LeadRepositoryInterface
	CronSecret  string
	rateLimiter *RateLimiter
}

func NewLeadHandler(uc *usecase.CaptureLeadUseCase, leads entity.LeadRepositoryInterface, cronSecret string) *LeadHandler {
	return &LeadHandler{
		CaptureUC:   uc,
		Leads:       leads,
		CronSecret:  cronSecret,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

// HandleCapture is the public form endpoint: POST /leads.
func (h *LeadHandler) HandleCapture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeErrorResponse(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if validationErrors := usecase.ValidateCaptureLeadInput(input); len(validationErrors) > 0 {
		writeValidationErrors(w, validationErrors)
		return
	}

	output, err := h.CaptureUC.Execute(ctx, input)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to capture lead")
		return
	}

	switch {
	case !output.Stored:
		middleware.RecordLeadCapture("degraded")
	case output.Revisit:
		middleware.RecordLeadCapture("revisit")
	default:
		middleware.RecordLeadCapture("new")
	}
	if h.CaptureUC.Notifier != nil && !output.Notified {
		middleware.RecordIntegrationError("notifier")
	}

	status := http.StatusOK
	if output.Stored && !output.Revisit {
		status = http.StatusCreated
	}

	var data *entity.Lead
	if output.Stored {
		data = output.Lead
	}

	writeJSON(w, status, map[string]any{
		"success": true,
		"data":    data,
		"message": output.Message,
	})
}

// HandleList serves GET /leads for the sales cron, gated by a shared secret.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if h.CronSecret == "" || authHeader != "Bearer "+h.CronSecret {
		writeErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if h.Leads == nil {
		writeErrorResponse(w, http.StatusInternalServerError, "Database not configured")
		return
	}

	leads, err := h.Leads.FindRecentUnconverted(r.Context(), leadListLimit)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to fetch leads")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"leads": leads})
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
