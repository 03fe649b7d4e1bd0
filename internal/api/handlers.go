package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paylens/salary-compare/internal/tax"
)

// Handlers contains the HTTP handlers over the calculation engine
type Handlers struct {
	registry   *tax.Registry
	comparator *tax.Comparator
}

// NewHandlers creates handlers over a built registry
func NewHandlers(registry *tax.Registry) *Handlers {
	return &Handlers{
		registry:   registry,
		comparator: tax.NewComparator(registry),
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"time":    time.Now().UTC().Format(time.RFC3339),
		"regimes": len(h.registry.Keys()),
	})
}

// ListRegimes handles GET /api/regimes — the selection menu for clients.
func (h *Handlers) ListRegimes(w http.ResponseWriter, r *http.Request) {
	infos := h.registry.Infos()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"regimes": infos,
		"count":   len(infos),
	})
}

// Calculate handles GET /api/calculate?regime=<key>&gross=<amount>
func (h *Handlers) Calculate(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("regime")
	gross, err := tax.ParseAmount(r.URL.Query().Get("gross"))
	if err != nil {
		writeError(w, err)
		return
	}

	calc, err := h.registry.Get(key)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := calc.Compute(gross)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Compare handles GET /api/compare?gross=<amount>&regimes=<key,key,...>
// Results come back in the requested key order. With no regimes parameter,
// all registered regimes are compared in registration order.
func (h *Handlers) Compare(w http.ResponseWriter, r *http.Request) {
	gross, err := tax.ParseAmount(r.URL.Query().Get("gross"))
	if err != nil {
		writeError(w, err)
		return
	}

	keys := h.registry.Keys()
	if raw := r.URL.Query().Get("regimes"); raw != "" {
		keys = keys[:0]
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
	}

	results, err := h.comparator.Compare(gross, keys)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, compareResponse{
		GrossSalary: gross,
		Results:     results,
	})
}

type compareResponse struct {
	GrossSalary decimal.Decimal `json:"gross_salary"`
	Results     []tax.Result    `json:"results"`
}

// writeError maps engine errors onto the API surface: bad input and unknown
// keys are the caller's fault and carry the offending value; anything else
// is an internal defect and stays opaque.
func writeError(w http.ResponseWriter, err error) {
	var invalidInput *tax.InvalidInputError
	var unknown *tax.UnknownCalculatorError
	switch {
	case errors.As(err, &invalidInput):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.As(err, &unknown):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		log.Printf("ERROR: calculation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal calculation error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("ERROR: encoding response: %v", err)
	}
}
