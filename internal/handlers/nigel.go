package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/example/nigelapi/internal/cache"
	"github.com/example/nigelapi/internal/logging"
	"github.com/example/nigelapi/internal/metrics"
	"github.com/example/nigelapi/internal/prime"
	"github.com/example/nigelapi/internal/rate"
	"github.com/example/nigelapi/internal/types"
	"github.com/example/nigelapi/pkg/jsonutil"
)

// NigelDeps bundles dependencies needed by the handler.
type NigelDeps struct {
	Cache   *cache.Cache
	Timeout time.Duration
	MaxN    int
}

// NigelHandler serves GET /api/nigel-number.
type NigelHandler struct{ Deps NigelDeps }

func NewNigelHandler(deps NigelDeps) *NigelHandler { return &NigelHandler{Deps: deps} }

// validateN checks the raw query for a usable n. On failure the second
// return value carries the details string for the 400 body.
func validateN(q url.Values, maxN int) (int, string) {
	if !q.Has("n") {
		return 0, "This field is required."
	}
	n, err := strconv.Atoi(q.Get("n"))
	if err != nil {
		return 0, "A valid integer is required."
	}
	if n <= 0 {
		return 0, "Parameter 'n' must be greater than 0"
	}
	if maxN > 0 && n > maxN {
		return 0, fmt.Sprintf("Parameter 'n' must not exceed %d", maxN)
	}
	return n, ""
}

func (h *NigelHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ip := rate.IPFromRequest(r)
	logging.Logger.Debug("calculation request",
		zap.String("ip", ip),
		zap.String("query", r.URL.RawQuery))

	n, details := validateN(r.URL.Query(), h.Deps.MaxN)
	if details != "" {
		logging.Logger.Warn("invalid input",
			zap.String("ip", ip),
			zap.String("details", details))
		jsonutil.Error(w, http.StatusBadRequest, "Invalid input", details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Deps.Timeout)
	defer cancel()
	val, source, err := h.Deps.Cache.GetOrCompute(ctx, n, func(context.Context) (cache.Value, error) {
		res, err := prime.Compute(n)
		if err != nil {
			return cache.Value{}, err
		}
		return cache.Value{Result: res, ComputedAt: time.Now().UTC()}, nil
	})
	if err != nil {
		// unreachable with validated input, kept per the fail-fast contract
		logging.Logger.Error("calculation error", zap.Int("n", n), zap.Error(err))
		jsonutil.Error(w, http.StatusBadRequest, "Calculation error", err.Error())
		return
	}

	metrics.CalculationsTotal.WithLabelValues(source).Inc()
	resp := types.NewNigelNumberResponse(n, val.Result)
	logging.Logger.Info("calculation complete",
		zap.Int("n", n),
		zap.Int64("nigel_number", resp.NigelNumber),
		zap.Int("primes_count", resp.PrimeCount()),
		zap.String("source", source))
	jsonutil.JSON(w, http.StatusOK, resp)
}
