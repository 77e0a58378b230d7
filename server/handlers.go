package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"pnl/types"

	"github.com/rs/zerolog"
)

type handler struct {
	maxBody      int64
	referralRate float64
	adsRate      float64
	logger       zerolog.Logger
}

// Samples returns the starter products with their metrics.
func (h *handler) Samples(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, newPortfolioResponse(types.SampleProducts()))
}

// Metrics computes the derived metrics of one product.
func (h *handler) Metrics(w http.ResponseWriter, r *http.Request) {
	var req ProductRequestDTO
	if !h.decode(w, r, &req) {
		return
	}
	respondJSON(w, h.logger, http.StatusOK, newProductResult(req.toProduct(h.referralRate, h.adsRate)))
}

// Portfolio computes per-product metrics and the portfolio summary.
func (h *handler) Portfolio(w http.ResponseWriter, r *http.Request) {
	var req PortfolioRequestDTO
	if !h.decode(w, r, &req) {
		return
	}

	products := make([]types.Product, len(req.Products))
	for i, d := range req.Products {
		products[i] = d.toProduct(h.referralRate, h.adsRate)
	}
	respondJSON(w, h.logger, http.StatusOK, newPortfolioResponse(products))
}

// decode reads a size-limited JSON body into dst, writing the error
// response itself when it fails.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, h.logger, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
			return false
		}
		h.logger.Debug().Err(err).Str("path", r.URL.Path).Msg("rejecting request body")
		respondError(w, h.logger, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return false
	}
	return true
}

// respondJSON marshals data before writing the header. Values JSON cannot
// carry, such as an overflowed +Inf metric, answer 422 instead.
func respondJSON(w http.ResponseWriter, logger zerolog.Logger, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		var unsupported *json.UnsupportedValueError
		if errors.As(err, &unsupported) {
			logger.Warn().Err(err).Msg("response holds a non-finite number")
			respondError(w, logger, http.StatusUnprocessableEntity, "non_finite_result",
				"result is too large to represent; check for overflowing amounts")
			return
		}
		logger.Error().Err(err).Msg("failed to encode response")
		respondError(w, logger, http.StatusInternalServerError, "encode_failed", "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.Debug().Err(err).Msg("failed to write response")
	}
}

func respondError(w http.ResponseWriter, logger zerolog.Logger, status int, code, message string) {
	respondJSON(w, logger, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
