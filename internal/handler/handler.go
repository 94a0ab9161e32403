package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"truerate-engine/internal/engine"
	"truerate-engine/internal/model"
	"truerate-engine/internal/repository"
)

type Handler struct {
	cache repository.CacheRepository
}

func New(cache repository.CacheRepository) *Handler {
	return &Handler{cache: cache}
}

// Handle is the single fasthttp entry point. The bare operation routes
// wrap the body into a request envelope; /v1/calculate accepts the
// envelope directly.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	if path == "/health" {
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"status":"ok"}`)
		return
	}

	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.CalculationRequest
	switch path {
	case "/v1/calculate":
		if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		if req.Operation == "" {
			writeError(ctx, fasthttp.StatusBadRequest, "Operation is required")
			return
		}
	case "/v1/contract":
		req = wrap(model.OpContractCalculation, ctx.PostBody())
	case "/v1/paycheck":
		req = wrap(model.OpPaycheckCalculation, ctx.PostBody())
	case "/v1/tax-breakdown":
		req = wrap(model.OpTaxBreakdown, ctx.PostBody())
	case "/v1/compare":
		req = wrap(model.OpCompareOffers, ctx.PostBody())
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
		return
	}

	key := cacheKey(&req)
	if cached, ok := h.cache.Get(key); ok {
		ctx.SetContentType("application/json")
		ctx.SetBodyString(cached)
		return
	}

	resp := engine.Process(&req)

	body, err := json.Marshal(resp)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}

	// Identical inputs always produce identical results, so only
	// successful envelopes are worth replaying.
	if resp.CalculationMetadata.CalculationOutcome == model.OutcomeSuccess {
		h.cache.Set(key, string(body))
	}

	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func wrap(operation string, body []byte) model.CalculationRequest {
	return model.CalculationRequest{
		Operation:  operation,
		Properties: body,
	}
}

func cacheKey(req *model.CalculationRequest) string {
	sum := sha256.Sum256(req.Properties)
	return req.Operation + ":" + strconv.Itoa(req.TaxYear) + ":" + req.RequestID + ":" + hex.EncodeToString(sum[:])
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetBody(body)
}
