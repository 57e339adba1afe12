package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"dialtone/internal/formatter/service"
	apperrors "dialtone/pkg/errors"
	httputil "dialtone/pkg/http"
	"dialtone/pkg/logger"
	"dialtone/pkg/model"
	"dialtone/pkg/tabular"
)

// StoreFactory builds a tabular store for a given header row. Batch
// requests can override the configured header row per run, and backends
// need to know it before reading anything.
type StoreFactory func(headerRow int) tabular.Store

type NormalizeRequest struct {
	Value any    `json:"value"`
	Style string `json:"style"`
}

type NormalizeResponse struct {
	Result string `json:"result"`
}

type FormatRequest struct {
	Style     string `json:"style"`
	HeaderRow *int   `json:"header_row"`
}

type FormatterHandler struct {
	service  service.FormatterService
	newStore StoreFactory
	defaults model.Options
	log      *logger.Logger
}

func NewFormatterHandler(service service.FormatterService, newStore StoreFactory, defaults model.Options, log *logger.Logger) *FormatterHandler {
	return &FormatterHandler{
		service:  service,
		newStore: newStore,
		defaults: defaults,
		log:      log,
	}
}

func (h *FormatterHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/normalize", h.Normalize)
	router.POST("/api/v1/sheets/:name/format", h.FormatSheet)
	router.POST("/api/v1/format", h.FormatAllSheets)
}

// Normalize is the single-cell formula endpoint.
func (h *FormatterHandler) Normalize(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req NormalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Normalize", apperrors.InvalidInput("Invalid request body"))
		return
	}

	style := req.Style
	if style == "" {
		style = h.defaults.Style
	}

	result := h.service.NormalizeValue(req.Value, style)
	if err := httputil.WriteSuccess(w, NormalizeResponse{Result: result}); err != nil {
		h.log.Error("failed to write success response", "handler", "Normalize", "error", err)
	}
}

func (h *FormatterHandler) FormatSheet(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	opts, err := h.decodeOptions(r)
	if err != nil {
		h.writeError(w, "FormatSheet", err)
		return
	}

	store := h.newStore(opts.HeaderRow)
	name := ps.ByName("name")

	sheet, err := store.Sheet(r.Context(), name)
	if err != nil {
		h.writeError(w, "FormatSheet", apperrors.NotFound("sheet").WithDetails(map[string]any{
			"sheet": name,
		}))
		return
	}

	report, err := h.service.FormatSheet(r.Context(), sheet, opts)
	if err != nil {
		h.writeError(w, "FormatSheet", err)
		return
	}

	if err := httputil.WriteSuccess(w, report); err != nil {
		h.log.Error("failed to write success response", "handler", "FormatSheet", "error", err)
	}
}

func (h *FormatterHandler) FormatAllSheets(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts, err := h.decodeOptions(r)
	if err != nil {
		h.writeError(w, "FormatAllSheets", err)
		return
	}

	reports, err := h.service.FormatAllSheets(r.Context(), h.newStore(opts.HeaderRow), opts)
	if err != nil {
		h.writeError(w, "FormatAllSheets", err)
		return
	}

	if err := httputil.WriteSuccess(w, reports); err != nil {
		h.log.Error("failed to write success response", "handler", "FormatAllSheets", "error", err)
	}
}

// decodeOptions merges the optional request body over the configured
// defaults. An empty body means "use defaults".
func (h *FormatterHandler) decodeOptions(r *http.Request) (model.Options, error) {
	opts := h.defaults

	var req FormatRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	switch {
	case errors.Is(err, io.EOF):
		return opts, nil
	case err != nil:
		return opts, apperrors.InvalidInput("Invalid request body")
	}

	if req.Style != "" {
		opts.Style = req.Style
	}
	if req.HeaderRow != nil {
		opts.HeaderRow = *req.HeaderRow
	}
	return opts, nil
}

func (h *FormatterHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", writeErr)
	}
}
