package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/lokeshsukhwal/Dasher/internal/hours"
	"github.com/lokeshsukhwal/Dasher/internal/report"
)

// maxBodyBytes caps a compare request body.
const maxBodyBytes = 1 << 20

// CompareRequest is the body of POST /v1/compare. Optional fields fall back
// to the server defaults.
type CompareRequest struct {
	OldHours         string `json:"oldHours" validate:"required"`
	NewHours         string `json:"newHours" validate:"required"`
	ToleranceMinutes *int   `json:"toleranceMinutes,omitempty" validate:"omitempty,min=0,max=60"`
	WeekStart        string `json:"weekStart,omitempty"`
	OldFormat        string `json:"oldFormat,omitempty" validate:"omitempty,oneof=auto detect compact freetext free-text free"`
	NewFormat        string `json:"newFormat,omitempty" validate:"omitempty,oneof=auto detect compact freetext free-text free"`
}

// CompareHandler serves the comparison endpoints.
type CompareHandler struct {
	defaults report.Options
	validate *validator.Validate
	log      *zap.Logger
}

func NewCompareHandler(defaults report.Options, log *zap.Logger) *CompareHandler {
	return &CompareHandler{
		defaults: defaults,
		validate: validator.New(),
		log:      log,
	}
}

func (h *CompareHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeSuccess(h.log, w, map[string]string{"message": "pong"})
}

func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(h.log, w, http.StatusBadRequest, "reading request body")
		return
	}
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(h.log, w, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	opts, err := h.options(req)
	if err != nil {
		writeError(h.log, w, http.StatusBadRequest, err.Error())
		return
	}
	if err := report.Validate(req.OldHours, req.NewHours); err != nil {
		writeError(h.log, w, http.StatusBadRequest, err.Error())
		return
	}

	res := report.Build(req.OldHours, req.NewHours, opts)
	h.log.Debug("compared hours",
		zap.Int("reducedDays", res.Summary.ReducedDays),
		zap.Int("extendedDays", res.Summary.ExtendedDays),
		zap.Bool("flagForUpdate", res.Summary.ShouldFlagForUpdate),
	)
	writeSuccess(h.log, w, res)
}

// options validates req and merges it over the handler defaults.
func (h *CompareHandler) options(req CompareRequest) (report.Options, error) {
	opts := h.defaults

	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return opts, errors.New(formatValidationErrors(verrs))
		}
		return opts, err
	}

	if req.ToleranceMinutes != nil {
		opts.ToleranceMinutes = *req.ToleranceMinutes
	}
	if req.WeekStart != "" {
		day, ok := hours.ParseDay(req.WeekStart)
		if !ok {
			return opts, fmt.Errorf("weekStart: unknown day %q", req.WeekStart)
		}
		opts.WeekStart = day
	}
	if req.OldFormat != "" {
		opts.OldDialect, _ = hours.ParseDialect(req.OldFormat)
	}
	if req.NewFormat != "" {
		opts.NewDialect, _ = hours.ParseDialect(req.NewFormat)
	}
	return opts, nil
}

func formatValidationErrors(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s must be between 0 and 60", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s", field, strings.Join(strings.Fields(fe.Param()), ", ")))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, ", ")
}
