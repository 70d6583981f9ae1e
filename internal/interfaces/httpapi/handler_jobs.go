package httpapi

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-portal/internal/usecase"
)

type warmupJobRequest struct {
	LeagueIDs  []int64 `json:"leagueIds" validate:"omitempty,max=64,dive,gt=0"`
	Season     int     `json:"season" validate:"omitempty,gte=1900,lte=2100"`
	MaxWorkers int     `json:"maxWorkers" validate:"omitempty,gte=1,lte=16"`
}

func (h *Handler) RunWarmupJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunWarmupJob")
	defer span.End()

	if h.warmupService == nil {
		writeError(ctx, w, fmt.Errorf("%w: warmup service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	req, err := decodeWarmupJobRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.warmupService.Run(ctx, usecase.WarmupInput{
		LeagueIDs:  req.LeagueIDs,
		Season:     req.Season,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "run warmup job failed", "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "warmup job finished",
		"season", result.Season,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)
	writeSuccess(ctx, w, http.StatusOK, warmupResultToDTO(result))
}

const maxJobPayloadBytes = 64 << 10

// decodeWarmupJobRequest treats an empty body as "warm every club league".
func decodeWarmupJobRequest(r *http.Request) (warmupJobRequest, error) {
	if r.Body == nil {
		return warmupJobRequest{}, nil
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxJobPayloadBytes))
	if err != nil {
		return warmupJobRequest{}, fmt.Errorf("%w: read payload: %v", usecase.ErrInvalidInput, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return warmupJobRequest{}, nil
	}

	decoder := sonic.ConfigDefault.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()

	var req warmupJobRequest
	if err := decoder.Decode(&req); err != nil {
		return warmupJobRequest{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return req, nil
}
