package handler

import (
	"strconv"

	"jobsync/internal/delivery/http/dto"
	"jobsync/internal/delivery/http/middleware"
	"jobsync/internal/pkg/response"
	"jobsync/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	if r == nil {
		return
	}
	guard = orPass(guard)
	r.Get("/matches", guard, h.ListMatches)
	r.Get("/jobs/:job_id/match", guard, h.GetMatch)
}

func (h *MatchHandler) ListMatches(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	maxReasons := 0
	if raw := c.Query("max_reasons"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid max_reasons", nil, err)
		}
		maxReasons = v
	}

	matches, err := h.uc.RankJobsForSeeker(c.Context(), userID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchListResponse(matches, maxReasons))
}

func (h *MatchHandler) GetMatch(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuidParam(c, "job_id")
	if err != nil {
		return err
	}

	m, err := h.uc.MatchJob(c.Context(), userID, jobID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}
	if m == nil {
		return middleware.NewAppError(fiber.StatusNotFound, "No match available", nil, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobMatchResponse(*m, 0))
}
