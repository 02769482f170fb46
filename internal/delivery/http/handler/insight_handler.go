package handler

import (
	"jobsync/internal/delivery/http/dto"
	"jobsync/internal/delivery/http/middleware"
	"jobsync/internal/pkg/response"
	"jobsync/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type InsightHandler struct {
	uc usecase.MatchingUsecase
}

func NewInsightHandler(uc usecase.MatchingUsecase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

func (h *InsightHandler) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	if r == nil {
		return
	}
	guard = orPass(guard)
	r.Get("/jobs/:job_id/applicants/:applicant_id/insight", guard, h.GetInsight)
	r.Post("/applications/:application_id/insight", guard, h.RecordInsight)
}

func (h *InsightHandler) GetInsight(c fiber.Ctx) error {
	jobID, err := uuidParam(c, "job_id")
	if err != nil {
		return err
	}
	applicantID, err := uuidParam(c, "applicant_id")
	if err != nil {
		return err
	}

	insight, err := h.uc.ApplicationInsight(c.Context(), jobID, applicantID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}
	if insight == nil {
		return middleware.NewAppError(fiber.StatusNotFound, "No insight available", nil, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewInsightResponse(*insight))
}

func (h *InsightHandler) RecordInsight(c fiber.Ctx) error {
	applicationID, err := uuidParam(c, "application_id")
	if err != nil {
		return err
	}

	insight, err := h.uc.RecordApplicationInsight(c.Context(), applicationID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}
	if insight == nil {
		return middleware.NewAppError(fiber.StatusNotFound, "No insight available", nil, nil)
	}

	return response.Success(c, fiber.StatusCreated, "Insight recorded", dto.NewInsightResponse(*insight))
}
