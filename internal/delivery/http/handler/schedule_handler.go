package handler

import (
	"net/http"

	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/pkg/response"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
	}
}

func (h *ScheduleHandler) GetDailySchedule(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "Missing date query parameter", nil)
		return
	}

	schedule, err := h.scheduleUsecase.GetDailySchedule(r.Context(), date)
	if err != nil {
		if err == usecase.ErrInvalidDateFormat {
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
			return
		}
		response.InternalServerError(w, "Failed to get daily schedule")
		return
	}

	response.Success(w, http.StatusOK, "Daily schedule retrieved successfully", schedule)
}
