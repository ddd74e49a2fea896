package handler

import (
	"encoding/json"
	"net/http"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/usecase"
	"clinic-booking-api/pkg/apperrors"
	"clinic-booking-api/pkg/response"
	"clinic-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ExamHandler struct {
	examUsecase usecase.ExamUsecase
	validator   *validator.CustomValidator
}

func NewExamHandler(examUsecase usecase.ExamUsecase, validator *validator.CustomValidator) *ExamHandler {
	return &ExamHandler{
		examUsecase: examUsecase,
		validator:   validator,
	}
}

func (h *ExamHandler) CreateExam(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, apperrors.CodeValidation, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.WriteError(w, apperrors.Validation(h.validator.FormatValidationErrors(err)))
		return
	}

	exam, err := h.examUsecase.CreateExam(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Exam booked successfully", "exame", exam)
}

func (h *ExamHandler) GetExams(w http.ResponseWriter, r *http.Request) {
	exams, err := h.examUsecase.GetExams(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", "exames", exams)
}

func (h *ExamHandler) GetExam(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, apperrors.CodeValidation, "Invalid exam ID", nil)
		return
	}

	exam, err := h.examUsecase.GetExam(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", "exame", exam)
}

func (h *ExamHandler) UpdateExam(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, apperrors.CodeValidation, "Invalid exam ID", nil)
		return
	}

	var req dto.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, apperrors.CodeValidation, "Invalid request body", nil)
		return
	}

	exam, err := h.examUsecase.UpdateExam(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Exam updated successfully", "exame", exam)
}

func (h *ExamHandler) CancelExam(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, apperrors.CodeValidation, "Invalid exam ID", nil)
		return
	}

	if err := h.examUsecase.CancelExam(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Exam canceled successfully", "", nil)
}
