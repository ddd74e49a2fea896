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

type ExamResultHandler struct {
	resultUsecase usecase.ExamResultUsecase
	validator     *validator.CustomValidator
}

func NewExamResultHandler(resultUsecase usecase.ExamResultUsecase, validator *validator.CustomValidator) *ExamResultHandler {
	return &ExamResultHandler{
		resultUsecase: resultUsecase,
		validator:     validator,
	}
}

func (h *ExamResultHandler) CreateResult(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExamResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, apperrors.CodeValidation, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.WriteError(w, apperrors.Validation(h.validator.FormatValidationErrors(err)))
		return
	}

	result, err := h.resultUsecase.CreateResult(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Exam result published successfully", "resultado", result)
}

func (h *ExamResultHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.resultUsecase.GetResults(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", "resultados", results)
}

func (h *ExamResultHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, apperrors.CodeValidation, "Invalid result ID", nil)
		return
	}

	result, err := h.resultUsecase.GetResult(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", "resultado", result)
}
