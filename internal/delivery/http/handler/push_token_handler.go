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

type PushTokenHandler struct {
	pushTokenUsecase usecase.PushTokenUsecase
	validator        *validator.CustomValidator
}

func NewPushTokenHandler(pushTokenUsecase usecase.PushTokenUsecase, validator *validator.CustomValidator) *PushTokenHandler {
	return &PushTokenHandler{
		pushTokenUsecase: pushTokenUsecase,
		validator:        validator,
	}
}

func (h *PushTokenHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPushTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, apperrors.CodeValidation, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.WriteError(w, apperrors.Validation(h.validator.FormatValidationErrors(err)))
		return
	}

	token, err := h.pushTokenUsecase.RegisterToken(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Push token registered successfully", "push_token", token)
}

func (h *PushTokenHandler) DeleteToken(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, apperrors.CodeValidation, "Invalid push token ID", nil)
		return
	}

	if err := h.pushTokenUsecase.DeleteToken(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Push token deleted successfully", "", nil)
}
