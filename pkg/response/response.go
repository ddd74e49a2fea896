package response

import (
	"encoding/json"
	"net/http"

	"clinic-booking-api/pkg/apperrors"
)

type errorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Success writes `{"message": ..., "<key>": <data>}`. Message and data are
// both optional.
func Success(w http.ResponseWriter, statusCode int, message, key string, data interface{}) {
	body := map[string]interface{}{}
	if message != "" {
		body["message"] = message
	}
	if key != "" {
		body[key] = data
	}
	JSON(w, statusCode, body)
}

// Error writes the uniform `{"error": {"code", "message", "details?"}}` body.
func Error(w http.ResponseWriter, statusCode int, code, message string, details interface{}) {
	JSON(w, statusCode, errorEnvelope{Error: errorBody{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// WriteError renders a mapped HTTPError.
func WriteError(w http.ResponseWriter, httpErr *apperrors.HTTPError) {
	Error(w, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// FromError maps any error through the taxonomy and writes it.
func FromError(w http.ResponseWriter, err error) {
	WriteError(w, apperrors.MapToHTTP(err))
}
