package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

// ExamResultToResponse converts an ExamResult entity to its response DTO
func ExamResultToResponse(result *entity.ExamResult) *dto.ExamResultResponse {
	if result == nil {
		return nil
	}
	return &dto.ExamResultResponse{
		ID:          result.ID,
		ExamID:      result.ExamID,
		PatientID:   result.PatientID,
		DoctorID:    result.DoctorID,
		Detail:      result.Detail,
		FileURL:     result.FileURL,
		Patient:     UserToSummary(&result.Patient),
		Doctor:      UserToSummary(&result.Doctor),
		PublishedAt: result.PublishedAt,
	}
}

func ExamResultsToResponses(results []entity.ExamResult) []dto.ExamResultResponse {
	if len(results) == 0 {
		return nil
	}
	responses := make([]dto.ExamResultResponse, len(results))
	for i := range results {
		responses[i] = *ExamResultToResponse(&results[i])
	}
	return responses
}
