package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		DoctorID:    appointment.DoctorID,
		Date:        appointment.Date.Format(dateLayout),
		Time:        appointment.TimeOfDay,
		ScheduledAt: appointment.ScheduledAt,
		Detail:      appointment.Detail,
		Status:      string(appointment.Status),
		Patient:     UserToSummary(&appointment.Patient),
		Doctor:      UserToSummary(&appointment.Doctor),
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// ExamToResponse converts an Exam entity to its response DTO
func ExamToResponse(exam *entity.Exam) *dto.ExamResponse {
	if exam == nil {
		return nil
	}
	return &dto.ExamResponse{
		ID:          exam.ID,
		Name:        exam.Name,
		PatientID:   exam.PatientID,
		DoctorID:    exam.DoctorID,
		Date:        exam.Date.Format(dateLayout),
		Time:        exam.TimeOfDay,
		ScheduledAt: exam.ScheduledAt,
		Detail:      exam.Detail,
		Status:      string(exam.Status),
		Patient:     UserToSummary(&exam.Patient),
		Doctor:      UserToSummary(&exam.Doctor),
		Results:     ExamResultsToResponses(exam.Results),
		CreatedAt:   exam.CreatedAt,
		UpdatedAt:   exam.UpdatedAt,
	}
}

func ExamsToResponses(exams []entity.Exam) []dto.ExamResponse {
	responses := make([]dto.ExamResponse, len(exams))
	for i := range exams {
		responses[i] = *ExamToResponse(&exams[i])
	}
	return responses
}
