package usecase

import (
	"context"
	"time"

	"clinic-booking-api/config"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/policy"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/pkg/apperrors"

	"github.com/google/uuid"
)

const bookingDateLayout = "2006-01-02"

// resolveSchedule parses the date and merges in the HH:MM time-of-day,
// producing the slot-collision instant.
func resolveSchedule(dateStr, timeStr string) (time.Time, time.Time, error) {
	date, err := time.Parse(bookingDateLayout, dateStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidSchedule
	}
	scheduledAt, err := entity.CombineDateTime(date, timeStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidSchedule
	}
	return date, scheduledAt, nil
}

// resolveBookingParties checks that the doctor exists with role MEDICO and
// the patient exists.
func resolveBookingParties(ctx context.Context, userRepo repository.UserRepository, patientID, doctorID uuid.UUID) error {
	doctor, err := userRepo.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil || doctor.Role != entity.RoleMedico {
		return apperrors.ErrInvalidDoctor
	}

	patient, err := userRepo.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return apperrors.ErrInvalidPatient
	}

	return nil
}

// checkCreatePermission applies the policy table to a booking create. A
// patient denied for booking someone else gets the dedicated message.
func checkCreatePermission(role entity.Role, e policy.Entity, caller, patientID, doctorID uuid.UUID) error {
	own := policy.Ownership{PatientID: patientID, DoctorID: doctorID}
	if policy.Allows(role, e, policy.OpCreate, caller, own) {
		return nil
	}
	if role == entity.RolePaciente {
		return apperrors.ErrSelfBookingOnly
	}
	return apperrors.ErrForbidden
}

// slotOccupancy translates the canceled-slot policy into the existence
// pre-check: by default canceled bookings still block the slot.
func slotOccupancy(cfg config.BookingConfig) (includeCanceled bool) {
	return !cfg.TreatCanceledAsAvailable
}

// applyStatusUpdate validates and applies a partial booking update onto the
// given fields.
func applyStatusUpdate(status *string, detail *string, currentStatus *entity.BookingStatus, currentDetail *string) error {
	if status != nil {
		next := entity.BookingStatus(*status)
		if !next.IsValid() {
			return apperrors.ErrInvalidStatus
		}
		*currentStatus = next
	}
	if detail != nil {
		*currentDetail = *detail
	}
	return nil
}
