package usecase

import (
	"context"

	"clinic-booking-api/config"
	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/policy"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateBookingRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
	bookingCfg      config.BookingConfig
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	bookingCfg config.BookingConfig,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		bookingCfg:      bookingCfg,
	}
}

// CreateAppointment books a (doctor, timestamp) slot. The existence pre-check
// gives friendly conflicts; the partial unique index on consultas arbitrates
// concurrent racers.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	callerID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := checkCreatePermission(role, policy.EntityAppointment, callerID, req.PatientID, req.DoctorID); err != nil {
		return nil, err
	}

	if err := resolveBookingParties(ctx, u.userRepo, req.PatientID, req.DoctorID); err != nil {
		return nil, err
	}

	date, scheduledAt, err := resolveSchedule(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	occupied, err := u.appointmentRepo.CountAtSlot(ctx, req.DoctorID, scheduledAt, slotOccupancy(u.bookingCfg))
	if err != nil {
		u.log.Warnf("Failed to check slot availability: %+v", err)
		return nil, err
	}
	if occupied > 0 {
		return nil, apperrors.ErrSlotUnavailable
	}

	appointment := &entity.Appointment{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Date:        date,
		TimeOfDay:   req.Time,
		ScheduledAt: scheduledAt,
		Detail:      req.Detail,
		Status:      entity.BookingStatusScheduled,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if isDuplicateKeyError(err, "slot") {
			return nil, apperrors.ErrSlotUnavailable
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	full, err := u.appointmentRepo.FindByID(ctx, appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment created: id=%s, doctor=%s, at=%s", appointment.ID, req.DoctorID, scheduledAt)
	return converter.AppointmentToResponse(full), nil
}

// GetAppointments lists everything visible to the caller's role, ordered by
// combined timestamp.
func (u *appointmentUsecase) GetAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	callerID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, policy.ScopeFor(role, callerID))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	callerID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, apperrors.ErrBookingNotFound
	}

	own := policy.Ownership{PatientID: appointment.PatientID, DoctorID: appointment.DoctorID}
	if !policy.Allows(role, policy.EntityAppointment, policy.OpRead, callerID, own) {
		return nil, apperrors.ErrForbidden
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateAppointment persists only the supplied fields.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateBookingRequest) (*dto.AppointmentResponse, error) {
	callerID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, apperrors.ErrBookingNotFound
	}

	own := policy.Ownership{PatientID: appointment.PatientID, DoctorID: appointment.DoctorID}
	if !policy.Allows(role, policy.EntityAppointment, policy.OpUpdate, callerID, own) {
		return nil, apperrors.ErrForbidden
	}

	if err := applyStatusUpdate(req.Status, req.Detail, &appointment.Status, &appointment.Detail); err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		// Un-canceling can collide with a booking that took the slot meanwhile.
		if isDuplicateKeyError(err, "slot") {
			return nil, apperrors.ErrSlotUnavailable
		}
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment soft-deletes by setting status CANCELED; repeating it is
// a no-op, not an error.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id uuid.UUID) error {
	callerID, role, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return apperrors.ErrBookingNotFound
	}

	own := policy.Ownership{PatientID: appointment.PatientID, DoctorID: appointment.DoctorID}
	if !policy.Allows(role, policy.EntityAppointment, policy.OpCancel, callerID, own) {
		return apperrors.ErrForbidden
	}

	rows, err := u.appointmentRepo.Cancel(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		// Already canceled; idempotent.
		return nil
	}

	u.log.Infof("Appointment canceled: id=%s", id)
	return nil
}
