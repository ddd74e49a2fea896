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

// ExamUsecase mirrors the appointment booking contract with an extra exam
// name and attached results.
type ExamUsecase interface {
	CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*dto.ExamResponse, error)
	GetExams(ctx context.Context) ([]dto.ExamResponse, error)
	GetExam(ctx context.Context, id uuid.UUID) (*dto.ExamResponse, error)
	UpdateExam(ctx context.Context, id uuid.UUID, req *dto.UpdateBookingRequest) (*dto.ExamResponse, error)
	CancelExam(ctx context.Context, id uuid.UUID) error
}

type examUsecase struct {
	log        *logrus.Logger
	examRepo   repository.ExamRepository
	userRepo   repository.UserRepository
	bookingCfg config.BookingConfig
}

func NewExamUsecase(
	log *logrus.Logger,
	examRepo repository.ExamRepository,
	userRepo repository.UserRepository,
	bookingCfg config.BookingConfig,
) ExamUsecase {
	return &examUsecase{
		log:        log,
		examRepo:   examRepo,
		userRepo:   userRepo,
		bookingCfg: bookingCfg,
	}
}

func (u *examUsecase) CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*dto.ExamResponse, error) {
	callerID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := checkCreatePermission(role, policy.EntityExam, callerID, req.PatientID, req.DoctorID); err != nil {
		return nil, err
	}

	if err := resolveBookingParties(ctx, u.userRepo, req.PatientID, req.DoctorID); err != nil {
		return nil, err
	}

	date, scheduledAt, err := resolveSchedule(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	occupied, err := u.examRepo.CountAtSlot(ctx, req.DoctorID, scheduledAt, slotOccupancy(u.bookingCfg))
	if err != nil {
		u.log.Warnf("Failed to check slot availability: %+v", err)
		return nil, err
	}
	if occupied > 0 {
		return nil, apperrors.ErrSlotUnavailable
	}

	exam := &entity.Exam{
		Name:        req.Name,
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Date:        date,
		TimeOfDay:   req.Time,
		ScheduledAt: scheduledAt,
		Detail:      req.Detail,
		Status:      entity.BookingStatusScheduled,
	}

	if err := u.examRepo.Create(ctx, exam); err != nil {
		if isDuplicateKeyError(err, "slot") {
			return nil, apperrors.ErrSlotUnavailable
		}
		u.log.Warnf("Failed to create exam: %+v", err)
		return nil, err
	}

	full, err := u.examRepo.FindByID(ctx, exam.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload exam %s: %+v", exam.ID, err)
		return converter.ExamToResponse(exam), nil
	}

	u.log.Infof("Exam created: id=%s, doctor=%s, at=%s", exam.ID, req.DoctorID, scheduledAt)
	return converter.ExamToResponse(full), nil
}

func (u *examUsecase) GetExams(ctx context.Context) ([]dto.ExamResponse, error) {
	callerID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	exams, err := u.examRepo.FindAll(ctx, policy.ScopeFor(role, callerID))
	if err != nil {
		u.log.Warnf("Failed to list exams: %+v", err)
		return nil, err
	}

	return converter.ExamsToResponses(exams), nil
}

func (u *examUsecase) GetExam(ctx context.Context, id uuid.UUID) (*dto.ExamResponse, error) {
	callerID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	exam, err := u.examRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find exam %s: %+v", id, err)
		return nil, err
	}
	if exam == nil {
		return nil, apperrors.ErrBookingNotFound
	}

	own := policy.Ownership{PatientID: exam.PatientID, DoctorID: exam.DoctorID}
	if !policy.Allows(role, policy.EntityExam, policy.OpRead, callerID, own) {
		return nil, apperrors.ErrForbidden
	}

	return converter.ExamToResponse(exam), nil
}

func (u *examUsecase) UpdateExam(ctx context.Context, id uuid.UUID, req *dto.UpdateBookingRequest) (*dto.ExamResponse, error) {
	callerID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	exam, err := u.examRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find exam %s: %+v", id, err)
		return nil, err
	}
	if exam == nil {
		return nil, apperrors.ErrBookingNotFound
	}

	own := policy.Ownership{PatientID: exam.PatientID, DoctorID: exam.DoctorID}
	if !policy.Allows(role, policy.EntityExam, policy.OpUpdate, callerID, own) {
		return nil, apperrors.ErrForbidden
	}

	if err := applyStatusUpdate(req.Status, req.Detail, &exam.Status, &exam.Detail); err != nil {
		return nil, err
	}

	if err := u.examRepo.Update(ctx, exam); err != nil {
		if isDuplicateKeyError(err, "slot") {
			return nil, apperrors.ErrSlotUnavailable
		}
		u.log.Warnf("Failed to update exam %s: %+v", id, err)
		return nil, err
	}

	return converter.ExamToResponse(exam), nil
}

func (u *examUsecase) CancelExam(ctx context.Context, id uuid.UUID) error {
	callerID, role, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	exam, err := u.examRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find exam %s: %+v", id, err)
		return err
	}
	if exam == nil {
		return apperrors.ErrBookingNotFound
	}

	own := policy.Ownership{PatientID: exam.PatientID, DoctorID: exam.DoctorID}
	if !policy.Allows(role, policy.EntityExam, policy.OpCancel, callerID, own) {
		return apperrors.ErrForbidden
	}

	rows, err := u.examRepo.Cancel(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to cancel exam %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return nil
	}

	u.log.Infof("Exam canceled: id=%s", id)
	return nil
}
