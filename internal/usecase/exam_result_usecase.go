package usecase

import (
	"context"
	"time"

	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/policy"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ExamResultUsecase publishes and reads exam results. Results are append-only:
// there is no update or delete.
type ExamResultUsecase interface {
	CreateResult(ctx context.Context, req *dto.CreateExamResultRequest) (*dto.ExamResultResponse, error)
	GetResults(ctx context.Context) ([]dto.ExamResultResponse, error)
	GetResult(ctx context.Context, id uuid.UUID) (*dto.ExamResultResponse, error)
}

type examResultUsecase struct {
	log        *logrus.Logger
	resultRepo repository.ExamResultRepository
	examRepo   repository.ExamRepository
	userRepo   repository.UserRepository
}

func NewExamResultUsecase(
	log *logrus.Logger,
	resultRepo repository.ExamResultRepository,
	examRepo repository.ExamRepository,
	userRepo repository.UserRepository,
) ExamResultUsecase {
	return &examResultUsecase{
		log:        log,
		resultRepo: resultRepo,
		examRepo:   examRepo,
		userRepo:   userRepo,
	}
}

func (u *examResultUsecase) CreateResult(ctx context.Context, req *dto.CreateExamResultRequest) (*dto.ExamResultResponse, error) {
	callerID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	own := policy.Ownership{PatientID: req.PatientID, DoctorID: req.DoctorID}
	if !policy.Allows(role, policy.EntityExamResult, policy.OpCreate, callerID, own) {
		return nil, apperrors.ErrForbidden
	}

	exam, err := u.examRepo.FindByID(ctx, req.ExamID)
	if err != nil {
		u.log.Warnf("Failed to find exam %s: %+v", req.ExamID, err)
		return nil, err
	}
	if exam == nil {
		return nil, apperrors.ErrExamNotFound
	}

	if err := resolveBookingParties(ctx, u.userRepo, req.PatientID, req.DoctorID); err != nil {
		return nil, err
	}

	result := &entity.ExamResult{
		ExamID:      req.ExamID,
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Detail:      req.Detail,
		FileURL:     req.FileURL,
		PublishedAt: time.Now(),
	}

	if err := u.resultRepo.Create(ctx, result); err != nil {
		u.log.Warnf("Failed to create exam result: %+v", err)
		return nil, err
	}

	full, err := u.resultRepo.FindByID(ctx, result.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload exam result %s: %+v", result.ID, err)
		return converter.ExamResultToResponse(result), nil
	}

	u.log.Infof("Exam result published: id=%s, exam=%s", result.ID, req.ExamID)
	return converter.ExamResultToResponse(full), nil
}

// GetResults lists the caller's visible results, newest publication first.
func (u *examResultUsecase) GetResults(ctx context.Context) ([]dto.ExamResultResponse, error) {
	callerID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	results, err := u.resultRepo.FindAll(ctx, policy.ScopeFor(role, callerID))
	if err != nil {
		u.log.Warnf("Failed to list exam results: %+v", err)
		return nil, err
	}

	return converter.ExamResultsToResponses(results), nil
}

func (u *examResultUsecase) GetResult(ctx context.Context, id uuid.UUID) (*dto.ExamResultResponse, error) {
	callerID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := u.resultRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find exam result %s: %+v", id, err)
		return nil, err
	}
	if result == nil {
		return nil, apperrors.ErrResultNotFound
	}

	own := policy.Ownership{PatientID: result.PatientID, DoctorID: result.DoctorID}
	if !policy.Allows(role, policy.EntityExamResult, policy.OpRead, callerID, own) {
		return nil, apperrors.ErrForbidden
	}

	return converter.ExamResultToResponse(result), nil
}
