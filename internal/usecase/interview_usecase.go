package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-interview-scheduler/internal/domain"
	"go-interview-scheduler/internal/scheduling"
	"go-interview-scheduler/pkg/apperror"
	"go-interview-scheduler/pkg/metrics"
	"go-interview-scheduler/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type interviewInput struct {
	SpecialistID    string `validate:"required,uuid"`
	CandidateName   string `validate:"required,max=200,valid_name"`
	InterviewTime   string `validate:"required,timeofday"`
	DurationMinutes int    `validate:"required,gt=0"`
}

type interviewUsecase struct {
	interviewRepo   domain.InterviewRepository
	skillRepo       domain.SkillRepository
	validate        *validator.Validate
	defaultDuration int
}

func NewInterviewUsecase(
	interviewRepo domain.InterviewRepository,
	skillRepo domain.SkillRepository,
	validate *validator.Validate,
	defaultDuration int,
) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo:   interviewRepo,
		skillRepo:       skillRepo,
		validate:        validate,
		defaultDuration: defaultDuration,
	}
}

func (u *interviewUsecase) ScheduleInterview(ctx context.Context, interview *domain.Interview, skillIDs []string) (*domain.Interview, error) {
	interview.CandidateName = strings.TrimSpace(interview.CandidateName)
	interview.InterviewTime = normalizeTimeOfDay(interview.InterviewTime)
	if interview.DurationMinutes == 0 {
		interview.DurationMinutes = u.defaultDuration
	}

	input := interviewInput{
		SpecialistID:    interview.SpecialistID,
		CandidateName:   interview.CandidateName,
		InterviewTime:   interview.InterviewTime,
		DurationMinutes: interview.DurationMinutes,
	}
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	interview.ID = uuid.NewString()
	skillIDs = dedupe(skillIDs)

	if err := u.interviewRepo.Schedule(ctx, interview, skillIDs); err != nil {
		return nil, u.mapScheduleError(err, false)
	}
	metrics.SchedulingDecisions.WithLabelValues(string(scheduling.CodeAccepted)).Inc()

	skills, err := u.skillRepo.GetByIDs(ctx, skillIDs)
	if err != nil {
		return nil, err
	}
	interview.Skills = skills

	return interview, nil
}

func (u *interviewUsecase) TransferInterview(ctx context.Context, interviewID, newSpecialistID string) error {
	if interviewID == "" || newSpecialistID == "" {
		return apperror.BadRequest("Interview id and new specialist id are required")
	}

	if err := u.interviewRepo.Transfer(ctx, interviewID, newSpecialistID); err != nil {
		return u.mapScheduleError(err, true)
	}
	metrics.SchedulingDecisions.WithLabelValues(string(scheduling.CodeAccepted)).Inc()
	return nil
}

func (u *interviewUsecase) ListBySpecialist(ctx context.Context, specialistID string) ([]domain.Interview, error) {
	interviews, err := u.interviewRepo.FetchBySpecialist(ctx, specialistID)
	if err != nil {
		return nil, err
	}
	if interviews == nil {
		interviews = []domain.Interview{}
	}
	return interviews, nil
}

func (u *interviewUsecase) DeleteInterview(ctx context.Context, id string) error {
	if err := u.interviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrInterviewNotFound) {
			return apperror.NotFound("Interview not found")
		}
		return err
	}
	return nil
}

// mapScheduleError converts repository and validator failures into the
// user-facing messages this API has always reported, which differ
// slightly between first assignment and transfer.
func (u *interviewUsecase) mapScheduleError(err error, transfer bool) error {
	var rejection *scheduling.RejectionError
	switch {
	case errors.Is(err, domain.ErrSpecialistNotFound):
		if transfer {
			return apperror.NotFound("New specialist not found")
		}
		return apperror.NotFound("Specialist not found")
	case errors.Is(err, domain.ErrInterviewNotFound):
		return apperror.NotFound("Interview not found")
	case errors.Is(err, domain.ErrUnknownSkill):
		return apperror.BadRequest(err.Error())
	case errors.As(err, &rejection):
		metrics.SchedulingDecisions.WithLabelValues(string(rejection.Decision.Code)).Inc()
		return apperror.BadRequest(rejectionMessage(rejection.Decision, transfer))
	default:
		return err
	}
}

func rejectionMessage(d scheduling.Decision, transfer bool) string {
	switch d.Code {
	case scheduling.CodeOutOfAvailabilityWindow:
		if transfer {
			return "New specialist is not available at this time"
		}
		return "Specialist is not available at this time"
	case scheduling.CodeTimeSlotConflict:
		if transfer {
			return "Time slot overlaps with existing interview for new specialist"
		}
		return "Time slot overlaps with existing interview"
	case scheduling.CodeInsufficientSkillMatch:
		return fmt.Sprintf("Skill match is only %d%% (minimum %d%% required)",
			d.MatchPercentage, int(scheduling.MatchThreshold))
	default:
		return "Interview cannot be scheduled"
	}
}
