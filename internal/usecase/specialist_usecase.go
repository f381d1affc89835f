package usecase

import (
	"context"
	"errors"
	"strings"

	"go-interview-scheduler/internal/domain"
	"go-interview-scheduler/pkg/apperror"
	"go-interview-scheduler/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type specialistInput struct {
	FullName      string `validate:"required,max=200,valid_name"`
	AvailableFrom string `validate:"required,timeofday"`
	AvailableTo   string `validate:"required,timeofday"`
}

type specialistUsecase struct {
	specialistRepo domain.SpecialistRepository
	validate       *validator.Validate
}

func NewSpecialistUsecase(specialistRepo domain.SpecialistRepository, validate *validator.Validate) domain.SpecialistUsecase {
	return &specialistUsecase{
		specialistRepo: specialistRepo,
		validate:       validate,
	}
}

func (u *specialistUsecase) CreateSpecialist(ctx context.Context, specialist *domain.Specialist, skillIDs []string) (*domain.Specialist, error) {
	if err := u.prepare(specialist); err != nil {
		return nil, err
	}
	specialist.ID = uuid.NewString()

	if err := u.specialistRepo.Create(ctx, specialist, dedupe(skillIDs)); err != nil {
		if errors.Is(err, domain.ErrUnknownSkill) {
			return nil, apperror.BadRequest(err.Error())
		}
		return nil, err
	}

	// Return the aggregate the way list/detail reads shape it.
	return u.GetSpecialist(ctx, specialist.ID)
}

func (u *specialistUsecase) GetSpecialist(ctx context.Context, id string) (*domain.Specialist, error) {
	sp, err := u.specialistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSpecialistNotFound) {
			return nil, apperror.NotFound("Specialist not found")
		}
		return nil, err
	}
	return sp, nil
}

func (u *specialistUsecase) ListSpecialists(ctx context.Context) ([]domain.Specialist, error) {
	specialists, err := u.specialistRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if specialists == nil {
		specialists = []domain.Specialist{}
	}
	return specialists, nil
}

func (u *specialistUsecase) UpdateSpecialist(ctx context.Context, specialist *domain.Specialist, skillIDs []string) error {
	if err := u.prepare(specialist); err != nil {
		return err
	}

	err := u.specialistRepo.Update(ctx, specialist, dedupe(skillIDs))
	if err == nil {
		return nil
	}

	var reval *domain.RevalidationError
	switch {
	case errors.Is(err, domain.ErrSpecialistNotFound):
		return apperror.NotFound("Specialist not found")
	case errors.Is(err, domain.ErrUnknownSkill):
		return apperror.BadRequest(err.Error())
	case errors.As(err, &reval):
		return apperror.BadRequest(reval.Error())
	default:
		return err
	}
}

func (u *specialistUsecase) DeleteSpecialist(ctx context.Context, id string) error {
	if err := u.specialistRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrSpecialistNotFound) {
			return apperror.NotFound("Specialist not found")
		}
		return err
	}
	return nil
}

// prepare normalizes and validates the mutable specialist fields shared
// by create and update.
func (u *specialistUsecase) prepare(specialist *domain.Specialist) error {
	specialist.FullName = strings.TrimSpace(specialist.FullName)
	specialist.AvailableFrom = normalizeTimeOfDay(specialist.AvailableFrom)
	specialist.AvailableTo = normalizeTimeOfDay(specialist.AvailableTo)

	input := specialistInput{
		FullName:      specialist.FullName,
		AvailableFrom: specialist.AvailableFrom,
		AvailableTo:   specialist.AvailableTo,
	}
	if err := u.validate.Struct(input); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	if specialist.AvailableFrom > specialist.AvailableTo {
		return apperror.BadRequest("AvailableFrom cannot be later than AvailableTo")
	}
	return nil
}

// normalizeTimeOfDay pads HH:MM input to the HH:MM:SS form the store and
// validator work with.
func normalizeTimeOfDay(value string) string {
	value = strings.TrimSpace(value)
	if len(value) == len("15:04") {
		return value + ":00"
	}
	return value
}

// dedupe drops repeated skill ids while preserving order; skill sets are
// unordered and unique.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
