package usecase

import (
	"context"
	"errors"
	"strings"

	"go-interview-scheduler/internal/domain"
	"go-interview-scheduler/pkg/apperror"

	"github.com/google/uuid"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
}

func NewSkillUsecase(skillRepo domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo}
}

func (u *skillUsecase) CreateSkill(ctx context.Context, name string) (*domain.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.BadRequest("Name is required")
	}

	skill := &domain.Skill{
		ID:   uuid.NewString(),
		Name: name,
	}

	if err := u.skillRepo.Create(ctx, skill); err != nil {
		if errors.Is(err, domain.ErrDuplicateSkill) {
			return nil, apperror.BadRequest("Skill with this name already exists")
		}
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	skills, err := u.skillRepo.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []domain.Skill{}
	}
	return skills, nil
}
