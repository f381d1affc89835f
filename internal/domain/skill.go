package domain

import "context"

type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SkillRepository interface {
	Create(ctx context.Context, skill *Skill) error
	Fetch(ctx context.Context) ([]Skill, error)
	GetByIDs(ctx context.Context, ids []string) ([]Skill, error)
}

type SkillUsecase interface {
	CreateSkill(ctx context.Context, name string) (*Skill, error)
	ListSkills(ctx context.Context) ([]Skill, error)
}
