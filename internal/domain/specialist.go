package domain

import (
	"context"
	"errors"
)

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrSpecialistNotFound = errors.New("specialist not found")
	ErrInterviewNotFound  = errors.New("interview not found")
	ErrDuplicateSkill     = errors.New("skill already exists")
	ErrUnknownSkill       = errors.New("unknown skill reference")
)

// Specialist is an interviewer with a daily availability window and a
// skill set. Times of day are carried as HH:MM:SS strings.
type Specialist struct {
	ID            string      `json:"id"`
	FullName      string      `json:"full_name"`
	AvailableFrom string      `json:"available_from"`
	AvailableTo   string      `json:"available_to"`
	Skills        []Skill     `json:"skills"`
	Interviews    []Interview `json:"interviews"`
}

type SpecialistRepository interface {
	Create(ctx context.Context, specialist *Specialist, skillIDs []string) error
	GetByID(ctx context.Context, id string) (*Specialist, error)
	Fetch(ctx context.Context) ([]Specialist, error)
	// Update replaces name, window and skill set in one transaction and
	// re-validates the specialist's existing interviews against the new
	// window and skills before committing.
	Update(ctx context.Context, specialist *Specialist, skillIDs []string) error
	Delete(ctx context.Context, id string) error
}

type SpecialistUsecase interface {
	CreateSpecialist(ctx context.Context, specialist *Specialist, skillIDs []string) (*Specialist, error)
	GetSpecialist(ctx context.Context, id string) (*Specialist, error)
	ListSpecialists(ctx context.Context) ([]Specialist, error)
	UpdateSpecialist(ctx context.Context, specialist *Specialist, skillIDs []string) error
	DeleteSpecialist(ctx context.Context, id string) error
}
