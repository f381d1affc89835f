package domain

import (
	"context"
	"time"
)

// Interview is a scheduled session between a specialist and a candidate.
type Interview struct {
	ID              string    `json:"id"`
	SpecialistID    string    `json:"specialist_id"`
	CandidateName   string    `json:"candidate_name"`
	InterviewTime   string    `json:"interview_time"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	Skills          []Skill   `json:"skills"`
}

type InterviewRepository interface {
	// Schedule resolves the specialist, validates the slot and persists
	// the interview with its skill links in a single transaction.
	Schedule(ctx context.Context, interview *Interview, skillIDs []string) error
	// Transfer repoints an interview to a new specialist after
	// re-validating against the target's calendar and skills, in a
	// single transaction. The moved interview is excluded from the
	// conflict scan.
	Transfer(ctx context.Context, interviewID, newSpecialistID string) error
	FetchBySpecialist(ctx context.Context, specialistID string) ([]Interview, error)
	Delete(ctx context.Context, id string) error
}

type InterviewUsecase interface {
	ScheduleInterview(ctx context.Context, interview *Interview, skillIDs []string) (*Interview, error)
	TransferInterview(ctx context.Context, interviewID, newSpecialistID string) error
	ListBySpecialist(ctx context.Context, specialistID string) ([]Interview, error)
	DeleteInterview(ctx context.Context, id string) error
}
