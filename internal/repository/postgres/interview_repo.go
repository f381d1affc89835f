package postgres

import (
	"context"
	"errors"

	"go-interview-scheduler/internal/domain"
	"go-interview-scheduler/internal/scheduling"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

// Schedule runs the whole assignment as one transaction: resolve the
// specialist, read their calendar and skills, validate, write. Rolling
// back on any failure (including a validator rejection) keeps the
// overlap invariant safe from check-then-act races within the store's
// isolation guarantees.
func (r *interviewRepo) Schedule(ctx context.Context, interview *domain.Interview, skillIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	sp, err := specialistSnapshot(ctx, tx, interview.SpecialistID)
	if err != nil {
		return err
	}

	existing, err := bookingsForSpecialist(ctx, tx, interview.SpecialistID)
	if err != nil {
		return err
	}

	decision, err := scheduling.Validate(sp, existing, scheduling.Request{
		Start:            interview.InterviewTime,
		DurationMinutes:  interview.DurationMinutes,
		RequiredSkillIDs: skillIDs,
	}, "")
	if err != nil {
		return err
	}
	if !decision.Accepted() {
		return &scheduling.RejectionError{Decision: decision}
	}

	query := `INSERT INTO interviews (id, specialist_id, candidate_name, interview_time, duration_minutes)
              VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	if err := tx.QueryRow(ctx, query,
		interview.ID, interview.SpecialistID, interview.CandidateName,
		interview.InterviewTime, interview.DurationMinutes,
	).Scan(&interview.CreatedAt); err != nil {
		return err
	}

	if err := linkSkills(ctx, tx,
		`INSERT INTO interview_skills (interview_id, skill_id) VALUES ($1, $2)`,
		interview.ID, skillIDs,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Transfer repoints an interview onto a new specialist's calendar after
// re-validating the original slot and required skills against the
// target, all in one transaction. The moved interview is excluded from
// the conflict scan so it cannot collide with itself.
func (r *interviewRepo) Transfer(ctx context.Context, interviewID, newSpecialistID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var iv domain.Interview
	query := `SELECT id, specialist_id, candidate_name, interview_time::text, duration_minutes
              FROM interviews WHERE id = $1`
	err = tx.QueryRow(ctx, query, interviewID).Scan(
		&iv.ID, &iv.SpecialistID, &iv.CandidateName, &iv.InterviewTime, &iv.DurationMinutes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrInterviewNotFound
		}
		return err
	}

	sp, err := specialistSnapshot(ctx, tx, newSpecialistID)
	if err != nil {
		return err
	}

	existing, err := bookingsForSpecialist(ctx, tx, newSpecialistID)
	if err != nil {
		return err
	}

	required, err := skillIDsForInterview(ctx, tx, interviewID)
	if err != nil {
		return err
	}

	decision, err := scheduling.Validate(sp, existing, scheduling.Request{
		Start:            iv.InterviewTime,
		DurationMinutes:  iv.DurationMinutes,
		RequiredSkillIDs: required,
	}, interviewID)
	if err != nil {
		return err
	}
	if !decision.Accepted() {
		return &scheduling.RejectionError{Decision: decision}
	}

	if _, err := tx.Exec(ctx,
		`UPDATE interviews SET specialist_id = $1 WHERE id = $2`,
		newSpecialistID, interviewID,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *interviewRepo) FetchBySpecialist(ctx context.Context, specialistID string) ([]domain.Interview, error) {
	interviews, err := interviewsForSpecialist(ctx, r.db, specialistID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(interviews))
	for i, iv := range interviews {
		ids[i] = iv.ID
	}
	skills, err := skillsByInterview(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range interviews {
		interviews[i].Skills = skills[interviews[i].ID]
		if interviews[i].Skills == nil {
			interviews[i].Skills = []domain.Skill{}
		}
	}
	return interviews, nil
}

func (r *interviewRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrInterviewNotFound
	}
	return nil
}

// specialistSnapshot reads the availability window and skill ids the
// validator needs, inside the caller's transaction.
func specialistSnapshot(ctx context.Context, q dbtx, specialistID string) (scheduling.Specialist, error) {
	var sp scheduling.Specialist
	query := `SELECT available_from::text, available_to::text FROM specialists WHERE id = $1`
	err := q.QueryRow(ctx, query, specialistID).Scan(&sp.AvailableFrom, &sp.AvailableTo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sp, domain.ErrSpecialistNotFound
		}
		return sp, err
	}

	sp.SkillIDs, err = skillIDsForSpecialist(ctx, q, specialistID)
	return sp, err
}

// bookingsForSpecialist reads the calendar rows the conflict check needs.
func bookingsForSpecialist(ctx context.Context, q dbtx, specialistID string) ([]scheduling.Booking, error) {
	query := `SELECT id, interview_time::text, duration_minutes FROM interviews WHERE specialist_id = $1`

	rows, err := q.Query(ctx, query, specialistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []scheduling.Booking
	for rows.Next() {
		var b scheduling.Booking
		if err := rows.Scan(&b.ID, &b.Start, &b.DurationMinutes); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
