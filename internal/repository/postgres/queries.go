package postgres

import (
	"context"
	"fmt"

	"go-interview-scheduler/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// dbtx is the subset of pgx satisfied by both *pgxpool.Pool and pgx.Tx,
// so the join-table loaders below work inside and outside transactions.
type dbtx interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// skillsBySpecialist loads the skill rows linked to each of the given
// specialists in one query, keyed by specialist id.
func skillsBySpecialist(ctx context.Context, q dbtx, specialistIDs []string) (map[string][]domain.Skill, error) {
	if len(specialistIDs) == 0 {
		return map[string][]domain.Skill{}, nil
	}

	query := `
		SELECT ss.specialist_id, s.id, s.name
		FROM skills s
		JOIN specialist_skills ss ON s.id = ss.skill_id
		WHERE ss.specialist_id = ANY($1::uuid[])
		ORDER BY s.name`

	rows, err := q.Query(ctx, query, pq.Array(specialistIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.Skill)
	for rows.Next() {
		var ownerID string
		var s domain.Skill
		if err := rows.Scan(&ownerID, &s.ID, &s.Name); err != nil {
			return nil, err
		}
		out[ownerID] = append(out[ownerID], s)
	}
	return out, rows.Err()
}

// skillsByInterview loads the skill rows linked to each of the given
// interviews in one query, keyed by interview id.
func skillsByInterview(ctx context.Context, q dbtx, interviewIDs []string) (map[string][]domain.Skill, error) {
	if len(interviewIDs) == 0 {
		return map[string][]domain.Skill{}, nil
	}

	query := `
		SELECT isk.interview_id, s.id, s.name
		FROM skills s
		JOIN interview_skills isk ON s.id = isk.skill_id
		WHERE isk.interview_id = ANY($1::uuid[])
		ORDER BY s.name`

	rows, err := q.Query(ctx, query, pq.Array(interviewIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.Skill)
	for rows.Next() {
		var ownerID string
		var s domain.Skill
		if err := rows.Scan(&ownerID, &s.ID, &s.Name); err != nil {
			return nil, err
		}
		out[ownerID] = append(out[ownerID], s)
	}
	return out, rows.Err()
}

// skillIDsForSpecialist returns the bare skill ids linked to a specialist.
func skillIDsForSpecialist(ctx context.Context, q dbtx, specialistID string) ([]string, error) {
	rows, err := q.Query(ctx, `SELECT skill_id FROM specialist_skills WHERE specialist_id = $1`, specialistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// skillIDsForInterview returns the bare skill ids required by an interview.
func skillIDsForInterview(ctx context.Context, q dbtx, interviewID string) ([]string, error) {
	rows, err := q.Query(ctx, `SELECT skill_id FROM interview_skills WHERE interview_id = $1`, interviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// interviewsForSpecialist loads a specialist's interviews ordered by
// time of day, without their skill rows.
func interviewsForSpecialist(ctx context.Context, q dbtx, specialistID string) ([]domain.Interview, error) {
	query := `
		SELECT id, specialist_id, candidate_name, interview_time::text, duration_minutes, created_at
		FROM interviews
		WHERE specialist_id = $1
		ORDER BY interview_time`

	rows, err := q.Query(ctx, query, specialistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []domain.Interview
	for rows.Next() {
		var iv domain.Interview
		if err := rows.Scan(&iv.ID, &iv.SpecialistID, &iv.CandidateName, &iv.InterviewTime, &iv.DurationMinutes, &iv.CreatedAt); err != nil {
			return nil, err
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}

// linkSkills inserts rows into a join table one by one, matching the
// write pattern used by the specialist and interview transactions.
func linkSkills(ctx context.Context, q dbtx, query, ownerID string, skillIDs []string) error {
	for _, skillID := range skillIDs {
		if _, err := q.Exec(ctx, query, ownerID, skillID); err != nil {
			if IsForeignKeyViolation(err) {
				return fmt.Errorf("%w: %s", domain.ErrUnknownSkill, skillID)
			}
			return err
		}
	}
	return nil
}
