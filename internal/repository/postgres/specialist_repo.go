package postgres

import (
	"context"
	"errors"

	"go-interview-scheduler/internal/domain"
	"go-interview-scheduler/internal/scheduling"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type specialistRepo struct {
	db *pgxpool.Pool
}

func NewSpecialistRepository(db *pgxpool.Pool) domain.SpecialistRepository {
	return &specialistRepo{db: db}
}

func (r *specialistRepo) Create(ctx context.Context, specialist *domain.Specialist, skillIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO specialists (id, full_name, available_from, available_to) VALUES ($1, $2, $3, $4)`
	if _, err := tx.Exec(ctx, query,
		specialist.ID, specialist.FullName, specialist.AvailableFrom, specialist.AvailableTo,
	); err != nil {
		return err
	}

	if err := linkSkills(ctx, tx,
		`INSERT INTO specialist_skills (specialist_id, skill_id) VALUES ($1, $2)`,
		specialist.ID, skillIDs,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *specialistRepo) GetByID(ctx context.Context, id string) (*domain.Specialist, error) {
	query := `SELECT id, full_name, available_from::text, available_to::text FROM specialists WHERE id = $1`

	var sp domain.Specialist
	err := r.db.QueryRow(ctx, query, id).Scan(&sp.ID, &sp.FullName, &sp.AvailableFrom, &sp.AvailableTo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSpecialistNotFound
		}
		return nil, err
	}

	if err := r.attachDetails(ctx, []*domain.Specialist{&sp}); err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *specialistRepo) Fetch(ctx context.Context) ([]domain.Specialist, error) {
	query := `SELECT id, full_name, available_from::text, available_to::text FROM specialists ORDER BY full_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var specialists []domain.Specialist
	for rows.Next() {
		var sp domain.Specialist
		if err := rows.Scan(&sp.ID, &sp.FullName, &sp.AvailableFrom, &sp.AvailableTo); err != nil {
			return nil, err
		}
		specialists = append(specialists, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.Specialist, len(specialists))
	for i := range specialists {
		refs[i] = &specialists[i]
	}
	if err := r.attachDetails(ctx, refs); err != nil {
		return nil, err
	}
	return specialists, nil
}

// attachDetails fills in each specialist's skills and interviews
// (including every interview's skill rows).
func (r *specialistRepo) attachDetails(ctx context.Context, specialists []*domain.Specialist) error {
	if len(specialists) == 0 {
		return nil
	}

	ids := make([]string, len(specialists))
	for i, sp := range specialists {
		ids[i] = sp.ID
	}

	skills, err := skillsBySpecialist(ctx, r.db, ids)
	if err != nil {
		return err
	}

	var interviewIDs []string
	interviewsByOwner := make(map[string][]domain.Interview, len(specialists))
	for _, sp := range specialists {
		interviews, err := interviewsForSpecialist(ctx, r.db, sp.ID)
		if err != nil {
			return err
		}
		interviewsByOwner[sp.ID] = interviews
		for _, iv := range interviews {
			interviewIDs = append(interviewIDs, iv.ID)
		}
	}

	interviewSkills, err := skillsByInterview(ctx, r.db, interviewIDs)
	if err != nil {
		return err
	}

	for _, sp := range specialists {
		sp.Skills = skills[sp.ID]
		if sp.Skills == nil {
			sp.Skills = []domain.Skill{}
		}
		interviews := interviewsByOwner[sp.ID]
		for i := range interviews {
			interviews[i].Skills = interviewSkills[interviews[i].ID]
			if interviews[i].Skills == nil {
				interviews[i].Skills = []domain.Skill{}
			}
		}
		if interviews == nil {
			interviews = []domain.Interview{}
		}
		sp.Interviews = interviews
	}
	return nil
}

func (r *specialistRepo) Update(ctx context.Context, specialist *domain.Specialist, skillIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `UPDATE specialists SET full_name = $2, available_from = $3, available_to = $4 WHERE id = $1`
	result, err := tx.Exec(ctx, query,
		specialist.ID, specialist.FullName, specialist.AvailableFrom, specialist.AvailableTo,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrSpecialistNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM specialist_skills WHERE specialist_id = $1`, specialist.ID); err != nil {
		return err
	}
	if err := linkSkills(ctx, tx,
		`INSERT INTO specialist_skills (specialist_id, skill_id) VALUES ($1, $2)`,
		specialist.ID, skillIDs,
	); err != nil {
		return err
	}

	if err := r.revalidateInterviews(ctx, tx, specialist, skillIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// revalidateInterviews re-checks every interview already booked for the
// specialist against the new availability window and skill set. The
// conflict scan is skipped: the update changes neither times nor peers.
// Any failure aborts the surrounding transaction.
func (r *specialistRepo) revalidateInterviews(ctx context.Context, tx pgx.Tx, specialist *domain.Specialist, skillIDs []string) error {
	interviews, err := interviewsForSpecialist(ctx, tx, specialist.ID)
	if err != nil {
		return err
	}

	for _, iv := range interviews {
		ok, err := scheduling.CheckAvailability(specialist.AvailableFrom, specialist.AvailableTo, iv.InterviewTime)
		if err != nil {
			return err
		}
		if !ok {
			return &domain.RevalidationError{
				InterviewID:   iv.ID,
				CandidateName: iv.CandidateName,
				InterviewTime: iv.InterviewTime,
				Decision:      scheduling.Decision{Code: scheduling.CodeOutOfAvailabilityWindow},
			}
		}

		required, err := skillIDsForInterview(ctx, tx, iv.ID)
		if err != nil {
			return err
		}
		if matched, percent := scheduling.CheckSkillMatch(skillIDs, required); !matched {
			return &domain.RevalidationError{
				InterviewID:   iv.ID,
				CandidateName: iv.CandidateName,
				InterviewTime: iv.InterviewTime,
				Decision: scheduling.Decision{
					Code:            scheduling.CodeInsufficientSkillMatch,
					MatchPercentage: percent,
				},
			}
		}
	}
	return nil
}

func (r *specialistRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM specialists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrSpecialistNotFound
	}
	return nil
}
