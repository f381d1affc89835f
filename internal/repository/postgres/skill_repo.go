package postgres

import (
	"context"
	"fmt"

	"go-interview-scheduler/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	query := `INSERT INTO skills (id, name) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, skill.ID, skill.Name)
	if IsUniqueViolation(err) {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateSkill, skill.Name)
	}
	return err
}

func (r *skillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT id, name FROM skills ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Skill, error) {
	if len(ids) == 0 {
		return []domain.Skill{}, nil
	}

	query := `SELECT id, name FROM skills WHERE id = ANY($1::uuid[]) ORDER BY name`

	rows, err := r.db.Query(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}
