package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/davg505/portal-estagio-api/internal/models"
)

// ProfessorRepository manages persistence for professor records.
type ProfessorRepository struct {
	db *sqlx.DB
}

// NewProfessorRepository constructs a ProfessorRepository.
func NewProfessorRepository(db *sqlx.DB) *ProfessorRepository {
	return &ProfessorRepository{db: db}
}

// FindByEmail fetches a professor by login email.
func (r *ProfessorRepository) FindByEmail(ctx context.Context, email string) (*models.Professor, error) {
	var professor models.Professor
	query := `SELECT id, nome, email, senha, token FROM public.professor WHERE email = $1`
	if err := r.db.GetContext(ctx, &professor, query, email); err != nil {
		return nil, err
	}
	return &professor, nil
}

// StoreToken records the latest issued token on the professor row.
func (r *ProfessorRepository) StoreToken(ctx context.Context, id int64, token string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE public.professor SET token = $1 WHERE id = $2`, token, id)
	if err != nil {
		return fmt.Errorf("store professor token: %w", err)
	}
	return nil
}
