package lead

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"nexusai-site/internal/domain"
)

// ErrAlreadyExists is returned when a submission id is stored twice.
var ErrAlreadyExists = errors.New("submission already exists")

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &postgresRepo{pool: pool, logger: logger.Named("lead_repo")}
}

func (r *postgresRepo) Create(ctx context.Context, s domain.ContactSubmission) error {
	const q = `
INSERT INTO contact_submissions (id, name, email, subject, message, phone, company, service, received_at)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9)
`
	_, err := r.pool.Exec(ctx, q, s.ID, s.Name, s.Email, s.Subject, s.Message, s.Phone, s.Company, s.Service, s.ReceivedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		r.logger.Debug("insert failed", zap.String("id", s.ID), zap.Error(err))
		return err
	}
	r.logger.Debug("inserted", zap.String("id", s.ID))
	return nil
}

func (r *postgresRepo) ListRecent(ctx context.Context, limit int) ([]domain.ContactSubmission, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id::text, name, email, subject, message, COALESCE(phone, ''), COALESCE(company, ''), COALESCE(service, ''), received_at
FROM contact_submissions
ORDER BY received_at DESC
LIMIT $1
`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.ContactSubmission{}
	for rows.Next() {
		var s domain.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.Phone, &s.Company, &s.Service, &s.ReceivedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.logger.Debug("listed", zap.Int("count", len(result)))
	return result, nil
}
