package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fiscalledger/fiscal_ledger_app/internal/apperrors"
	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	portsrepo "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/repositories"
	"github.com/fiscalledger/fiscal_ledger_app/internal/models"
	"github.com/fiscalledger/fiscal_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = `project_id, company_id, customer_id, name, agreement_amount, is_active, created_at, created_by, last_updated_at, last_updated_by`

const paymentColumns = `payment_id, company_id, project_id, amount, payment_date, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project and payment data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepository {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectRepository = (*PgxProjectRepository)(nil)

// SaveProject persists a new project.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)

	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.CompanyID,
		m.CustomerID,
		m.Name,
		m.AgreementAmount,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: project %s already exists", apperrors.ErrDuplicate, m.ProjectID)
			case "23503":
				return fmt.Errorf("%w: project %s references a missing row (%s)", apperrors.ErrValidation, m.ProjectID, pgErr.ConstraintName)
			}
		}
		return fmt.Errorf("failed to save project %s: %w", m.ProjectID, err)
	}
	return nil
}

// FindProjectByID retrieves a project by its identifier.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`

	var m models.Project
	err := r.Pool.QueryRow(ctx, query, projectID).Scan(
		&m.ProjectID,
		&m.CompanyID,
		&m.CustomerID,
		&m.Name,
		&m.AgreementAmount,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}
	p := mapping.ToDomainProject(m)
	return &p, nil
}

// ListProjectsByCompany retrieves all projects for a company, oldest first.
func (r *PgxProjectRepository) ListProjectsByCompany(ctx context.Context, companyID string) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE company_id = $1 ORDER BY created_at, project_id;`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects for company %s: %w", companyID, err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var m models.Project
		if err := rows.Scan(
			&m.ProjectID,
			&m.CompanyID,
			&m.CustomerID,
			&m.Name,
			&m.AgreementAmount,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project row for company %s: %w", companyID, err)
		}
		projects = append(projects, mapping.ToDomainProject(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows for company %s: %w", companyID, err)
	}
	return projects, nil
}

// SavePayment persists a new payment against a project.
func (r *PgxProjectRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID,
		m.CompanyID,
		m.ProjectID,
		m.Amount,
		m.PaymentDate,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: payment %s already exists", apperrors.ErrDuplicate, m.PaymentID)
			case "23503":
				return fmt.Errorf("%w: payment %s references a missing project", apperrors.ErrValidation, m.PaymentID)
			}
		}
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}

// ListPaymentsByProject retrieves all payments for a project in payment order.
func (r *PgxProjectRepository) ListPaymentsByProject(ctx context.Context, projectID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE project_id = $1 ORDER BY payment_date, created_at, payment_id;`

	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for project %s: %w", projectID, err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID,
			&m.CompanyID,
			&m.ProjectID,
			&m.Amount,
			&m.PaymentDate,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment row for project %s: %w", projectID, err)
		}
		payments = append(payments, mapping.ToDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows for project %s: %w", projectID, err)
	}
	return payments, nil
}
