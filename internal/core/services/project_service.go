package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fiscalledger/fiscal_ledger_app/internal/apperrors"
	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	portsrepo "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/services"
	"github.com/fiscalledger/fiscal_ledger_app/internal/dto"
	"github.com/fiscalledger/fiscal_ledger_app/internal/utils/accounting"
	"github.com/google/uuid"
)

// projectServiceImpl implements the ProjectSvcFacade interface
type projectServiceImpl struct {
	BaseService
	projectRepo  portsrepo.ProjectRepository
	customerRepo portsrepo.CustomerRepository
	companyRepo  portsrepo.CompanyRepository
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo portsrepo.ProjectRepository, customerRepo portsrepo.CustomerRepository, companyRepo portsrepo.CompanyRepository) portssvc.ProjectSvcFacade {
	return &projectServiceImpl{
		projectRepo:  projectRepo,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
	}
}

var _ portssvc.ProjectSvcFacade = (*projectServiceImpl)(nil)

func (s *projectServiceImpl) CreateProject(ctx context.Context, companyID string, req dto.CreateProjectRequest, userID string) (*domain.Project, error) {
	if err := accounting.ValidateAmount(req.AgreementAmount); err != nil {
		return nil, fmt.Errorf("%w: agreement amount: %s", apperrors.ErrValidation, err.Error())
	}
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return nil, fmt.Errorf("invalid company: %w", err)
	}
	if req.CustomerID != nil {
		customer, err := s.customerRepo.FindCustomerByID(ctx, *req.CustomerID)
		if err != nil || customer.CompanyID != companyID {
			return nil, fmt.Errorf("%w: invalid customer reference", apperrors.ErrValidation)
		}
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:       uuid.NewString(),
		CompanyID:       companyID,
		CustomerID:      req.CustomerID,
		Name:            req.Name,
		AgreementAmount: req.AgreementAmount,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project",
			slog.String("project_id", project.ProjectID),
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Project created successfully",
		slog.String("project_id", project.ProjectID),
		slog.String("company_id", companyID))
	return &project, nil
}

func (s *projectServiceImpl) GetProjectByID(ctx context.Context, companyID string, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find project by ID",
				slog.String("project_id", projectID))
		}
		return nil, err
	}
	if project.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return project, nil
}

func (s *projectServiceImpl) ListProjects(ctx context.Context, companyID string) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListProjectsByCompany(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects",
			slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list projects for company %s: %w", companyID, err)
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

func (s *projectServiceImpl) RecordPayment(ctx context.Context, companyID string, projectID string, req dto.RecordPaymentRequest, userID string) (*domain.Payment, error) {
	if err := accounting.ValidateAmount(req.Amount); err != nil {
		return nil, fmt.Errorf("%w: payment amount: %s", apperrors.ErrValidation, err.Error())
	}
	if _, err := s.GetProjectByID(ctx, companyID, projectID); err != nil {
		return nil, err
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		CompanyID:   companyID,
		ProjectID:   projectID,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.projectRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment",
			slog.String("payment_id", payment.PaymentID),
			slog.String("project_id", projectID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded successfully",
		slog.String("payment_id", payment.PaymentID),
		slog.String("project_id", projectID),
		slog.String("amount", payment.Amount.String()))
	return &payment, nil
}

func (s *projectServiceImpl) ListPayments(ctx context.Context, companyID string, projectID string) ([]domain.Payment, error) {
	if _, err := s.GetProjectByID(ctx, companyID, projectID); err != nil {
		return nil, err
	}

	payments, err := s.projectRepo.ListPaymentsByProject(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments",
			slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to list payments for project %s: %w", projectID, err)
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}
