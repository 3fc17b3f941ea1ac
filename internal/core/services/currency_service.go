package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fiscalledger/fiscal_ledger_app/internal/apperrors"
	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	portsrepo "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/services"
)

// currencyServiceImpl implements the CurrencySvcFacade interface
type currencyServiceImpl struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepository
}

// NewCurrencyService creates a new currency service
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepository) portssvc.CurrencySvcFacade {
	return &currencyServiceImpl{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyServiceImpl)(nil)

func (s *currencyServiceImpl) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find currency by code")
		}
		return nil, err
	}
	return currency, nil
}

func (s *currencyServiceImpl) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
