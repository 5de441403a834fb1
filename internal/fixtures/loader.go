// Package fixtures loads test return models from YAML files:
// os.ReadFile followed by a gopkg.in/yaml.v3 unmarshal into a struct
// carrying dual yaml/json struct tags, then a cascading validation pass.
// It exists only to make test fixtures readable as checked-in YAML
// instead of hand-built Go literals; nothing in the engine imports it at
// runtime.
package fixtures

import (
	"fmt"
	"os"

	"github.com/form1040/taxengine/internal/domain"
	"gopkg.in/yaml.v3"
)

// Loader parses and validates return-model fixtures.
type Loader struct{}

// NewLoader creates a new fixture loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFromFile loads a single return model from a YAML fixture file.
func (l *Loader) LoadFromFile(filename string) (*domain.ReturnModel, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var model domain.ReturnModel
	if err := yaml.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := l.ValidateConfiguration(&model); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &model, nil
}

// ValidateConfiguration applies the fail-fast contract checks
// domain.ModelInvalid would otherwise surface mid-compute, up front,
// so a malformed fixture is rejected at load time rather than partway
// through a test run.
func (l *Loader) ValidateConfiguration(model *domain.ReturnModel) error {
	if !model.FilingStatus.Valid() {
		return fmt.Errorf("unrecognized filing status %q", model.FilingStatus)
	}

	if model.FilingStatus == domain.MarriedFilingJointly && model.Spouse == nil {
		return fmt.Errorf("filing status %q requires a spouse", model.FilingStatus)
	}
	if model.FilingStatus != domain.MarriedFilingJointly && model.FilingStatus != domain.MarriedFilingSeparately && model.Spouse != nil {
		return fmt.Errorf("filing status %q cannot carry a spouse", model.FilingStatus)
	}

	if model.DeductionMethod != domain.DeductionStandard && model.DeductionMethod != domain.DeductionItemized {
		return fmt.Errorf("unrecognized deduction method %q", model.DeductionMethod)
	}
	if model.DeductionMethod == domain.DeductionItemized && model.Itemized == nil {
		return fmt.Errorf("deduction method %q requires an itemized worksheet", model.DeductionMethod)
	}

	for i, d := range model.Dependents {
		if err := l.validateDependent(i, &d); err != nil {
			return fmt.Errorf("dependent %d validation failed: %w", i, err)
		}
	}

	for i, w := range model.WageStatements {
		if w.Box1Wages < 0 {
			return fmt.Errorf("wageStatements[%d]: box1Wages cannot be negative", i)
		}
	}

	for i, s := range model.SaleTransactions {
		if err := l.validateSale(i, &s); err != nil {
			return fmt.Errorf("saleTransactions[%d] validation failed: %w", i, err)
		}
	}

	for i, b := range model.Businesses {
		if b.GrossReceipts < 0 {
			return fmt.Errorf("businesses[%d]: grossReceipts cannot be negative", i)
		}
	}

	for i, s := range model.StateReturns {
		if err := l.validateStateReturn(i, &s); err != nil {
			return fmt.Errorf("stateReturns[%d] validation failed: %w", i, err)
		}
	}

	return nil
}

func (l *Loader) validateDependent(_ int, dep *domain.Dependent) error {
	if dep.DateOfBirth.IsZero() {
		return fmt.Errorf("date of birth is required")
	}
	if dep.MonthsLived < 0 || dep.MonthsLived > 12 {
		return fmt.Errorf("months lived must be between 0 and 12")
	}
	return nil
}

func (l *Loader) validateSale(_ int, sale *domain.SaleTransaction) error {
	if sale.AcquiredDate.IsZero() && !sale.LongTerm {
		return fmt.Errorf("a short-term sale requires an acquired date")
	}
	if sale.SoldDate.IsZero() {
		return fmt.Errorf("sold date is required")
	}
	return nil
}

func (l *Loader) validateStateReturn(_ int, s *domain.StateReturnConfig) error {
	if s.StateCode == "" {
		return fmt.Errorf("state code is required")
	}
	switch s.ResidencyType {
	case domain.ResidencyFullYear, domain.ResidencyPartYear, domain.ResidencyNonresident:
	default:
		return fmt.Errorf("unrecognized residency type %q", s.ResidencyType)
	}
	if s.ResidencyType == domain.ResidencyPartYear && s.MoveInDate == nil && s.MoveOutDate == nil {
		return fmt.Errorf("part-year residency requires a move-in or move-out date")
	}
	return nil
}
