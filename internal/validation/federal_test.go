package validation

import (
	"testing"
	"time"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/orchestrator"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/stretchr/testify/assert"
)

func hasCode(r *Report, code string) bool {
	for _, item := range r.Items {
		if item.Code == code {
			return true
		}
	}
	return false
}

func TestValidateFederal_SSABoxMismatch(t *testing.T) {
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		SocialSecurityStatements: []domain.SocialSecurityStatement{
			{Box3GrossBenefits: 100000, Box4BenefitsRepaid: 0, Box5NetBenefits: 90000},
		},
	}
	store := tracer.NewStore()
	fed := orchestrator.Compute(store, model)
	r := ValidateFederal(model, fed)
	assert.True(t, hasCode(r, "SSA-BOX5-MISMATCH"))
}

func TestValidateFederal_NoMismatchWhenConsistent(t *testing.T) {
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		SocialSecurityStatements: []domain.SocialSecurityStatement{
			{Box3GrossBenefits: 100000, Box4BenefitsRepaid: 10000, Box5NetBenefits: 90000},
		},
	}
	store := tracer.NewStore()
	fed := orchestrator.Compute(store, model)
	r := ValidateFederal(model, fed)
	assert.False(t, hasCode(r, "SSA-BOX5-MISMATCH"))
}

func TestValidateFederal_MFSLivedApartNotSet(t *testing.T) {
	model := &domain.ReturnModel{
		FilingStatus: domain.MarriedFilingSeparately,
		SocialSecurityStatements: []domain.SocialSecurityStatement{
			{Box3GrossBenefits: 50000, Box5NetBenefits: 50000},
		},
	}
	store := tracer.NewStore()
	fed := orchestrator.Compute(store, model)
	r := ValidateFederal(model, fed)
	assert.True(t, hasCode(r, "MFS-SS-LIVED-APART"))
}

func TestValidateFederal_SeniorDeductionNotice(t *testing.T) {
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		AgeBlind:     domain.AgeBlindBreakdown{TaxpayerAge65OrOlder: true},
	}
	store := tracer.NewStore()
	fed := orchestrator.Compute(store, model)
	r := ValidateFederal(model, fed)
	assert.True(t, hasCode(r, "SENIOR-DEDUCTION-OBBBA"))
}

func TestValidateFederal_DependentFilerNotice(t *testing.T) {
	model := &domain.ReturnModel{
		FilingStatus:            domain.Single,
		CanBeClaimedAsDependent: true,
	}
	store := tracer.NewStore()
	fed := orchestrator.Compute(store, model)
	r := ValidateFederal(model, fed)
	assert.True(t, hasCode(r, "DEPENDENT-FILER-LIMITATION"))
}

func TestValidateFederal_EarlyWithdrawal(t *testing.T) {
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		RetirementDistributions: []domain.RetirementDistributionStatement{
			{PayerName: "Fidelity", Box1GrossDistribution: 500000, Box2aTaxableAmount: 500000, Box7DistributionCode: "1"},
		},
	}
	store := tracer.NewStore()
	fed := orchestrator.Compute(store, model)
	r := ValidateFederal(model, fed)
	assert.True(t, hasCode(r, "EARLY-WITHDRAWAL-CODE-1"))
}

func TestValidateFederal_MiscWithoutScheduleC(t *testing.T) {
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		MiscellaneousStatements: []domain.MiscellaneousStatement{
			{PayerName: "Acme", Box3OtherIncome: 100000},
		},
	}
	store := tracer.NewStore()
	fed := orchestrator.Compute(store, model)
	r := ValidateFederal(model, fed)
	assert.True(t, hasCode(r, "MISC-BOX3-NO-SCHEDULE-C"))
}

func TestValidateFederal_MiscWithScheduleCSuppressesWarning(t *testing.T) {
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		MiscellaneousStatements: []domain.MiscellaneousStatement{
			{PayerName: "Acme", Box3OtherIncome: 100000},
		},
		Businesses: []domain.SelfEmploymentBusiness{
			{Name: "Consulting", Owner: domain.OwnerTaxpayer, GrossReceipts: 100000},
		},
	}
	store := tracer.NewStore()
	fed := orchestrator.Compute(store, model)
	r := ValidateFederal(model, fed)
	assert.False(t, hasCode(r, "MISC-BOX3-NO-SCHEDULE-C"))
}

func TestValidateFederal_K1QualifiedDividendsConservative(t *testing.T) {
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		K1Entries: []domain.K1Entry{
			{EntityName: "Partnership LP", QualifiedDividends: 50000},
		},
	}
	store := tracer.NewStore()
	fed := orchestrator.Compute(store, model)
	r := ValidateFederal(model, fed)
	assert.True(t, hasCode(r, "K1-QUALIFIED-DIVIDENDS-CONSERVATIVE"))
}

func TestValidateFederal_PALCarryforwardNotice(t *testing.T) {
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		Rentals: []domain.RentalProperty{
			{Address: "123 Main St", Owner: domain.OwnerTaxpayer, RentsReceived: 1200000, ActivelyParticipates: false},
		},
	}
	store := tracer.NewStore()
	fed := orchestrator.Compute(store, model)
	r := ValidateFederal(model, fed)
	assert.True(t, hasCode(r, "PAL-CARRYFORWARD-NOT-PERSISTED"))
}

func TestValidateFederal_OlderQualifyingChildStudentNotice(t *testing.T) {
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		Dependents: []domain.Dependent{
			{
				DateOfBirth:      time.Date(2005, time.June, 1, 0, 0, 0, 0, time.UTC),
				SSNPresent:       true,
				Relationship:     domain.RelationDaughter,
				MonthsLived:      12,
				IsStudentUnder24: true,
			},
		},
	}
	store := tracer.NewStore()
	fed := orchestrator.Compute(store, model)
	r := ValidateFederal(model, fed)
	assert.True(t, hasCode(r, "DEPENDENT-OLDER-QC-NOT-CTC"))
}

func TestValidateFederal_NoSpuriousItemsOnCleanReturn(t *testing.T) {
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		WageStatements: []domain.WageStatement{
			{EmployerName: "Acme Corp", Owner: domain.OwnerTaxpayer, Box1Wages: 7500000, Box2FederalWithholding: 800000},
		},
	}
	store := tracer.NewStore()
	fed := orchestrator.Compute(store, model)
	r := ValidateFederal(model, fed)
	assert.Empty(t, r.Items)
}
