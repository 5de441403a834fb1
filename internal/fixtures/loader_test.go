package fixtures

import (
	"os"
	"testing"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
}

func TestLoadFromFile_Success(t *testing.T) {
	yamlContent := `
scenarioLabel: single filer, wages only
filingStatus: single
taxpayer:
  dateOfBirth: "1985-04-12T00:00:00Z"
  ssnPresent: true
dependents: []
deductionMethod: standard
wageStatements:
  - employerName: Acme Corp
    owner: taxpayer
    box1Wages: 8500000
    box2FederalWithholding: 950000
    box3SSWages: 8500000
    box4SSWithholding: 527000
    box5MedicareWages: 8500000
    box6MedicareWithholding: 123250
`
	tmpfile, err := os.CreateTemp("", "test_fixture_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	loader := NewLoader()
	model, err := loader.LoadFromFile(tmpfile.Name())
	require.NoError(t, err)
	require.NotNil(t, model)

	assert.Equal(t, domain.Single, model.FilingStatus)
	assert.Len(t, model.WageStatements, 1)
	assert.Equal(t, domain.Cents(8500000), model.WageStatements[0].Box1Wages)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	loader := NewLoader()
	_, err := loader.LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_fixture_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString("filingStatus: [this is not a string")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	loader := NewLoader()
	_, err = loader.LoadFromFile(tmpfile.Name())
	assert.Error(t, err)
}

func TestValidateConfiguration(t *testing.T) {
	spouse := domain.Person{}

	tests := []struct {
		name    string
		model   domain.ReturnModel
		wantErr bool
	}{
		{
			name: "valid single filer",
			model: domain.ReturnModel{
				FilingStatus:    domain.Single,
				DeductionMethod: domain.DeductionStandard,
			},
			wantErr: false,
		},
		{
			name: "unrecognized filing status",
			model: domain.ReturnModel{
				FilingStatus:    "widowed",
				DeductionMethod: domain.DeductionStandard,
			},
			wantErr: true,
		},
		{
			name: "mfj without spouse",
			model: domain.ReturnModel{
				FilingStatus:    domain.MarriedFilingJointly,
				DeductionMethod: domain.DeductionStandard,
			},
			wantErr: true,
		},
		{
			name: "single with spouse present",
			model: domain.ReturnModel{
				FilingStatus:    domain.Single,
				DeductionMethod: domain.DeductionStandard,
				Spouse:          &spouse,
			},
			wantErr: true,
		},
		{
			name: "itemized without worksheet",
			model: domain.ReturnModel{
				FilingStatus:    domain.Single,
				DeductionMethod: domain.DeductionItemized,
			},
			wantErr: true,
		},
		{
			name: "itemized with worksheet",
			model: domain.ReturnModel{
				FilingStatus:    domain.Single,
				DeductionMethod: domain.DeductionItemized,
				Itemized:        &domain.ItemizedWorksheet{},
			},
			wantErr: false,
		},
		{
			name: "part-year state residency without a date",
			model: domain.ReturnModel{
				FilingStatus:    domain.Single,
				DeductionMethod: domain.DeductionStandard,
				StateReturns: []domain.StateReturnConfig{
					{StateCode: "CA", ResidencyType: domain.ResidencyPartYear},
				},
			},
			wantErr: true,
		},
	}

	loader := NewLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.ValidateConfiguration(&tt.model)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
