package states

import (
	"testing"
	"time"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/stretchr/testify/assert"
)

func dateOf(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestApportionment(t *testing.T) {
	tests := []struct {
		name   string
		config domain.StateReturnConfig
		want   string
	}{
		{
			name:   "full-year resident",
			config: domain.StateReturnConfig{ResidencyType: domain.ResidencyFullYear},
			want:   "1",
		},
		{
			name:   "nonresident",
			config: domain.StateReturnConfig{ResidencyType: domain.ResidencyNonresident},
			want:   "0",
		},
		{
			name: "part-year, moved in July 1 (184 of 365 days remaining)",
			config: domain.StateReturnConfig{
				ResidencyType: domain.ResidencyPartYear,
				MoveInDate:    dateOf(2025, 7, 1),
			},
			want: "0.5041", // 184 / 365, rounded to 4 places
		},
		{
			name: "part-year, moved out June 30 (181 of 365 days)",
			config: domain.StateReturnConfig{
				ResidencyType: domain.ResidencyPartYear,
				MoveOutDate:   dateOf(2025, 6, 30),
			},
			want: "0.4959", // 181 / 365
		},
		{
			name:   "unrecognized residency type defaults to zero",
			config: domain.StateReturnConfig{ResidencyType: "bogus"},
			want:   "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratio := Apportionment(tt.config, 2025, 365)
			assert.Equal(t, tt.want, ratio.String())
		})
	}
}

func TestApportionment_FullYearWindowWhenNoDatesGiven(t *testing.T) {
	ratio := Apportionment(domain.StateReturnConfig{ResidencyType: domain.ResidencyPartYear}, 2025, 365)
	assert.Equal(t, "1", ratio.String(), "a part-year election with no move in/out dates spans the whole year")
}
