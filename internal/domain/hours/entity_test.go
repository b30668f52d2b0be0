package hours

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeTotal_RoundsToCents(t *testing.T) {
	tests := []struct {
		name  string
		hours string
		rate  string
		want  string
	}{
		{"whole hours", "10", "25.50", "255.00"},
		{"fractional hours", "7.5", "30", "225.00"},
		{"rounding half up", "1.333", "30", "39.99"},
		{"zero hours", "0", "25.50", "0.00"},
		{"zero rate", "8", "0", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotal(dec(tt.hours), dec(tt.rate))
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestExceedsCap(t *testing.T) {
	cap := dec("40")

	tests := []struct {
		name     string
		existing string
		prior    string
		proposed string
		want     bool
	}{
		{"well under cap", "10", "0", "5", false},
		{"exactly at cap", "30", "0", "10", false},
		{"just over cap", "30", "0", "10.01", true},
		{"update replaces own prior hours", "40", "10", "10", false},
		{"update grows past cap", "40", "10", "10.5", true},
		{"tolerance absorbs float noise", "39.9999995", "0", "0.0000006", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExceedsCap(dec(tt.existing), dec(tt.prior), dec(tt.proposed), cap)
			assert.Equal(t, tt.want, got)
		})
	}
}
