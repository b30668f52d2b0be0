package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhc-billing/payroll-backend-go/internal/domain/extra"
	"github.com/mhc-billing/payroll-backend-go/internal/domain/hours"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSumTotals_CombinesHoursAndExtras(t *testing.T) {
	hourTotals := []hours.WorkerTotal{
		{WorkerID: "w1", TotalHours: dec("40"), TotalAmount: dec("1020.00")},
		{WorkerID: "w2", TotalHours: dec("20"), TotalAmount: dec("600.00")},
	}
	extraTotals := []extra.WorkerTotal{
		{WorkerID: "w1", TotalAmount: dec("150.00")},
		{WorkerID: "w2", TotalAmount: dec("-25.00")},
	}

	totals := SumTotals(hourTotals, extraTotals)
	assert.True(t, totals.Hours.TotalHours.Equal(dec("60")))
	assert.True(t, totals.Hours.TotalAmount.Equal(dec("1620.00")))
	assert.True(t, totals.Extras.TotalAmount.Equal(dec("125.00")))
	assert.True(t, totals.GrandTotal.Equal(dec("1745.00")))
}

func TestSumTotals_EmptyPayrollIsAllZeros(t *testing.T) {
	totals := SumTotals(nil, nil)
	assert.True(t, totals.Hours.TotalHours.IsZero())
	assert.True(t, totals.Hours.TotalAmount.IsZero())
	assert.True(t, totals.Extras.TotalAmount.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}

func TestSumTotals_NegativeExtrasReduceGrandTotal(t *testing.T) {
	hourTotals := []hours.WorkerTotal{
		{WorkerID: "w1", TotalHours: dec("10"), TotalAmount: dec("300.00")},
	}
	extraTotals := []extra.WorkerTotal{
		{WorkerID: "w1", TotalAmount: dec("-500.00")},
	}

	totals := SumTotals(hourTotals, extraTotals)
	assert.True(t, totals.GrandTotal.Equal(dec("-200.00")))
}

func TestBuildWorkerSlips_GroupsByWorker(t *testing.T) {
	lines := []hours.LineDetail{
		{EntryID: "e1", WorkerID: "w1", WorkerName: "Alice Reed", Hours: dec("10"), Total: dec("255.00")},
		{EntryID: "e2", WorkerID: "w1", WorkerName: "Alice Reed", Hours: dec("5"), Total: dec("127.50")},
		{EntryID: "e3", WorkerID: "w2", WorkerName: "Ben Ortiz", Hours: dec("8"), Total: dec("240.00")},
	}
	extras := []extra.PaymentDetail{
		{ID: "x1", WorkerID: "w1", WorkerName: "Alice Reed", Amount: dec("150.00")},
	}

	slips := BuildWorkerSlips(lines, extras)
	require.Len(t, slips, 2)

	alice := slips[0]
	assert.Equal(t, "w1", alice.WorkerID)
	assert.Len(t, alice.HourLines, 2)
	assert.Len(t, alice.Extras, 1)
	assert.True(t, alice.HoursTotal.Equal(dec("382.50")))
	assert.True(t, alice.ExtrasTotal.Equal(dec("150.00")))
	assert.True(t, alice.GrandTotal.Equal(dec("532.50")))

	ben := slips[1]
	assert.Equal(t, "w2", ben.WorkerID)
	assert.Empty(t, ben.Extras)
	assert.True(t, ben.GrandTotal.Equal(dec("240.00")))
}

func TestBuildWorkerSlips_ExtrasOnlyWorkerGetsASlip(t *testing.T) {
	extras := []extra.PaymentDetail{
		{ID: "x1", WorkerID: "w3", WorkerName: "Cara Diaz", Amount: dec("75.00")},
	}

	slips := BuildWorkerSlips(nil, extras)
	require.Len(t, slips, 1)
	assert.Equal(t, "w3", slips[0].WorkerID)
	assert.True(t, slips[0].HoursTotal.IsZero())
	assert.True(t, slips[0].GrandTotal.Equal(dec("75.00")))
}

func TestBuildWorkerSlips_SortedByWorkerName(t *testing.T) {
	lines := []hours.LineDetail{
		{EntryID: "e1", WorkerID: "w2", WorkerName: "Zoe Lane", Total: dec("100")},
		{EntryID: "e2", WorkerID: "w1", WorkerName: "Ann Park", Total: dec("100")},
	}

	slips := BuildWorkerSlips(lines, nil)
	require.Len(t, slips, 2)
	assert.Equal(t, "Ann Park", slips[0].WorkerName)
	assert.Equal(t, "Zoe Lane", slips[1].WorkerName)
}
