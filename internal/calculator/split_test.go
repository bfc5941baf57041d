package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaryabali001/roommate/internal/models"
)

var testNow = time.Date(2024, 12, 21, 10, 0, 0, 0, time.UTC)

func TestEqualSplit(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		participants []string
		payer        string
		wantErr      bool
		validateFunc func(t *testing.T, splits []models.ExpenseSplit)
	}{
		{
			name:         "three-way split with payer pre-paid",
			amount:       300,
			participants: []string{"user-1", "user-2", "user-3"},
			payer:        "user-1",
			validateFunc: func(t *testing.T, splits []models.ExpenseSplit) {
				require.Len(t, splits, 3)
				for _, s := range splits {
					assert.InDelta(t, 100.0, s.Amount, 0.01)
				}
				assert.True(t, splits[0].Paid)
				require.NotNil(t, splits[0].PaidDate)
				assert.Equal(t, testNow, *splits[0].PaidDate)
				assert.False(t, splits[1].Paid)
				assert.Nil(t, splits[1].PaidDate)
				assert.False(t, splits[2].Paid)
			},
		},
		{
			name:         "uneven amount still sums to total",
			amount:       100,
			participants: []string{"a", "b", "c"},
			payer:        "b",
			validateFunc: func(t *testing.T, splits []models.ExpenseSplit) {
				assert.True(t, SplitsMatchAmount(splits, 100))
				assert.True(t, splits[1].Paid)
			},
		},
		{
			name:         "payer outside participants pays nobody's share",
			amount:       50,
			participants: []string{"a", "b"},
			payer:        "z",
			validateFunc: func(t *testing.T, splits []models.ExpenseSplit) {
				for _, s := range splits {
					assert.False(t, s.Paid)
				}
			},
		},
		{
			name:         "zero amount should error",
			amount:       0,
			participants: []string{"a"},
			wantErr:      true,
		},
		{
			name:         "no participants should error",
			amount:       10,
			participants: nil,
			wantErr:      true,
		},
		{
			name:         "duplicate participants should error",
			amount:       10,
			participants: []string{"a", "a"},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splits, err := EqualSplit(tt.amount, tt.participants, tt.payer, testNow)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, SplitsMatchAmount(splits, tt.amount))
			if tt.validateFunc != nil {
				tt.validateFunc(t, splits)
			}
		})
	}
}

func TestSettleSplit(t *testing.T) {
	expense := scenarioExpense()

	afterU2, found := SettleSplit(expense, "user-2", testNow)
	require.True(t, found)
	split, _ := FindSplit(afterU2, "user-2")
	assert.True(t, split.Paid)
	require.NotNil(t, split.PaidDate)
	assert.False(t, afterU2.Settled, "user-3 is still unpaid")

	// The input is not mutated.
	original, _ := FindSplit(expense, "user-2")
	assert.False(t, original.Paid)

	afterU3, found := SettleSplit(afterU2, "user-3", testNow)
	require.True(t, found)
	assert.True(t, afterU3.Settled)
	assert.Equal(t, 0, PendingSplits(afterU3))

	unchanged, found := SettleSplit(afterU3, "user-9", testNow)
	assert.False(t, found)
	assert.Equal(t, afterU3, unchanged)
}

func TestAllSplitsPaid(t *testing.T) {
	assert.True(t, AllSplitsPaid(nil))
	assert.True(t, AllSplitsPaid([]models.ExpenseSplit{{Paid: true}, {Paid: true}}))
	assert.False(t, AllSplitsPaid([]models.ExpenseSplit{{Paid: true}, {Paid: false}}))
}

func TestPercentageSplit(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		shares  []models.ExpenseSplit
		want    []float64
		wantErr bool
	}{
		{
			name:   "half and half",
			amount: 300,
			shares: []models.ExpenseSplit{{UserID: "user-1", Amount: 50}, {UserID: "user-2", Amount: 50}},
			want:   []float64{150, 150},
		},
		{
			name:   "thirds take the remainder last",
			amount: 100,
			shares: []models.ExpenseSplit{{UserID: "user-1", Amount: 33.33}, {UserID: "user-2", Amount: 33.33}, {UserID: "user-3", Amount: 33.34}},
			want:   []float64{33.33, 33.33, 33.34},
		},
		{
			name:   "uneven shares",
			amount: 250,
			shares: []models.ExpenseSplit{{UserID: "user-1", Amount: 60}, {UserID: "user-2", Amount: 40}},
			want:   []float64{150, 100},
		},
		{
			name:    "percentages short of 100",
			amount:  300,
			shares:  []models.ExpenseSplit{{UserID: "user-1", Amount: 50}, {UserID: "user-2", Amount: 40}},
			wantErr: true,
		},
		{
			name:    "amounts instead of percentages",
			amount:  300,
			shares:  []models.ExpenseSplit{{UserID: "user-1", Amount: 150}, {UserID: "user-2", Amount: 150}},
			wantErr: true,
		},
		{
			name:    "negative share",
			amount:  100,
			shares:  []models.ExpenseSplit{{UserID: "user-1", Amount: 120}, {UserID: "user-2", Amount: -20}},
			wantErr: true,
		},
		{
			name:    "no shares",
			amount:  100,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := make([]float64, len(tt.shares))
			for i, share := range tt.shares {
				before[i] = share.Amount
			}
			splits, err := PercentageSplit(tt.amount, tt.shares)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, splits, len(tt.want))
			for i, want := range tt.want {
				if math.Abs(splits[i].Amount-want) > 0.001 {
					t.Errorf("split %d = %v, want %v", i, splits[i].Amount, want)
				}
				assert.Equal(t, tt.shares[i].UserID, splits[i].UserID)
			}
			assert.True(t, SplitsMatchAmount(splits, tt.amount))
			for i, share := range tt.shares {
				assert.Equal(t, before[i], share.Amount, "input shares are not modified")
			}
		})
	}
}

func TestSplitTotal(t *testing.T) {
	total := SplitTotal([]models.ExpenseSplit{{Amount: 33.33}, {Amount: 33.33}, {Amount: 33.34}})
	if math.Abs(total-100) > 0.01 {
		t.Errorf("SplitTotal = %v, want 100", total)
	}
}

func scenarioExpense() models.Expense {
	paidAt := testNow
	return models.Expense{
		ID:        "expense-1",
		Title:     "Groceries",
		Amount:    300,
		Category:  models.CategoryGrocery,
		SplitType: models.SplitEqual,
		PaidBy:    "user-1",
		GroupID:   "group-1",
		Date:      testNow,
		SplitDetails: []models.ExpenseSplit{
			{UserID: "user-1", Amount: 100, Paid: true, PaidDate: &paidAt},
			{UserID: "user-2", Amount: 100},
			{UserID: "user-3", Amount: 100},
		},
	}
}
