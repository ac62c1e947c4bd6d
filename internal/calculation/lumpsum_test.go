package calculation

import (
	"math"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLumpSumPayment_KnownScenarios(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		periods   int
		expected  float64
	}{
		{"annual compounding", 100000, 6, 10, 1, 179084.77},
		{"monthly compounding", 100000, 6, 10, 12, 181939.67},
		{"zero principal", 0, 10, 5, 12, 0.00},
		{"single year single period", 1000, 5, 1, 1, 1050.00},
		{"zero rate", 50000, 0, 20, 1, 50000.00},
		{"one year monthly", 1000, 5, 1, 12, 1051.16},
		{"ten years monthly", 1000, 5, 10, 12, 1647.01},
		{"quarterly large principal", 100000, 3.5, 5, 4, 119033.98},
		{"high rate", 1000, 15, 5, 12, 2107.18},
		{"daily compounding", 2500.5, 7.5, 3, 365, 3131.36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateLumpSumPayment(tt.principal, tt.rate, tt.years, tt.periods)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCalculateLumpSumPayment_InvalidArguments(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		periods   int
	}{
		{"negative principal", -100, 5, 5, 1},
		{"negative principal large", -1000, 5, 10, 12},
		{"negative rate", 1000, -5, 10, 12},
		{"zero years", 1000, 5, 0, 12},
		{"negative years", 1000, 5, -5, 12},
		{"zero periods", 1000, 5, 10, 0},
		{"negative periods", 1000, 5, 10, -1},
		{"NaN principal", math.NaN(), 5, 10, 12},
		{"infinite rate", 1000, math.Inf(1), 10, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateLumpSumPayment(tt.principal, tt.rate, tt.years, tt.periods)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Zero(t, got)
		})
	}
}

func TestCalculateLumpSumPayment_Overflow(t *testing.T) {
	_, err := CalculateLumpSumPayment(1e300, 1000, 1000, 1)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.NotErrorIs(t, err, ErrInvalidArgument)
}

func TestCalculateLumpSumPayment_ZeroPrincipalIsExactZero(t *testing.T) {
	for _, rate := range []float64{0, 0.5, 6, 99.9} {
		for _, years := range []int{1, 5, 30} {
			for _, n := range []int{1, 12, 365} {
				got, err := CalculateLumpSumPayment(0, rate, years, n)
				require.NoError(t, err)
				assert.Equal(t, 0.0, got)
			}
		}
	}
}

func TestCalculateLumpSumPayment_SubHalfCentPrincipalRoundsToZero(t *testing.T) {
	got, err := CalculateLumpSumPayment(1e-9, 5, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = CalculateLumpSumPayment(0.0049, 0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = CalculateLumpSumPayment(0.005, 0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.01, got)
}

func TestCalculateLumpSumPayment_ZeroRateReturnsRoundedPrincipal(t *testing.T) {
	for _, p := range []float64{0.01, 1, 999.994, 1234.565, 50000} {
		want := decimal.NewFromFloat(p).Round(2).InexactFloat64()
		for _, n := range []int{1, 4, 12} {
			got, err := CalculateLumpSumPayment(p, 0, 7, n)
			require.NoError(t, err)
			assert.Equal(t, want, got, "principal %v periods %d", p, n)
		}
	}
}

func TestCalculateLumpSumPayment_NonNegativeWithAtMostTwoDecimals(t *testing.T) {
	for _, p := range []float64{0, 0.01, 3.33, 1000, 123456.789} {
		for _, rate := range []float64{0, 0.25, 5, 18.75} {
			for _, years := range []int{1, 3, 30} {
				for _, n := range []int{1, 2, 12, 52} {
					got, err := CalculateLumpSumPayment(p, rate, years, n)
					require.NoError(t, err)
					assert.False(t, math.IsInf(got, 0) || math.IsNaN(got))
					assert.GreaterOrEqual(t, got, 0.0)
					d := decimal.NewFromFloat(got)
					assert.True(t, d.Equal(d.Round(2)), "%v has more than 2 decimals", got)
					if p > 0 {
						assert.Greater(t, got, 0.0)
					}
				}
			}
		}
	}
}

func TestCalculateLumpSumPayment_Monotonic(t *testing.T) {
	mustCalc := func(p, r float64, y, n int) float64 {
		v, err := CalculateLumpSumPayment(p, r, y, n)
		require.NoError(t, err)
		return v
	}

	t.Run("principal", func(t *testing.T) {
		prev := 0.0
		for _, p := range []float64{1, 10, 500, 1000, 99999.99} {
			cur := mustCalc(p, 6, 10, 12)
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	})
	t.Run("rate", func(t *testing.T) {
		prev := 0.0
		for _, r := range []float64{0.1, 1, 2.5, 6, 12, 30} {
			cur := mustCalc(10000, r, 10, 12)
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	})
	t.Run("years", func(t *testing.T) {
		prev := 0.0
		for y := 1; y <= 40; y++ {
			cur := mustCalc(10000, 6, y, 12)
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	})
	t.Run("periods", func(t *testing.T) {
		prev := 0.0
		for _, n := range []int{1, 2, 4, 12, 52, 365} {
			cur := mustCalc(10000, 6, 10, n)
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	})
}

func TestCalculateLumpSumPayment_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := CalculateLumpSumPayment(100000, 6, 10, 12)
			assert.NoError(t, err)
			assert.Equal(t, 181939.67, got)
		}()
	}
	wg.Wait()
}
