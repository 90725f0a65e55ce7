package progress

import (
	"testing"
	"time"

	"github.com/metodo21/app-client/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allPractices = models.PraticasDiarias{
	Agua2L:    true,
	Exercicio: true,
	Meditacao: true,
	Vacuo:     true,
	Gratidao:  true,
}

func TestDayNumber(t *testing.T) {
	start := time.Date(2026, 8, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		want    int
		wantErr error
	}{
		{
			name: "goal day is day 1 regardless of time",
			date: time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "next calendar day is day 2",
			date: time.Date(2026, 8, 11, 0, 0, 1, 0, time.UTC),
			want: 2,
		},
		{
			name: "day 21 is the last in-range day",
			date: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
			want: 21,
		},
		{
			name: "past the challenge caps at 21",
			date: time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
			want: 21,
		},
		{
			name:    "before the goal date is rejected",
			date:    time.Date(2026, 8, 9, 23, 59, 0, 0, time.UTC),
			wantErr: ErrBeforeStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DayNumber(start, tt.date)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateForDayRoundTrip(t *testing.T) {
	start := time.Date(2026, 8, 10, 17, 45, 0, 0, time.UTC)

	for n := 1; n <= models.ChallengeDays; n++ {
		date, err := DateForDay(start, n)
		require.NoError(t, err)

		back, err := DayNumber(start, date)
		require.NoError(t, err)
		assert.Equal(t, n, back, "day %d should round-trip through its date", n)
	}

	for _, n := range []int{0, -1, 22} {
		_, err := DateForDay(start, n)
		assert.Error(t, err, "day %d is out of range", n)
	}
}

func TestTotalDaysCompleted(t *testing.T) {
	records := []models.DailyRecord{
		{Date: "2026-08-15", PraticasDiarias: allPractices},
		{Date: "2026-08-11", PraticasDiarias: models.PraticasDiarias{Agua2L: true, Exercicio: true, Meditacao: true, Vacuo: true}},
		{Date: "2026-08-10", PraticasDiarias: allPractices},
		{Date: "2026-08-20"},
	}

	assert.Equal(t, 2, TotalDaysCompleted(records), "only fully practiced days count, order and gaps ignored")
	assert.Equal(t, 0, TotalDaysCompleted(nil))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0))
	assert.Equal(t, 0.0, Percentage(-3))
	assert.InDelta(t, 33.33, Percentage(7), 0.01)
	assert.Equal(t, 100.0, Percentage(21))
	assert.Equal(t, 100.0, Percentage(25), "overshoot clamps at 100")
}

func TestSummary(t *testing.T) {
	start := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	p := &models.MethodProgress{
		Goals: &models.UserGoals{UserID: "u1", CreatedAt: start},
		DailyRecords: []models.DailyRecord{
			{Date: "2026-08-10", PraticasDiarias: allPractices},
			{Date: "2026-08-12", PraticasDiarias: models.PraticasDiarias{Agua2L: true}},
		},
	}

	days, err := Summary(p)
	require.NoError(t, err)
	require.Len(t, days, models.ChallengeDays)

	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, "2026-08-10", days[0].Date)
	assert.True(t, days[0].Completed)

	assert.Equal(t, "2026-08-11", days[1].Date)
	assert.Nil(t, days[1].Record, "day without a record gets a zero entry")
	assert.False(t, days[1].Completed)

	assert.Equal(t, "2026-08-12", days[2].Date)
	require.NotNil(t, days[2].Record)
	assert.False(t, days[2].Completed, "partial practices do not complete the day")

	assert.Equal(t, "2026-08-30", days[20].Date)
}

func TestSummaryWithoutGoals(t *testing.T) {
	_, err := Summary(&models.MethodProgress{})
	assert.Error(t, err)

	_, err = Summary(nil)
	assert.Error(t, err)
}
