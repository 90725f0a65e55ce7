package progress

import (
	"errors"
	"fmt"
	"time"

	"github.com/metodo21/app-client/internal/models"
)

// ErrBeforeStart marks a date that precedes the goal-setting date. Day
// numbers only exist from the day goals were created onward.
var ErrBeforeStart = errors.New("date is before the challenge start")

// DayNumber maps a calendar date onto the 1-based challenge day. Day 1 is
// the calendar day the goals were created, regardless of the time of day;
// the count is capped at the challenge length so late records still land
// on day 21.
func DayNumber(goalsCreatedAt, date time.Time) (int, error) {
	start := truncateToDay(goalsCreatedAt)
	day := truncateToDay(date.In(goalsCreatedAt.Location()))

	if day.Before(start) {
		return 0, ErrBeforeStart
	}

	n := int(day.Sub(start).Hours()/24) + 1
	if n > models.ChallengeDays {
		n = models.ChallengeDays
	}
	return n, nil
}

// DateForDay is the inverse of DayNumber: the calendar date of challenge
// day n, for n in [1, 21].
func DateForDay(goalsCreatedAt time.Time, n int) (time.Time, error) {
	if n < 1 || n > models.ChallengeDays {
		return time.Time{}, fmt.Errorf("day %d is outside the challenge range [1, %d]", n, models.ChallengeDays)
	}
	return truncateToDay(goalsCreatedAt).AddDate(0, 0, n-1), nil
}

// TotalDaysCompleted counts the records whose five daily practices are
// all done. Order and gaps between records are irrelevant.
func TotalDaysCompleted(records []models.DailyRecord) int {
	completed := 0
	for i := range records {
		if records[i].IsComplete() {
			completed++
		}
	}
	return completed
}

// Percentage converts a completed-day count to a percentage of the
// challenge, clamped to [0, 100].
func Percentage(completed int) float64 {
	if completed <= 0 {
		return 0
	}
	if completed >= models.ChallengeDays {
		return 100
	}
	return float64(completed) / models.ChallengeDays * 100
}

// DaySummary pairs one challenge day with its record, if any.
type DaySummary struct {
	Day       int
	Date      string
	Record    *models.DailyRecord
	Completed bool
}

// Summary lays the records of a MethodProgress out over the 21 challenge
// days. Days without a record get a zero-value entry with nothing
// completed. Returns an error when no goals exist, because without a
// start date days have no meaning.
func Summary(p *models.MethodProgress) ([]DaySummary, error) {
	if p == nil || p.Goals == nil {
		return nil, errors.New("no goals set, the challenge has not started")
	}

	byDate := make(map[string]*models.DailyRecord, len(p.DailyRecords))
	for i := range p.DailyRecords {
		byDate[p.DailyRecords[i].Date] = &p.DailyRecords[i]
	}

	days := make([]DaySummary, 0, models.ChallengeDays)
	for n := 1; n <= models.ChallengeDays; n++ {
		date, err := DateForDay(p.Goals.CreatedAt, n)
		if err != nil {
			return nil, err
		}

		key := date.Format(models.DateFormat)
		summary := DaySummary{Day: n, Date: key}
		if record, ok := byDate[key]; ok {
			summary.Record = record
			summary.Completed = record.IsComplete()
		}
		days = append(days, summary)
	}

	return days, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
