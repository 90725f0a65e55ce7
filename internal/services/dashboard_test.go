package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/metodo21/app-client/internal/logging"
	"github.com/metodo21/app-client/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardAPI struct {
	record     *models.DailyRecord
	recordErr  error
	progress   *models.MethodProgress
	progErr    error
	calories   *models.TodayCalories
	calErr     error
	activities *models.TodayActivities
	actErr     error

	waterErr    error
	waterCalls  []int
	waterServer int
}

func (f *fakeDashboardAPI) GetDailyRecord(ctx context.Context, date string) (*models.DailyRecord, error) {
	return f.record, f.recordErr
}

func (f *fakeDashboardAPI) GetProgress(ctx context.Context) (*models.MethodProgress, error) {
	return f.progress, f.progErr
}

func (f *fakeDashboardAPI) TodayCalories(ctx context.Context) (*models.TodayCalories, error) {
	return f.calories, f.calErr
}

func (f *fakeDashboardAPI) TodayActivities(ctx context.Context) (*models.TodayActivities, error) {
	return f.activities, f.actErr
}

func (f *fakeDashboardAPI) UpdateWaterIntake(ctx context.Context, waterML int) (int, error) {
	f.waterCalls = append(f.waterCalls, waterML)
	if f.waterErr != nil {
		return 0, f.waterErr
	}
	f.waterServer = waterML
	return waterML, nil
}

func newLoadedService(t *testing.T, api *fakeDashboardAPI) *DashboardService {
	t.Helper()
	s := NewDashboardService(api, logging.NewNopLogger())
	s.now = func() time.Time { return time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC) }
	_, err := s.LoadToday(context.Background())
	require.NoError(t, err)
	return s
}

func fullAPI() *fakeDashboardAPI {
	return &fakeDashboardAPI{
		record:     &models.DailyRecord{Date: "2026-08-15", WaterIntake: 500},
		progress:   &models.MethodProgress{TotalDaysCompleted: 5},
		calories:   &models.TodayCalories{TotalCalories: 1200},
		activities: &models.TodayActivities{TotalCaloriesBurned: 300},
	}
}

func TestLoadToday(t *testing.T) {
	t.Run("assembles all four views", func(t *testing.T) {
		s := newLoadedService(t, fullAPI())

		snap := s.Snapshot()
		require.NotNil(t, snap)
		assert.Equal(t, "2026-08-15", snap.Date)
		assert.Equal(t, 500, snap.WaterIntake)
		assert.Equal(t, 5, snap.Progress.TotalDaysCompleted)
		assert.Equal(t, 1200, snap.Calories.TotalCalories)
		assert.Equal(t, 300, snap.Activities.TotalCaloriesBurned)
	})

	t.Run("missing daily record is a valid empty day", func(t *testing.T) {
		api := fullAPI()
		api.record = nil
		s := newLoadedService(t, api)

		snap := s.Snapshot()
		require.NotNil(t, snap)
		assert.Nil(t, snap.Record)
		assert.Equal(t, 0, snap.WaterIntake)
	})

	t.Run("any failure keeps the previous snapshot", func(t *testing.T) {
		api := fullAPI()
		s := newLoadedService(t, api)

		api.progErr = errors.New("server unreachable")
		_, err := s.LoadToday(context.Background())
		require.Error(t, err)

		snap := s.Snapshot()
		require.NotNil(t, snap, "last good snapshot survives a failed reload")
		assert.Equal(t, 500, snap.WaterIntake)
	})

	t.Run("failure before any load leaves no snapshot", func(t *testing.T) {
		api := fullAPI()
		api.calErr = errors.New("timeout")
		s := NewDashboardService(api, logging.NewNopLogger())

		_, err := s.LoadToday(context.Background())
		require.Error(t, err)
		assert.Nil(t, s.Snapshot())
	})
}

func TestAddWater(t *testing.T) {
	t.Run("adds onto the current total", func(t *testing.T) {
		api := fullAPI()
		s := newLoadedService(t, api)

		total, err := s.AddWater(context.Background(), 250)
		require.NoError(t, err)
		assert.Equal(t, 750, total)
		assert.Equal(t, []int{750}, api.waterCalls, "server receives the new absolute total")
		assert.Equal(t, 750, s.Snapshot().WaterIntake)
		assert.Equal(t, 750, s.Snapshot().Record.WaterIntake)
	})

	t.Run("reverts the optimistic total on failure", func(t *testing.T) {
		api := fullAPI()
		s := newLoadedService(t, api)

		api.waterErr = errors.New("connection reset")
		total, err := s.AddWater(context.Background(), 250)
		require.Error(t, err)
		assert.Equal(t, 500, total, "caller sees the confirmed total")
		assert.Equal(t, 500, s.Snapshot().WaterIntake, "optimistic bump rolled back")
	})

	t.Run("works before the first load", func(t *testing.T) {
		api := fullAPI()
		s := NewDashboardService(api, logging.NewNopLogger())

		total, err := s.AddWater(context.Background(), 300)
		require.NoError(t, err)
		assert.Equal(t, 300, total)
	})
}
