package services

import (
	"context"
	"sync"
	"time"

	"github.com/metodo21/app-client/internal/logging"
	"github.com/metodo21/app-client/internal/models"
	"github.com/metodo21/app-client/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DashboardAPI is the slice of the API client the dashboard needs.
type DashboardAPI interface {
	GetDailyRecord(ctx context.Context, date string) (*models.DailyRecord, error)
	GetProgress(ctx context.Context) (*models.MethodProgress, error)
	TodayCalories(ctx context.Context) (*models.TodayCalories, error)
	TodayActivities(ctx context.Context) (*models.TodayActivities, error)
	UpdateWaterIntake(ctx context.Context, waterML int) (int, error)
}

// Snapshot is one consistent view of today: the daily record, the
// challenge progress and both energy trackers, fetched together.
type Snapshot struct {
	Date        string
	Record      *models.DailyRecord
	Progress    *models.MethodProgress
	Calories    *models.TodayCalories
	Activities  *models.TodayActivities
	WaterIntake int
}

// DashboardService aggregates the per-screen API calls into one load and
// keeps the last snapshot that loaded fully, so a partial failure never
// leaves the view half-updated.
type DashboardService struct {
	api    DashboardAPI
	logger *logging.SafeLogger
	now    func() time.Time

	mu       sync.Mutex
	snapshot *Snapshot
}

// NewDashboardService creates a dashboard service.
func NewDashboardService(api DashboardAPI, logger *logging.SafeLogger) *DashboardService {
	return &DashboardService{
		api:    api,
		logger: logger,
		now:    time.Now,
	}
}

// LoadToday fetches the four views of today concurrently. All fetches
// must succeed; on any failure the previous snapshot is kept and the
// error returned.
func (s *DashboardService) LoadToday(ctx context.Context) (*Snapshot, error) {
	ctx, span, done := utils.TraceOperation(ctx, "dashboard.load_today", nil)
	defer done()

	date := s.now().Format(models.DateFormat)
	next := &Snapshot{Date: date}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		record, err := s.api.GetDailyRecord(gctx, date)
		if err != nil {
			return err
		}
		next.Record = record
		return nil
	})

	g.Go(func() error {
		progress, err := s.api.GetProgress(gctx)
		if err != nil {
			return err
		}
		next.Progress = progress
		return nil
	})

	g.Go(func() error {
		calories, err := s.api.TodayCalories(gctx)
		if err != nil {
			return err
		}
		next.Calories = calories
		return nil
	})

	g.Go(func() error {
		activities, err := s.api.TodayActivities(gctx)
		if err != nil {
			return err
		}
		next.Activities = activities
		return nil
	})

	if err := g.Wait(); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		s.logger.Warn("dashboard load failed, keeping previous snapshot", zap.Error(err))
		return nil, err
	}

	if next.Record != nil {
		next.WaterIntake = next.Record.WaterIntake
	}

	s.mu.Lock()
	s.snapshot = next
	s.mu.Unlock()

	s.logger.Debug("dashboard loaded", zap.String("date", date))
	return next, nil
}

// AddWater bumps today's water total optimistically and syncs it to the
// server. On failure the local total reverts to what the server last
// confirmed.
func (s *DashboardService) AddWater(ctx context.Context, ml int) (int, error) {
	s.mu.Lock()
	previous := 0
	if s.snapshot != nil {
		previous = s.snapshot.WaterIntake
	}
	target := previous + ml
	if s.snapshot != nil {
		s.snapshot.WaterIntake = target
	}
	s.mu.Unlock()

	confirmed, err := s.api.UpdateWaterIntake(ctx, target)
	if err != nil {
		s.mu.Lock()
		if s.snapshot != nil {
			s.snapshot.WaterIntake = previous
		}
		s.mu.Unlock()
		s.logger.Warn("water update failed, reverting",
			zap.Int("target_ml", target),
			zap.Error(err))
		return previous, err
	}

	s.mu.Lock()
	if s.snapshot != nil {
		s.snapshot.WaterIntake = confirmed
		if s.snapshot.Record != nil {
			s.snapshot.Record.WaterIntake = confirmed
		}
	}
	s.mu.Unlock()

	return confirmed, nil
}

// Snapshot returns the last fully loaded snapshot, or nil before the
// first successful load.
func (s *DashboardService) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}
