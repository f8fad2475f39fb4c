package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RepositoryAPI answers the aggregate questions behind the dashboard.
// Dates are YYYY-MM-DD strings and month is zero padded ("01".."12").
type RepositoryAPI interface {
	CountEmployees(ctx context.Context) (int, error)
	CountOnLeave(ctx context.Context, day string) (int, error)
	CountPendingRequests(ctx context.Context) (int, error)
	CountBirthdaysInMonth(ctx context.Context, month string) (int, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	now := s.now()
	day := now.Format("2006-01-02")
	month := now.Format("01")

	var (
		stats Stats
		err   error
	)

	if stats.TotalEmployees, err = s.repo.CountEmployees(ctx); err != nil {
		return nil, s.fail("count employees", err)
	}
	if stats.OnLeaveToday, err = s.repo.CountOnLeave(ctx, day); err != nil {
		return nil, s.fail("count employees on leave", err)
	}
	if stats.PendingRequests, err = s.repo.CountPendingRequests(ctx); err != nil {
		return nil, s.fail("count pending requests", err)
	}
	if stats.BirthdaysThisMonth, err = s.repo.CountBirthdaysInMonth(ctx, month); err != nil {
		return nil, s.fail("count birthdays", err)
	}

	return &stats, nil
}

func (s *Service) fail(what string, err error) error {
	s.logger.Error("dashboard query failed", "query", what, "error", err)
	return fmt.Errorf("%s: %w", what, err)
}
