package reports

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"grant-portal/internal/storage"
)

type ReportStorage interface {
	ExecuteReport(ctx context.Context, spec storage.ReportSpecification) ([]storage.ReportRow, error)
	CountReport(ctx context.Context, spec storage.ReportSpecification) (int, error)
}

type ReportService struct {
	storage ReportStorage
}

func NewReportService(storage ReportStorage) *ReportService {
	return &ReportService{storage: storage}
}

// Generate runs the row and count queries of spec concurrently.
func (s *ReportService) Generate(ctx context.Context, spec storage.ReportSpecification) (*storage.ReportResult, error) {
	const op = "service.reports.Generate"

	var (
		rows  []storage.ReportRow
		total int
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.storage.ExecuteReport(gCtx, spec)
		if err != nil {
			return fmt.Errorf("rows: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.storage.CountReport(gCtx, spec)
		if err != nil {
			return fmt.Errorf("count: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if rows == nil {
		rows = []storage.ReportRow{}
	}

	return &storage.ReportResult{Data: rows, Total: total}, nil
}
