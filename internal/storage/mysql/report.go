package mysql

import (
	"context"
	"fmt"

	"grant-portal/internal/storage"
)

func (s *Storage) ExecuteReport(ctx context.Context, spec storage.ReportSpecification) ([]storage.ReportRow, error) {
	const op = "storage.mysql.ExecuteReport"

	q, err := buildReportQuery(spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.QueryContext(ctx, q.stmt, q.args...)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка выполнения отчёта: %w", op, err)
	}
	defer rows.Close()

	result := []storage.ReportRow{}

	for rows.Next() {
		values := make([]any, len(q.columns))
		dest := make([]any, len(q.columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}

		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}

		result = append(result, storage.NewReportRow(q.columns, values))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return result, nil
}

func (s *Storage) CountReport(ctx context.Context, spec storage.ReportSpecification) (int, error) {
	const op = "storage.mysql.CountReport"

	q, err := buildReportQuery(spec)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int
	if err := s.db.QueryRowContext(ctx, q.count, q.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}
