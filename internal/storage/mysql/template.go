package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"grant-portal/internal/storage"
)

const errDuplicateEntry = 1062

func (s *Storage) CreateReportTemplate(ctx context.Context, tpl storage.ReportTemplate) error {
	const op = "storage.mysql.CreateReportTemplate"

	specJSON, err := json.Marshal(tpl.Spec)
	if err != nil {
		return fmt.Errorf("%s: ошибка сериализации спецификации: %w", op, err)
	}

	stmt := `INSERT INTO report_templates (id, name, data_source, spec, created_at) VALUES (?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, stmt, tpl.ID, tpl.Name, tpl.DataSource, string(specJSON), tpl.CreatedAt)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
			return fmt.Errorf("%s: шаблон id='%s' уже существует: %w", op, tpl.ID, err)
		}
		return fmt.Errorf("%s: ошибка сохранения шаблона: %w", op, err)
	}

	return nil
}

func (s *Storage) GetReportTemplates(ctx context.Context) ([]*storage.ReportTemplate, error) {
	const op = "storage.mysql.GetReportTemplates"

	stmt := `SELECT id, name, data_source, spec, created_at FROM report_templates ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	templates := []*storage.ReportTemplate{}

	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		templates = append(templates, tpl)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return templates, nil
}

func (s *Storage) GetReportTemplateByID(ctx context.Context, id string) (*storage.ReportTemplate, error) {
	const op = "storage.mysql.GetReportTemplateByID"

	stmt := `SELECT id, name, data_source, spec, created_at FROM report_templates WHERE id = ?`

	tpl, err := scanTemplate(s.db.QueryRowContext(ctx, stmt, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: id='%s': %w", op, id, storage.ErrTemplateNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tpl, nil
}

func (s *Storage) DeleteReportTemplate(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteReportTemplate"

	res, err := s.db.ExecContext(ctx, `DELETE FROM report_templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: id='%s': %w", op, id, storage.ErrTemplateNotFound)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row scanner) (*storage.ReportTemplate, error) {
	tpl := &storage.ReportTemplate{}

	var specJSON string
	if err := row.Scan(&tpl.ID, &tpl.Name, &tpl.DataSource, &specJSON, &tpl.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(specJSON), &tpl.Spec); err != nil {
		return nil, fmt.Errorf("ошибка парсинга JSON спецификации: %w", err)
	}

	return tpl, nil
}
