package mysql

import (
	"fmt"
	"strings"

	"grant-portal/internal/constants"
	"grant-portal/internal/storage"
)

const countColumn = "count"

var reportFrom = map[storage.DataSource]string{
	storage.SourceProposals:   "proposals LEFT JOIN users ON users.id = proposals.researcher_id",
	storage.SourceProjects:    "projects LEFT JOIN users ON users.id = projects.supervisor_id",
	storage.SourceUsers:       "users",
	storage.SourceEvaluations: "evaluations JOIN projects ON projects.id = evaluations.project_id LEFT JOIN users ON users.id = evaluations.evaluator_id",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type reportQuery struct {
	columns []string
	stmt    string
	count   string
	args    []any
}

func expr(f storage.ReportField) string {
	return f.Table + "." + f.Column
}

func lookup(source storage.DataSource, id string) (storage.ReportField, error) {
	f, ok := constants.LookupField(source, id)
	if !ok {
		return storage.ReportField{}, fmt.Errorf("%w: %q", storage.ErrUnknownField, id)
	}
	return f, nil
}

// buildReportQuery turns a specification into parameterised SQL. Every
// identifier comes from the catalog; user input only ever reaches args.
func buildReportQuery(spec storage.ReportSpecification) (*reportQuery, error) {
	from, ok := reportFrom[spec.DataSource]
	if !ok || !constants.KnownSource(spec.DataSource) {
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownDataSource, spec.DataSource)
	}

	q := &reportQuery{}

	var (
		selects []string
		groupBy string
	)

	if spec.GroupBy != "" {
		f, err := lookup(spec.DataSource, spec.GroupBy)
		if err != nil {
			return nil, err
		}
		groupBy = expr(f)
		selects = append(selects, fmt.Sprintf("%s AS `%s`", groupBy, f.ID), fmt.Sprintf("COUNT(*) AS `%s`", countColumn))
		q.columns = []string{f.ID, countColumn}
	} else {
		fields := spec.Fields
		if len(fields) == 0 {
			for _, f := range constants.Catalog(spec.DataSource) {
				fields = append(fields, f.ID)
			}
		}
		seen := make(map[string]bool, len(fields))
		for _, id := range fields {
			if seen[id] {
				continue
			}
			seen[id] = true

			f, err := lookup(spec.DataSource, id)
			if err != nil {
				return nil, err
			}
			selects = append(selects, fmt.Sprintf("%s AS `%s`", expr(f), f.ID))
			q.columns = append(q.columns, f.ID)
		}
	}

	var where []string

	for i, flt := range spec.Filters {
		if flt.Field == "" {
			continue
		}
		f, err := lookup(spec.DataSource, flt.Field)
		if err != nil {
			return nil, err
		}

		cond, args, err := filterCondition(expr(f), flt)
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i, err)
		}
		where = append(where, cond)
		q.args = append(q.args, args...)
	}

	if dr := spec.DateRange; dr != nil && (dr.From != nil || dr.To != nil) {
		f, err := lookup(spec.DataSource, constants.DateFields[spec.DataSource])
		if err != nil {
			return nil, err
		}
		if dr.From != nil {
			where = append(where, expr(f)+" >= ?")
			q.args = append(q.args, *dr.From)
		}
		if dr.To != nil {
			where = append(where, expr(f)+" <= ?")
			q.args = append(q.args, *dr.To)
		}
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(selects, ", "))
	b.WriteString(" FROM ")
	b.WriteString(from)
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	if groupBy != "" {
		b.WriteString(" GROUP BY ")
		b.WriteString(groupBy)
	}

	base := b.String()
	q.count = "SELECT COUNT(*) FROM (" + base + ") AS report"

	if spec.OrderBy != "" {
		order, err := orderExpr(spec, groupBy)
		if err != nil {
			return nil, err
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(order)
	}

	q.stmt = b.String()

	return q, nil
}

func orderExpr(spec storage.ReportSpecification, groupBy string) (string, error) {
	if groupBy != "" {
		if spec.OrderBy == countColumn {
			return "`" + countColumn + "`", nil
		}
		if spec.OrderBy != spec.GroupBy {
			return "", fmt.Errorf("%w: grouped reports order by %q or %q, got %q",
				storage.ErrUnknownField, spec.GroupBy, countColumn, spec.OrderBy)
		}
		return groupBy, nil
	}

	f, err := lookup(spec.DataSource, spec.OrderBy)
	if err != nil {
		return "", err
	}
	return expr(f), nil
}

func filterCondition(col string, f storage.ReportFilter) (string, []any, error) {
	switch f.Operator {
	case storage.OpEquals:
		return col + " = ?", []any{f.Value}, nil
	case storage.OpContains:
		return col + " LIKE ?", []any{"%" + likeEscaper.Replace(f.Value) + "%"}, nil
	case storage.OpStartsWith:
		return col + " LIKE ?", []any{likeEscaper.Replace(f.Value) + "%"}, nil
	case storage.OpEndsWith:
		return col + " LIKE ?", []any{"%" + likeEscaper.Replace(f.Value)}, nil
	case storage.OpGreaterThan:
		return col + " > ?", []any{f.Value}, nil
	case storage.OpLessThan:
		return col + " < ?", []any{f.Value}, nil
	case storage.OpBetween:
		lo, hi, ok := strings.Cut(f.Value, ",")
		lo, hi = strings.TrimSpace(lo), strings.TrimSpace(hi)
		if !ok || lo == "" || hi == "" {
			return "", nil, fmt.Errorf("%w: between expects \"from,to\", got %q", storage.ErrInvalidFilter, f.Value)
		}
		return col + " BETWEEN ? AND ?", []any{lo, hi}, nil
	default:
		return "", nil, fmt.Errorf("%w: unknown operator %q", storage.ErrInvalidFilter, f.Operator)
	}
}
