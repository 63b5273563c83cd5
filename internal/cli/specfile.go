package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"grant-portal/internal/service/builder"
	"grant-portal/internal/storage"
)

// LoadSpecFile reads a report specification written in YAML.
func LoadSpecFile(path string) (storage.ReportSpecification, error) {
	const op = "cli.LoadSpecFile"

	var spec storage.ReportSpecification

	data, err := os.ReadFile(path)
	if err != nil {
		return spec, fmt.Errorf("%s: %w", op, err)
	}

	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("%s: parse %s: %w", op, path, err)
	}

	if spec.DataSource == "" {
		return spec, fmt.Errorf("%s: %s: dataSource is required", op, path)
	}

	return spec, nil
}

// Actions replays spec as the edits a user would make in the builder, so a
// file-driven run goes through the same reducer as an interactive one.
func Actions(spec storage.ReportSpecification) []builder.Action {
	actions := []builder.Action{builder.SetDataSource{Source: spec.DataSource}}

	// a repeated field would toggle itself back off
	seen := make(map[string]bool, len(spec.Fields))
	for _, f := range spec.Fields {
		if seen[f] {
			continue
		}
		seen[f] = true
		actions = append(actions, builder.ToggleField{Field: f})
	}

	for i, f := range spec.Filters {
		actions = append(actions,
			builder.AddFilter{},
			builder.UpdateFilter{Index: i, Key: "field", Value: f.Field},
			builder.UpdateFilter{Index: i, Key: "value", Value: f.Value},
		)
		if f.Operator != "" {
			actions = append(actions, builder.UpdateFilter{Index: i, Key: "operator", Value: string(f.Operator)})
		}
	}

	if spec.DateRange != nil {
		actions = append(actions, builder.SetDateRange{From: spec.DateRange.From, To: spec.DateRange.To})
	}
	if spec.GroupBy != "" {
		actions = append(actions, builder.SetGroupBy{Field: spec.GroupBy})
	}
	if spec.OrderBy != "" {
		actions = append(actions, builder.SetOrderBy{Field: spec.OrderBy})
	}

	return actions
}
