package storage

import "time"

type DataSource string

const (
	SourceProposals   DataSource = "proposals"
	SourceProjects    DataSource = "projects"
	SourceUsers       DataSource = "users"
	SourceEvaluations DataSource = "evaluations"
)

// DataSources lists every known source in display order.
var DataSources = []DataSource{SourceProposals, SourceProjects, SourceUsers, SourceEvaluations}

type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldDate   FieldType = "date"
	FieldSelect FieldType = "select"
)

type Operator string

const (
	OpEquals      Operator = "equals"
	OpContains    Operator = "contains"
	OpStartsWith  Operator = "startsWith"
	OpEndsWith    Operator = "endsWith"
	OpGreaterThan Operator = "greaterThan"
	OpLessThan    Operator = "lessThan"
	OpBetween     Operator = "between"
)

type ReportField struct {
	ID     string    `json:"id"`
	Label  string    `json:"label"`
	Type   FieldType `json:"type"`
	Table  string    `json:"table"`
	Column string    `json:"-"`
}

type ReportFilter struct {
	Field    string   `json:"field" yaml:"field"`
	Operator Operator `json:"operator" yaml:"operator"`
	Value    string   `json:"value" yaml:"value"`
}

type DateRange struct {
	From *time.Time `json:"from,omitempty" yaml:"from,omitempty"`
	To   *time.Time `json:"to,omitempty" yaml:"to,omitempty"`
}

type ReportSpecification struct {
	DataSource DataSource     `json:"dataSource" yaml:"dataSource"`
	Fields     []string       `json:"fields" yaml:"fields"`
	Filters    []ReportFilter `json:"filters" yaml:"filters"`
	DateRange  *DateRange     `json:"dateRange,omitempty" yaml:"dateRange,omitempty"`
	GroupBy    string         `json:"groupBy,omitempty" yaml:"groupBy,omitempty"`
	OrderBy    string         `json:"orderBy,omitempty" yaml:"orderBy,omitempty"`
}

type ReportTemplate struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	DataSource DataSource          `json:"dataSource"`
	Spec       ReportSpecification `json:"spec"`
	CreatedAt  time.Time           `json:"createdAt"`
}

type ReportResult struct {
	Data  []ReportRow `json:"data"`
	Total int         `json:"total"`
}
