package constants

import (
	"slices"

	"grant-portal/internal/storage"
)

var (
	ProposalFields = []storage.ReportField{
		{ID: "title", Label: "Title", Type: storage.FieldText, Table: "proposals", Column: "title"},
		{ID: "status", Label: "Status", Type: storage.FieldSelect, Table: "proposals", Column: "status"},
		{ID: "requestedAmount", Label: "Requested Amount", Type: storage.FieldNumber, Table: "proposals", Column: "total_budget"},
		{ID: "submittedAt", Label: "Submitted", Type: storage.FieldDate, Table: "proposals", Column: "submitted_at"},
		{ID: "researcher", Label: "Researcher", Type: storage.FieldText, Table: "users", Column: "name"},
		{ID: "department", Label: "Department", Type: storage.FieldSelect, Table: "users", Column: "department"},
	}

	ProjectFields = []storage.ReportField{
		{ID: "title", Label: "Title", Type: storage.FieldText, Table: "projects", Column: "title"},
		{ID: "status", Label: "Status", Type: storage.FieldSelect, Table: "projects", Column: "status"},
		{ID: "budget", Label: "Approved Budget", Type: storage.FieldNumber, Table: "projects", Column: "budget"},
		{ID: "startDate", Label: "Start Date", Type: storage.FieldDate, Table: "projects", Column: "start_date"},
		{ID: "endDate", Label: "End Date", Type: storage.FieldDate, Table: "projects", Column: "end_date"},
		{ID: "supervisor", Label: "Supervisor", Type: storage.FieldText, Table: "users", Column: "name"},
	}

	UserFields = []storage.ReportField{
		{ID: "name", Label: "Name", Type: storage.FieldText, Table: "users", Column: "name"},
		{ID: "email", Label: "Email", Type: storage.FieldText, Table: "users", Column: "email"},
		{ID: "role", Label: "Role", Type: storage.FieldSelect, Table: "users", Column: "role"},
		{ID: "department", Label: "Department", Type: storage.FieldSelect, Table: "users", Column: "department"},
		{ID: "createdAt", Label: "Registered", Type: storage.FieldDate, Table: "users", Column: "created_at"},
	}

	EvaluationFields = []storage.ReportField{
		{ID: "project", Label: "Project", Type: storage.FieldText, Table: "projects", Column: "title"},
		{ID: "score", Label: "Score", Type: storage.FieldNumber, Table: "evaluations", Column: "score"},
		{ID: "recommendation", Label: "Recommendation", Type: storage.FieldSelect, Table: "evaluations", Column: "recommendation"},
		{ID: "evaluator", Label: "Evaluator", Type: storage.FieldText, Table: "users", Column: "name"},
		{ID: "evaluatedAt", Label: "Evaluated", Type: storage.FieldDate, Table: "evaluations", Column: "evaluated_at"},
	}
)

// DateFields names the field a report date range is applied to.
var DateFields = map[storage.DataSource]string{
	storage.SourceProposals:   "submittedAt",
	storage.SourceProjects:    "startDate",
	storage.SourceUsers:       "createdAt",
	storage.SourceEvaluations: "evaluatedAt",
}

// Catalog returns a copy of the field catalog for source. Unknown sources
// have no fields.
func Catalog(source storage.DataSource) []storage.ReportField {
	return slices.Clone(catalog(source))
}

func catalog(source storage.DataSource) []storage.ReportField {
	switch source {
	case storage.SourceProposals:
		return ProposalFields
	case storage.SourceProjects:
		return ProjectFields
	case storage.SourceUsers:
		return UserFields
	case storage.SourceEvaluations:
		return EvaluationFields
	default:
		return nil
	}
}

func KnownSource(source storage.DataSource) bool {
	return catalog(source) != nil
}

// LookupField finds id in the catalog of source.
func LookupField(source storage.DataSource, id string) (storage.ReportField, bool) {
	for _, f := range catalog(source) {
		if f.ID == id {
			return f, true
		}
	}
	return storage.ReportField{}, false
}
