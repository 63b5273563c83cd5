// Package builder holds the report builder: the in-memory report
// specification a user is editing, the reducer that edits it, and the client
// that sends it to the portal API for execution or saving.
package builder

import (
	"time"

	"grant-portal/internal/constants"
	"grant-portal/internal/storage"
)

type State struct {
	Spec    storage.ReportSpecification
	Catalog []storage.ReportField
	Result  *storage.ReportResult
	Loading bool
}

// NewState starts an editing session on source.
func NewState(source storage.DataSource) State {
	return Reduce(State{}, SetDataSource{Source: source})
}

// Action is one edit of the builder state. Reduce is the only place actions
// are applied.
type Action interface {
	apply(s State) State
}

// Reduce returns the state that follows s after a. s is never modified.
func Reduce(s State, a Action) State {
	return a.apply(s.clone())
}

func (s State) clone() State {
	out := s
	out.Spec.Fields = append([]string(nil), s.Spec.Fields...)
	out.Spec.Filters = append([]storage.ReportFilter(nil), s.Spec.Filters...)
	out.Catalog = append([]storage.ReportField(nil), s.Catalog...)
	if s.Spec.DateRange != nil {
		dr := *s.Spec.DateRange
		out.Spec.DateRange = &dr
	}
	return out
}

// SetDataSource switches the catalog and always clears fields and filters.
type SetDataSource struct {
	Source storage.DataSource
}

func (a SetDataSource) apply(s State) State {
	s.Spec.DataSource = a.Source
	s.Spec.Fields = []string{}
	s.Spec.Filters = []storage.ReportFilter{}
	s.Catalog = constants.Catalog(a.Source)
	return s
}

type ToggleField struct {
	Field string
}

func (a ToggleField) apply(s State) State {
	for i, f := range s.Spec.Fields {
		if f == a.Field {
			s.Spec.Fields = append(s.Spec.Fields[:i], s.Spec.Fields[i+1:]...)
			return s
		}
	}
	s.Spec.Fields = append(s.Spec.Fields, a.Field)
	return s
}

type AddFilter struct{}

func (AddFilter) apply(s State) State {
	s.Spec.Filters = append(s.Spec.Filters, storage.ReportFilter{Operator: storage.OpEquals})
	return s
}

type RemoveFilter struct {
	Index int
}

func (a RemoveFilter) apply(s State) State {
	if a.Index < 0 || a.Index >= len(s.Spec.Filters) {
		return s
	}
	s.Spec.Filters = append(s.Spec.Filters[:a.Index], s.Spec.Filters[a.Index+1:]...)
	return s
}

// UpdateFilter sets one key ("field", "operator" or "value") of a filter.
// Neither the field nor the operator is checked against the catalog.
type UpdateFilter struct {
	Index int
	Key   string
	Value string
}

func (a UpdateFilter) apply(s State) State {
	if a.Index < 0 || a.Index >= len(s.Spec.Filters) {
		return s
	}

	f := s.Spec.Filters[a.Index]
	switch a.Key {
	case "field":
		f.Field = a.Value
	case "operator":
		f.Operator = storage.Operator(a.Value)
	case "value":
		f.Value = a.Value
	default:
		return s
	}
	s.Spec.Filters[a.Index] = f

	return s
}

// SetDateRange sets the range; nil bounds are open. Both nil clears it.
type SetDateRange struct {
	From *time.Time
	To   *time.Time
}

func (a SetDateRange) apply(s State) State {
	if a.From == nil && a.To == nil {
		s.Spec.DateRange = nil
		return s
	}
	s.Spec.DateRange = &storage.DateRange{From: a.From, To: a.To}
	return s
}

type SetGroupBy struct {
	Field string
}

func (a SetGroupBy) apply(s State) State {
	s.Spec.GroupBy = a.Field
	return s
}

type SetOrderBy struct {
	Field string
}

func (a SetOrderBy) apply(s State) State {
	s.Spec.OrderBy = a.Field
	return s
}
