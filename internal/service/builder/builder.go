package builder

import (
	"context"
	"log/slog"
	"sync"

	"grant-portal/internal/storage"
)

type ReportClient interface {
	Generate(ctx context.Context, spec storage.ReportSpecification) (*storage.ReportResult, error)
	SaveTemplate(ctx context.Context, spec storage.ReportSpecification) error
}

// Builder owns one editing session. Concurrent Generate calls are not
// de-duplicated: the response that arrives last replaces the result.
type Builder struct {
	log *slog.Logger

	mu       sync.Mutex
	state    State
	inflight int
}

func New(log *slog.Logger, source storage.DataSource) *Builder {
	return &Builder{log: log, state: NewState(source)}
}

func (b *Builder) Dispatch(actions ...Action) State {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, a := range actions {
		b.state = Reduce(b.state, a)
	}

	return b.state.clone()
}

func (b *Builder) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state.clone()
}

// Generate sends the current specification for execution. A failure is logged
// and the previous result stays in place; the error is returned so callers
// can surface it.
func (b *Builder) Generate(ctx context.Context, client ReportClient) error {
	const op = "builder.Generate"

	b.mu.Lock()
	spec := b.state.clone().Spec
	b.inflight++
	b.state.Loading = true
	b.mu.Unlock()

	res, err := client.Generate(ctx, spec)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.inflight--
	b.state.Loading = b.inflight > 0

	if err != nil {
		b.log.Error("failed to generate report",
			slog.String("op", op),
			slog.String("data_source", string(spec.DataSource)),
			slog.String("error", err.Error()),
		)
		return err
	}

	b.state.Result = res

	return nil
}

// SaveTemplate stores the current specification as a template. It does not
// execute the report and does not touch the result.
func (b *Builder) SaveTemplate(ctx context.Context, client ReportClient) error {
	const op = "builder.SaveTemplate"

	spec := b.State().Spec

	if err := client.SaveTemplate(ctx, spec); err != nil {
		b.log.Error("failed to save report template",
			slog.String("op", op),
			slog.String("data_source", string(spec.DataSource)),
			slog.String("error", err.Error()),
		)
		return err
	}

	return nil
}

// Preview returns the table for the last result, if there is one.
func (b *Builder) Preview() (Preview, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state.Result == nil {
		return Preview{}, false
	}

	return NewPreview(b.state.Result), true
}
