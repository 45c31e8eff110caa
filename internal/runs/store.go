package runs

import (
	"context"
	"errors"
	"time"

	"github.com/avi3tal/treesearch/pkg/search"
)

// ErrNotFound is returned when no record exists for a run id
var ErrNotFound = errors.New("run not found")

// Record is what is kept about a finished search run
type Record struct {
	Problem   string
	Frontier  string
	Outcome   search.Outcome
	Depth     int
	PathCost  float64
	Path      []string
	Stats     search.Stats
	CreatedAt time.Time
}

// ID returns the run id the record is stored under
func (r Record) ID() string {
	return r.Stats.RunID
}

// Store persists run records
type Store interface {
	Save(ctx context.Context, record Record) error
	Load(ctx context.Context, runID string) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, runID string) error
}

// NewRecord describes a finished run. Actions are rendered with label.
func NewRecord[A any](problem, frontier string, res search.Result[A], stats search.Stats, label func(A) string) Record {
	rec := Record{
		Problem:  problem,
		Frontier: frontier,
		Outcome:  res.Outcome,
		Stats:    stats,
	}
	if res.Found() {
		rec.Depth = res.Depth
		rec.PathCost = res.PathCost
		rec.Path = make([]string, 0, len(res.Actions))
		for _, a := range res.Actions {
			rec.Path = append(rec.Path, label(a))
		}
	}
	return rec
}
