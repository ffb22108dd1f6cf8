// Package batch generates columns for many silhouettes concurrently.
//
// Every item is isolated: a failing or panicking item records its error in
// its Result and the remaining items are still attempted.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/soypat/column"
	"github.com/soypat/column/oracle"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// Item is one silhouette to extrude.
type Item struct {
	Name       string
	Silhouette column.Silhouette
	Height     float64
	// Oracle answers containment for this item only. It must not be shared
	// with other items. Nil means Config.NewOracle builds one.
	Oracle column.Oracle
	// Done marks an item whose column already exists. Done items are skipped.
	Done bool
}

// Result is the outcome of one Item, at the same position as the item.
type Result struct {
	Name    string
	Mesh    *column.Mesh
	Err     error
	Skipped bool
	Elapsed time.Duration
}

// Config controls a batch run. The zero value is usable.
type Config struct {
	// Workers is the maximum number of items processed at once.
	// Zero or negative means runtime.NumCPU().
	Workers int
	// Generator builds each column.
	Generator column.Generator
	// NewOracle builds the oracle of items that carry none.
	// Nil means DefaultOracle.
	NewOracle func(Item) (column.Oracle, error)
	// Offset translates every generated mesh, typically a small z gap
	// that places a column just behind its sprite.
	Offset r3.Vec
	// Logger receives one record per item. Nil means column.Logger().
	Logger *slog.Logger
}

// PanicError is recorded for an item whose generation panicked.
type PanicError struct {
	Value any
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// DefaultOracle builds a triangle oracle from the item's own silhouette.
func DefaultOracle(it Item) (column.Oracle, error) {
	o, err := oracle.Triangles(it.Silhouette.Vertices, it.Silhouette.Triangles)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Run processes items and returns one Result per item, in order. Items not
// started before ctx is done report the context error.
func Run(ctx context.Context, items []Item, cfg Config) []Result {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if cfg.NewOracle == nil {
		cfg.NewOracle = DefaultOracle
	}
	log := cfg.Logger
	if log == nil {
		log = column.Logger()
	}
	results := make([]Result, len(items))
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range items {
		g.Go(func() error {
			res := cfg.process(ctx, items[i])
			logResult(log, res)
			results[i] = res
			return nil
		})
	}
	g.Wait()
	return results
}

func (cfg *Config) process(ctx context.Context, it Item) (res Result) {
	res.Name = it.Name
	if it.Done {
		res.Skipped = true
		return res
	}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	start := time.Now()
	defer func() {
		if a := recover(); a != nil {
			res.Mesh = nil
			res.Err = &PanicError{Value: a, Stack: string(debug.Stack())}
		}
		res.Elapsed = time.Since(start)
	}()
	if err := it.Silhouette.Validate(); err != nil {
		res.Err = err
		return res
	}
	o := it.Oracle
	if o == nil {
		var err error
		o, err = cfg.NewOracle(it)
		if err != nil {
			res.Err = fmt.Errorf("building oracle: %w", err)
			return res
		}
	}
	m, err := cfg.Generator.Generate(it.Silhouette, it.Height, o)
	if err != nil {
		res.Err = err
		return res
	}
	if cfg.Offset != (r3.Vec{}) {
		m.Translate(cfg.Offset)
	}
	res.Mesh = m
	return res
}

func logResult(log *slog.Logger, res Result) {
	switch {
	case res.Skipped:
		log.Debug("column skipped", slog.String("name", res.Name))
	case res.Err != nil:
		log.Warn("column failed", slog.String("name", res.Name), slog.Any("err", res.Err))
	default:
		log.Info("column generated", slog.String("name", res.Name),
			slog.Int("triangles", res.Mesh.TriangleCount()),
			slog.Duration("elapsed", res.Elapsed))
	}
}

// Err joins the errors of all failed results, prefixed by item name.
// It returns nil if every item succeeded or was skipped.
func Err(results []Result) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Name, r.Err))
		}
	}
	return errors.Join(errs...)
}
