// Command columngen extrudes every silhouette of a JSON document into a
// column and writes one STL or OBJ file per column.
//
// Usage:
//
//	columngen -in sprites.json -out columns -height 1 -format stl
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/soypat/column"
	"github.com/soypat/column/batch"
	"github.com/soypat/column/helpers/matter"
	"github.com/soypat/column/helpers/silio"
	"github.com/soypat/column/oracle"
	"github.com/soypat/column/render"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

type flags struct {
	in, out    string
	format     string
	height     float64
	gap        float64
	probe      float64
	workers    int
	oracleKind string
	material   string
	verbose    bool
}

func main() {
	var f flags
	flag.StringVar(&f.in, "in", "", "silhouette JSON document (required)")
	flag.StringVar(&f.out, "out", ".", "output directory")
	flag.StringVar(&f.format, "format", "stl", "output format: stl or obj")
	flag.Float64Var(&f.height, "height", 1, "column height for entries without one")
	flag.Float64Var(&f.gap, "gap", 0.05, "z offset applied to generated columns")
	flag.Float64Var(&f.probe, "probe", column.DefaultProbeOffset, "boundary probe distance from edge midpoints")
	flag.IntVar(&f.workers, "workers", 0, "concurrent columns, 0 uses all CPUs")
	flag.StringVar(&f.oracleKind, "oracle", "triangles", "containment oracle: triangles or mask")
	flag.StringVar(&f.material, "material", "exact", "shrinkage compensation: exact, pla or petg")
	flag.BoolVar(&f.verbose, "v", false, "log boundary walk details")
	flag.Parse()

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	column.SetLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, f, log); err != nil {
		log.Error("columngen failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, f flags, log *slog.Logger) error {
	if f.in == "" {
		return errors.New("missing -in")
	}
	if f.format != "stl" && f.format != "obj" {
		return fmt.Errorf("unknown format %q", f.format)
	}
	mat, err := matter.Lookup(f.material)
	if err != nil {
		return err
	}
	fp, err := os.Open(f.in)
	if err != nil {
		return err
	}
	doc, err := silio.Load(fp)
	fp.Close()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.out, 0o755); err != nil {
		return err
	}

	entries := make(map[string]silio.Entry, len(doc.Columns))
	items := make([]batch.Item, len(doc.Columns))
	for i, e := range doc.Columns {
		entries[e.Name] = e
		h := e.Height
		if h == 0 {
			h = f.height
		}
		items[i] = batch.Item{Name: e.Name, Silhouette: e.Silhouette(), Height: h, Done: e.Done}
	}
	cfg := batch.Config{
		Workers:   f.workers,
		Generator: column.Generator{ProbeOffset: f.probe},
		Offset:    r3.Vec{Z: f.gap},
		Logger:    log,
	}
	switch f.oracleKind {
	case "triangles":
		cfg.NewOracle = batch.DefaultOracle
	case "mask":
		dir := filepath.Dir(f.in)
		cfg.NewOracle = func(it batch.Item) (column.Oracle, error) {
			return maskOracle(dir, entries[it.Name])
		}
	default:
		return fmt.Errorf("unknown oracle %q", f.oracleKind)
	}

	results := batch.Run(ctx, items, cfg)
	writeErr := writeResults(results, f.out, f.format, mat, log)
	return errors.Join(batch.Err(results), writeErr)
}

// writeResults writes the mesh of every generated result to dir, one file
// per column named after it. Failed writes do not stop the others and are
// joined in the returned error.
func writeResults(results []batch.Result, dir, format string, mat matter.ViscousMaterial, log *slog.Logger) error {
	var errs []error
	for _, res := range results {
		if res.Mesh == nil {
			continue
		}
		mat.Scale(res.Mesh.Vertices)
		res.Mesh.RecalculateBounds()
		path := filepath.Join(dir, res.Name+"."+format)
		if err := writeMesh(path, format, res.Mesh); err != nil {
			log.Warn("writing column", slog.String("path", path), slog.Any("err", err))
			errs = append(errs, fmt.Errorf("%s: writing %s: %w", res.Name, path, err))
			continue
		}
		log.Info("wrote column", slog.String("path", path))
	}
	return errors.Join(errs...)
}

func maskOracle(dir string, e silio.Entry) (column.Oracle, error) {
	if e.Mask == nil {
		return nil, fmt.Errorf("column %q has no mask", e.Name)
	}
	path := e.Mask.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	img, _, err := image.Decode(fp)
	if err != nil {
		return nil, fmt.Errorf("decoding mask %s: %w", path, err)
	}
	return oracle.Mask(img, oracle.MaskConfig{
		PixelSize: e.Mask.PixelSize,
		Origin:    r2.Vec{X: e.Mask.Origin[0], Y: e.Mask.Origin[1]},
		Threshold: e.Mask.Threshold,
	}), nil
}

func writeMesh(path, format string, m *column.Mesh) error {
	if format == "stl" {
		return render.CreateSTL(path, m.Renderer())
	}
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := render.WriteOBJ(fp, m.Vertices, m.Normals, m.Triangles); err != nil {
		return err
	}
	return fp.Close()
}
