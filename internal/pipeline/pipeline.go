// Package pipeline wires document loading, text extraction, geometry
// estimation and takeoff generation into one call per plan file.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/ppiankov/planreader/internal/cache"
	"github.com/ppiankov/planreader/internal/extract"
	"github.com/ppiankov/planreader/internal/geometry"
	"github.com/ppiankov/planreader/internal/metrics"
	"github.com/ppiankov/planreader/internal/model"
	"github.com/ppiankov/planreader/internal/ocr"
	"github.com/ppiankov/planreader/internal/quantity"
	"github.com/ppiankov/planreader/internal/source"
	"github.com/ppiankov/planreader/internal/store"
	"github.com/ppiankov/planreader/internal/worker"
)

// Limits applied to the evidence kept on an estimate
const (
	MaxRawTextChars = 5000
	MaxDimensions   = 50
	MaxMaterials    = 100
)

// Options configures a Pipeline. Every field is optional.
type Options struct {
	Recognizer   ocr.Recognizer
	Fetcher      *source.Fetcher // for http(s) paths
	Cache        cache.Cache
	Store        store.Store
	Logger       *zap.Logger
	MinTextChars int
}

// Pipeline turns plan files into takeoffs
type Pipeline struct {
	loader     *source.Loader
	fetcher    *source.Fetcher
	dimensions *extract.DimensionExtractor
	materials  *extract.MaterialDetector
	estimator  *geometry.Estimator
	estimates  *cache.Estimates
	store      store.Store
	logger     *zap.Logger

	minTextChars int
	ocrName      string
}

// New creates a pipeline
func New(opts Options) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	minChars := opts.MinTextChars
	if minChars <= 0 {
		minChars = source.DefaultMinTextChars
	}
	ocrName := ""
	if ocr.Enabled(opts.Recognizer) {
		ocrName = opts.Recognizer.Name()
	}
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = source.NewFetcher(model.FetchConfig{})
	}

	return &Pipeline{
		loader:       source.NewLoader(opts.Recognizer, minChars, logger),
		fetcher:      fetcher,
		dimensions:   extract.NewDimensionExtractor(),
		materials:    extract.NewMaterialDetector(),
		estimator:    geometry.NewEstimator(),
		estimates:    cache.NewEstimates(opts.Cache),
		store:        opts.Store,
		logger:       logger,
		minTextChars: minChars,
		ocrName:      ocrName,
	}
}

// FromConfig builds the OCR recognizer (rate limited per provider) and
// cache from cfg. st may be nil.
func FromConfig(cfg *model.Config, st store.Store, logger *zap.Logger) (*Pipeline, error) {
	recognizer, err := ocr.New(ocr.ConfigFromModel(cfg.OCR))
	if err != nil {
		return nil, fmt.Errorf("ocr: %w", err)
	}
	limiter := worker.NewLimiter(cfg.OCR.RequestsPerSecond, cfg.OCR.Burst)

	return New(Options{
		Recognizer:   ocr.WithLimiter(recognizer, limiter),
		Fetcher:      source.NewFetcher(cfg.Fetch),
		Cache:        cache.New(cfg.Cache),
		Store:        st,
		Logger:       logger,
		MinTextChars: cfg.OCR.MinTextChars,
	}), nil
}

// ParseDocument derives a BlueprintEstimate from page texts. It does no
// I/O. Dimensions and materials are collected page by page; the estimate
// uses all of them, while the copies kept on the result are capped.
func (p *Pipeline) ParseDocument(pages []source.PageText, name string) model.BlueprintEstimate {
	var all strings.Builder
	var dims []model.ParsedDimension
	var mats []model.DetectedMaterial

	for _, page := range pages {
		fmt.Fprintf(&all, "\n--- Page %d ---\n%s", page.Number, page.Text)
		dims = append(dims, p.dimensions.Extract(page.Text)...)
		mats = append(mats, p.materials.Detect(page.Text)...)
	}
	text := all.String()

	est := p.estimator.Estimate(dims, text, len(pages))
	if name != "" {
		est.Filename = filepath.Base(name)
	}
	est.RawText = truncateRunes(text, MaxRawTextChars)
	est.DimensionsFound = capSlice(dims, MaxDimensions)
	est.MaterialsDetected = capSlice(mats, MaxMaterials)
	return est
}

// Parsed is the result of reading one plan file
type Parsed struct {
	Estimate model.BlueprintEstimate
	Kind     string
	Cached   bool
	Empty    bool // no text found; geometry came from page-count fallbacks
	Warnings []string
}

// Parse loads and parses a plan file, consulting the estimate cache.
// Unreadable and unsupported files return an error wrapping
// source.ErrUnreadable or source.ErrUnsupported.
func (p *Pipeline) Parse(ctx context.Context, path string) (*Parsed, error) {
	start := time.Now()

	name, data, err := p.read(ctx, path)
	if err != nil {
		var failure *source.Failure
		reason := string(source.ReasonUnreadable)
		if errors.As(err, &failure) {
			reason = string(failure.Reason)
		}
		metrics.ObserveDocument(source.KindOf(name), reason, time.Since(start))
		return nil, err
	}

	key := cache.DocumentKey(data, p.minTextChars, p.ocrName)
	if est, ok := p.estimates.Get(key); ok {
		metrics.ObserveCache(true)
		est.Filename = filepath.Base(name)
		p.logger.Debug("estimate cache hit", zap.String("path", path))
		return &Parsed{Estimate: est, Kind: source.KindOf(name), Cached: true}, nil
	}
	metrics.ObserveCache(false)

	out := p.loader.LoadBytes(ctx, name, data)
	if out.Failure.Fatal() {
		metrics.ObserveDocument(out.Kind, string(out.Failure.Reason), time.Since(start))
		p.logger.Warn("document rejected", zap.String("path", path), zap.Error(out.Failure))
		return nil, out.Failure
	}
	for _, page := range out.Pages {
		metrics.ObservePage(string(page.Origin))
	}

	est := p.ParseDocument(out.Pages, name)
	if err := p.estimates.Put(key, est); err != nil {
		p.logger.Warn("estimate cache write failed", zap.String("path", path), zap.Error(err))
	}

	outcome := "ok"
	if out.Failure != nil {
		outcome = string(out.Failure.Reason)
	}
	metrics.ObserveDocument(out.Kind, outcome, time.Since(start))
	p.logger.Info("document parsed",
		zap.String("path", path),
		zap.Int("pages", out.PageCount()),
		zap.Int("ocr_pages", out.OCRPages()),
		zap.Int("total_sqft", est.TotalSqft),
		zap.Int("dimensions", len(est.DimensionsFound)),
	)

	return &Parsed{
		Estimate: est,
		Kind:     out.Kind,
		Empty:    out.Failure != nil,
		Warnings: out.Warnings,
	}, nil
}

// read returns the document bytes and the name used to pick its loader.
// Remote paths are downloaded; the name then comes from the URL or its
// Content-Type.
func (p *Pipeline) read(ctx context.Context, path string) (string, []byte, error) {
	name := path
	var data []byte
	if source.IsRemote(path) {
		dl, err := p.fetcher.Fetch(ctx, path)
		if err != nil {
			return name, nil, err
		}
		name, data = dl.Name, dl.Data
		p.logger.Debug("plan downloaded", zap.String("url", dl.FinalURL), zap.Int("bytes", len(data)))
	}

	if !source.Supported(name) {
		return name, nil, &source.Failure{Reason: source.ReasonUnsupported, Path: path, Err: fmt.Errorf("extension %q", filepath.Ext(name))}
	}
	if data != nil {
		return name, data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return name, nil, &source.Failure{Reason: source.ReasonUnreadable, Path: path, Err: err}
	}
	return name, data, nil
}

// Process runs Parse, builds the full takeoff and saves it when a store is set
func (p *Pipeline) Process(ctx context.Context, path string) (*model.Takeoff, error) {
	parsed, err := p.Parse(ctx, path)
	if err != nil {
		return nil, err
	}

	t := quantity.FullTakeoff(parsed.Estimate)
	metrics.LineItemsTotal.Add(float64(len(t.Materials)))

	if p.store != nil {
		if err := p.store.Save(ctx, &t); err != nil {
			return nil, fmt.Errorf("save takeoff: %w", err)
		}
	}
	p.logger.Debug("takeoff generated",
		zap.String("id", t.ID),
		zap.String("path", path),
		zap.Int("line_items", len(t.Materials)),
	)
	return &t, nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func capSlice[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n:n]
	}
	return s
}
