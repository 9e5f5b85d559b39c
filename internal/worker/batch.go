package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ppiankov/planreader/internal/model"
)

// Processor turns one plan file into a takeoff
type Processor interface {
	Process(ctx context.Context, path string) (*model.Takeoff, error)
}

// PlanJob processes a single plan file
type PlanJob struct {
	Index     int
	Path      string
	Processor Processor
}

// Execute runs the processor and times it
func (j *PlanJob) Execute(ctx context.Context) Result {
	start := time.Now()
	t, err := j.Processor.Process(ctx, j.Path)
	return &PlanResult{
		Index:    j.Index,
		Path:     j.Path,
		Takeoff:  t,
		Error:    err,
		Duration: time.Since(start),
	}
}

// PlanResult is the outcome for one plan file
type PlanResult struct {
	Index    int
	Path     string
	Takeoff  *model.Takeoff
	Error    error
	Duration time.Duration
}

// GetError returns the processing error
func (r *PlanResult) GetError() error {
	return r.Error
}

// BatchProcessor processes many plan files concurrently
type BatchProcessor struct {
	processor   Processor
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(processor Processor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
	}
}

// ProcessPaths processes the files and returns results in input order.
// Files that were never started because ctx ended carry ctx's error.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*PlanResult {
	if len(paths) == 0 {
		return []*PlanResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for i, path := range paths {
		if !pool.Submit(&PlanJob{Index: i, Path: path, Processor: b.processor}) {
			break
		}
	}

	out := make([]*PlanResult, len(paths))
	for _, r := range pool.Wait() {
		pr := r.(*PlanResult)
		out[pr.Index] = pr
	}
	for i, r := range out {
		if r == nil {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			out[i] = &PlanResult{Index: i, Path: paths[i], Error: err}
		}
	}
	return out
}

// ProcessFile reads a list of plan paths and processes them
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*PlanResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read plan list: %w", err)
	}
	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads plan paths, one per line. Blank lines and lines
// starting with # are skipped, duplicates are dropped, and relative paths
// are resolved against the list file's directory. URLs are kept as written.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	base := filepath.Dir(listPath)
	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.Contains(line, "://") {
			if !filepath.IsAbs(line) {
				line = filepath.Join(base, line)
			}
			line = filepath.Clean(line)
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return paths, nil
}

// Summary counts batch outcomes
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Slowest   time.Duration
}

// Summarize tallies results
func Summarize(results []*PlanResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Error != nil {
			s.Failed++
		} else {
			s.Succeeded++
		}
		if r.Duration > s.Slowest {
			s.Slowest = r.Duration
		}
	}
	return s
}

// Failures returns failed results ordered by path
func Failures(results []*PlanResult) []*PlanResult {
	var failed []*PlanResult
	for _, r := range results {
		if r.Error != nil {
			failed = append(failed, r)
		}
	}
	sort.Slice(failed, func(i, j int) bool { return failed[i].Path < failed[j].Path })
	return failed
}
