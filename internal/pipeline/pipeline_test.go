package pipeline

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/planreader/internal/cache"
	"github.com/ppiankov/planreader/internal/model"
	"github.com/ppiankov/planreader/internal/ocr"
	"github.com/ppiankov/planreader/internal/source"
	"github.com/ppiankov/planreader/internal/store"
)

const twoStoryPlan = "FLOOR PLAN 60 ft x 40 ft\nSECOND FLOOR bedrooms\nVented crawlspace\n"

type stubRecognizer struct {
	text  string
	calls int
}

func (s *stubRecognizer) Name() string                     { return "stub" }
func (s *stubRecognizer) IsAvailable(context.Context) bool { return true }
func (s *stubRecognizer) Recognize(context.Context, ocr.Image) (string, error) {
	s.calls++
	return s.text, nil
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseDocument_NoDimensions(t *testing.T) {
	p := New(Options{})
	pages := make([]source.PageText, 4)
	for i := range pages {
		pages[i] = source.PageText{Number: i + 1, Origin: source.OriginEmpty}
	}

	est := p.ParseDocument(pages, "/plans/blank.pdf")
	if est.TotalSqft != 1000 || est.PageCount != 4 {
		t.Errorf("expected 1000 sqft from 4 pages, got %d from %d", est.TotalSqft, est.PageCount)
	}
	if est.FoundationType != model.FoundationSlab || est.NumStories != 1 {
		t.Errorf("expected single-story slab, got %d %s", est.NumStories, est.FoundationType)
	}
	if est.NumDoors != 3 || est.NumWindows != 6 {
		t.Errorf("expected 3 doors and 6 windows, got %d/%d", est.NumDoors, est.NumWindows)
	}
	if est.Filename != "blank.pdf" {
		t.Errorf("expected base filename, got %q", est.Filename)
	}
}

func TestParseDocument_Geometry(t *testing.T) {
	est := New(Options{}).ParseDocument([]source.PageText{{Number: 1, Text: twoStoryPlan}}, "")

	if est.TotalSqft != 2400 {
		t.Errorf("expected 2400 sqft, got %d", est.TotalSqft)
	}
	if est.NumStories != 2 || est.FoundationType != model.FoundationCrawlspace {
		t.Errorf("expected two-story crawlspace, got %d %s", est.NumStories, est.FoundationType)
	}
	if !strings.HasPrefix(est.RawText, "\n--- Page 1 ---\n") {
		t.Errorf("expected page header in raw text, got %q", est.RawText[:20])
	}
}

func TestParseDocument_Caps(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 80; i++ {
		b.WriteString("Room 12 ft x 14 ft, 2x4 studs, drywall. ")
	}
	page := source.PageText{Number: 1, Text: b.String()}

	est := New(Options{}).ParseDocument([]source.PageText{page, page}, "big.txt")
	if len(est.DimensionsFound) != MaxDimensions {
		t.Errorf("expected %d dimensions, got %d", MaxDimensions, len(est.DimensionsFound))
	}
	if len(est.MaterialsDetected) > MaxMaterials {
		t.Errorf("expected at most %d materials, got %d", MaxMaterials, len(est.MaterialsDetected))
	}
	if n := len([]rune(est.RawText)); n != MaxRawTextChars {
		t.Errorf("expected raw text capped at %d chars, got %d", MaxRawTextChars, n)
	}
}

func TestParseDocument_Pure(t *testing.T) {
	p := New(Options{})
	pages := []source.PageText{{Number: 1, Text: twoStoryPlan}}
	a := p.ParseDocument(pages, "a.txt")
	b := p.ParseDocument(pages, "a.txt")
	if a.TotalSqft != b.TotalSqft || a.RawText != b.RawText || len(a.Signals) != len(b.Signals) {
		t.Error("expected identical estimates for identical input")
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("2×4 stud", 3); got != "2×4" {
		t.Errorf("expected rune-safe truncation, got %q", got)
	}
	if got := truncateRunes("abc", 10); got != "abc" {
		t.Errorf("expected unchanged, got %q", got)
	}
}

func TestProcess_SavesTakeoff(t *testing.T) {
	st := store.NewMemory()
	p := New(Options{Store: st})
	path := writeFile(t, "house.txt", twoStoryPlan)

	tk, err := p.Process(context.Background(), path)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if tk.Project.Filename != "house.txt" || tk.Project.TotalSqft != 2400 {
		t.Errorf("unexpected project info %+v", tk.Project)
	}
	if tk.Summary.TotalLineItems != len(tk.Materials) || len(tk.Materials) == 0 {
		t.Errorf("unexpected summary %+v", tk.Summary)
	}

	saved, err := st.Get(context.Background(), tk.ID)
	if err != nil {
		t.Fatalf("expected takeoff in store: %v", err)
	}
	if len(saved.Materials) != len(tk.Materials) {
		t.Errorf("stored takeoff differs: %d vs %d lines", len(saved.Materials), len(tk.Materials))
	}
}

func TestParse_UsesCache(t *testing.T) {
	p := New(Options{Cache: cache.NewMemoryCache(time.Minute, time.Minute)})
	path := writeFile(t, "house.txt", twoStoryPlan)

	first, err := p.Parse(context.Background(), path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if first.Cached {
		t.Error("first parse should not be cached")
	}

	renamed := filepath.Join(filepath.Dir(path), "copy.txt")
	if err := os.Rename(path, renamed); err != nil {
		t.Fatal(err)
	}
	second, err := p.Parse(context.Background(), renamed)
	if err != nil {
		t.Fatalf("second Parse failed: %v", err)
	}
	if !second.Cached || second.Estimate.TotalSqft != first.Estimate.TotalSqft {
		t.Errorf("expected cached estimate, got %+v", second)
	}
	if second.Estimate.Filename != "copy.txt" {
		t.Errorf("cached estimate should carry the current filename, got %q", second.Estimate.Filename)
	}
}

func TestParse_Failures(t *testing.T) {
	p := New(Options{})
	ctx := context.Background()

	if _, err := p.Parse(ctx, writeFile(t, "plan.dwg", "AC1027")); !errors.Is(err, source.ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	if _, err := p.Parse(ctx, filepath.Join(t.TempDir(), "missing.pdf")); !errors.Is(err, source.ErrUnreadable) {
		t.Errorf("expected ErrUnreadable for missing file, got %v", err)
	}
	if _, err := p.Process(ctx, writeFile(t, "broken.pdf", "garbage")); !errors.Is(err, source.ErrUnreadable) {
		t.Errorf("expected ErrUnreadable for corrupt pdf, got %v", err)
	}
}

func TestParse_ScanWithoutOCRFallsBack(t *testing.T) {
	p := New(Options{Recognizer: ocr.Noop{}})
	path := writeFile(t, "scan.png", "\x89PNG\r\n\x1a\nraster")

	parsed, err := p.Parse(context.Background(), path)
	if err != nil {
		t.Fatalf("empty scans should not fail: %v", err)
	}
	if !parsed.Empty || parsed.Estimate.TotalSqft != 1000 {
		t.Errorf("expected empty heuristic estimate, got %+v", parsed)
	}
}

func TestParse_ScanWithOCR(t *testing.T) {
	stub := &stubRecognizer{text: twoStoryPlan}
	p := New(Options{Recognizer: stub})
	path := writeFile(t, "scan.jpg", "\xff\xd8\xffraster")

	parsed, err := p.Parse(context.Background(), path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if stub.calls != 1 {
		t.Errorf("expected one OCR call, got %d", stub.calls)
	}
	if parsed.Estimate.TotalSqft != 2400 || parsed.Kind != "image" {
		t.Errorf("expected OCR text to drive the estimate, got %+v", parsed.Estimate)
	}
}

func TestParse_RemotePlan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(twoStoryPlan))
	}))
	defer server.Close()

	parsed, err := New(Options{}).Parse(context.Background(), server.URL+"/plans/house")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed.Estimate.Filename != "house.txt" || parsed.Estimate.TotalSqft != 2400 {
		t.Errorf("unexpected remote estimate %+v", parsed.Estimate)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Dir = t.TempDir()
	if _, err := FromConfig(cfg, nil, nil); err != nil {
		t.Fatalf("FromConfig failed: %v", err)
	}

	cfg.OCR.Provider = "tesseract"
	if _, err := FromConfig(cfg, nil, nil); err == nil {
		t.Error("expected error for unknown OCR provider")
	}
}
