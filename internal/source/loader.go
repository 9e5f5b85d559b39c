package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/ppiankov/planreader/internal/ocr"
)

// DefaultMinTextChars is the text length below which a page is sent to OCR.
const DefaultMinTextChars = 50

var kinds = map[string]string{
	".pdf":  "pdf",
	".txt":  "text",
	".text": "text",
	".html": "html",
	".htm":  "html",
	".png":  "image",
	".jpg":  "image",
	".jpeg": "image",
}

// Supported reports whether path has a loadable extension
func Supported(path string) bool {
	_, ok := kinds[strings.ToLower(filepath.Ext(path))]
	return ok
}

// KindOf returns pdf, text, html or image for a supported path, else ""
func KindOf(path string) string {
	return kinds[strings.ToLower(filepath.Ext(path))]
}

// Extensions lists loadable file extensions
func Extensions() []string {
	out := make([]string, 0, len(kinds))
	for ext := range kinds {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Loader reads documents, substituting OCR output for near-empty pages
type Loader struct {
	recognizer   ocr.Recognizer
	minTextChars int
	logger       *zap.Logger
}

// NewLoader creates a loader. recognizer may be nil or ocr.Noop.
func NewLoader(recognizer ocr.Recognizer, minTextChars int, logger *zap.Logger) *Loader {
	if minTextChars <= 0 {
		minTextChars = DefaultMinTextChars
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		recognizer:   recognizer,
		minTextChars: minTextChars,
		logger:       logger,
	}
}

// Load reads the file at path
func (l *Loader) Load(ctx context.Context, path string) Outcome {
	kind, ok := kinds[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return failed(path, "", ReasonUnsupported, fmt.Errorf("extension %q", filepath.Ext(path)))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return failed(path, kind, ReasonUnreadable, err)
	}
	return l.LoadBytes(ctx, path, data)
}

// LoadBytes reads an in-memory document; name selects the format
func (l *Loader) LoadBytes(ctx context.Context, name string, data []byte) Outcome {
	kind, ok := kinds[strings.ToLower(filepath.Ext(name))]
	if !ok {
		return failed(name, "", ReasonUnsupported, fmt.Errorf("extension %q", filepath.Ext(name)))
	}
	if len(data) == 0 {
		return failed(name, kind, ReasonUnreadable, errors.New("empty file"))
	}

	var out Outcome
	switch kind {
	case "pdf":
		out = l.loadPDF(ctx, name, data)
	case "text":
		out = loadText(name, data)
	case "html":
		out = loadHTML(name, data)
	case "image":
		out = l.loadImage(ctx, name, data)
	}
	out.Path = name
	out.Kind = kind

	if out.Failure == nil && !out.hasText() {
		out.Failure = &Failure{Reason: ReasonEmpty, Path: name, Err: ErrEmpty}
	}

	l.logger.Debug("document loaded",
		zap.String("path", name),
		zap.String("kind", kind),
		zap.Int("pages", out.PageCount()),
		zap.Int("ocr_pages", out.OCRPages()),
	)
	return out
}

// needsOCR applies the threshold to trimmed text, counted in characters.
func (l *Loader) needsOCR(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) < l.minTextChars
}

// recognize OCRs one page image. On failure the caller keeps whatever
// text it already had.
func (l *Loader) recognize(ctx context.Context, out *Outcome, img ocr.Image) (string, bool) {
	if !ocr.Enabled(l.recognizer) {
		return "", false
	}
	text, err := l.recognizer.Recognize(ctx, img)
	if err != nil {
		l.logger.Warn("ocr failed", zap.Int("page", img.Page), zap.Error(err))
		out.Warnings = append(out.Warnings, fmt.Sprintf("page %d: ocr: %v", img.Page, err))
		return "", false
	}
	return text, true
}

func pageOrigin(text string) Origin {
	if strings.TrimSpace(text) == "" {
		return OriginEmpty
	}
	return OriginText
}
