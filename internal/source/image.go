package source

import (
	"context"

	"github.com/ppiankov/planreader/internal/ocr"
)

// loadImage OCRs a single scanned sheet.
func (l *Loader) loadImage(ctx context.Context, name string, data []byte) Outcome {
	var out Outcome
	page := PageText{Number: 1, Origin: OriginEmpty}
	if text, ok := l.recognize(ctx, &out, ocr.Image{Data: data, Page: 1}); ok {
		page.Text = text
		page.Origin = OriginOCR
	}
	out.Pages = []PageText{page}
	return out
}
