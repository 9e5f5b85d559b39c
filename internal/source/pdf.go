package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"

	"github.com/ppiankov/planreader/internal/ocr"
)

// loadPDF reads the text layer page by page. pdfcpu validates the file and
// supplies embedded scans for pages whose text layer is too thin.
func (l *Loader) loadPDF(ctx context.Context, name string, data []byte) Outcome {
	var out Outcome

	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed
	pageCount := 0
	validated := true
	if pctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf); err != nil {
		validated = false
		l.logger.Warn("pdf validation failed", zap.String("path", name), zap.Error(err))
		out.Warnings = append(out.Warnings, fmt.Sprintf("validation: %v", err))
	} else {
		pageCount = pctx.PageCount
	}

	texts, err := pageTexts(data)
	if err != nil {
		if !validated {
			return failed(name, "pdf", ReasonUnreadable, fmt.Errorf("%w: %v", ErrUnreadable, err))
		}
		// Valid structure but no decodable text layer: every page is a scan.
		texts = make([]string, pageCount)
	}
	if len(texts) < pageCount {
		texts = append(texts, make([]string, pageCount-len(texts))...)
	}

	out.Pages = make([]PageText, len(texts))
	for i, text := range texts {
		page := PageText{Number: i + 1, Text: text, Origin: pageOrigin(text)}
		if l.needsOCR(text) && validated {
			if img, ok := l.pageImage(data, conf, page.Number); ok {
				if ocrText, ok := l.recognize(ctx, &out, img); ok {
					page.Text = ocrText
					page.Origin = OriginOCR
				}
			}
		}
		out.Pages[i] = page
	}
	return out
}

// pageTexts extracts plain text for every page. The reader panics on some
// malformed xref tables, which is reported as an error.
func pageTexts(data []byte) (texts []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	n := r.NumPage()
	texts = make([]string, n)
	for i := 1; i <= n; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		texts[i-1] = text
	}
	return texts, nil
}

var imageTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
}

// pageImage returns the largest embedded raster on a page, which on a
// scanned sheet is the sheet itself.
func (l *Loader) pageImage(data []byte, conf *pdfmodel.Configuration, pageNr int) (ocr.Image, bool) {
	if !ocr.Enabled(l.recognizer) {
		return ocr.Image{}, false
	}

	pages, err := api.ExtractImagesRaw(bytes.NewReader(data), []string{strconv.Itoa(pageNr)}, conf)
	if err != nil {
		l.logger.Debug("image extraction failed", zap.Int("page", pageNr), zap.Error(err))
		return ocr.Image{}, false
	}

	var best pdfmodel.Image
	found := false
	for _, images := range pages {
		for _, img := range images {
			if _, ok := imageTypes[strings.ToLower(img.FileType)]; !ok {
				continue
			}
			if !found || img.Width*img.Height > best.Width*best.Height {
				best = img
				found = true
			}
		}
	}
	if !found {
		return ocr.Image{}, false
	}

	raw, err := io.ReadAll(best)
	if err != nil || len(raw) == 0 {
		return ocr.Image{}, false
	}
	return ocr.Image{
		Data:     raw,
		MIMEType: imageTypes[strings.ToLower(best.FileType)],
		Page:     pageNr,
	}, true
}
