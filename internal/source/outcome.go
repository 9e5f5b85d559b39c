// Package source reads plan documents into per-page text. It is the only
// place that touches files and images; everything downstream sees text.
package source

import (
	"errors"
	"fmt"
	"strings"
)

// Origin records where a page's text came from
type Origin string

const (
	OriginText  Origin = "text"  // Embedded text layer
	OriginOCR   Origin = "ocr"   // Substituted by the OCR collaborator
	OriginEmpty Origin = "empty" // Nothing usable on the page
)

// PageText is the text of one page, numbered from 1
type PageText struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
	Origin Origin `json:"origin"`
}

// Reason classifies why a document produced no usable text
type Reason string

const (
	ReasonUnreadable  Reason = "unreadable"  // Corrupt or undecodable; abort
	ReasonUnsupported Reason = "unsupported" // Unknown file type; abort
	ReasonEmpty       Reason = "empty"       // Readable but textless; fall back to heuristics
)

var (
	ErrUnreadable  = errors.New("document unreadable")
	ErrUnsupported = errors.New("unsupported document type")
	ErrEmpty       = errors.New("no text found")
)

// Failure explains why a load did not yield text
type Failure struct {
	Reason Reason
	Path   string
	Err    error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Path, f.Reason, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Path, f.Reason)
}

func (f *Failure) Unwrap() error { return f.Err }

// Is matches the sentinel for the failure's reason.
func (f *Failure) Is(target error) bool {
	switch f.Reason {
	case ReasonUnreadable:
		return target == ErrUnreadable
	case ReasonUnsupported:
		return target == ErrUnsupported
	case ReasonEmpty:
		return target == ErrEmpty
	}
	return false
}

// Fatal reports whether processing must stop. An empty document is not
// fatal: its page count still drives the geometry fallback.
func (f *Failure) Fatal() bool {
	return f != nil && f.Reason != ReasonEmpty
}

// Outcome is the result of loading one document. Pages is populated
// whenever the document could be opened, even when Failure is ReasonEmpty.
type Outcome struct {
	Path     string
	Kind     string // pdf, text, html, image
	Pages    []PageText
	Failure  *Failure
	Warnings []string
}

// PageCount returns the number of pages read
func (o Outcome) PageCount() int {
	return len(o.Pages)
}

// OCRPages counts pages whose text came from OCR
func (o Outcome) OCRPages() int {
	n := 0
	for _, p := range o.Pages {
		if p.Origin == OriginOCR {
			n++
		}
	}
	return n
}

// Err returns the failure as an error, or nil
func (o Outcome) Err() error {
	if o.Failure == nil {
		return nil
	}
	return o.Failure
}

func (o Outcome) hasText() bool {
	for _, p := range o.Pages {
		if strings.TrimSpace(p.Text) != "" {
			return true
		}
	}
	return false
}

func failed(path, kind string, reason Reason, err error) Outcome {
	return Outcome{Path: path, Kind: kind, Failure: &Failure{Reason: reason, Path: path, Err: err}}
}
