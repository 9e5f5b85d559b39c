// Package ocr turns scanned plan sheets into plain text through a vision
// model. The engine treats it as a black box: one image in, page text out.
package ocr

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ppiankov/planreader/internal/model"
)

// ErrNoText is returned when the model answered but produced no text.
var ErrNoText = errors.New("ocr: no text recognized")

// Recognizer extracts text from a single page image
type Recognizer interface {
	// Name returns the provider name
	Name() string

	// Recognize returns the text visible on the image
	Recognize(ctx context.Context, img Image) (string, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// Image is one page raster handed to a Recognizer.
type Image struct {
	Data     []byte
	MIMEType string // detected from Data when empty
	Page     int
}

func (img Image) mimeType() string {
	if img.MIMEType != "" {
		return img.MIMEType
	}
	ct := http.DetectContentType(img.Data)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return ct
}

func (img Image) base64() string {
	return base64.StdEncoding.EncodeToString(img.Data)
}

func (img Image) dataURI() string {
	return "data:" + img.mimeType() + ";base64," + img.base64()
}

// Config holds recognizer settings
type Config struct {
	Provider   string // "openai", "anthropic", "ollama", ""
	Model      string
	APIKey     string
	BaseURL    string
	Timeout    int // seconds
	MaxTokens  int
	HTTPProxy  string
	HTTPSProxy string
}

// DefaultConfig returns an OCR config with recognition disabled.
func DefaultConfig() Config {
	return Config{
		Timeout:   60,
		MaxTokens: 4000,
	}
}

// ConfigFromModel converts the file/env config section.
func ConfigFromModel(c model.OCRConfig) Config {
	return Config{
		Provider:   c.Provider,
		Model:      c.Model,
		APIKey:     c.APIKey,
		BaseURL:    c.BaseURL,
		Timeout:    c.Timeout,
		MaxTokens:  c.MaxTokens,
		HTTPProxy:  c.HTTPProxy,
		HTTPSProxy: c.HTTPSProxy,
	}
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}

func (c Config) maxTokens() int {
	if c.MaxTokens <= 0 {
		return 4000
	}
	return c.MaxTokens
}

// Prompt asks the model for a verbatim transcription. Dimension strings and
// material callouts must survive untouched for the extractors downstream.
const Prompt = `Transcribe all text visible on this construction drawing.
Keep dimension strings exactly as written (for example 24'-6", 12' x 16', 2400 SF).
Keep material callouts, notes, schedules and title block text.
Output plain text only, one line per label, with no commentary.`

const systemPrompt = "You are an OCR engine for architectural plan sheets."

func newHTTPClient(cfg Config) *http.Client {
	return &http.Client{
		Timeout: cfg.timeout(),
		Transport: &http.Transport{
			Proxy: proxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy),
		},
	}
}

// proxyFunc prefers explicit proxies and falls back to the environment.
func proxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
