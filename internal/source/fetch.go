package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/ppiankov/planreader/internal/model"
)

// Download is a plan document fetched over HTTP
type Download struct {
	Name        string // file name with a loadable extension when one could be inferred
	Data        []byte
	ContentType string
	FinalURL    string
}

// Fetcher downloads plan documents from http(s) URLs
type Fetcher struct {
	client    *http.Client
	robots    *RobotsChecker
	userAgent string
	maxBytes  int64
	retries   int
}

// fetchSleepFunc is replaced in tests.
var fetchSleepFunc = time.Sleep

var errTooLarge = errors.New("document exceeds size limit")

// IsRemote reports whether path is an http or https URL
func IsRemote(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// NewFetcher creates a fetcher from cfg. Zero values take the defaults.
func NewFetcher(cfg model.FetchConfig) *Fetcher {
	def := model.DefaultConfig().Fetch
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = def.MaxBytes
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}

	client := &http.Client{
		Timeout: time.Duration(cfg.Timeout) * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 3 {
				return fmt.Errorf("stopped after 3 redirects")
			}
			return nil
		},
	}

	f := &Fetcher{
		client:    client,
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBytes,
		retries:   cfg.Retries,
	}
	if cfg.RespectRobots {
		f.robots = NewRobotsChecker(client, cfg.UserAgent)
	}
	return f
}

// Fetch downloads rawURL, retrying 429 and 5xx responses with backoff.
// Failures are returned as *Failure with ReasonUnreadable.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Download, error) {
	if f.robots != nil {
		allowed, err := f.robots.Allowed(ctx, rawURL)
		if err != nil {
			return nil, &Failure{Reason: ReasonUnreadable, Path: rawURL, Err: err}
		}
		if !allowed {
			return nil, &Failure{Reason: ReasonUnreadable, Path: rawURL, Err: errors.New("disallowed by robots.txt")}
		}
	}

	var lastErr error
	for attempt := 0; attempt <= f.retries; attempt++ {
		if attempt > 0 {
			fetchSleepFunc(time.Duration(1<<(attempt-1)) * time.Second)
		}
		if err := ctx.Err(); err != nil {
			return nil, &Failure{Reason: ReasonUnreadable, Path: rawURL, Err: err}
		}

		dl, retry, err := f.fetchOnce(ctx, rawURL)
		if err == nil {
			return dl, nil
		}
		lastErr = err
		if !retry {
			break
		}
	}
	return nil, &Failure{Reason: ReasonUnreadable, Path: rawURL, Err: lastErr}
}

func (f *Fetcher) fetchOnce(ctx context.Context, rawURL string) (dl *Download, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/pdf,image/*,text/html;q=0.9,text/plain;q=0.8,*/*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		transient := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, transient, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, true, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, false, fmt.Errorf("%w (%d bytes)", errTooLarge, f.maxBytes)
	}

	finalURL := resp.Request.URL.String()
	contentType := resp.Header.Get("Content-Type")
	return &Download{
		Name:        documentName(resp.Request.URL, contentType),
		Data:        body,
		ContentType: contentType,
		FinalURL:    finalURL,
	}, false, nil
}

var mediaExtensions = map[string]string{
	"application/pdf": ".pdf",
	"text/plain":      ".txt",
	"text/html":       ".html",
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
}

// documentName takes the last path segment of u. When it has no loadable
// extension the Content-Type decides one.
func documentName(u *url.URL, contentType string) string {
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		name = u.Host
	}
	if Supported(name) {
		return name
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return name
	}
	if ext, ok := mediaExtensions[mediaType]; ok {
		return name + ext
	}
	return name
}
