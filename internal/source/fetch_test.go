package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ppiankov/planreader/internal/model"
)

func noSleep(t *testing.T) {
	t.Helper()
	orig := fetchSleepFunc
	fetchSleepFunc = func(time.Duration) {}
	t.Cleanup(func() { fetchSleepFunc = orig })
}

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "planreader/") {
			t.Errorf("Expected planreader user agent, got %q", ua)
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = fmt.Fprint(w, "FLOOR PLAN 60 ft x 40 ft")
	}))
	defer server.Close()

	dl, err := NewFetcher(model.FetchConfig{}).Fetch(context.Background(), server.URL+"/sheets/A1.txt")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if dl.Name != "A1.txt" {
		t.Errorf("Expected name A1.txt, got %q", dl.Name)
	}
	if string(dl.Data) != "FLOOR PLAN 60 ft x 40 ft" {
		t.Errorf("Unexpected body: %s", dl.Data)
	}
}

func TestFetch_NameFromContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf; qs=0.9")
		_, _ = fmt.Fprint(w, "%PDF-1.4")
	}))
	defer server.Close()

	dl, err := NewFetcher(model.FetchConfig{}).Fetch(context.Background(), server.URL+"/download?id=7")
	if err != nil {
		t.Fatal(err)
	}
	if dl.Name != "download.pdf" {
		t.Errorf("Expected download.pdf, got %q", dl.Name)
	}
}

func TestFetch_TransientThenSuccess(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = fmt.Fprint(w, "OK")
	}))
	defer server.Close()

	dl, err := NewFetcher(model.FetchConfig{Retries: 2}).Fetch(context.Background(), server.URL+"/plan.txt")
	if err != nil {
		t.Fatalf("Expected success after retries, got %v", err)
	}
	if string(dl.Data) != "OK" {
		t.Errorf("Unexpected body: %s", dl.Data)
	}
	if attempts.Load() != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts.Load())
	}
}

func TestFetch_PermanentFailure(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewFetcher(model.FetchConfig{Retries: 3}).Fetch(context.Background(), server.URL+"/plan.pdf")
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("Expected ErrUnreadable, got %v", err)
	}
	if !strings.Contains(err.Error(), "unexpected status: 404 Not Found") {
		t.Errorf("Unexpected error: %v", err)
	}
	if attempts.Load() != 1 {
		t.Errorf("404 should not be retried, got %d attempts", attempts.Load())
	}
}

func TestFetch_TooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, strings.Repeat("x", 64))
	}))
	defer server.Close()

	_, err := NewFetcher(model.FetchConfig{MaxBytes: 16}).Fetch(context.Background(), server.URL+"/big.txt")
	if !errors.Is(err, errTooLarge) {
		t.Errorf("Expected size limit error, got %v", err)
	}
}

func TestFetch_RobotsDisallowed(t *testing.T) {
	var planHits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = fmt.Fprint(w, "User-agent: *\nDisallow: /private/\n")
			return
		}
		planHits.Add(1)
		_, _ = fmt.Fprint(w, "plan")
	}))
	defer server.Close()

	f := NewFetcher(model.FetchConfig{RespectRobots: true})
	if _, err := f.Fetch(context.Background(), server.URL+"/private/plan.txt"); err == nil {
		t.Error("Expected robots.txt to block the download")
	}
	if _, err := f.Fetch(context.Background(), server.URL+"/public/plan.txt"); err != nil {
		t.Errorf("Expected public path to be allowed, got %v", err)
	}
	if planHits.Load() != 1 {
		t.Errorf("Expected one plan request, got %d", planHits.Load())
	}
}

func TestRobotsChecker_MissingRobotsAllows(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	allowed, err := NewRobotsChecker(nil, "planreader/0.1").Allowed(context.Background(), server.URL+"/plan.pdf")
	if err != nil || !allowed {
		t.Errorf("Expected allowed without robots.txt, got %v, %v", allowed, err)
	}
}

func TestIsRemote(t *testing.T) {
	tests := map[string]bool{
		"https://example.com/plan.pdf": true,
		"HTTP://example.com/plan.pdf":  true,
		"plans/house.pdf":              false,
		"ftp://example.com/plan.pdf":   false,
	}
	for in, want := range tests {
		if got := IsRemote(in); got != want {
			t.Errorf("IsRemote(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestAgentToken(t *testing.T) {
	if got := agentToken("planreader/0.1 (+https://github.com/ppiankov/planreader)"); got != "planreader" {
		t.Errorf("Expected planreader, got %q", got)
	}
}
