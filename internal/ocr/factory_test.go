package ocr

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
)

func TestNew_Providers(t *testing.T) {
	tests := []struct {
		cfg  Config
		name string
	}{
		{Config{}, "none"},
		{Config{Provider: "OpenAI", APIKey: "k"}, "openai"},
		{Config{Provider: "claude", APIKey: "k"}, "anthropic"},
		{Config{Provider: "ollama", Model: "llava"}, "ollama"},
	}
	for _, tt := range tests {
		r, err := New(tt.cfg)
		if err != nil {
			t.Fatalf("New(%q): %v", tt.cfg.Provider, err)
		}
		if r.Name() != tt.name {
			t.Errorf("New(%q): expected %s, got %s", tt.cfg.Provider, tt.name, r.Name())
		}
	}

	if _, err := New(Config{Provider: "tesseract"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestNoop(t *testing.T) {
	r, _ := New(Config{})
	if Enabled(r) {
		t.Error("Noop should not be enabled")
	}
	if Enabled(nil) {
		t.Error("nil should not be enabled")
	}
	if _, err := r.Recognize(context.Background(), pngPage); !errors.Is(err, ErrDisabled) {
		t.Errorf("Expected ErrDisabled, got %v", err)
	}
}

type stubRecognizer struct{ calls int }

func (s *stubRecognizer) Name() string                     { return "stub" }
func (s *stubRecognizer) IsAvailable(context.Context) bool { return true }
func (s *stubRecognizer) Recognize(context.Context, Image) (string, error) {
	s.calls++
	return "text", nil
}

type recordingWaiter struct {
	keys []string
	err  error
}

func (w *recordingWaiter) Wait(_ context.Context, key string) error {
	w.keys = append(w.keys, key)
	return w.err
}

func TestWithLimiter(t *testing.T) {
	stub := &stubRecognizer{}
	waiter := &recordingWaiter{}
	r := WithLimiter(stub, waiter)

	for i := 0; i < 3; i++ {
		if _, err := r.Recognize(context.Background(), pngPage); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if stub.calls != 3 || len(waiter.keys) != 3 || waiter.keys[0] != "stub" {
		t.Errorf("Expected 3 waits keyed by provider, got calls=%d keys=%v", stub.calls, waiter.keys)
	}

	waiter.err = context.DeadlineExceeded
	if _, err := r.Recognize(context.Background(), pngPage); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected limiter error, got %v", err)
	}
	if stub.calls != 3 {
		t.Error("recognizer must not be called when the limiter fails")
	}
}

func TestWithLimiter_SkipsNoop(t *testing.T) {
	if _, ok := WithLimiter(Noop{}, &recordingWaiter{}).(Noop); !ok {
		t.Error("Noop should not be wrapped")
	}
}

func TestImageMIMEType(t *testing.T) {
	if got := pngPage.mimeType(); got != "image/png" {
		t.Errorf("Expected image/png, got %s", got)
	}
	jpeg := Image{Data: []byte("\xff\xd8\xff\xe0rest")}
	if got := jpeg.mimeType(); got != "image/jpeg" {
		t.Errorf("Expected image/jpeg, got %s", got)
	}
	explicit := Image{Data: []byte("x"), MIMEType: "image/tiff"}
	if got := explicit.mimeType(); got != "image/tiff" {
		t.Errorf("Expected explicit type, got %s", got)
	}
}

func TestProxyFunc(t *testing.T) {
	fn := proxyFunc("http://proxy:8080", "http://secure-proxy:8443")
	req := &http.Request{URL: &url.URL{Scheme: "https", Host: "api.openai.com"}}
	got, err := fn(req)
	if err != nil || got.Host != "secure-proxy:8443" {
		t.Errorf("Expected https proxy, got %v (%v)", got, err)
	}
	req.URL.Scheme = "http"
	got, _ = fn(req)
	if got.Host != "proxy:8080" {
		t.Errorf("Expected http proxy, got %v", got)
	}
}
