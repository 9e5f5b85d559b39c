package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	l := NewLimiter(10, 5)
	if l.burst != 5 {
		t.Errorf("expected burst 5, got %d", l.burst)
	}

	l2 := NewLimiter(10, -1)
	if l2.burst != 1 {
		t.Errorf("expected burst 1 for negative input, got %d", l2.burst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	l := NewLimiter(100, 1)
	ctx := context.Background()

	if err := l.Wait(ctx, "openai"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	if err := l.Wait(ctx, "http://localhost:11434/api/generate"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_ExhaustedBucket(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("anthropic") {
		t.Error("first call should pass")
	}
	if l.Allow("anthropic") {
		t.Error("expected second call to be throttled")
	}
	if !l.Allow("openai") {
		t.Error("other provider should have its own bucket")
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	l := NewLimiter(0.5, 1)
	l.Allow("openai")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx, "openai"); err == nil {
		t.Error("expected wait to fail before the next token")
	}
}

func TestLimiter_URLsShareHostBucket(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("https://api.openai.com/v1/chat/completions") {
		t.Error("first call should pass")
	}
	if l.Allow("https://api.openai.com/v1/models") {
		t.Error("same host should share a bucket")
	}
}

func TestLimiter_ZeroRateIsUnlimited(t *testing.T) {
	l := NewLimiter(0, 1)
	for i := 0; i < 50; i++ {
		if !l.Allow("ollama") {
			t.Fatalf("call %d throttled with unlimited rate", i)
		}
	}
}

func TestLimiter_SetRate(t *testing.T) {
	l := NewLimiter(10, 10)
	l.SetRate("http://slow.local:8080", 0.1, 1)

	if !l.Allow("http://slow.local:8080/api/generate") {
		t.Error("first request should pass")
	}
	if l.Allow("slow.local:8080") {
		t.Error("second request should fail")
	}
	if !l.Allow("openai") {
		t.Error("other endpoint should pass")
	}
}

func TestEndpointKey(t *testing.T) {
	tests := map[string]string{
		"https://api.anthropic.com/v1/messages": "api.anthropic.com",
		"openai":                                "openai",
		"::invalid":                             "::invalid",
	}
	for in, want := range tests {
		if got := endpointKey(in); got != want {
			t.Errorf("endpointKey(%q): expected %q, got %q", in, want, got)
		}
	}
}
