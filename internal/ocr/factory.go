package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrDisabled is returned by Noop.
var ErrDisabled = errors.New("ocr: no provider configured")

// New creates a recognizer from configuration. An empty provider yields Noop.
func New(config Config) (Recognizer, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAI(config)
	case "anthropic", "claude":
		return NewAnthropic(config)
	case "ollama":
		return NewOllama(config)
	case "", "none":
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown OCR provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}

// Enabled reports whether r can actually recognize text.
func Enabled(r Recognizer) bool {
	if r == nil {
		return false
	}
	_, noop := r.(Noop)
	return !noop
}

// Noop never recognizes anything. Scanned pages stay empty and the
// geometry estimator falls back to its defaults.
type Noop struct{}

func (Noop) Name() string                                     { return "none" }
func (Noop) IsAvailable(context.Context) bool                 { return false }
func (Noop) Recognize(context.Context, Image) (string, error) { return "", ErrDisabled }

// Waiter blocks until a request for key may proceed.
type Waiter interface {
	Wait(ctx context.Context, key string) error
}

// Limited throttles a recognizer. Calls share one bucket per provider name.
type Limited struct {
	Recognizer
	limiter Waiter
}

// WithLimiter wraps r so every Recognize waits on limiter first.
func WithLimiter(r Recognizer, limiter Waiter) Recognizer {
	if limiter == nil || !Enabled(r) {
		return r
	}
	return &Limited{Recognizer: r, limiter: limiter}
}

// Recognize waits for a slot and delegates
func (l *Limited) Recognize(ctx context.Context, img Image) (string, error) {
	if err := l.limiter.Wait(ctx, l.Name()); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}
	return l.Recognizer.Recognize(ctx, img)
}
