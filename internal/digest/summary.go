package digest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"mvp90terminal/internal/intel"
	"mvp90terminal/internal/llm"
)

// Summarizer writes the executive summary paragraph of a report.
type Summarizer interface {
	Summarize(ctx context.Context, data intel.DigestData) (string, error)
}

// TemplateSummarizer counts the digest sections.
type TemplateSummarizer struct{}

// Summarize implements Summarizer.
func (TemplateSummarizer) Summarize(_ context.Context, data intel.DigestData) (string, error) {
	return fmt.Sprintf(
		"This week's analysis covers %d high-scoring startup opportunities, %d emerging market trends, and %d recommended build opportunities.",
		len(data.TopIdeas), len(data.EmergingTrends), len(data.SuggestedBuilds),
	), nil
}

// LLMSummarizer asks a language model for the summary and falls back on
// any failure. Replies are cached per digest content.
type LLMSummarizer struct {
	Client      llm.ChatClient
	Model       string
	Temperature float64
	MaxTokens   int
	Fallback    Summarizer
	CacheTTL    time.Duration
	Logger      *zap.Logger
	Now         func() time.Time

	mu    sync.Mutex
	cache map[string]cachedSummary
}

type cachedSummary struct {
	text    string
	expires time.Time
}

// Summarize implements Summarizer.
func (s *LLMSummarizer) Summarize(ctx context.Context, data intel.DigestData) (string, error) {
	if s.Client == nil || s.Model == "" {
		return s.fallback(ctx, data, fmt.Errorf("llm summarizer misconfigured"))
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return s.fallback(ctx, data, fmt.Errorf("llm prompt marshal: %w", err))
	}
	sum := sha256.Sum256(payload)
	key := hex.EncodeToString(sum[:])
	if text, ok := s.cached(key); ok {
		return text, nil
	}

	s.logger().Debug("requesting digest summary", zap.String("model", s.Model), zap.Int("ideas", len(data.TopIdeas)))

	text, err := llm.Ask(ctx, s.Client, llm.Prompt{
		Model:       s.Model,
		System:      "You are an analyst at MVP90, a venture studio. Write one concise executive-summary paragraph for limited partners. Plain prose, no headings, no lists.",
		User:        "Summarize this week's digest data:\n" + string(payload),
		Temperature: s.Temperature,
		MaxTokens:   s.MaxTokens,
	})
	if err != nil {
		return s.fallback(ctx, data, err)
	}
	text = strings.Join(strings.Fields(text), " ")
	s.store(key, text)
	return text, nil
}

func (s *LLMSummarizer) fallback(ctx context.Context, data intel.DigestData, cause error) (string, error) {
	s.logger().Warn("digest summary fallback", zap.Error(cause))
	if s.Fallback != nil {
		text, err := s.Fallback.Summarize(ctx, data)
		if err != nil {
			return "", fmt.Errorf("llm fallback error: %v (original: %w)", err, cause)
		}
		return text, nil
	}
	return "", cause
}

func (s *LLMSummarizer) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *LLMSummarizer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *LLMSummarizer) cached(key string) (string, bool) {
	if s.CacheTTL <= 0 {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cache[key]
	if !ok || s.now().After(c.expires) {
		return "", false
	}
	return c.text, true
}

func (s *LLMSummarizer) store(key, text string) {
	if s.CacheTTL <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cache == nil {
		s.cache = make(map[string]cachedSummary)
	}
	s.cache[key] = cachedSummary{text: text, expires: s.now().Add(s.CacheTTL)}
}
