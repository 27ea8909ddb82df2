package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moviematch/internal/config"
	"moviematch/internal/logging"
)

const (
	defaultHTTPTimeout    = 30 * time.Second
	defaultRetryAttempts  = 3
	defaultRetryBaseDelay = 1 * time.Second
	defaultRetryMaxDelay  = 8 * time.Second
	maxInputRunes         = 2000
)

// EmotionClassifier labels free text with one emotion from the fixed
// vocabulary. Implementations fail closed: errors become EmotionUnknown.
type EmotionClassifier interface {
	Emotion(text string) string
}

// SentimentClassifier decides review polarity. Implementations always
// answer; the documented default for inconclusive input is negative.
type SentimentClassifier interface {
	Sentiment(text string) Polarity
}

// Client classifies text through a hosted inference endpoint, falling back
// to the offline lexicon whenever the endpoint misbehaves.
type Client struct {
	cfg        config.Inference
	httpClient *http.Client
	logger     *slog.Logger
	fallback   *Lexicon

	retryMaxAttempts int
	retryBaseDelay   time.Duration
	retryMaxDelay    time.Duration
	sleeper          func(time.Duration)
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithRetryMaxAttempts overrides the default retry count.
func WithRetryMaxAttempts(attempts int) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.retryMaxAttempts = attempts
		}
	}
}

// WithSleeper overrides how retry sleeps are performed (useful for tests).
func WithSleeper(sleeper func(time.Duration)) Option {
	return func(c *Client) {
		if sleeper != nil {
			c.sleeper = sleeper
		}
	}
}

// NewClient constructs an inference-backed classifier.
func NewClient(cfg config.Inference, logger *slog.Logger, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg:              cfg,
		httpClient:       &http.Client{Timeout: timeout},
		logger:           logging.NewComponentLogger(logger, "classify"),
		fallback:         NewLexicon(),
		retryMaxAttempts: defaultRetryAttempts,
		retryBaseDelay:   defaultRetryBaseDelay,
		retryMaxDelay:    defaultRetryMaxDelay,
		sleeper:          time.Sleep,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Enabled reports whether the remote endpoint is configured.
func (c *Client) Enabled() bool {
	return strings.TrimSpace(c.cfg.APIKey) != ""
}

// Emotion classifies text remotely, degrading to the lexicon on any failure.
func (c *Client) Emotion(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return EmotionUnknown
	}
	if !c.Enabled() {
		return c.fallback.Emotion(text)
	}

	label, err := c.classifyRemote(context.Background(), text)
	if err != nil {
		c.logger.Warn("emotion inference failed, using lexicon",
			logging.Error(err))
		return c.fallback.Emotion(text)
	}
	return label
}

// Sentiment is served by the lexicon: the emotion model carries no polarity
// head, and the default policy must stay deterministic.
func (c *Client) Sentiment(text string) Polarity {
	return c.fallback.Sentiment(text)
}

type scoredLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (c *Client) classifyRemote(ctx context.Context, text string) (string, error) {
	runes := []rune(text)
	if len(runes) > maxInputRunes {
		text = string(runes[:maxInputRunes])
	}

	payload, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return "", fmt.Errorf("encode inference payload: %w", err)
	}

	endpoint, err := url.JoinPath(c.cfg.BaseURL, "models", c.cfg.Model)
	if err != nil {
		return "", fmt.Errorf("build inference url: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.retryMaxAttempts; attempt++ {
		if attempt > 1 {
			c.sleeper(c.backoff(attempt - 1))
		}
		label, retryable, err := c.doRequest(ctx, endpoint, payload)
		if err == nil {
			return label, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}
	return "", lastErr
}

func (c *Client) doRequest(ctx context.Context, endpoint string, payload []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", false, fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", true, fmt.Errorf("read inference response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", true, fmt.Errorf("inference status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	default:
		return "", false, fmt.Errorf("inference status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	label, err := decodeTopLabel(body)
	if err != nil {
		return "", false, err
	}
	return label, false, nil
}

// decodeTopLabel handles both response shapes the inference API emits:
// a flat label array and one nested per input.
func decodeTopLabel(body []byte) (string, error) {
	var nested [][]scoredLabel
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 {
		return pickTopLabel(nested[0])
	}
	var flat []scoredLabel
	if err := json.Unmarshal(body, &flat); err == nil {
		return pickTopLabel(flat)
	}
	return "", fmt.Errorf("undecodable inference response: %s", strings.TrimSpace(string(body)))
}

func pickTopLabel(labels []scoredLabel) (string, error) {
	if len(labels) == 0 {
		return "", fmt.Errorf("inference response carried no labels")
	}
	best := labels[0]
	for _, candidate := range labels[1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}
	return NormalizeEmotion(best.Label), nil
}

func (c *Client) backoff(attempt int) time.Duration {
	delay := c.retryBaseDelay << (attempt - 1)
	if delay > c.retryMaxDelay {
		delay = c.retryMaxDelay
	}
	return delay
}
