package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeInference()
	c.normalizeReviews()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	fields := []*string{
		&c.Paths.DataDir,
		&c.Paths.LogDir,
		&c.Paths.BasicsPath,
		&c.Paths.RatingsPath,
	}
	for _, field := range fields {
		expanded, err := expandPath(strings.TrimSpace(*field))
		if err != nil {
			return err
		}
		*field = expanded
	}
	return nil
}

func (c *Config) normalizeInference() {
	c.Inference.APIKey = strings.TrimSpace(c.Inference.APIKey)
	if c.Inference.APIKey == "" {
		c.Inference.APIKey = strings.TrimSpace(os.Getenv("MOVIEMATCH_INFERENCE_API_KEY"))
	}
	c.Inference.BaseURL = strings.TrimRight(strings.TrimSpace(c.Inference.BaseURL), "/")
	if c.Inference.BaseURL == "" {
		c.Inference.BaseURL = defaultInferenceBaseURL
	}
	if strings.TrimSpace(c.Inference.Model) == "" {
		c.Inference.Model = defaultInferenceModel
	}
	if c.Inference.TimeoutSeconds <= 0 {
		c.Inference.TimeoutSeconds = defaultInferenceTimeoutSeconds
	}
}

func (c *Config) normalizeReviews() {
	c.Reviews.BaseURL = strings.TrimRight(strings.TrimSpace(c.Reviews.BaseURL), "/")
	if c.Reviews.BaseURL == "" {
		c.Reviews.BaseURL = defaultReviewsBaseURL
	}
	if c.Reviews.TimeoutSeconds <= 0 {
		c.Reviews.TimeoutSeconds = defaultReviewsTimeoutSeconds
	}
	// The politeness floor between successive fetches never drops below one
	// second regardless of the configured value.
	if c.Reviews.FetchDelaySeconds < 1 {
		c.Reviews.FetchDelaySeconds = defaultReviewsFetchDelaySeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
