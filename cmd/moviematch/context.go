package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"moviematch/internal/config"
	"moviematch/internal/logging"
	"moviematch/internal/session"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	// sessionOpts lets tests swap the network-facing collaborators.
	sessionOpts []session.Option
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newLogger builds the per-invocation file logger. Terminal output stays
// reserved for command results; a failed logger degrades to no-op rather
// than blocking the command.
func (c *commandContext) newLogger(cfg *config.Config) *slog.Logger {
	logger, err := logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{cfg.LogPath()},
		SessionID:   uuid.NewString(),
	})
	if err != nil {
		return logging.NewNop()
	}
	return logger
}

func (c *commandContext) withSession(fn func(*session.Session) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	sess, err := session.Open(cfg, c.newLogger(cfg), c.sessionOpts...)
	if err != nil {
		return err
	}
	defer sess.Close()
	return fn(sess)
}
