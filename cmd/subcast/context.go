package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"subcast/internal/annotation"
	"subcast/internal/config"
	"subcast/internal/logging"
	"subcast/internal/session"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
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

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logging.CleanupOldLogs(logger, cfg.Paths.LogDir, "*.log", cfg.Logging.RetentionDays)
		c.logger = logger
	})
	return c.logger
}

// withStore opens the session database under the single-writer lock.
func (c *commandContext) withStore(fn func(*session.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	release, err := session.AcquireLock(cfg)
	if err != nil {
		return err
	}
	defer release()

	store, err := session.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(store)
}

// withSession loads a saved session for read-only use.
func (c *commandContext) withSession(ctx context.Context, filename string, fn func(*session.Store, *annotation.Store) error) error {
	return c.withStore(func(store *session.Store) error {
		state, history, err := store.Load(ctx, filename)
		if err != nil {
			return err
		}
		return fn(store, &annotation.Store{State: state, History: history})
	})
}

// mutateSession loads a session, applies fn, and persists the result.
func (c *commandContext) mutateSession(ctx context.Context, filename string, fn func(*session.Store, *annotation.Store) error) error {
	return c.withStore(func(store *session.Store) error {
		state, history, err := store.Load(ctx, filename)
		if err != nil {
			return err
		}
		ann := &annotation.Store{State: state, History: history}
		if err := fn(store, ann); err != nil {
			return err
		}
		// A mutation can rename the session (track transfer, or undoing
		// one); the row under the old filename must not linger.
		if ann.State.Filename != filename {
			if _, err := store.Delete(ctx, filename); err != nil {
				return err
			}
		}
		return store.Save(ctx, ann.State, ann.History)
	})
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
