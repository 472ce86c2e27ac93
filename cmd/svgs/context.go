package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/treyhoover/svgs/internal/annotate"
	"github.com/treyhoover/svgs/internal/batch"
	"github.com/treyhoover/svgs/internal/config"
	"github.com/treyhoover/svgs/internal/logging"
	"github.com/treyhoover/svgs/internal/raster"
	"github.com/treyhoover/svgs/internal/services/describe"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
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

func (c *commandContext) buildLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg)
}

func (c *commandContext) buildRunner() (*batch.Runner, *slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.buildLogger()
	if err != nil {
		return nil, nil, err
	}

	renderer := raster.NewRenderer(cfg)
	llm := cfg.GetLLM()
	client := describe.NewClient(describe.Config{
		APIKey:         llm.APIKey,
		BaseURL:        llm.BaseURL,
		Model:          llm.Model,
		Referer:        llm.Referer,
		Title:          llm.Title,
		TimeoutSeconds: llm.TimeoutSeconds,
	})
	processor := annotate.NewProcessor(renderer, client, logger)
	return batch.New(cfg, processor, logger), logger, nil
}
