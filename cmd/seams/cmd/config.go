package cmd

import (
	"github.com/sirupsen/logrus"

	"github.com/textseams/seams/internal/config"
)

func logrusFields(cfg config.RunConfig) logrus.Fields {
	return logrus.Fields{
		"corpus_root": cfg.CorpusRoot,
		"concurrency": cfg.Concurrency,
		"fail_fast":   cfg.FailFast,
		"sink":        cfg.Sink.Kind,
	}
}

// resolveConfig loads the YAML config named by --config, if any, then lets
// explicitly-set CLI flags override its fields.
func resolveConfig(root string) (config.RunConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.RunConfig{}, err
	}

	if root != "" {
		cfg.CorpusRoot = root
	}
	if concurrency != 0 {
		cfg.Concurrency = concurrency
	}
	if failFast {
		cfg.FailFast = true
	}
	return cfg, nil
}
