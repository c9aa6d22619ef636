package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

var errEmptySuffix = errors.New("suffix must not be empty")

func Init() (*ServiceConfig, error) {
	cfg := &ServiceConfig{}

	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service configuration: %w", err)
	}

	if len(ServiceVersion) != 0 {
		cfg.App.ServiceVersion = ServiceVersion
	}

	if len(CommitSHA) != 0 {
		cfg.App.CommitSHA = CommitSHA
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid service configuration: %w", err)
	}

	return cfg, nil
}

// validate rejects suffixes that would turn every parameter into a selector key.
func (c *ServiceConfig) validate() error {
	if strings.TrimSpace(c.Filtering.OperatorSuffix) == "" {
		return fmt.Errorf("FILTER_OPERATOR_SUFFIX: %w", errEmptySuffix)
	}

	if strings.TrimSpace(c.Sorting.DirectionSuffix) == "" {
		return fmt.Errorf("SORT_DIRECTION_SUFFIX: %w", errEmptySuffix)
	}

	return nil
}
