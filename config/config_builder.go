package config

import (
	"errors"
	"flag"
	"fmt"

	"dario.cat/mergo"
)

type sourceBuilder struct {
	sources []*sourceConfig
	err     error
}

func newSourceBuilder() *sourceBuilder {
	return &sourceBuilder{
		sources: make([]*sourceConfig, 0, 3),
	}
}

// build folds the collected sources in order, later non-zero fields winning,
// and converts the result into a partial ClientConfiguration.
func (b *sourceBuilder) build() (*ClientConfiguration, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during loading config: %w", b.err)
	}

	merged := new(sourceConfig)
	for _, src := range b.sources {
		if err := mergo.Merge(merged, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged.toClientConfiguration()
}

func (b *sourceBuilder) withEnv() *sourceBuilder {
	envCfg := &sourceConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, envCfg)
	return b
}

func (b *sourceBuilder) withFlags(fs *flag.FlagSet, args []string) *sourceBuilder {
	flagsCfg, err := parseFlags(fs, args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, flagsCfg)
	return b
}

// withJSON reads the file named by the last source that set a JSON path.
func (b *sourceBuilder) withJSON() *sourceBuilder {
	var jsonPath string
	for _, src := range b.sources {
		if src.JSONFilePath != "" {
			jsonPath = src.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, jsonCfg)
	return b
}
