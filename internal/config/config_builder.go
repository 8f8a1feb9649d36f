// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// validatable is implemented by every config type the builder produces.
type validatable interface {
	validate() error
}

// configBuilder collects partial configs from several sources and merges
// them in insertion order. mergo only fills zero fields, so the source
// added first has the highest precedence.
type configBuilder[T any] struct {
	configs []*T
	err     error
}

func newConfigBuilder[T any]() *configBuilder[T] {
	return &configBuilder[T]{
		configs: make([]*T, 0, 3),
	}
}

func (b *configBuilder[T]) build() (*T, error) {
	config, err := b.merge()
	if err != nil {
		return nil, err
	}

	if v, ok := any(config).(validatable); ok {
		if err = v.validate(); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// merge is build without validation.
func (b *configBuilder[T]) merge() (*T, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(T)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder[T]) withEnv() *configBuilder[T] {
	envCfg := new(T)
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder[T]) withFlags(flags *T) *configBuilder[T] {
	if flags != nil {
		b.configs = append(b.configs, flags)
	}
	return b
}

func (b *configBuilder[T]) withDefaults(defaults *T) *configBuilder[T] {
	if defaults != nil {
		b.configs = append(b.configs, defaults)
	}
	return b
}
