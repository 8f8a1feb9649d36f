// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// MinSyncInterval is the smallest polling period accepted in a sync document.
const MinSyncInterval = time.Second

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func (cfg *ClientConfig) validate() error {
	err := structValidator().Struct(cfg)

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		switch ns := vErrs[0].Namespace(); {
		case strings.Contains(ns, ".Storage."):
			return fmt.Errorf("%w: %s", ErrInvalidStorageConfigs, vErrs[0].Error())
		case strings.Contains(ns, ".Vault."):
			return fmt.Errorf("%w: %s", ErrInvalidVaultConfigs, vErrs[0].Error())
		case strings.Contains(ns, ".Adapter."):
			return fmt.Errorf("%w: %s", ErrInvalidAdapterConfigs, vErrs[0].Error())
		default:
			return err
		}
	} else if err != nil {
		return err
	}

	// the sync store must outlive the process
	if strings.Contains(cfg.Storage.DSN, ":memory:") || strings.Contains(cfg.Storage.DSN, "mode=memory") {
		return fmt.Errorf("%w: in-memory DSN is not allowed", ErrInvalidStorageConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	return structValidator().Struct(cfg)
}

// validate checks an enabled sync document.
func (cfg *SyncConfig) validate() error {
	if err := structValidator().Struct(cfg); err != nil {
		return err
	}

	if cfg.SyncInterval != 0 && time.Duration(cfg.SyncInterval) < MinSyncInterval {
		return fmt.Errorf("sync_interval %s is below the minimum of %s",
			time.Duration(cfg.SyncInterval), MinSyncInterval)
	}

	return nil
}
