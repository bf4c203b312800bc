/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

// Package config loads the goodstein CLI settings.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/weezy20/goodstein-sequence/basek"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "GOODSTEIN"

// Config holds the runtime settings of the CLI.
// Values are populated from .goodstein.yaml, GOODSTEIN_* env vars, and CLI flags.
type Config struct {
	Base     uint64 `mapstructure:"base"`
	MaxSteps int    `mapstructure:"max_steps"`
	Verbose  bool   `mapstructure:"verbose"`
	Human    bool   `mapstructure:"human"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("base", 2)
	v.SetDefault("max_steps", 1000)
	v.SetDefault("verbose", false)
	v.SetDefault("human", false)
}

// Load reads the configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := basek.CheckBase(cfg.Base); err != nil {
		return cfg, fmt.Errorf("config base: %w", err)
	}
	if cfg.MaxSteps < 0 {
		return cfg, fmt.Errorf("config max_steps: %d is negative", cfg.MaxSteps)
	}
	return cfg, nil
}
