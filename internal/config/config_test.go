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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weezy20/goodstein-sequence/basek"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, Config{Base: 2, MaxSteps: 1000}, cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".goodstein.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base: 3\nmax_steps: 50\nhuman: true\n"), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Config{Base: 3, MaxSteps: 50, Human: true}, cfg)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("GOODSTEIN_BASE", "5")
	t.Setenv("GOODSTEIN_VERBOSE", "true")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), cfg.Base)
	assert.True(t, cfg.Verbose)
}

func TestLoadRejectsBase(t *testing.T) {
	v := viper.New()
	v.Set("base", 40)
	_, err := Load(v)
	assert.ErrorIs(t, err, basek.ErrBaseOutOfRange)
}

func TestLoadRejectsNegativeSteps(t *testing.T) {
	v := viper.New()
	v.Set("max_steps", -1)
	_, err := Load(v)
	assert.Error(t, err)
}
