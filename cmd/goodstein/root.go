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

package main

import (
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/weezy20/goodstein-sequence/internal/config"
)

// app carries the state shared by the sub-commands of one invocation.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:               "goodstein",
		Short:             "Goodstein sequences in hereditary base-K notation",
		Long:              "goodstein decomposes numbers in base K, writes them in hereditary base-K notation and steps them through the Goodstein sequence.",
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default .goodstein.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Uint64P("base", "b", 2, "starting base, 2..36")
	flags.Bool("human", false, "group the digits of large values")
	for _, name := range []string{"verbose", "base", "human"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(a.numberCmd(), a.hereditaryCmd(), a.runCmd())
	return root
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		a.v.SetConfigName(".goodstein")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		// It's fine if no config file is found; we use defaults.
		_ = a.v.ReadInConfig()
	}

	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.AutomaticEnv()

	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

func (a *app) format(v uint64) string {
	if a.cfg.Human {
		return humanize.BigComma(new(big.Int).SetUint64(v))
	}
	return strconv.FormatUint(v, 10)
}

func parseValue(arg string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", arg, err)
	}
	return v, nil
}
