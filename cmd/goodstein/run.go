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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weezy20/goodstein-sequence/sequence"
)

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run VALUE",
		Short: "Print the Goodstein sequence of a value",
		Long:  "run prints one line per step: the base, the value and, with --notation, the hereditary notation.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(args[0])
			if err != nil {
				return err
			}
			maxSteps := a.cfg.MaxSteps
			if cmd.Flags().Changed("max-steps") {
				maxSteps, _ = cmd.Flags().GetInt("max-steps")
			}
			notation, _ := cmd.Flags().GetBool("notation")

			seq, err := sequence.Run(value, a.cfg.Base,
				sequence.WithLogger(a.logger),
				sequence.WithMaxSteps(maxSteps),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for step := range seq.All() {
				if notation {
					fmt.Fprintf(out, "%d\t%s\t%s\n", step.Base, a.format(step.Value), step.Notation)
					continue
				}
				fmt.Fprintf(out, "%d\t%s\n", step.Base, a.format(step.Value))
			}

			err = seq.Err()
			if errors.Is(err, sequence.ErrStepLimit) {
				fmt.Fprintf(cmd.ErrOrStderr(), "stopped after %d steps\n", maxSteps)
				return nil
			}
			return err
		},
	}
	cmd.Flags().Int("max-steps", 0, "maximum number of steps to print, 0 for no limit (default from max_steps in the config)")
	cmd.Flags().BoolP("notation", "n", false, "print the hereditary notation of every step")
	return cmd
}
