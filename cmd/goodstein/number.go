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
	"strings"

	"github.com/spf13/cobra"

	"github.com/weezy20/goodstein-sequence/basek"
	"github.com/weezy20/goodstein-sequence/sequence"
)

func (a *app) numberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "number VALUE",
		Short: "Show the base-K decomposition of a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(args[0])
			if err != nil {
				return err
			}
			n, err := basek.New(value, a.cfg.Base)
			if err != nil {
				return err
			}
			if _, err := n.Compute(); err != nil {
				return err
			}

			terms := make([]string, 0, len(n.Terms()))
			for _, t := range n.Terms() {
				terms = append(terms, fmt.Sprintf("%d*%d^%d", t.Multiplier, n.Base(), t.Exponent))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "value:   %s\n", a.format(n.Value()))
			fmt.Fprintf(out, "base:    %d\n", n.Base())
			fmt.Fprintf(out, "digits:  %s\n", n)
			fmt.Fprintf(out, "terms:   %s\n", strings.Join(terms, " + "))
			fmt.Fprintf(out, "reduced: %t\n", n.IsReduced())
			return nil
		},
	}
}

func (a *app) hereditaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hereditary VALUE",
		Short: "Write a value in hereditary base-K notation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(args[0])
			if err != nil {
				return err
			}
			h, err := sequence.ExpandValue(value, a.cfg.Base)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}
}
