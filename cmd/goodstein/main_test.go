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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	// keep a stray .goodstein.yaml in the working directory out of the tests
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNumberCommand(t *testing.T) {
	out, _, err := execute(t, "number", "69", "--base", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "digits:  105\n")
	assert.Contains(t, out, "terms:   1*8^2 + 0*8^1 + 5*8^0\n")
	assert.Contains(t, out, "reduced: true\n")
}

func TestNumberCommandRejectsInput(t *testing.T) {
	_, _, err := execute(t, "number", "abc")
	assert.Error(t, err)

	_, _, err = execute(t, "number", "10", "--base", "1")
	assert.Error(t, err)
}

func TestHereditaryCommand(t *testing.T) {
	out, _, err := execute(t, "hereditary", "100")
	require.NoError(t, err)
	assert.Equal(t, "2^(2^2+2)+2^(2^2+1)+2^2\n", out)
}

func TestRunCommand(t *testing.T) {
	out, _, err := execute(t, "run", "3")
	require.NoError(t, err)
	assert.Equal(t, "2\t3\n3\t3\n4\t3\n5\t2\n6\t1\n7\t0\n", out)
}

func TestRunCommandNotation(t *testing.T) {
	out, _, err := execute(t, "run", "5", "--notation", "--max-steps", "2")
	require.NoError(t, err)
	assert.Equal(t, "2\t5\t2^2+1\n3\t27\t3^3\n", out)
}

func TestRunCommandStepLimit(t *testing.T) {
	out, errOut, err := execute(t, "run", "4", "--max-steps", "3", "--human")
	require.NoError(t, err)
	assert.Equal(t, "2\t4\n3\t26\n4\t41\n", out)
	assert.Contains(t, errOut, "stopped after 3 steps")
}

func TestRunCommandOverflow(t *testing.T) {
	out, _, err := execute(t, "run", "19", "--human")
	require.Error(t, err)
	assert.Equal(t, "2\t19\n3\t7,625,597,484,990\n", out)
}

func TestRunCommandConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goodstein.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base: 3\nmax_steps: 2\n"), 0o644))

	out, _, err := execute(t, "run", "4", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "3\t4\n4\t4\n", out)
}
