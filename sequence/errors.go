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

package sequence

import (
	"errors"

	"github.com/weezy20/goodstein-sequence/basek"
)

var (
	// ErrTerminated is returned when subtracting one from zero. The sequence has
	// already ended.
	ErrTerminated = errors.New("goodstein sequence terminated")

	// ErrBaseOutOfRange is returned when a base bump would leave the supported base range.
	ErrBaseOutOfRange = basek.ErrBaseOutOfRange

	// ErrOverflow is returned when a value no longer fits a uint64.
	ErrOverflow = errors.New("value overflows uint64")

	// ErrInvariant reports a transform that produced an inconsistent hereditary
	// representation. It is a defect in the engine, not a bad input.
	ErrInvariant = errors.New("hereditary invariant violated")

	// ErrStepLimit is reported by a Sequence stopped by WithMaxSteps before reaching zero.
	ErrStepLimit = errors.New("step limit reached")
)
