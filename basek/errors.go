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

package basek

import "errors"

var (
	// ErrBaseOutOfRange is returned for a base outside [MinBase, MaxBase].
	ErrBaseOutOfRange = errors.New("base out of range")

	// ErrRoundTrip reports a term list that does not sum back to the stored value.
	// It indicates a defect in the decomposition, never a bad input.
	ErrRoundTrip = errors.New("base-k round trip mismatch")
)
