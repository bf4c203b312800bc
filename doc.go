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

/*
Package goodstein computes Goodstein sequences over hereditary base-K notation.

A number is written in base K, every exponent larger than K is written in base K
again, and so on down. One Goodstein step replaces every K in that notation by K+1
and subtracts one from the result. The sequence reaches zero for every starting
value, only very slowly.

This package itself has nothing, the sub-packages contain the API:

	digits    digit alphabet and numeral conversion for radix 2..36
	basek     base-K decomposition of a single number
	sequence  hereditary expansion, base bump, subtract one and the lazy sequence driver

*/
package goodstein
