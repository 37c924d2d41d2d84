// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package therapymatch

import "errors"

var (
	// ErrEngineClosed is returned by operations on a closed Engine.
	ErrEngineClosed = errors.New("engine closed")

	// ErrInvalidOption is returned when an Engine option is rejected.
	ErrInvalidOption = errors.New("invalid engine option")
)
