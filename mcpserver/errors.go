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

package mcpserver

import "errors"

var (
	// ErrMissingEngine is returned when the server is created without an engine.
	ErrMissingEngine = errors.New("mcpserver: engine is required")

	// ErrEmptyText is returned by classify_situation for blank input.
	ErrEmptyText = errors.New("text is required")
)
