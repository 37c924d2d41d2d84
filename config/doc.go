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

// Package config loads settings for the therapymatch command.
//
// Settings are resolved in three layers, later layers winning:
//
//  1. built-in defaults
//  2. a YAML file
//  3. THERAPYMATCH_* environment variables, optionally seeded from a .env file
//
// Library packages never read this configuration directly; the command
// converts it into their functional options.
package config
