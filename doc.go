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

// Package therapymatch matches people seeking psychotherapeutic support to
// therapist profiles.
//
// The Engine wires the matching core (taxonomy, score calculator, intensity
// quantifier, semantic fallback classifier and ranker) to a badger profile
// store and an optional situation analyzer:
//
//	engine, err := therapymatch.OpenEngine("./profiles_db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer engine.Close()
//
//	result, err := engine.Match(ctx, therapymatch.Request{
//	    Criteria: core.Criteria{Location: "Berlin", SessionMode: core.SessionModeOnline},
//	    Text:     "I can't sleep and I worry all the time",
//	    Limit:    10,
//	})
//
// Free text is only classified when no topics were selected; the resulting
// specialties are scored as if they had been selected.
package therapymatch
