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

package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidProfile indicates a Profile failed validation.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrInvalidCriteria indicates a Criteria value failed validation.
	ErrInvalidCriteria = errors.New("invalid matching criteria")

	// ErrInvalidTaxonomy indicates the topic catalog is corrupt.
	ErrInvalidTaxonomy = errors.New("invalid taxonomy")

	// ErrInvalidStatement indicates an intensity statement table is corrupt.
	ErrInvalidStatement = errors.New("invalid intensity statement")

	// ErrEmptySlug indicates the profile Slug field is empty.
	ErrEmptySlug = errors.New("slug cannot be empty")

	// ErrEmptyName indicates the profile Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrUnknownSpecialty indicates a specialty tag outside the known vocabulary.
	ErrUnknownSpecialty = errors.New("unknown specialty")

	// ErrInvalidGender indicates an invalid Gender value.
	ErrInvalidGender = errors.New("invalid gender")

	// ErrInvalidSessionMode indicates an invalid SessionMode value.
	ErrInvalidSessionMode = errors.New("invalid session mode")

	// ErrInvalidInsurance indicates an invalid Insurance value.
	ErrInvalidInsurance = errors.New("invalid insurance")

	// ErrInvalidAvailability indicates an invalid Availability value.
	ErrInvalidAvailability = errors.New("invalid availability")

	// ErrInvalidLanguage indicates a Language other than de or en.
	ErrInvalidLanguage = errors.New("invalid language")
)
