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

import (
	"fmt"
	"strings"
)

// ValidateProfile validates a Profile according to domain rules.
//
// Validation rules:
//   - Slug and Name must not be blank
//   - every specialty must belong to the known vocabulary
//   - Gender, SessionMode, Availability must be valid when set
//   - every insurance category and language must be valid
//
// NOT validated:
//   - ID (derived from the slug when zero)
//   - Location (free text)
func ValidateProfile(profile *Profile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if strings.TrimSpace(profile.Slug) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptySlug)
	}

	if strings.TrimSpace(profile.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyName)
	}

	for _, s := range profile.Specialties {
		if !s.IsValid() {
			return fmt.Errorf("%w: %w: %q", ErrInvalidProfile, ErrUnknownSpecialty, s)
		}
	}

	if profile.Gender != "" {
		if err := ValidateGender(profile.Gender); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
		}
	}

	if profile.SessionMode != "" {
		if err := ValidateSessionMode(profile.SessionMode); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
		}
	}

	for _, ins := range profile.Insurance {
		if err := ValidateInsurance(ins); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
		}
	}

	if profile.Availability != "" {
		if err := ValidateAvailability(profile.Availability); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
		}
	}

	for _, lang := range profile.Languages {
		if lang != LanguageGerman && lang != LanguageEnglish {
			return fmt.Errorf("%w: %w: %q", ErrInvalidProfile, ErrInvalidLanguage, lang)
		}
	}

	return nil
}

// ValidateCriteria checks the enumerated practical filters of a request.
// Topic and subtopic identifiers are not checked here: unknown ids are
// treated as "no preference" by the scorer.
func ValidateCriteria(criteria *Criteria) error {
	if criteria == nil {
		return fmt.Errorf("%w: criteria is nil", ErrInvalidCriteria)
	}

	if criteria.Gender != "" {
		if err := ValidateGender(criteria.Gender); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCriteria, err)
		}
	}

	if criteria.SessionMode != "" {
		if err := ValidateSessionMode(criteria.SessionMode); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCriteria, err)
		}
	}

	for _, ins := range criteria.Insurance {
		if err := ValidateInsurance(ins); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCriteria, err)
		}
	}

	for _, s := range criteria.Specialties {
		if !s.IsValid() {
			return fmt.Errorf("%w: %w: %q", ErrInvalidCriteria, ErrUnknownSpecialty, s)
		}
	}

	return nil
}

// ValidateGender validates that a Gender has a valid value.
func ValidateGender(g Gender) error {
	switch g {
	case GenderMale, GenderFemale, GenderDiverse:
		return nil
	}
	return fmt.Errorf("%w: value %q", ErrInvalidGender, g)
}

// ValidateSessionMode validates that a SessionMode has a valid value.
func ValidateSessionMode(m SessionMode) error {
	switch m {
	case SessionModeOnline, SessionModeInPerson, SessionModeBoth:
		return nil
	}
	return fmt.Errorf("%w: value %q", ErrInvalidSessionMode, m)
}

// ValidateInsurance validates that an Insurance has a valid value.
func ValidateInsurance(i Insurance) error {
	if i != InsurancePublic && i != InsurancePrivate {
		return fmt.Errorf("%w: value %q", ErrInvalidInsurance, i)
	}
	return nil
}

// ValidateAvailability validates that an Availability has a valid value.
func ValidateAvailability(a Availability) error {
	switch a {
	case AvailabilityImmediately, AvailabilityThisWeek, AvailabilityFlexible:
		return nil
	}
	return fmt.Errorf("%w: value %q", ErrInvalidAvailability, a)
}

// NormalizeProfile fills derived fields: the ID from the slug when zero,
// and trims the slug and name.
func NormalizeProfile(profile *Profile) {
	profile.Slug = strings.TrimSpace(profile.Slug)
	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Id == 0 {
		profile.Id = IDFromContent(profile.Slug)
	}
}
