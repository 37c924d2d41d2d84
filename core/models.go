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
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing of a stable key.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Specialty is the vocabulary tag carried by therapist profiles.
type Specialty string

const (
	SpecialtyDepression      Specialty = "depression"
	SpecialtyAnxiety         Specialty = "anxiety"
	SpecialtyTrauma          Specialty = "trauma"
	SpecialtyRelationships   Specialty = "relationships"
	SpecialtyAddiction       Specialty = "addiction"
	SpecialtyEatingDisorders Specialty = "eating_disorders"
	SpecialtyADHD            Specialty = "adhd"
	SpecialtyBurnout         Specialty = "burnout"
)

// Specialties lists every known specialty in canonical order.
var Specialties = []Specialty{
	SpecialtyDepression,
	SpecialtyAnxiety,
	SpecialtyTrauma,
	SpecialtyRelationships,
	SpecialtyAddiction,
	SpecialtyEatingDisorders,
	SpecialtyADHD,
	SpecialtyBurnout,
}

// IsValid reports whether s belongs to the known vocabulary.
func (s Specialty) IsValid() bool {
	for _, known := range Specialties {
		if s == known {
			return true
		}
	}
	return false
}

// Gender of a therapist, or the gender a person prefers.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderDiverse Gender = "diverse"
)

// SessionMode describes how sessions are delivered.
// SessionModeBoth satisfies any requested mode.
type SessionMode string

const (
	SessionModeOnline   SessionMode = "online"
	SessionModeInPerson SessionMode = "in_person"
	SessionModeBoth     SessionMode = "both"
)

// Insurance category accepted by a therapist.
type Insurance string

const (
	InsurancePublic  Insurance = "public"
	InsurancePrivate Insurance = "private"
)

// Availability of a therapist for new clients.
type Availability string

const (
	AvailabilityImmediately Availability = "immediately"
	AvailabilityThisWeek    Availability = "this_week"
	AvailabilityFlexible    Availability = "flexible"
)

// Language of free text and phrase corpora.
type Language string

const (
	LanguageGerman  Language = "de"
	LanguageEnglish Language = "en"
)

// Confidence tier of a free-text classification.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Location tokens a profile can be found by.
type Location struct {
	City       string `yaml:"city" json:"city"`
	PostalCode string `yaml:"postal_code" json:"postal_code"`
}

// Profile is a therapist profile as seen by the matching engine.
// Lifecycle and persistence belong to the profile store.
type Profile struct {
	Id           ID           `yaml:"id,omitempty" json:"id"`
	Slug         string       `yaml:"slug" json:"slug"`
	Name         string       `yaml:"name" json:"name"`
	Specialties  []Specialty  `yaml:"specialties" json:"specialties"`
	Gender       Gender       `yaml:"gender,omitempty" json:"gender,omitempty"`
	SessionMode  SessionMode  `yaml:"session_mode,omitempty" json:"session_mode,omitempty"`
	Insurance    []Insurance  `yaml:"insurance,omitempty" json:"insurance,omitempty"`
	Location     Location     `yaml:"location" json:"location"`
	Availability Availability `yaml:"availability,omitempty" json:"availability,omitempty"`
	Languages    []Language   `yaml:"languages,omitempty" json:"languages,omitempty"`
}

// HasSpecialty reports whether the profile carries the given tag.
func (p *Profile) HasSpecialty(s Specialty) bool {
	for _, have := range p.Specialties {
		if have == s {
			return true
		}
	}
	return false
}

// SubScore is one component of a match score.
//
// Points is the rounded sub-score and Max its nominal ceiling. Raw and RawMax
// are the unscaled points and the effective maximum actually in play; RawMax
// is zero when the person expressed no preference (Supplied is false) and the
// component was awarded full credit.
type SubScore struct {
	Points   int     `json:"points"`
	Max      int     `json:"max"`
	Raw      float64 `json:"raw"`
	RawMax   float64 `json:"raw_max"`
	Supplied bool    `json:"supplied"`
}

// ScoreBreakdown explains how a profile's match score was composed.
type ScoreBreakdown struct {
	Total      int      `json:"total"`
	Topic      SubScore `json:"topic"`
	Criteria   SubScore `json:"criteria"`
	Refinement SubScore `json:"refinement"`
	Reasons    []string `json:"reasons"`
}

// RankedProfile is a profile together with its match score.
type RankedProfile struct {
	Profile   *Profile        `json:"profile"`
	Score     int             `json:"score"`
	Breakdown *ScoreBreakdown `json:"breakdown,omitempty"`
}

// Criteria is a person's request for one matching run.
// Zero values mean "no preference" for the corresponding filter.
type Criteria struct {
	Topics      []string    `json:"topics,omitempty"`
	SubTopics   []string    `json:"sub_topics,omitempty"`
	Location    string      `json:"location,omitempty"`
	Gender      Gender      `json:"gender,omitempty"`
	SessionMode SessionMode `json:"session_mode,omitempty"`
	Insurance   []Insurance `json:"insurance,omitempty"`
	// Specialties are unioned into the specialties resolved from Topics.
	// Free-text classification results are injected here.
	Specialties []Specialty `json:"specialties,omitempty"`
}

// IsEmpty reports whether no topic, refinement or practical filter was given.
func (c Criteria) IsEmpty() bool {
	return len(c.Topics) == 0 && len(c.SubTopics) == 0 && len(c.Specialties) == 0 &&
		c.Location == "" && c.Gender == "" && c.SessionMode == "" && len(c.Insurance) == 0
}

// WithSpecialties returns a copy of c with the given specialties added.
func (c Criteria) WithSpecialties(specs ...Specialty) Criteria {
	out := c
	out.Specialties = make([]Specialty, 0, len(c.Specialties)+len(specs))
	out.Specialties = append(out.Specialties, c.Specialties...)
	for _, s := range specs {
		if !containsSpecialty(out.Specialties, s) {
			out.Specialties = append(out.Specialties, s)
		}
	}
	return out
}

func containsSpecialty(list []Specialty, s Specialty) bool {
	for _, have := range list {
		if have == s {
			return true
		}
	}
	return false
}
