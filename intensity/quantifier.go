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

package intensity

import (
	"fmt"
	"math"
	"sort"

	"github.com/poiesic/therapymatch/core"
)

// Level is the categorical severity of a Reading.
type Level string

const (
	LevelNone   Level = "none"
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Reading is a severity score in [0,100] and its level.
type Reading struct {
	Score int   `json:"score"`
	Level Level `json:"level"`
}

// LevelFor maps a score to its level: <30 low, 30..69 medium, >=70 high.
func LevelFor(score int) Level {
	switch {
	case score < 30:
		return LevelLow
	case score < 70:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// GroupResolver maps a topic id to its intensity group.
// *taxonomy.Taxonomy implements it.
type GroupResolver interface {
	IntensityGroup(topicID string) string
}

// Quantifier scores statement selections. It is immutable after
// construction and safe for concurrent use.
type Quantifier struct {
	groups     GroupResolver
	statements map[string][]Statement
	byID       map[string]Statement
}

// Option configures a Quantifier.
type Option func(*Quantifier) error

// WithStatements replaces the bundled statement tables. The tables must
// contain a DefaultGroup entry.
func WithStatements(tables map[string][]Statement) Option {
	return func(q *Quantifier) error {
		q.statements = tables
		return nil
	}
}

// NewQuantifier creates a Quantifier over the bundled statement tables.
func NewQuantifier(groups GroupResolver, opts ...Option) (*Quantifier, error) {
	if groups == nil {
		return nil, fmt.Errorf("%w: group resolver is nil", core.ErrInvalidStatement)
	}

	q := &Quantifier{
		groups:     groups,
		statements: BundledStatements(),
	}
	for _, opt := range opts {
		if err := opt(q); err != nil {
			return nil, err
		}
	}

	tables, byID, err := validateTables(q.statements)
	if err != nil {
		return nil, err
	}
	q.statements = tables
	q.byID = byID
	return q, nil
}

func validateTables(tables map[string][]Statement) (map[string][]Statement, map[string]Statement, error) {
	if len(tables[DefaultGroup]) == 0 {
		return nil, nil, fmt.Errorf("%w: missing %q statement group", core.ErrInvalidStatement, DefaultGroup)
	}

	out := make(map[string][]Statement, len(tables))
	byID := make(map[string]Statement)
	for group, list := range tables {
		if group == "" {
			return nil, nil, fmt.Errorf("%w: empty group key", core.ErrInvalidStatement)
		}
		copied := make([]Statement, 0, len(list))
		for _, s := range list {
			if s.ID == "" {
				return nil, nil, fmt.Errorf("%w: group %q: empty statement id", core.ErrInvalidStatement, group)
			}
			if _, dup := byID[s.ID]; dup {
				return nil, nil, fmt.Errorf("%w: duplicate statement id %q", core.ErrInvalidStatement, s.ID)
			}
			if s.Weight < 1 || s.Weight > 3 {
				return nil, nil, fmt.Errorf("%w: statement %q: weight %d outside 1..3", core.ErrInvalidStatement, s.ID, s.Weight)
			}
			s.Group = group
			s.TopicID = ""
			byID[s.ID] = s
			copied = append(copied, s)
		}
		out[group] = copied
	}
	return out, byID, nil
}

// resolveGroup returns the group whose statements serve topicID.
func (q *Quantifier) resolveGroup(topicID string) string {
	group := q.groups.IntensityGroup(topicID)
	if len(q.statements[group]) == 0 {
		return DefaultGroup
	}
	return group
}

// StatementsForTopics returns the candidate statement pool for the given
// topics. A group reached through several topics is included once, tagged
// with the first topic that reached it.
func (q *Quantifier) StatementsForTopics(topicIDs []string) []Statement {
	var out []Statement
	seen := make(map[string]struct{})
	for _, topicID := range topicIDs {
		group := q.resolveGroup(topicID)
		if _, dup := seen[group]; dup {
			continue
		}
		seen[group] = struct{}{}
		for _, s := range q.statements[group] {
			s.TopicID = topicID
			out = append(out, s)
		}
	}
	return out
}

// Statement looks up a statement by its global id.
func (q *Quantifier) Statement(id string) (Statement, bool) {
	s, ok := q.byID[id]
	return s, ok
}

// Score computes the reading for the selected statement ids against the
// pool of the given topics. Selected ids resolve globally and unknown ids
// are ignored; a repeated id counts once. The score is capped at 100.
func (q *Quantifier) Score(selectedIDs []string, topicIDs []string) Reading {
	if len(selectedIDs) == 0 {
		return Reading{Score: 0, Level: LevelNone}
	}

	maxWeight := 0
	for _, s := range q.StatementsForTopics(topicIDs) {
		maxWeight += s.Weight
	}
	if maxWeight == 0 {
		return Reading{Score: 0, Level: LevelNone}
	}

	selectedWeight := 0
	counted := make(map[string]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		if _, dup := counted[id]; dup {
			continue
		}
		counted[id] = struct{}{}
		if s, ok := q.byID[id]; ok {
			selectedWeight += s.Weight
		}
	}

	score := int(math.Round(float64(selectedWeight) / float64(maxWeight) * 100))
	if score > 100 {
		score = 100
	}
	return Reading{Score: score, Level: LevelFor(score)}
}

// Combine folds per-topic readings into one overall reading using the
// topic priority order: the first topic weighs 3, the second 2, the third
// 1.5 and every other topic 1. Readings with level none are skipped.
func Combine(readings map[string]Reading, priority []string) Reading {
	rank := make(map[string]int, len(priority))
	for i, id := range priority {
		if _, dup := rank[id]; !dup {
			rank[id] = i
		}
	}

	topics := make([]string, 0, len(readings))
	for id, r := range readings {
		if r.Level == LevelNone || r.Level == "" {
			continue
		}
		topics = append(topics, id)
	}
	if len(topics) == 0 {
		return Reading{Score: 0, Level: LevelNone}
	}
	sort.Strings(topics)

	var weighted, total float64
	for _, id := range topics {
		w := priorityWeight(rank, id)
		weighted += float64(readings[id].Score) * w
		total += w
	}

	score := int(math.Round(weighted / total))
	return Reading{Score: score, Level: LevelFor(score)}
}

func priorityWeight(rank map[string]int, topicID string) float64 {
	idx, ok := rank[topicID]
	if !ok {
		return 1
	}
	switch idx {
	case 0:
		return 3
	case 1:
		return 2
	case 2:
		return 1.5
	default:
		return 1
	}
}
