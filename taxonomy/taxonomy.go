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

package taxonomy

import (
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-crypt/x/blake2b"
	"github.com/poiesic/therapymatch/core"
)

// Section groups topics for presentation. It plays no part in scoring.
type Section string

const (
	SectionEmotional     Section = "emotional"
	SectionRelational    Section = "relational"
	SectionWorkLife      Section = "work_life"
	SectionBodyBehaviour Section = "body_behaviour"
)

// SubTopic is a weighted refinement under exactly one Topic.
// Weights are relative within the parent topic only.
type SubTopic struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
}

// Topic is a top-level concern a person may select.
type Topic struct {
	ID          string           `json:"id"`
	Section     Section          `json:"section"`
	Specialties []core.Specialty `json:"specialties"`
	SubTopics   []SubTopic       `json:"sub_topics"`
}

// Taxonomy is the validated, read-only topic catalog.
type Taxonomy struct {
	topics      []Topic
	byID        map[string]int
	subOwner    map[string]string
	subWeight   map[string]float64
	groups      map[string]string
	fingerprint string
}

// New validates topics and the topic to intensity-group map and builds the
// derived indexes. Input slices are copied; later mutation by the caller has
// no effect on the returned Taxonomy.
//
// Validation rules:
//   - topic ids must be non-empty and unique
//   - subtopic ids must be non-empty and unique across all topics
//   - subtopic weights must be positive and finite
//   - every mapped specialty must belong to the known vocabulary
//   - every group entry must refer to a known topic and name a non-empty group
func New(topics []Topic, groups map[string]string) (*Taxonomy, error) {
	t := &Taxonomy{
		topics:    make([]Topic, 0, len(topics)),
		byID:      make(map[string]int, len(topics)),
		subOwner:  make(map[string]string),
		subWeight: make(map[string]float64),
		groups:    make(map[string]string, len(groups)),
	}

	for _, topic := range topics {
		if topic.ID == "" {
			return nil, fmt.Errorf("%w: empty topic id", core.ErrInvalidTaxonomy)
		}
		if _, dup := t.byID[topic.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate topic id %q", core.ErrInvalidTaxonomy, topic.ID)
		}
		for _, s := range topic.Specialties {
			if !s.IsValid() {
				return nil, fmt.Errorf("%w: topic %q: %w: %q", core.ErrInvalidTaxonomy, topic.ID, core.ErrUnknownSpecialty, s)
			}
		}
		for _, sub := range topic.SubTopics {
			if sub.ID == "" {
				return nil, fmt.Errorf("%w: topic %q: empty subtopic id", core.ErrInvalidTaxonomy, topic.ID)
			}
			if owner, dup := t.subOwner[sub.ID]; dup {
				return nil, fmt.Errorf("%w: subtopic %q defined under %q and %q", core.ErrInvalidTaxonomy, sub.ID, owner, topic.ID)
			}
			if !(sub.Weight > 0) || math.IsInf(sub.Weight, 0) {
				return nil, fmt.Errorf("%w: subtopic %q: weight %v must be positive", core.ErrInvalidTaxonomy, sub.ID, sub.Weight)
			}
			t.subOwner[sub.ID] = topic.ID
			t.subWeight[sub.ID] = sub.Weight
		}

		t.byID[topic.ID] = len(t.topics)
		t.topics = append(t.topics, cloneTopic(topic))
	}

	for topicID, group := range groups {
		if _, ok := t.byID[topicID]; !ok {
			return nil, fmt.Errorf("%w: intensity group for unknown topic %q", core.ErrInvalidTaxonomy, topicID)
		}
		if group == "" {
			return nil, fmt.Errorf("%w: topic %q: empty intensity group", core.ErrInvalidTaxonomy, topicID)
		}
		t.groups[topicID] = group
	}

	t.fingerprint = t.computeFingerprint()
	return t, nil
}

// Topic returns the topic with the given id.
func (t *Taxonomy) Topic(id string) (Topic, bool) {
	idx, ok := t.byID[id]
	if !ok {
		return Topic{}, false
	}
	return cloneTopic(t.topics[idx]), true
}

// Topics returns every topic in catalog order.
func (t *Taxonomy) Topics() []Topic {
	out := make([]Topic, len(t.topics))
	for i, topic := range t.topics {
		out[i] = cloneTopic(topic)
	}
	return out
}

// SpecialtiesForTopics returns the union of specialties mapped from the given
// topics in first-seen order. Unknown topic ids are skipped.
func (t *Taxonomy) SpecialtiesForTopics(ids []string) []core.Specialty {
	var out []core.Specialty
	seen := make(map[core.Specialty]struct{})
	for _, id := range ids {
		idx, ok := t.byID[id]
		if !ok {
			continue
		}
		for _, s := range t.topics[idx].Specialties {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// SubTopicOwner returns the id of the topic a subtopic belongs to.
func (t *Taxonomy) SubTopicOwner(id string) (string, bool) {
	owner, ok := t.subOwner[id]
	return owner, ok
}

// SubTopic returns a subtopic together with its owning topic id.
func (t *Taxonomy) SubTopic(id string) (SubTopic, string, bool) {
	owner, ok := t.subOwner[id]
	if !ok {
		return SubTopic{}, "", false
	}
	return SubTopic{ID: id, Weight: t.subWeight[id]}, owner, true
}

// SpecialtiesForSubTopic returns the specialties of the subtopic's owner.
// Refinements are scored at parent-topic granularity.
func (t *Taxonomy) SpecialtiesForSubTopic(id string) []core.Specialty {
	owner, ok := t.subOwner[id]
	if !ok {
		return nil
	}
	return t.SpecialtiesForTopics([]string{owner})
}

// IntensityGroup returns the statement group a topic draws from. Topics
// without an explicit mapping use their own id.
func (t *Taxonomy) IntensityGroup(topicID string) string {
	if group, ok := t.groups[topicID]; ok {
		return group
	}
	return topicID
}

// Fingerprint identifies the catalog contents. It changes whenever a topic,
// subtopic, weight, specialty mapping or group assignment changes.
func (t *Taxonomy) Fingerprint() string {
	return t.fingerprint
}

func (t *Taxonomy) computeFingerprint() string {
	var b strings.Builder
	for _, topic := range t.topics {
		b.WriteString("T|")
		b.WriteString(topic.ID)
		b.WriteByte('|')
		b.WriteString(string(topic.Section))
		b.WriteByte('|')
		for _, s := range topic.Specialties {
			b.WriteString(string(s))
			b.WriteByte(',')
		}
		b.WriteByte('\n')
		for _, sub := range topic.SubTopics {
			b.WriteString("S|")
			b.WriteString(sub.ID)
			b.WriteByte('|')
			b.WriteString(strconv.FormatFloat(sub.Weight, 'g', -1, 64))
			b.WriteByte('\n')
		}
	}

	keys := make([]string, 0, len(t.groups))
	for k := range t.groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("G|")
		b.WriteString(k)
		b.WriteByte('|')
		b.WriteString(t.groups[k])
		b.WriteByte('\n')
	}

	h, _ := blake2b.New(16, nil)
	h.Write([]byte(b.String()))
	return hex.EncodeToString(h.Sum(nil))
}

func cloneTopic(topic Topic) Topic {
	topic.Specialties = append([]core.Specialty(nil), topic.Specialties...)
	topic.SubTopics = append([]SubTopic(nil), topic.SubTopics...)
	return topic
}
