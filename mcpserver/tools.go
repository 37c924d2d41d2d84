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

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/poiesic/therapymatch"
	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/intensity"
	"github.com/poiesic/therapymatch/situation"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// MatchInput is the input schema of match_therapists.
type MatchInput struct {
	Topics      []string `json:"topics,omitempty" jsonschema:"topic ids from therapymatch://taxonomy, most important first"`
	SubTopics   []string `json:"sub_topics,omitempty" jsonschema:"subtopic ids refining the selected topics"`
	Text        string   `json:"text,omitempty" jsonschema:"free-text description of the situation, used when no topics are given"`
	Location    string   `json:"location,omitempty" jsonschema:"city or postal code"`
	Gender      string   `json:"gender,omitempty" jsonschema:"preferred therapist gender: female, male or diverse"`
	SessionMode string   `json:"session_mode,omitempty" jsonschema:"online, in_person or both"`
	Insurance   []string `json:"insurance,omitempty" jsonschema:"accepted insurance kinds: public or private"`
	Limit       int      `json:"limit,omitempty" jsonschema:"maximum number of therapists to return (default 10, max 50)"`
}

// MatchOutput is the output schema of match_therapists.
type MatchOutput struct {
	RequestID   string           `json:"request_id"`
	Count       int              `json:"count"`
	Results     []MatchedProfile `json:"results"`
	Specialties []string         `json:"specialties,omitempty"`
	Summary     string           `json:"summary,omitempty"`
	Crisis      *CrisisOutput    `json:"crisis,omitempty"`
}

// MatchedProfile is one ranked therapist.
type MatchedProfile struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Score       int      `json:"score"`
	City        string   `json:"city,omitempty"`
	SessionMode string   `json:"session_mode,omitempty"`
	Specialties []string `json:"specialties"`
	Reasons     []string `json:"reasons,omitempty"`
}

// CrisisOutput tells the assistant to point the person to crisis services
// instead of therapists.
type CrisisOutput struct {
	Type      string               `json:"type"`
	Resources []situation.Resource `json:"resources"`
}

// ClassifyInput is the input schema of classify_situation.
type ClassifyInput struct {
	Text string `json:"text" jsonschema:"free-text description of what the person is going through"`
}

// ClassifyOutput is the output schema of classify_situation.
type ClassifyOutput struct {
	Language    string        `json:"language"`
	Confidence  string        `json:"confidence"`
	Specialties []string      `json:"specialties"`
	Topics      []string      `json:"topics"`
	Intensity   string        `json:"intensity,omitempty"`
	Explanation string        `json:"explanation"`
	Summary     string        `json:"summary,omitempty"`
	Source      string        `json:"source,omitempty"`
	Crisis      *CrisisOutput `json:"crisis,omitempty"`
}

// StatementsInput is the input schema of intensity_statements.
type StatementsInput struct {
	Topics []string `json:"topics" jsonschema:"topic ids whose statements are wanted"`
}

// StatementsOutput is the output schema of intensity_statements.
type StatementsOutput struct {
	Statements []intensity.Statement `json:"statements"`
}

// IntensityInput is the input schema of score_intensity.
type IntensityInput struct {
	Topics     []string `json:"topics" jsonschema:"topic ids the statements were offered for"`
	Statements []string `json:"statements" jsonschema:"ids of the statements the person agreed with"`
}

// IntensityOutput is the output schema of score_intensity.
type IntensityOutput struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "match_therapists",
		Description: "Rank therapist profiles for a person's topics, free-text situation and practical preferences",
	}, s.handleMatch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "classify_situation",
		Description: "Read a free-text description and suggest therapy specialties, with crisis detection",
	}, s.handleClassify)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "intensity_statements",
		Description: "List the self-descriptive statements offered for the selected topics",
	}, s.handleStatements)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "score_intensity",
		Description: "Score how much the selected statements indicate the person is burdened (0-100)",
	}, s.handleIntensity)
}

func (s *Server) handleMatch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MatchInput,
) (*mcp.CallToolResult, MatchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	req := therapymatch.Request{
		Criteria: core.Criteria{
			Topics:      input.Topics,
			SubTopics:   input.SubTopics,
			Location:    input.Location,
			Gender:      core.Gender(input.Gender),
			SessionMode: core.SessionMode(input.SessionMode),
		},
		Text:  input.Text,
		Limit: limit,
	}
	for _, ins := range input.Insurance {
		req.Criteria.Insurance = append(req.Criteria.Insurance, core.Insurance(ins))
	}

	res, err := s.engine.Match(ctx, req)
	if err != nil {
		return nil, MatchOutput{}, err
	}

	out := MatchOutput{
		RequestID: res.RequestID,
		Count:     len(res.Results),
		Results:   make([]MatchedProfile, len(res.Results)),
	}
	for i, r := range res.Results {
		out.Results[i] = matchedProfile(r)
	}
	if c := res.Classification; c != nil {
		out.Specialties = specialtyNames(c.Specialties())
		if c.Situation != nil {
			out.Summary = c.Situation.Summary
		}
	}
	if res.Crisis != nil {
		out.Crisis = &CrisisOutput{Type: string(res.Crisis.Type), Resources: res.CrisisResources}
	}

	s.logger.Debug("match_therapists",
		"request_id", res.RequestID,
		"returned", out.Count)
	return nil, out, nil
}

func (s *Server) handleClassify(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ClassifyInput,
) (*mcp.CallToolResult, ClassifyOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ClassifyOutput{}, ErrEmptyText
	}

	c, err := s.engine.Classify(ctx, input.Text)
	if err != nil {
		return nil, ClassifyOutput{}, err
	}

	out := ClassifyOutput{
		Language:    string(c.Language),
		Confidence:  string(c.Confidence),
		Specialties: specialtyNames(c.Specialties()),
		Topics:      []string{},
		Explanation: c.Explanation,
	}
	if a := c.Situation; a != nil {
		if a.Topics != nil {
			out.Topics = a.Topics
		}
		out.Intensity = string(a.Intensity)
		out.Summary = a.Summary
		out.Source = string(a.Source)
		if a.CrisisDetected() {
			out.Crisis = &CrisisOutput{
				Type:      string(a.Crisis.Type),
				Resources: situation.CrisisResources(c.Language),
			}
		}
	}
	return nil, out, nil
}

func (s *Server) handleStatements(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input StatementsInput,
) (*mcp.CallToolResult, StatementsOutput, error) {
	statements := s.engine.IntensityStatements(input.Topics)
	if statements == nil {
		statements = []intensity.Statement{}
	}
	return nil, StatementsOutput{Statements: statements}, nil
}

func (s *Server) handleIntensity(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input IntensityInput,
) (*mcp.CallToolResult, IntensityOutput, error) {
	reading := s.engine.Intensity(input.Statements, input.Topics)
	return nil, IntensityOutput{Score: reading.Score, Level: string(reading.Level)}, nil
}

func matchedProfile(r core.RankedProfile) MatchedProfile {
	out := MatchedProfile{
		Score:       r.Score,
		Specialties: []string{},
	}
	if p := r.Profile; p != nil {
		out.Slug = p.Slug
		out.Name = p.Name
		out.City = p.Location.City
		out.SessionMode = string(p.SessionMode)
		out.Specialties = specialtyNames(p.Specialties)
	}
	if r.Breakdown != nil {
		out.Reasons = r.Breakdown.Reasons
	}
	return out
}

func specialtyNames(specs []core.Specialty) []string {
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = string(s)
	}
	return out
}
