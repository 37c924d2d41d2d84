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
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/poiesic/therapymatch/ai"
	"github.com/poiesic/therapymatch/core"
	"github.com/poiesic/therapymatch/storage"
	"github.com/poiesic/therapymatch/taxonomy"
)

const (
	uriScheme      = "therapymatch://"
	taxonomyURI    = uriScheme + "taxonomy"
	profilesPrefix = uriScheme + "profiles/"
	mimeJSON       = "application/json"
)

// topicInfo is a taxonomy topic with display labels.
type topicInfo struct {
	taxonomy.Topic
	Labels map[core.Language]string `json:"labels"`
}

func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         taxonomyURI,
		Name:        "taxonomy",
		Description: "Topics a person can select, their subtopics and the specialties they map to",
		MIMEType:    mimeJSON,
	}, s.handleTaxonomyResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: profilesPrefix + "{slug}",
		Name:        "profile",
		Description: "A stored therapist profile",
		MIMEType:    mimeJSON,
	}, s.handleProfileResource)
}

func (s *Server) handleTaxonomyResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	topics := s.engine.Taxonomy().Topics()
	infos := make([]topicInfo, len(topics))
	for i, t := range topics {
		infos[i] = topicInfo{
			Topic: t,
			Labels: map[core.Language]string{
				core.LanguageGerman:  ai.TopicLabel(t.ID, core.LanguageGerman),
				core.LanguageEnglish: ai.TopicLabel(t.ID, core.LanguageEnglish),
			},
		}
	}
	return jsonResult(req.Params.URI, infos)
}

func (s *Server) handleProfileResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	slug := extractSlug(req.Params.URI)
	if slug == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	profile, err := s.engine.Profiles().GetProfileBySlug(ctx, slug)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return jsonResult(req.Params.URI, profile)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractSlug returns the slug of a therapymatch://profiles/{slug} URI.
func extractSlug(uri string) string {
	slug, ok := strings.CutPrefix(uri, profilesPrefix)
	if !ok || strings.Contains(slug, "/") {
		return ""
	}
	return slug
}
