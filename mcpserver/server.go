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
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/poiesic/therapymatch"
	"github.com/poiesic/therapymatch/intensity"
	"github.com/poiesic/therapymatch/storage"
	"github.com/poiesic/therapymatch/taxonomy"
)

// Engine is the part of *therapymatch.Engine the server calls.
type Engine interface {
	Match(ctx context.Context, req therapymatch.Request) (*therapymatch.MatchResult, error)
	Classify(ctx context.Context, text string) (*therapymatch.Classification, error)
	IntensityStatements(topicIDs []string) []intensity.Statement
	Intensity(selectedIDs []string, topicIDs []string) intensity.Reading
	Taxonomy() *taxonomy.Taxonomy
	Profiles() storage.ProfileRepository
}

var _ Engine = (*therapymatch.Engine)(nil)

// Server is the MCP server of the matching engine.
type Server struct {
	engine Engine
	server *mcp.Server
	logger *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a server over engine with every tool and resource
// registered.
func NewServer(engine Engine, opts ...Option) (*Server, error) {
	if engine == nil {
		return nil, ErrMissingEngine
	}

	s := &Server{
		engine: engine,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "therapymatch",
			Version: therapymatch.Version,
		}, nil),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registerTools()
	s.registerResources()
	return s, nil
}

// Run serves over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("serving MCP over stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves the streamable HTTP transport on addr until ctx is
// cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("error shutting down MCP HTTP server", "err", err)
		}
	}()

	s.logger.Info("serving MCP over HTTP", "addr", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("mcp http server: %w", err)
}
