// Copyright (c) 2025, DevDonalds. All rights reserved.
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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/devdonalds/cookbook/pkg/cookbook"
	"github.com/devdonalds/cookbook/pkg/logging"
	"github.com/devdonalds/cookbook/pkg/seed"
	"github.com/devdonalds/cookbook/pkg/server"
	"github.com/devdonalds/cookbook/pkg/version"
)

const name = "cookbook-server"

// seedEnvVar names a YAML seed file loaded into the cookbook at startup.
const seedEnvVar = "COOKBOOK_SEED"

// Serve starts the API server and blocks until shutdown.
// It configures logging, creates the cookbook, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	info := version.Get()
	logging.SetDefaultStructuredLogger(name, info.Version)
	slog.Info("starting",
		"name", name,
		"version", info.Version,
		"commit", info.Commit,
		"date", info.Date,
	)

	book := cookbook.New()
	if path := os.Getenv(seedEnvVar); path != "" {
		n, err := seed.LoadInto(book, path)
		if err != nil {
			return fmt.Errorf("seeding cookbook from %s: %w", path, err)
		}
		slog.Info("cookbook seeded", "path", path, "entries", n)
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(info.Version),
		server.WithHandler(routes(book)),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// routes maps URL paths to the cookbook handlers mounted on them.
func routes(book *cookbook.Book) map[string]http.HandlerFunc {
	h := cookbook.NewHandler(book)
	return map[string]http.HandlerFunc{
		"/v1/parse":   h.HandleParse,
		"/v1/entry":   h.HandleEntry,
		"/v1/summary": h.HandleSummary,
		"/v1/clear":   h.HandleClear,
	}
}
