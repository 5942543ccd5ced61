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

package cli

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/devdonalds/cookbook/pkg/cookbook"
	"github.com/devdonalds/cookbook/pkg/seed"
	"github.com/devdonalds/cookbook/pkg/server"
	"github.com/devdonalds/cookbook/pkg/version"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the cookbook HTTP API server",
		Description: `Run the cookbook API server. The server starts empty unless a seed
file is provided, and keeps all entries in memory.

Endpoints:
  - POST /v1/parse   - Normalize a free-text recipe name
  - POST /v1/entry   - Add an ingredient or recipe
  - GET  /v1/summary - Resolve a recipe into base ingredients
  - POST /v1/clear   - Remove every entry`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   8080,
				Usage:   "Port for the server to listen on",
			},
			&cli.StringFlag{
				Name:    "seed",
				Aliases: []string{"f"},
				Usage:   "Path to a YAML seed `FILE` loaded at startup",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			book := cookbook.New()

			if path := cmd.String("seed"); path != "" {
				n, err := seed.LoadInto(book, path)
				if err != nil {
					return err
				}
				slog.Info("cookbook seeded", "path", path, "entries", n)
			}

			h := cookbook.NewHandler(book)
			cfg := server.NewConfig()
			cfg.Port = int(cmd.Int("port"))
			cfg.Handlers = map[string]http.HandlerFunc{
				"/v1/parse":   h.HandleParse,
				"/v1/entry":   h.HandleEntry,
				"/v1/summary": h.HandleSummary,
				"/v1/clear":   h.HandleClear,
			}

			s := server.New(
				server.WithConfig(cfg),
				server.WithName(name+"-server"),
				server.WithVersion(version.Version),
			)
			return s.Run(ctx)
		},
	}
}
