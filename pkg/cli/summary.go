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
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/devdonalds/cookbook/pkg/cookbook"
	"github.com/devdonalds/cookbook/pkg/seed"
)

func summaryCmd() *cli.Command {
	return &cli.Command{
		Name:                  "summary",
		EnableShellCompletion: true,
		Usage:                 "Resolve a recipe from a seed file into its base ingredients",
		ArgsUsage:             "NAME",
		Description: `Load a cookbook from a YAML seed file and resolve the named recipe
into its base ingredients and total cook time, without running a server.

Example:
  cookbook summary --seed cookbook.yaml pancake`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "seed",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "Path to the YAML seed `FILE` holding the cookbook",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return fmt.Errorf("missing recipe name argument")
			}

			book := cookbook.New()
			if _, err := seed.LoadInto(book, cmd.String("seed")); err != nil {
				return err
			}

			summary, err := book.Summarize(name)
			if err != nil {
				return err
			}

			ser, err := newOutputWriter(cmd)
			if err != nil {
				return err
			}
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(summary)
		},
	}
}
