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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/devdonalds/cookbook/pkg/normalizer"
)

func normalizeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "normalize",
		EnableShellCompletion: true,
		Usage:                 "Normalize a free-text recipe name into its display form",
		ArgsUsage:             "NAME",
		Description: `Normalize a handwritten or free-text recipe name:
  - Hyphens and underscores become single spaces
  - Characters other than letters are removed
  - Each word is title-cased

Example:
  cookbook normalize "Riz@z RISOTTO"
  Rizz Risotto`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input := strings.Join(cmd.Args().Slice(), " ")
			if input == "" {
				return fmt.Errorf("missing recipe name argument")
			}

			displayName, err := normalizer.Normalize(input)
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

			return ser.Serialize(map[string]string{"displayName": displayName})
		},
	}
}
