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
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/devdonalds/cookbook/pkg/logging"
	"github.com/devdonalds/cookbook/pkg/serializers"
	"github.com/devdonalds/cookbook/pkg/version"
)

const name = "cookbook"

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write output to `FILE` instead of stdout",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Value: string(serializers.FormatJSON),
		Usage: "Output format (json or yaml)",
	}
)

// rootCmd assembles the command tree.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Manage a cookbook of ingredients and recipes",
		Version: version.Get().String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version.Version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			serveCmd(),
			normalizeCmd(),
			summaryCmd(),
		},
	}
}

// Run executes the CLI. This is called by main.main().
func Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newOutputWriter builds a serializer from the shared output/format flags.
func newOutputWriter(cmd *cli.Command) (*serializers.Writer, error) {
	format := serializers.Format(cmd.String("format"))
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
	return serializers.NewFileWriterOrStdout(format, cmd.String("output")), nil
}
