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

// Package cli implements the cookbook command line interface.
//
// Commands:
//   - serve:     run the cookbook HTTP API server
//   - normalize: normalize a free-text recipe name
//   - summary:   resolve a recipe from a seed file without a server
//
// All commands share the --output and --format flags for writing results
// as JSON or YAML to stdout or a file.
package cli
