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

// Package cookbook implements the in-memory cookbook registry and the recipe
// summary resolver.
//
// A Book holds ingredients and recipes in one shared name space. Ingredients
// are leaves with a fixed cook time; recipes reference other entries by name
// with a quantity. Recipes may reference entries that do not exist yet, so a
// cookbook can be built in any order.
//
// Summarize resolves a recipe depth-first into its base ingredients, scaling
// quantities through nested recipes, and reports the total cook time.
// Resolutions are memoized per recipe and the memo is flushed whenever the
// registry changes. Cycles and references to missing entries fail with
// structured errors from pkg/errors.
//
// Handler exposes the book over HTTP; see pkg/api for route wiring.
package cookbook
