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

package cookbook

import (
	gocache "github.com/patrickmn/go-cache"

	"github.com/devdonalds/cookbook/pkg/errors"
)

// resolve walks the dependency graph rooted at the named recipe depth-first
// and returns the ingredient-frequency map for one unit of it: ingredient
// name to total quantity, with every nested recipe expanded and each edge
// quantity multiplied through.
//
// inProgress holds the recipe names on the current resolution path and is
// what detects cycles; it must not outlive a single Summarize call. Cycle
// detection checks the current path only, so a recipe already resolved and
// cached is never flagged when revisited from a sibling branch.
//
// Callers must hold the read lock. The entry must exist and be a recipe.
// Returned maps are shared with the memo store and must not be mutated.
func (b *Book) resolve(name string, inProgress map[string]struct{}) (map[string]int, error) {
	if cached, ok := b.memo.Get(name); ok {
		resolutionCacheHits.Inc()
		return cached.(map[string]int), nil
	}

	if _, active := inProgress[name]; active {
		return nil, errors.Newf(errors.ErrCodeCircularDependency,
			"recipe %q depends on itself", name)
	}
	inProgress[name] = struct{}{}

	recipe := b.entries[name]
	freq := make(map[string]int, len(recipe.RequiredItems))

	for _, item := range recipe.RequiredItems {
		child, ok := b.entries[item.Name]
		if !ok {
			// Abort immediately; no partial result is cached or returned.
			return nil, errors.Newf(errors.ErrCodeUnknownItem,
				"recipe %q requires unknown item %q", name, item.Name)
		}

		switch child.Kind {
		case KindIngredient:
			freq[child.Name] += item.Quantity

		case KindRecipe:
			sub, err := b.resolve(child.Name, inProgress)
			if err != nil {
				return nil, err
			}
			for ingredient, quantity := range sub {
				freq[ingredient] += item.Quantity * quantity
			}
		}
	}

	b.memo.Set(name, freq, gocache.NoExpiration)
	delete(inProgress, name)
	return freq, nil
}
