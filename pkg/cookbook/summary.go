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
	"slices"
	"strings"

	"github.com/devdonalds/cookbook/pkg/errors"
)

// Summarize resolves the named recipe and projects the result into its
// summary: total cook time and the flattened ingredient list, sorted by
// ingredient name for a stable response shape.
//
// It fails with NOT_FOUND when the name is absent, WRONG_TYPE when the
// entry is an ingredient, and surfaces resolver failures (UNKNOWN_ITEM,
// CIRCULAR_DEPENDENCY) unchanged.
func (b *Book) Summarize(name string) (*Summary, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	entry, ok := b.entries[name]
	if !ok {
		return nil, errors.Newf(errors.ErrCodeNotFound, "entry %q not found", name)
	}
	if entry.Kind != KindRecipe {
		return nil, errors.Newf(errors.ErrCodeWrongType,
			"entry %q is an ingredient, not a recipe", name)
	}

	freq, err := b.resolve(name, make(map[string]struct{}))
	if err != nil {
		resolutions.WithLabelValues(outcomeLabel(err)).Inc()
		return nil, err
	}
	resolutions.WithLabelValues(outcomeSuccess).Inc()

	// Cook times are immutable after creation, so they are always looked up
	// fresh from the registry rather than cached alongside the frequencies.
	total := 0
	ingredients := make([]RequiredItem, 0, len(freq))
	for ingredient, quantity := range freq {
		total += quantity * b.entries[ingredient].CookTime
		ingredients = append(ingredients, RequiredItem{Name: ingredient, Quantity: quantity})
	}

	slices.SortFunc(ingredients, func(a, b RequiredItem) int {
		return strings.Compare(a.Name, b.Name)
	})

	return &Summary{
		Name:        name,
		CookTime:    total,
		Ingredients: ingredients,
	}, nil
}
