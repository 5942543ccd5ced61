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

// Kind discriminates cookbook entry variants.
type Kind string

const (
	// KindIngredient marks a leaf entry with a fixed cook time.
	KindIngredient Kind = "ingredient"
	// KindRecipe marks an internal node composed of required items.
	KindRecipe Kind = "recipe"
)

// RequiredItem is an edge in the dependency graph: one unit of the owning
// recipe requires Quantity units of the entry named Name. The referenced
// entry does not have to exist at creation time.
type RequiredItem struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Entry is a tagged variant over ingredients and recipes. The only shared
// field is Name; CookTime is meaningful for ingredients and RequiredItems
// for recipes. Entries are immutable once stored in a Book.
type Entry struct {
	Kind          Kind           `json:"type" yaml:"type"`
	Name          string         `json:"name" yaml:"name"`
	CookTime      int            `json:"cookTime,omitempty" yaml:"cookTime,omitempty"`
	RequiredItems []RequiredItem `json:"requiredItems,omitempty" yaml:"requiredItems,omitempty"`
}

// Ingredient builds an ingredient entry.
func Ingredient(name string, cookTime int) Entry {
	return Entry{
		Kind:     KindIngredient,
		Name:     name,
		CookTime: cookTime,
	}
}

// Recipe builds a recipe entry from its required items, in order.
func Recipe(name string, items ...RequiredItem) Entry {
	return Entry{
		Kind:          KindRecipe,
		Name:          name,
		RequiredItems: items,
	}
}

// Summary is the externally visible aggregate cost of one unit of a recipe:
// the total cook time and the flattened multiset of base ingredients.
type Summary struct {
	Name        string         `json:"name" yaml:"name"`
	CookTime    int            `json:"cookTime" yaml:"cookTime"`
	Ingredients []RequiredItem `json:"ingredients" yaml:"ingredients"`
}
