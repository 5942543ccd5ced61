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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devdonalds/cookbook/pkg/errors"
)

func TestSummarizeNestedRecipes(t *testing.T) {
	b := New()

	require.NoError(t, b.CreateEntry(Ingredient("egg", 5)))
	require.NoError(t, b.CreateEntry(Ingredient("flour", 2)))
	require.NoError(t, b.CreateEntry(Recipe("batter",
		RequiredItem{Name: "egg", Quantity: 2},
		RequiredItem{Name: "flour", Quantity: 1})))
	require.NoError(t, b.CreateEntry(Recipe("pancake",
		RequiredItem{Name: "batter", Quantity: 3})))

	summary, err := b.Summarize("pancake")
	require.NoError(t, err)

	assert.Equal(t, "pancake", summary.Name)
	// 3 batters = 6 eggs and 3 flour: 6*5 + 3*2.
	assert.Equal(t, 36, summary.CookTime)
	assert.Equal(t, []RequiredItem{
		{Name: "egg", Quantity: 6},
		{Name: "flour", Quantity: 3},
	}, summary.Ingredients)
}

func TestSummarizeEmptyRecipe(t *testing.T) {
	b := New()

	require.NoError(t, b.CreateEntry(Recipe("air")))

	summary, err := b.Summarize("air")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.CookTime)
	assert.Empty(t, summary.Ingredients)
}

func TestSummarizeZeroQuantity(t *testing.T) {
	b := New()

	require.NoError(t, b.CreateEntry(Ingredient("salt", 1)))
	require.NoError(t, b.CreateEntry(Recipe("bland",
		RequiredItem{Name: "salt", Quantity: 0})))

	summary, err := b.Summarize("bland")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.CookTime)
	assert.Equal(t, []RequiredItem{{Name: "salt", Quantity: 0}}, summary.Ingredients)
}

func TestSummarizeNotFound(t *testing.T) {
	b := New()

	_, err := b.Summarize("phantom")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
}

func TestSummarizeWrongType(t *testing.T) {
	b := New()

	require.NoError(t, b.CreateEntry(Ingredient("egg", 5)))

	_, err := b.Summarize("egg")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeWrongType))
}

func TestSummarizeIngredientsSortedByName(t *testing.T) {
	b := New()

	require.NoError(t, b.CreateEntry(Ingredient("zucchini", 3)))
	require.NoError(t, b.CreateEntry(Ingredient("apple", 1)))
	require.NoError(t, b.CreateEntry(Ingredient("mango", 2)))
	require.NoError(t, b.CreateEntry(Recipe("salad",
		RequiredItem{Name: "zucchini", Quantity: 1},
		RequiredItem{Name: "mango", Quantity: 1},
		RequiredItem{Name: "apple", Quantity: 1})))

	summary, err := b.Summarize("salad")
	require.NoError(t, err)

	names := make([]string, 0, len(summary.Ingredients))
	for _, item := range summary.Ingredients {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"apple", "mango", "zucchini"}, names)
}
