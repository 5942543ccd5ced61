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
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/devdonalds/cookbook/pkg/errors"
)

// Book is the in-memory cookbook registry. It maps entry names (one shared
// namespace for ingredients and recipes) to entries and memoizes completed
// recipe resolutions.
//
// A single RWMutex guards the registry and the memo store together: reads
// (Lookup, Summarize) run concurrently with each other, while CreateEntry
// and Clear exclude all readers so a clear can never interleave with an
// in-flight resolution.
type Book struct {
	mu      sync.RWMutex
	entries map[string]Entry

	// memo caches fully-resolved ingredient-frequency maps per recipe name.
	// Entries are immutable after creation, so a resolved map stays valid
	// until the next registry write flushes the store.
	memo *gocache.Cache
}

// New creates an empty cookbook.
func New() *Book {
	return &Book{
		entries: make(map[string]Entry),
		memo:    gocache.New(gocache.NoExpiration, 0),
	}
}

// CreateEntry validates and stores a new entry. The entry name must be
// unique across the whole registry (case-sensitive). Required-item names
// are NOT checked against the registry here; referential integrity is
// deferred to resolution time.
func (b *Book) CreateEntry(entry Entry) error {
	if err := validateEntry(entry); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.entries[entry.Name]; exists {
		return errors.Newf(errors.ErrCodeDuplicateName, "entry named %q already exists", entry.Name)
	}

	// Copy the items so callers cannot mutate a stored recipe.
	entry.RequiredItems = slices.Clone(entry.RequiredItems)
	b.entries[entry.Name] = entry

	// A new entry cannot change an already-resolved recipe (entries are
	// immutable and names unique), but the cache contract is
	// invalidate-on-write and recomputation is cheap.
	b.memo.Flush()

	entriesCreated.WithLabelValues(string(entry.Kind)).Inc()
	return nil
}

// Lookup returns the entry stored under name.
func (b *Book) Lookup(name string) (Entry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	entry, ok := b.entries[name]
	return entry, ok
}

// Len returns the number of stored entries.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries)
}

// Clear atomically empties the registry and the resolution cache.
// It is idempotent.
func (b *Book) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = make(map[string]Entry)
	b.memo.Flush()
}

// validateEntry checks the creation-time invariants of an entry.
func validateEntry(entry Entry) error {
	switch entry.Kind {
	case KindIngredient:
		if entry.CookTime < 0 {
			return errors.Newf(errors.ErrCodeInvalidField,
				"cook time must be non-negative, got %d", entry.CookTime)
		}

	case KindRecipe:
		seen := make(map[string]struct{}, len(entry.RequiredItems))
		for _, item := range entry.RequiredItems {
			if item.Quantity < 0 {
				return errors.Newf(errors.ErrCodeInvalidField,
					"quantity for item %q must be non-negative, got %d", item.Name, item.Quantity)
			}
			if _, dup := seen[item.Name]; dup {
				return errors.Newf(errors.ErrCodeDuplicateItem,
					"recipe lists item %q more than once", item.Name)
			}
			seen[item.Name] = struct{}{}
		}

	default:
		return errors.Newf(errors.ErrCodeInvalidType, "unknown entry type %q", entry.Kind)
	}

	return nil
}
