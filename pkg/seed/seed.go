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

// Package seed loads cookbook entries from YAML files. Seed files let a
// server or CLI start with a pre-populated cookbook instead of an empty one.
//
// Seed file format:
//
//	entries:
//	  - type: ingredient
//	    name: egg
//	    cookTime: 5
//	  - type: recipe
//	    name: omelette
//	    requiredItems:
//	      - name: egg
//	        quantity: 3
//
// Entries are applied in file order, so recipes may reference any entry
// that appears before them.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/devdonalds/cookbook/pkg/cookbook"
	"github.com/devdonalds/cookbook/pkg/errors"
)

// File is the top-level structure of a seed file.
type File struct {
	Entries []cookbook.Entry `yaml:"entries"`
}

// Parse decodes seed file content.
func Parse(data []byte) ([]cookbook.Entry, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid seed file", err)
	}
	return f.Entries, nil
}

// Load reads and decodes a seed file from disk.
func Load(path string) ([]cookbook.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Apply adds entries to the book in order and returns the number added.
// It stops at the first entry the book rejects, identifying the entry in
// the returned error.
func Apply(book *cookbook.Book, entries []cookbook.Entry) (int, error) {
	for i, entry := range entries {
		if err := book.CreateEntry(entry); err != nil {
			return i, fmt.Errorf("seed entry %d (%s %q): %w", i, entry.Kind, entry.Name, err)
		}
	}
	return len(entries), nil
}

// LoadInto loads a seed file and applies its entries to the book.
func LoadInto(book *cookbook.Book, path string) (int, error) {
	entries, err := Load(path)
	if err != nil {
		return 0, err
	}
	return Apply(book, entries)
}
