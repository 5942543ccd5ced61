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

package normalizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/devdonalds/cookbook/pkg/errors"
)

var (
	// separators matches runs of hyphen, underscore, or space between tokens.
	separators = regexp.MustCompile(`[-_ ]+`)
	// disallowed matches every character stripped from a token.
	disallowed = regexp.MustCompile(`[^a-zA-Z_-]`)

	upper = cases.Upper(language.English)
	lower = cases.Lower(language.English)
)

// Normalize canonicalizes a free-form entry name into its display form:
// tokens are split on runs of hyphens, underscores, and spaces, stripped
// down to ASCII letters, title-cased (first character upper, remainder
// lower), and joined with single spaces.
//
// The transform is idempotent. It fails with INVALID_INPUT when the input
// is empty or no token survives stripping.
func Normalize(input string) (string, error) {
	tokens := separators.Split(input, -1)

	names := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = disallowed.ReplaceAllString(token, "")
		if token == "" {
			continue
		}
		names = append(names, upper.String(token[:1])+lower.String(token[1:]))
	}

	if len(names) == 0 {
		return "", errors.Newf(errors.ErrCodeInvalidInput, "name %q contains no usable characters", input)
	}

	return strings.Join(names, " "), nil
}
