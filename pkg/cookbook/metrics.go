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
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/devdonalds/cookbook/pkg/errors"
)

const outcomeSuccess = "success"

var (
	entriesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_entries_created_total",
			Help: "Total number of cookbook entries created, by kind",
		},
		[]string{"kind"},
	)

	resolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_resolutions_total",
			Help: "Total number of recipe resolutions, by outcome",
		},
		[]string{"outcome"},
	)

	resolutionCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cookbook_resolution_cache_hits_total",
			Help: "Total number of recipe resolutions served from the memo cache",
		},
	)
)

// outcomeLabel maps a resolution failure to its metric label.
func outcomeLabel(err error) string {
	return strings.ToLower(string(errors.CodeOf(err)))
}
