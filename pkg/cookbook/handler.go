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
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/devdonalds/cookbook/pkg/errors"
	"github.com/devdonalds/cookbook/pkg/normalizer"
	"github.com/devdonalds/cookbook/pkg/serializers"
	"github.com/devdonalds/cookbook/pkg/server"
)

// ParseRequest is the body of a name normalization request.
type ParseRequest struct {
	Input string `json:"input"`
}

// ParseResponse carries the normalized display name.
type ParseResponse struct {
	DisplayName string `json:"displayName"`
}

// EntryRequest is the body of an entry creation request. CookTime is a
// pointer so a missing field can be told apart from an explicit zero.
type EntryRequest struct {
	Type          string         `json:"type"`
	Name          string         `json:"name"`
	CookTime      *int           `json:"cookTime,omitempty"`
	RequiredItems []RequiredItem `json:"requiredItems,omitempty"`
}

// MessageResponse is a minimal acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// Handler exposes a Book over HTTP.
type Handler struct {
	book *Book
}

// NewHandler creates an HTTP handler backed by the given book.
func NewHandler(book *Book) *Handler {
	return &Handler{book: book}
}

// HandleParse normalizes a free-text recipe name.
//
// POST /v1/parse {"input": "Riz@z RISOTTO"} -> {"displayName": "Rizz Risotto"}
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"invalid request body", false, nil)
		return
	}

	displayName, err := normalizer.Normalize(req.Input)
	if err != nil {
		server.WriteStructuredError(w, r, err, nil)
		return
	}

	serializers.RespondJSON(w, http.StatusOK, ParseResponse{DisplayName: displayName})
}

// HandleEntry adds an ingredient or a recipe to the cookbook.
//
// POST /v1/entry {"type": "ingredient", "name": "egg", "cookTime": 5}
func (h *Handler) HandleEntry(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"invalid request body", false, nil)
		return
	}

	entry, err := entryFromRequest(req)
	if err != nil {
		server.WriteStructuredError(w, r, err, nil)
		return
	}

	if err := h.book.CreateEntry(entry); err != nil {
		server.WriteStructuredError(w, r, err, nil)
		return
	}

	slog.Debug("entry created", "type", entry.Kind, "name", entry.Name)
	serializers.RespondJSON(w, http.StatusOK, MessageResponse{
		Message: string(entry.Kind) + " added",
	})
}

// HandleSummary resolves a recipe into its base ingredients and total
// cook time.
//
// GET /v1/summary?name=pancake
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"query parameter 'name' is required", false, nil)
		return
	}

	summary, err := h.book.Summarize(name)
	if err != nil {
		server.WriteStructuredError(w, r, err, map[string]any{"name": name})
		return
	}

	serializers.RespondJSON(w, http.StatusOK, summary)
}

// HandleClear removes every entry from the cookbook.
//
// POST /v1/clear
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	h.book.Clear()
	slog.Info("cookbook cleared")
	serializers.RespondJSON(w, http.StatusOK, MessageResponse{Message: "cookbook cleared"})
}

// entryFromRequest validates the transport-level shape of an entry request
// and converts it to a domain entry. Domain invariants (duplicate items,
// negative values) are checked by the book itself.
func entryFromRequest(req EntryRequest) (Entry, error) {
	if req.Name == "" {
		return Entry{}, errors.New(errors.ErrCodeInvalidRequest, "entry name is required")
	}

	switch Kind(req.Type) {
	case KindIngredient:
		if req.CookTime == nil {
			return Entry{}, errors.Newf(errors.ErrCodeInvalidField,
				"cookTime is required for ingredient %q", req.Name)
		}
		return Ingredient(req.Name, *req.CookTime), nil

	case KindRecipe:
		return Recipe(req.Name, req.RequiredItems...), nil

	default:
		return Entry{}, errors.Newf(errors.ErrCodeInvalidType,
			"unknown entry type %q", req.Type)
	}
}

// requireMethod rejects requests with the wrong HTTP method and reports
// whether the handler should proceed.
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"method "+r.Method+" not allowed", false, nil)
	return false
}
