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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHandleParse(t *testing.T) {
	h := NewHandler(New())

	rec := postJSON(t, h.HandleParse, "/v1/parse", `{"input":"Riz@z RISOTTO"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ParseResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Rizz Risotto", resp.DisplayName)
}

func TestHandleParseInvalid(t *testing.T) {
	h := NewHandler(New())

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"malformed json", `{"input":`, "INVALID_REQUEST"},
		{"no surviving characters", `{"input":"@@@"}`, "INVALID_INPUT"},
		{"empty input", `{"input":""}`, "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.HandleParse, "/v1/parse", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]any
			decodeBody(t, rec, &resp)
			assert.Equal(t, tt.wantCode, resp["code"])
			assert.NotEmpty(t, resp["requestId"])
		})
	}
}

func TestHandleEntry(t *testing.T) {
	h := NewHandler(New())

	rec := postJSON(t, h.HandleEntry, "/v1/entry",
		`{"type":"ingredient","name":"egg","cookTime":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "ingredient added", resp.Message)

	rec = postJSON(t, h.HandleEntry, "/v1/entry",
		`{"type":"recipe","name":"omelette","requiredItems":[{"name":"egg","quantity":3}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	decodeBody(t, rec, &resp)
	assert.Equal(t, "recipe added", resp.Message)
}

func TestHandleEntryErrors(t *testing.T) {
	h := NewHandler(New())

	rec := postJSON(t, h.HandleEntry, "/v1/entry",
		`{"type":"ingredient","name":"egg","cookTime":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"duplicate name", `{"type":"ingredient","name":"egg","cookTime":7}`, "DUPLICATE_NAME"},
		{"unknown type", `{"type":"garnish","name":"parsley"}`, "INVALID_TYPE"},
		{"missing name", `{"type":"ingredient","cookTime":5}`, "INVALID_REQUEST"},
		{"missing cook time", `{"type":"ingredient","name":"milk"}`, "INVALID_FIELD"},
		{"negative cook time", `{"type":"ingredient","name":"milk","cookTime":-1}`, "INVALID_FIELD"},
		{
			"duplicate required item",
			`{"type":"recipe","name":"cake","requiredItems":[{"name":"egg","quantity":1},{"name":"egg","quantity":2}]}`,
			"DUPLICATE_ITEM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.HandleEntry, "/v1/entry", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]any
			decodeBody(t, rec, &resp)
			assert.Equal(t, tt.wantCode, resp["code"])
		})
	}
}

func TestHandleSummary(t *testing.T) {
	b := New()
	require.NoError(t, b.CreateEntry(Ingredient("egg", 5)))
	require.NoError(t, b.CreateEntry(Ingredient("flour", 2)))
	require.NoError(t, b.CreateEntry(Recipe("batter",
		RequiredItem{Name: "egg", Quantity: 2},
		RequiredItem{Name: "flour", Quantity: 1})))
	require.NoError(t, b.CreateEntry(Recipe("pancake",
		RequiredItem{Name: "batter", Quantity: 3})))

	h := NewHandler(b)

	req := httptest.NewRequest(http.MethodGet, "/v1/summary?name=pancake", nil)
	rec := httptest.NewRecorder()
	h.HandleSummary(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary Summary
	decodeBody(t, rec, &summary)
	assert.Equal(t, "pancake", summary.Name)
	assert.Equal(t, 36, summary.CookTime)
	assert.Equal(t, []RequiredItem{
		{Name: "egg", Quantity: 6},
		{Name: "flour", Quantity: 3},
	}, summary.Ingredients)
}

func TestHandleSummaryErrors(t *testing.T) {
	b := New()
	require.NoError(t, b.CreateEntry(Ingredient("egg", 5)))

	h := NewHandler(b)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{"missing name", "/v1/summary", http.StatusBadRequest, "INVALID_REQUEST"},
		{"not found", "/v1/summary?name=phantom", http.StatusNotFound, "NOT_FOUND"},
		{"ingredient not recipe", "/v1/summary?name=egg", http.StatusBadRequest, "WRONG_TYPE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			h.HandleSummary(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			var resp map[string]any
			decodeBody(t, rec, &resp)
			assert.Equal(t, tt.wantCode, resp["code"])
		})
	}
}

func TestHandleClear(t *testing.T) {
	b := New()
	require.NoError(t, b.CreateEntry(Ingredient("egg", 5)))

	h := NewHandler(b)

	rec := postJSON(t, h.HandleClear, "/v1/clear", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "cookbook cleared", resp.Message)
	assert.Equal(t, 0, b.Len())
}

func TestHandlerMethodNotAllowed(t *testing.T) {
	h := NewHandler(New())

	tests := []struct {
		name      string
		handler   http.HandlerFunc
		method    string
		wantAllow string
	}{
		{"parse rejects GET", h.HandleParse, http.MethodGet, http.MethodPost},
		{"entry rejects DELETE", h.HandleEntry, http.MethodDelete, http.MethodPost},
		{"summary rejects POST", h.HandleSummary, http.MethodPost, http.MethodGet},
		{"clear rejects GET", h.HandleClear, http.MethodGet, http.MethodPost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/test", nil)
			rec := httptest.NewRecorder()
			tt.handler(rec, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))

			var resp map[string]any
			decodeBody(t, rec, &resp)
			assert.Equal(t, "METHOD_NOT_ALLOWED", resp["code"])
		})
	}
}
