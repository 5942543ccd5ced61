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

package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	apierrors "github.com/devdonalds/cookbook/pkg/errors"
	"github.com/devdonalds/cookbook/pkg/serializers"
)

// ErrorResponse is the wire shape of every error returned by the API.
type ErrorResponse struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"requestId"`
	Timestamp time.Time              `json:"timestamp"`
	Retryable bool                   `json:"retryable"`
}

// HTTPStatusFromCode maps a structured error code to its HTTP status code.
func HTTPStatusFromCode(code apierrors.ErrorCode) int {
	switch code {
	case apierrors.ErrCodeInvalidInput,
		apierrors.ErrCodeInvalidRequest,
		apierrors.ErrCodeInvalidType,
		apierrors.ErrCodeInvalidField,
		apierrors.ErrCodeDuplicateName,
		apierrors.ErrCodeDuplicateItem,
		apierrors.ErrCodeWrongType,
		apierrors.ErrCodeUnknownItem,
		apierrors.ErrCodeCircularDependency:
		return http.StatusBadRequest
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case apierrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client may retry the failed request
// unchanged and expect a different outcome.
func retryableFromCode(code apierrors.ErrorCode) bool {
	switch code {
	case apierrors.ErrCodeRateLimitExceeded, apierrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails merges two detail maps, the second overwriting the first.
// Returns nil when both are empty so the details field is omitted.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code apierrors.ErrorCode, message string, retryable bool, details map[string]interface{}) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializers.RespondJSON(w, statusCode, errResp)
}

// WriteStructuredError maps a domain error to its HTTP response: the status
// and retryability derive from the error code, the message and context are
// surfaced unchanged. Errors without a StructuredError in their chain are
// reported as internal without exposing their message.
func WriteStructuredError(w http.ResponseWriter, r *http.Request, err error, details map[string]any) {
	var se *apierrors.StructuredError
	if !errors.As(err, &se) {
		WriteError(w, r, http.StatusInternalServerError, apierrors.ErrCodeInternal,
			"Internal server error", true, details)
		return
	}

	WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
		retryableFromCode(se.Code), mergeDetails(se.Context, details))
}
