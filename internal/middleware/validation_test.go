package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "scpulse/internal/errors"
	"scpulse/internal/shared/testutil"
	v1 "scpulse/pkg/contracts/api/v1"
)

func TestValidator_DecodeJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"valid", `{"question":"What is our revenue?"}`, 0, ""},
		{"empty body", ``, http.StatusBadRequest, apierrors.CodeInvalidRequest},
		{"malformed", `{"question":`, http.StatusBadRequest, apierrors.CodeInvalidRequest},
		{"unknown field", `{"question":"hi","extra":1}`, http.StatusBadRequest, apierrors.CodeInvalidRequest},
		{"trailing object", `{"question":"hi"}{"question":"again"}`, http.StatusBadRequest, apierrors.CodeInvalidRequest},
		{"missing question", `{}`, http.StatusBadRequest, apierrors.CodeValidationFailed},
		{"blank question", `{"question":"   "}`, http.StatusBadRequest, apierrors.CodeValidationFailed},
		{"too long", `{"question":"` + strings.Repeat("a", 501) + `"}`, http.StatusBadRequest, apierrors.CodeValidationFailed},
		{"too large", `{"question":"` + strings.Repeat("a", 2048) + `"}`, http.StatusRequestEntityTooLarge, apierrors.CodePayloadTooLarge},
	}

	logger, _ := testutil.NewTestLogger(t)
	v := NewValidator(1024, logger)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/ai-query", strings.NewReader(tt.body))
			var dst v1.AIQueryRequest

			err := v.DecodeJSON(httptest.NewRecorder(), req, &dst)
			if tt.wantStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, "What is our revenue?", dst.Question)
				return
			}

			var apiErr *apierrors.APIError
			require.True(t, errors.As(err, &apiErr), "got %v", err)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.ErrorCode)
		})
	}
}

func TestNewValidator_RegistersNotBlank(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)

	var v *Validator
	require.NotPanics(t, func() { v = NewValidator(1024, logger) })

	err := v.ValidateStruct(&v1.AIQueryRequest{Question: " \t\n "})
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr), "got %v", err)
	assert.Equal(t, apierrors.CodeValidationFailed, apiErr.ErrorCode)

	assert.NoError(t, v.ValidateStruct(&v1.AIQueryRequest{Question: "revenue?"}))
}

func TestValidator_FieldNamesUseJSONTags(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	v := NewValidator(1024, logger)

	err := v.ValidateStruct(&v1.AIQueryRequest{})
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))

	details, ok := apiErr.Details.(apierrors.ValidationErrors)
	require.True(t, ok)
	require.Len(t, details.Errors, 1)
	assert.Equal(t, "question", details.Errors[0].Field)
	assert.Equal(t, "question is required", details.Errors[0].Message)
}

func TestContentTypeValidator(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	h := ContentTypeValidator(apierrors.NewErrorHandler(logger), "application/json")(http.HandlerFunc(okHandler))

	tests := []struct {
		name        string
		method      string
		contentType string
		want        int
	}{
		{"json", http.MethodPost, "application/json", http.StatusOK},
		{"json with charset", http.MethodPost, "application/json; charset=utf-8", http.StatusOK},
		{"missing", http.MethodPost, "", http.StatusUnsupportedMediaType},
		{"form", http.MethodPost, "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType},
		{"get skips check", http.MethodGet, "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/ai-query", strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
