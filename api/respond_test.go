package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/studio-landing/errs"
)

func TestWriteErrorWrapsUnexpectedErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	NewResponder(log.Logger).WriteError(rec, errors.New("dial tcp: connection refused"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Error)
	assert.Empty(t, body.Cause)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestWriteErrorHidesCauseOfServerErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	err := errs.NewCatalogLoadError("/etc/studio/projects.yaml", errors.New("permission denied"))
	NewResponder(log.Logger).WriteError(rec, err)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "permission denied")
	assert.NotContains(t, rec.Body.String(), "/etc/studio")
}

func TestWriteErrorKeepsClientErrorDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	NewResponder(log.Logger).WriteError(rec, errs.NewInvalidFieldError("projectID", "must be a positive integer"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "projectID", body.Field)
	assert.Contains(t, body.Details, "must be a positive integer")
}
