package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leo-Expose/PokeBase/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "pokemon not found")
	require.NotNil(t, err)
	assert.Equal(t, errors.CodeNotFound, err.Code)
	assert.Equal(t, "pokemon not found", err.Message)
	assert.Equal(t, "NOT_FOUND: pokemon not found", err.Error())
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := errors.NotFound("no such form")
	wrapped := errors.Wrap(inner, "failed to compose entry")

	assert.Equal(t, errors.CodeNotFound, wrapped.Code)
	assert.True(t, errors.IsNotFound(wrapped))
	assert.True(t, stderrors.Is(wrapped, inner))
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(inner, "failed to fetch stats")

	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "irrelevant"))
}

func TestWrapWithCode(t *testing.T) {
	inner := fmt.Errorf("sql: no rows in result set")
	wrapped := errors.WrapWithCode(inner, errors.CodeNotFound, "species not found")

	assert.Equal(t, errors.CodeNotFound, wrapped.Code)
	assert.True(t, errors.IsNotFound(wrapped))
}

func TestWithMeta(t *testing.T) {
	err := errors.NotFound("pokemon not found").
		WithMeta("identifier", "qwertyzzz")

	assert.Equal(t, "qwertyzzz", err.Meta["identifier"])
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	assert.Equal(t, errors.CodeUnavailable, errors.GetCode(errors.Unavailable("store down")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.CodeOK, http.StatusOK},
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.CodeUnavailable, http.StatusServiceUnavailable},
		{errors.Code("BOGUS"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.HTTPStatus(), "code %s", tt.code)
	}
}
