package pathway

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationError_Error(t *testing.T) {
	t.Parallel()

	err := &ConfigurationError{Method: http.MethodGet, Pattern: "/a/*rest/b", Reason: "wildcard must be the final segment"}
	assert.Equal(t, `invalid route GET "/a/*rest/b": wildcard must be the final segment`, err.Error())

	// Before the router stamps the method, only the pattern is known.
	err = newConfigurationError("/a/*rest/b", "wildcard must be the final segment")
	assert.Equal(t, `invalid route pattern "/a/*rest/b": wildcard must be the final segment`, err.Error())
}

func TestConfigurationError_Is(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("loading routes: %w", newConfigurationError("/x", "bad"))
	assert.ErrorIs(t, wrapped, &ConfigurationError{})

	var cfgErr *ConfigurationError
	require.ErrorAs(t, wrapped, &cfgErr)
	assert.Equal(t, "/x", cfgErr.Pattern)

	assert.NotErrorIs(t, wrapped, ErrFrozen)
	assert.NotErrorIs(t, errors.New("other"), &ConfigurationError{})
}

func TestErrFrozen_Wrapped(t *testing.T) {
	t.Parallel()

	r := New()
	r.Freeze()

	err := r.Get("/late", echoHandler("late"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFrozen)
	assert.Contains(t, err.Error(), "GET /late")
}
