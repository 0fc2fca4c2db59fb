package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-pathway/pathway"
	"github.com/go-pathway/pathway/observability"
)

func TestRecovery_ConvertsPanic(t *testing.T) {
	t.Parallel()

	inner := &stubService{
		ready: true,
		call: func(_ context.Context, _ *pathway.Request) (*pathway.Response, error) {
			panic("corrupted invariant")
		},
	}

	svc := Recovery(observability.NopLogger())(inner)

	resp, err := svc.Call(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.JSONEq(t, `{"error":"internal server error"}`, string(resp.Body))
}

func TestRecovery_PassthroughWithoutPanic(t *testing.T) {
	t.Parallel()

	svc := Recovery(observability.NopLogger())(okService("fine"))

	resp, err := svc.Call(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "fine", string(resp.Body))

	svc = Recovery(observability.NopLogger())(errService(assert.AnError))
	_, err = svc.Call(context.Background(), testRequest())
	assert.ErrorIs(t, err, assert.AnError)
}
