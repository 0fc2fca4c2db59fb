package middleware

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-pathway/pathway"
	"github.com/go-pathway/pathway/observability"
)

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	t.Parallel()

	var seen string
	inner := &stubService{
		ready: true,
		call: func(ctx context.Context, _ *pathway.Request) (*pathway.Response, error) {
			seen = observability.RequestIDFromContext(ctx)
			return pathway.TextResponse(200, "ok"), nil
		},
	}

	svc := RequestID()(inner)

	resp, err := svc.Call(context.Background(), testRequest())
	require.NoError(t, err)

	require.NotEmpty(t, seen)
	_, err = uuid.Parse(seen)
	assert.NoError(t, err, "generated ID is a UUID")
	assert.Equal(t, seen, resp.Header.Get(RequestIDHeader))
}

func TestRequestID_KeepsExisting(t *testing.T) {
	t.Parallel()

	var seen string
	inner := &stubService{
		ready: true,
		call: func(ctx context.Context, _ *pathway.Request) (*pathway.Response, error) {
			seen = observability.RequestIDFromContext(ctx)
			return pathway.TextResponse(200, "ok"), nil
		},
	}

	svc := RequestID()(inner)

	req := testRequest()
	req.Header.Set(RequestIDHeader, "client-supplied-id")

	resp, err := svc.Call(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "client-supplied-id", seen)
	assert.Equal(t, "client-supplied-id", resp.Header.Get(RequestIDHeader))
}

func TestRequestIDWithGenerator(t *testing.T) {
	t.Parallel()

	svc := RequestIDWithGenerator(func() string { return "fixed-id" })(okService("ok"))

	resp, err := svc.Call(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", resp.Header.Get(RequestIDHeader))
}

func TestRequestID_ErrorLeavesNoHeader(t *testing.T) {
	t.Parallel()

	svc := RequestID()(errService(assert.AnError))

	resp, err := svc.Call(context.Background(), testRequest())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, resp)
}
