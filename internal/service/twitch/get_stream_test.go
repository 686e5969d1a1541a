package twitch_service

import (
	"context"
	"testing"
	"twitch_status_relay/internal/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokens struct {
	token       string
	err         error
	calls       int
	invalidated []string
}

func (f *fakeTokens) GetToken(ctx context.Context) (string, error) {
	f.calls++
	return f.token, f.err
}

func (f *fakeTokens) Invalidate(token string) {
	f.invalidated = append(f.invalidated, token)
}

type fakeStreams struct {
	body  string
	err   error
	token string
	login string
}

func (f *fakeStreams) GetActiveStreamInfoByUser(ctx context.Context, token, login string) (*models.Streams, error) {
	f.token, f.login = token, login
	if f.err != nil {
		return nil, f.err
	}

	var streams models.Streams
	if err := jsoniter.UnmarshalFromString(f.body, &streams); err != nil {
		return nil, err
	}
	streams.Raw = jsoniter.RawMessage(f.body)

	return &streams, nil
}

func TestGetChannelStatus_MissingLogin(t *testing.T) {
	tokens := &fakeTokens{token: "t"}
	tws := NewService(&fakeStreams{}, tokens)

	_, err := tws.GetChannelStatus(context.Background(), "")
	assert.True(t, errors.Is(err, models.ErrMissingUserLogin))
	assert.Zero(t, tokens.calls)
}

func TestGetChannelStatus_WhitespaceLoginIsForwarded(t *testing.T) {
	streams := &fakeStreams{body: `{"data":[]}`}
	tws := NewService(streams, &fakeTokens{token: "t"})

	status, err := tws.GetChannelStatus(context.Background(), "  ")
	require.NoError(t, err)

	assert.Equal(t, "  ", streams.login)
	assert.False(t, status.Online)
}

func TestGetChannelStatus_Offline(t *testing.T) {
	streams := &fakeStreams{body: `{"data":[],"pagination":{}}`}
	tws := NewService(streams, &fakeTokens{token: "app-token"})

	status, err := tws.GetChannelStatus(context.Background(), "example")
	require.NoError(t, err)

	assert.Equal(t, "app-token", streams.token)
	assert.Equal(t, "example", streams.login)
	assert.False(t, status.Online)
	assert.Nil(t, status.Title)
	assert.JSONEq(t, `{"data":[],"pagination":{}}`, string(status.Raw))
}

func TestGetChannelStatus_Online(t *testing.T) {
	streams := &fakeStreams{body: `{"data":[{"title":"speedrun","viewer_count":1200,"game_id":"33214"},{"title":"ignored"}]}`}
	tws := NewService(streams, &fakeTokens{token: "app-token"})

	status, err := tws.GetChannelStatus(context.Background(), "example")
	require.NoError(t, err)

	assert.True(t, status.Online)
	require.NotNil(t, status.Title)
	assert.Equal(t, "speedrun", *status.Title)
	require.NotNil(t, status.ViewerCount)
	assert.Equal(t, uint64(1200), *status.ViewerCount)
	assert.Nil(t, status.StartedAt)
}

func TestGetChannelStatus_AuthErrorPropagates(t *testing.T) {
	tokens := &fakeTokens{err: &models.AuthError{StatusCode: 400, Body: "bad"}}
	streams := &fakeStreams{}
	tws := NewService(streams, tokens)

	_, err := tws.GetChannelStatus(context.Background(), "example")
	require.Error(t, err)

	var authErr *models.AuthError
	assert.True(t, errors.As(err, &authErr))
	assert.Contains(t, err.Error(), "400")
	assert.Empty(t, streams.login)
}

func TestGetChannelStatus_UnauthorizedInvalidatesToken(t *testing.T) {
	tokens := &fakeTokens{token: "stale"}
	tws := NewService(&fakeStreams{err: &models.UpstreamError{StatusCode: 401, Body: "{}"}}, tokens)

	_, err := tws.GetChannelStatus(context.Background(), "example")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "401")
	assert.Equal(t, []string{"stale"}, tokens.invalidated)
}

func TestGetChannelStatus_ServerErrorKeepsToken(t *testing.T) {
	tokens := &fakeTokens{token: "fine"}
	tws := NewService(&fakeStreams{err: &models.UpstreamError{StatusCode: 503, Body: "down"}}, tokens)

	_, err := tws.GetChannelStatus(context.Background(), "example")

	var upstreamErr *models.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, 503, upstreamErr.StatusCode)
	assert.Empty(t, tokens.invalidated)
}
