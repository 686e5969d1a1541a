package twitch_service

import (
	"context"
	"net/http"
	"twitch_status_relay/internal/models"

	"github.com/pkg/errors"
)

func (tws *TwitchService) GetChannelStatus(ctx context.Context, login string) (*models.ChannelStatus, error) {
	if login == "" {
		return nil, models.ErrMissingUserLogin
	}

	token, err := tws.tokenProvider.GetToken(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "GetToken")
	}

	streamInfo, err := tws.twitchClient.GetActiveStreamInfoByUser(ctx, token, login)
	if err != nil {
		var upstreamErr *models.UpstreamError
		if errors.As(err, &upstreamErr) && upstreamErr.StatusCode == http.StatusUnauthorized {
			// revoked or expired early, next request gets a fresh one
			tws.tokenProvider.Invalidate(token)
		}

		return nil, errors.Wrap(err, "GetActiveStreamInfoByUser")
	}

	if streamInfo == nil {
		return nil, errors.New("empty response struct")
	}

	return models.NewChannelStatus(streamInfo), nil
}
