package twitch_service

import (
	"context"
	"twitch_status_relay/internal/models"
)

type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
	Invalidate(token string)
}

type StreamsClient interface {
	GetActiveStreamInfoByUser(ctx context.Context, token, login string) (*models.Streams, error)
}

type TwitchService struct {
	twitchClient  StreamsClient
	tokenProvider TokenProvider
}

func NewService(twitchClient StreamsClient, tokenProvider TokenProvider) *TwitchService {
	return &TwitchService{
		twitchClient:  twitchClient,
		tokenProvider: tokenProvider,
	}
}
