package twitch_handler

import (
	"context"
	"twitch_status_relay/internal/models"
)

type StatusService interface {
	GetChannelStatus(ctx context.Context, login string) (*models.ChannelStatus, error)
}

type TwitchHandler struct {
	twitchService StatusService
}

func NewTwitchHandler(twitchService StatusService) *TwitchHandler {
	return &TwitchHandler{
		twitchService: twitchService,
	}
}
