package twitch_client

import (
	"net/http"
	"strings"
)

type TwitchClient struct {
	httpClient    *http.Client
	apiSchemeHost string
	clientID      string
}

func NewTwitchClient(httpClient *http.Client, apiSchemeHost, clientID string) *TwitchClient {
	return &TwitchClient{
		httpClient:    httpClient,
		apiSchemeHost: strings.TrimRight(apiSchemeHost, "/"),
		clientID:      clientID,
	}
}
