package twitch_oauth_client

import (
	"net/http"
	"strings"
)

type TwitchOauthClient struct {
	httpClient   *http.Client
	idSchemeHost string
	clientID     string
	clientSecret string
}

func NewTwitchOauthClient(
	httpClient *http.Client,
	idSchemeHost, clientID, clientSecret string,
) *TwitchOauthClient {
	return &TwitchOauthClient{
		httpClient:   httpClient,
		idSchemeHost: strings.TrimRight(idSchemeHost, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}
