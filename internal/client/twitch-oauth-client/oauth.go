package twitch_oauth_client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"twitch_status_relay/internal/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// TwitchOAuthGetToken exchanges the client id and secret for an app access token.
func (twc *TwitchOauthClient) TwitchOAuthGetToken(ctx context.Context) (data *models.TwitchOAuthGetTokenResponse, err error) {

	form := url.Values{}
	form.Set("client_id", twc.clientID)
	form.Set("client_secret", twc.clientSecret)
	form.Set("grant_type", models.ClientCredentialsGrant)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, twc.idSchemeHost+"/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	resp, err := twc.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "token request")
	}

	defer resp.Body.Close()

	readedResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read token response")
	}

	if !models.IsSuccessStatus(resp.StatusCode) {
		return nil, &models.AuthError{
			StatusCode: resp.StatusCode,
			Body:       string(readedResp),
		}
	}

	var tokenInfo models.TwitchOAuthGetTokenResponse
	err = jsoniter.Unmarshal(readedResp, &tokenInfo)
	if err != nil {
		return nil, errors.Wrap(err, "decode token response")
	}

	if tokenInfo.AccessToken == "" {
		return nil, errors.New("empty access token in response")
	}

	if tokenInfo.ExpiresIn <= 0 {
		return nil, errors.Errorf("invalid token lifetime: %d", tokenInfo.ExpiresIn)
	}

	if tokenInfo.ExpiresIn > models.MaxTokenLifetime {
		tokenInfo.ExpiresIn = models.MaxTokenLifetime
	}

	data = &tokenInfo

	return
}
