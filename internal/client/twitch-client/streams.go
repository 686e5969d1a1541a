package twitch_client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"twitch_status_relay/internal/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// GetActiveStreamInfoByUser queries helix/streams for a single login.
// An offline channel comes back as an empty data list.
func (twc *TwitchClient) GetActiveStreamInfoByUser(ctx context.Context, token, login string) (data *models.Streams, err error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, twc.apiSchemeHost+"/helix/streams", nil)
	if err != nil {
		return
	}

	query := req.URL.Query()
	query.Add("user_login", login)
	req.URL.RawQuery = query.Encode()

	req.Header.Add("Client-Id", twc.clientID)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := twc.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "streams request")
	}

	defer resp.Body.Close()

	readedResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read streams response")
	}

	if !models.IsSuccessStatus(resp.StatusCode) {
		return nil, &models.UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       string(readedResp),
		}
	}

	var streamsInfo models.Streams
	err = jsoniter.Unmarshal(readedResp, &streamsInfo)
	if err != nil {
		return nil, errors.Wrap(err, "decode streams response")
	}

	streamsInfo.Raw = jsoniter.RawMessage(readedResp)

	data = &streamsInfo

	return
}
