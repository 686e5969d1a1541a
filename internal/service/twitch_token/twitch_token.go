package twitch_token

import (
	"context"
	"sync"
	"time"
	"twitch_status_relay/internal/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	twitchTokenCheckBGSync = "twitchTokenCheck_BGSync"

	// token is refreshed this long before it actually expires
	ExpirySafetyMargin = 60 * time.Second

	refreshKey = "app_token"
)

type TokenFetcher interface {
	TwitchOAuthGetToken(ctx context.Context) (*models.TwitchOAuthGetTokenResponse, error)
}

// TwitchTokenService keeps the app access token in memory and refreshes it
// lazily. Concurrent refreshes share one request to the token endpoint.
type TwitchTokenService struct {
	twitchOauthClient TokenFetcher
	now               func() time.Time

	mu        sync.RWMutex
	token     string
	expiresAt time.Time

	group singleflight.Group
}

type Option func(*TwitchTokenService)

func WithClock(now func() time.Time) Option {
	return func(tts *TwitchTokenService) {
		tts.now = now
	}
}

func NewTwitchTokenService(twitchOauthClient TokenFetcher, opts ...Option) *TwitchTokenService {
	service := &TwitchTokenService{
		twitchOauthClient: twitchOauthClient,
		now:               time.Now,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

// GetToken returns the cached token while it is outside the safety margin,
// otherwise fetches a new one.
func (tts *TwitchTokenService) GetToken(ctx context.Context) (string, error) {
	return tts.getToken(ctx, 0)
}

// getToken treats the token as stale lead earlier than GetToken does.
func (tts *TwitchTokenService) getToken(ctx context.Context, lead time.Duration) (string, error) {
	if token, ok := tts.cached(lead); ok {
		return token, nil
	}

	res, err, _ := tts.group.Do(refreshKey, func() (interface{}, error) {
		if token, ok := tts.cached(lead); ok {
			return token, nil
		}

		// shared by every waiter, so one caller going away must not cancel it
		return tts.updateToken(context.WithoutCancel(ctx))
	})
	if err != nil {
		return "", err
	}

	return res.(string), nil
}

// ExpiresAt returns the expiry of the cached token, zero if there is none.
func (tts *TwitchTokenService) ExpiresAt() time.Time {
	tts.mu.RLock()
	defer tts.mu.RUnlock()

	return tts.expiresAt
}

// Invalidate drops the cached token if it is still the rejected one,
// so a late rejection of an old token keeps a fresh one in place.
func (tts *TwitchTokenService) Invalidate(token string) {
	tts.mu.Lock()
	defer tts.mu.Unlock()

	if token == "" || tts.token != token {
		return
	}

	tts.token = ""
	tts.expiresAt = time.Time{}
}

func (tts *TwitchTokenService) cached(lead time.Duration) (string, bool) {
	tts.mu.RLock()
	defer tts.mu.RUnlock()

	if tts.token == "" {
		return "", false
	}

	if !tts.now().Before(tts.expiresAt.Add(-ExpirySafetyMargin - lead)) {
		return "", false
	}

	return tts.token, true
}

func (tts *TwitchTokenService) updateToken(ctx context.Context) (string, error) {
	tokenInfo, err := tts.twitchOauthClient.TwitchOAuthGetToken(ctx)
	if err != nil {
		return "", errors.Wrap(err, "TwitchOAuthGetToken")
	}

	if tokenInfo == nil {
		return "", errors.Wrap(errors.New("empty client resp"), "TwitchOAuthGetToken")
	}

	expiresAt := tts.now().Add(time.Duration(tokenInfo.ExpiresIn) * time.Second)

	tts.mu.Lock()
	tts.token = tokenInfo.AccessToken
	tts.expiresAt = expiresAt
	tts.mu.Unlock()

	logrus.WithField("expires_at", expiresAt.UTC().Format(time.RFC3339)).Debug("twitch app token refreshed")

	return tokenInfo.AccessToken, nil
}

// SyncBg keeps the token warm so that requests rarely wait on the token endpoint.
// A token that would go stale before the next tick is refreshed now.
func (tts *TwitchTokenService) SyncBg(ctx context.Context, updateInterval time.Duration) {
	ticker := time.NewTicker(updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Infof("stoping bg %s process", twitchTokenCheckBGSync)
			return
		case <-ticker.C:
			logrus.Debugf("started bg %s process", twitchTokenCheckBGSync)
			err := tts.sync(ctx, updateInterval)
			if err != nil {
				logrus.Errorf("could not check twitch token: %v", err)
				continue
			}
			logrus.Debug("twitch token check was completed")
		}
	}
}

func (tts *TwitchTokenService) sync(ctx context.Context, updateInterval time.Duration) error {
	_, err := tts.getToken(ctx, updateInterval)
	return err
}
