package twitch_handler

import (
	"net/http"
	"twitch_status_relay/internal/middleware"
	"twitch_status_relay/internal/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func (twh *TwitchHandler) GetChannelStatus(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()

	login := r.URL.Query().Get("user_login")

	res, err := twh.twitchService.GetChannelStatus(ctx, login)
	if err != nil {
		if errors.Is(err, models.ErrMissingUserLogin) {
			middleware.WriteErrorResponse(w, r, http.StatusBadRequest, models.ErrMissingUserLogin.Error())
			return
		}

		logrus.WithField("user_login", login).Error(err)
		middleware.WriteErrorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.WriteSuccessData(w, r, res)
}

func (twh *TwitchHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.WriteSuccessData(w, r, map[string]string{"status": "ok"})
}
