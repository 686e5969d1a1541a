package twitch_handler

import (
	"github.com/gorilla/mux"
)

func (twh *TwitchHandler) Register(router *mux.Router) {
	router.HandleFunc("/status", twh.GetChannelStatus).Methods("GET")
	router.HandleFunc("/twitch/status", twh.GetChannelStatus).Methods("GET")
	router.HandleFunc("/healthz", twh.Health).Methods("GET")
}
