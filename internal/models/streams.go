package models

import jsoniter "github.com/json-iterator/go"

type Streams struct {
	StreamInfo []Stream `json:"data"`

	Raw jsoniter.RawMessage `json:"-"` // upstream body as received
}

// Stream holds only the helix/streams fields copied into ChannelStatus.
// Everything else stays untyped in Streams.Raw.
type Stream struct {
	GameId       *string `json:"game_id"`       // ID of the game being played on the stream
	Title        *string `json:"title"`         // Stream title
	ViewerCount  *uint64 `json:"viewer_count"`  // Number of viewers watching the stream at the time of the query
	StartedAt    *string `json:"started_at"`    // UTC timestamp, passed through as is
	ThumbnailUrl *string `json:"thumbnail_url"` // Replace {width} and {height} with any values to get that size image
}
