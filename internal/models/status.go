package models

import jsoniter "github.com/json-iterator/go"

// ChannelStatus is the relay response for a single channel.
type ChannelStatus struct {
	Online       bool                `json:"online"`
	Title        *string             `json:"title"`
	ViewerCount  *uint64             `json:"viewer_count"`
	StartedAt    *string             `json:"started_at"`
	GameId       *string             `json:"game_id"`
	ThumbnailUrl *string             `json:"thumbnail_url"`
	Raw          jsoniter.RawMessage `json:"raw"`
}

// NewChannelStatus maps the first live record, if any. The rest are ignored.
func NewChannelStatus(streams *Streams) *ChannelStatus {
	status := &ChannelStatus{
		Raw: streams.Raw,
	}

	if len(streams.StreamInfo) == 0 {
		return status
	}

	live := streams.StreamInfo[0]

	status.Online = true
	status.Title = live.Title
	status.ViewerCount = live.ViewerCount
	status.StartedAt = live.StartedAt
	status.GameId = live.GameId
	status.ThumbnailUrl = live.ThumbnailUrl

	return status
}
