package entity

const (
	EventMarkerUpsert = "marker:upsert"
	EventMarkerDelete = "marker:delete"
)

// MarkerEvent - change notification pushed to map clients.
type MarkerEvent struct {
	Type         string  `json:"type"`
	GameCenterID string  `json:"game_center_id"`
	Marker       *Marker `json:"marker,omitempty"`
}
