package activity

import "time"

// Event kinds recorded by the services.
const (
	KindUpload   = "upload"
	KindDelete   = "delete"
	KindRecovery = "recovery"
	KindSave     = "save"
	KindDrift    = "drift"
)

// Event is one row of the activity feed.
type Event struct {
	ID        string
	Kind      string
	EntryID   string
	Detail    string
	CreatedAt time.Time
}
