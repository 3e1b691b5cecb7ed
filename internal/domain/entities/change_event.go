package entities

import "time"

// ChangeOperation identifies the mutation that produced a ChangeEvent.
type ChangeOperation string

const (
	ChangeOperationCreate ChangeOperation = "CREATE"
	ChangeOperationUpdate ChangeOperation = "UPDATE"
)

// ChangeEvent is the envelope published to the notification topic after a
// successful create/update. It is ephemeral: the subscriber only logs it,
// nothing treats it as a system of record.
//
// Timestamp is the publish-call time, distinct from the item's own
// created_at/updated_at.
type ChangeEvent struct {
	Operation ChangeOperation `json:"operation"`
	Timestamp time.Time       `json:"timestamp"`
	Item      Part            `json:"item"`
}
