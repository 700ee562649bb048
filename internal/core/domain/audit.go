package domain

import (
	"strconv"
	"time"

	"github.com/identity-hub/identity-api/pkg/hash"
)

// Audit actions recorded by the user lifecycle.
const (
	ActionUserCreated  = "user_created"
	ActionGuestCreated = "guest_created"
	ActionConfigSaved  = "config_saved"
)

// AuditEvent records a single user lifecycle action.
type AuditEvent struct {
	UserID    string
	Action    string
	Actor     string
	Timestamp time.Time
}

var _ hash.Hashable = AuditEvent{}

// Hash returns a stable content fingerprint of the event, stored alongside
// the record as a tamper-evidence checksum.
func (e AuditEvent) Hash() string {
	return hash.Sum(e.UserID + "|" + e.Action + "|" + e.Actor + "|" + strconv.FormatInt(e.Timestamp.Unix(), 10))
}
