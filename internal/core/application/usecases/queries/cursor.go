// Package queries contains read-only operations in the CQRS architecture.
// The order listing runs through the cursor pagination engine; notification
// reads go straight to the database with raw SQL.
package queries

import (
	"encoding/base64"
	"encoding/json"

	"ordertrack/internal/core/domain/model/kernel"
)

// cursorPayload is the JSON form wrapped in base64 to make the cursor opaque.
type cursorPayload struct {
	ID string `json:"id"`
}

// EncodeCursor builds the opaque pagination cursor pointing at the given
// order id: base64 of {"id":"<uuid>"}.
func EncodeCursor(id kernel.UUID) string {
	raw, err := json.Marshal(cursorPayload{ID: id.String()})
	if err != nil {
		// a cursorPayload cannot fail to marshal
		return ""
	}
	return base64.StdEncoding.EncodeToString(raw)
}

// DecodeCursor parses an opaque cursor back into the order id it points at.
// Malformed input of any kind (bad base64, bad JSON, bad UUID) reports ok as
// false; callers treat that as "no cursor" and start from the beginning.
func DecodeCursor(cursor string) (kernel.UUID, bool) {
	if cursor == "" {
		return kernel.UUID{}, false
	}

	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return kernel.UUID{}, false
	}

	var payload cursorPayload
	if err = json.Unmarshal(raw, &payload); err != nil {
		return kernel.UUID{}, false
	}

	id, err := kernel.UUIDFromString(payload.ID)
	if err != nil {
		return kernel.UUID{}, false
	}

	return id, true
}
