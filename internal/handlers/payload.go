package handlers

import (
	"fmt"

	"github.com/phrazzld/taas-events/internal/events"
)

// decodeStatus reads only the status field of payload, so events the handler
// ignores are never rejected for fields it would not read.
func decodeStatus[S ~string](payload events.Payload, kind string) (S, error) {
	var head struct {
		Status S `json:"status"`
	}
	if err := payload.Decode(&head); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidPayload, kind, err)
	}
	return head.Status, nil
}
