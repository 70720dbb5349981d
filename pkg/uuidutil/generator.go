package uuidutil

import (
	"os"

	"github.com/google/uuid"
)

func New() string {
	return uuid.New().String()
}

// NewWorkerID returns "<hostname>-<first uuid block>", unique enough to tell
// worker loops on different hosts apart in logs.
func NewWorkerID() string {
	short := New()[:8]
	host, err := os.Hostname()
	if err != nil || host == "" {
		return short
	}
	return host + "-" + short
}
