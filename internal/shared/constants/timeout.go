package constants

import "time"

const (
	CheckTimeout       = 30 * time.Second
	WorkerPollInterval = 5 * time.Second
	QueueOpTimeout     = 5 * time.Second
)
