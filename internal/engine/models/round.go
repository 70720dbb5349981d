package models

import "time"

type Round struct {
	Number    int       `json:"number"`
	StartedAt time.Time `json:"started_at"`
	JobCount  int       `json:"job_count"`
	Skipped   int       `json:"skipped"`
}
