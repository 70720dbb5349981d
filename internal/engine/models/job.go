package models

import (
	"errors"
	"fmt"
)

type JobResult string

const (
	JobResultPass JobResult = "Pass"
	JobResultFail JobResult = "Fail"
)

// ServiceReference points a job back at the service and environment it was
// rendered for. Workers carry it through untouched.
type ServiceReference struct {
	ServiceID     int64 `json:"service_id"`
	EnvironmentID int64 `json:"environment_id"`
	TeamID        int64 `json:"team_id"`
	Round         int   `json:"round"`
}

func (r ServiceReference) String() string {
	return fmt.Sprintf("round=%d service=%d environment=%d", r.Round, r.ServiceID, r.EnvironmentID)
}

// Job is one rendered check command and, once a worker ran it, its outcome.
// Optional fields are omitted from the wire record while unset.
type Job struct {
	ServiceReference ServiceReference `json:"service_reference"`
	Command          string           `json:"command"`
	Output           *string          `json:"output,omitempty"`
	Result           JobResult        `json:"result,omitempty"`
	Reason           string           `json:"reason,omitempty"`
	Finished         bool             `json:"finished"`
}

var ErrEmptyCommand = errors.New("job command is empty")

func NewJob(ref ServiceReference, command string) *Job {
	return &Job{
		ServiceReference: ref,
		Command:          command,
	}
}

func (j *Job) Validate() error {
	if j.Command == "" {
		return ErrEmptyCommand
	}
	return nil
}

// SetOutput records command output and leaves Result for the scorer.
func (j *Job) SetOutput(output string) {
	j.Output = &output
	j.Finished = true
}

func (j *Job) SetFail(reason string) {
	j.Result = JobResultFail
	j.Reason = reason
	j.Finished = true
}

func (j *Job) SetPass() {
	j.Result = JobResultPass
	j.Finished = true
}

func (j *Job) Completed() bool {
	return j.Finished
}

func (j *Job) Passed() bool {
	return j.Result == JobResultPass
}

// OutputText returns the captured output or "" when the job produced none.
func (j *Job) OutputText() string {
	if j.Output == nil {
		return ""
	}
	return *j.Output
}
