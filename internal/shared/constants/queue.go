package constants

const (
	QueueNamespace = "queue"
	QueueQueued    = "queued"
	QueueFinished  = "finished"
)

// ReasonTimedOut is recorded on jobs whose command ran past the check timeout.
const ReasonTimedOut = "Command Timed Out"

// ReasonCommandFailed prefixes the reason of jobs whose command could not be
// started.
const ReasonCommandFailed = "Command Failed"
