package checks

import (
	"errors"
	"fmt"
)

var (
	ErrCheckNotFound    = errors.New("check not found")
	ErrDuplicateCheck   = errors.New("check already registered")
	ErrPropertyNotFound = errors.New("property not found")
	ErrNoAccounts       = errors.New("service has no accounts")
	ErrNoEnvironments   = errors.New("service has no environments")
)

// ConfigurationError reports an environment whose properties do not fit the
// check. It is a data-entry problem and is never retried.
type ConfigurationError struct {
	Check         string
	EnvironmentID int64
	Expected      int
	Got           int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("check %s: environment %d has %d properties, expected %d",
		e.Check, e.EnvironmentID, e.Got, e.Expected)
}
