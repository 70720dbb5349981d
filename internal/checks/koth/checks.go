// Package koth holds King of the Hill checks. They read an ownership file
// from the service and print the owning team's hash for the scorer.
package koth

import "ScoringEngine/internal/checks"

const Protocol = "koth"

func Checks() []*checks.Definition {
	return []*checks.Definition{
		FTPOwnership,
		HTTPOwnership,
		SSHOwnership,
		TelnetOwnership,
	}
}

// ownershipArgs logs in with a random account and points the helper at
// ownershipfilepath.
func ownershipArgs(t *checks.Target) ([]any, error) {
	account, err := t.RandomAccount()
	if err != nil {
		return nil, err
	}
	path, err := t.Property("ownershipfilepath")
	if err != nil {
		return nil, err
	}
	return []any{t.Host, t.Port, account.Username, account.Password, path}, nil
}
