package ipv4

import "ScoringEngine/internal/checks"

// SSH logs in with a random account and runs the semicolon separated commands.
var SSH = &checks.Definition{
	Name:               "SSHCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"commands"},
	Template:           "ssh_check {0} {1} {2} {3} {4}",
	Format: func(t *checks.Target) ([]any, error) {
		args, err := credentialArgs(t)
		if err != nil {
			return nil, err
		}
		return withProperties(t, args, "commands")
	},
}
