package ipv4

import "ScoringEngine/internal/checks"

// SMB downloads file from share and compares it against hash.
var SMB = &checks.Definition{
	Name:               "SMBCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"remote_name", "share", "file", "hash"},
	Template: "smb_check --host {0} --port {1} --user {2} --pass {3} " +
		"--remote-name {4} --share {5} --file {6} --hash {7}",
	Format: func(t *checks.Target) ([]any, error) {
		args, err := credentialArgs(t)
		if err != nil {
			return nil, err
		}
		return withProperties(t, args, "remote_name", "share", "file", "hash")
	},
}
