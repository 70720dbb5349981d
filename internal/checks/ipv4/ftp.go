package ipv4

import "ScoringEngine/internal/checks"

var FTP = &checks.Definition{
	Name:               "FTPCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"remotefilepath", "filecontents"},
	Template:           "ftp_check {0} {1} {2} {3} {4} {5}",
	Format: func(t *checks.Target) ([]any, error) {
		args, err := credentialArgs(t)
		if err != nil {
			return nil, err
		}
		return withProperties(t, args, "remotefilepath", "filecontents")
	},
}
