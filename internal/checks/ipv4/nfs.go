package ipv4

import "ScoringEngine/internal/checks"

var NFS = &checks.Definition{
	Name:               "NFSCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"remotefilepath", "filecontents"},
	Template:           "nfs_check {0} {1} {2}",
	Format: func(t *checks.Target) ([]any, error) {
		return withProperties(t, []any{t.Host}, "remotefilepath", "filecontents")
	},
}
