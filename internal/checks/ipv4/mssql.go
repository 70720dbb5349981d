package ipv4

import "ScoringEngine/internal/checks"

var MSSQL = &checks.Definition{
	Name:               "MSSQLCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"database", "command"},
	Template:           "/opt/mssql-tools/bin/sqlcmd -S {0},{1} -U {2} -P {3} -d {4} -Q {5}",
	Format: func(t *checks.Target) ([]any, error) {
		args, err := credentialArgs(t)
		if err != nil {
			return nil, err
		}
		return withProperties(t, args, "database", "command")
	},
}
