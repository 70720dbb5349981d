package ipv4

import "ScoringEngine/internal/checks"

var MySQL = &checks.Definition{
	Name:               "MySQLCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"database", "command"},
	Template:           "mysql -h {0} -P {1} -u {2} -p{3} {4} -e {5}",
	Format: func(t *checks.Target) ([]any, error) {
		args, err := credentialArgs(t)
		if err != nil {
			return nil, err
		}
		return withProperties(t, args, "database", "command")
	},
}
