package ipv4

import "ScoringEngine/internal/checks"

var PostgreSQL = &checks.Definition{
	Name:               "PostgreSQLCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"database", "command"},
	Template:           "PGPASSWORD={0} psql -h {1} -p {2} -U {3} -c {4} {5}",
	Format: func(t *checks.Target) ([]any, error) {
		account, err := t.RandomAccount()
		if err != nil {
			return nil, err
		}
		return withProperties(t, []any{account.Password, t.Host, t.Port, account.Username}, "command", "database")
	},
}
