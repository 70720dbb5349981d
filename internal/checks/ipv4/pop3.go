package ipv4

import "ScoringEngine/internal/checks"

var POP3 = &checks.Definition{
	Name:               "POP3Check",
	Protocol:           Protocol,
	RequiredProperties: []string{"domain"},
	Template:           "medusa -R 1 -h {0} -n {1} -u {2} -p {3} -M pop3",
	Format: func(t *checks.Target) ([]any, error) {
		account, err := t.RandomAccount()
		if err != nil {
			return nil, err
		}
		domain, err := t.Property("domain")
		if err != nil {
			return nil, err
		}
		return []any{t.Host, t.Port, account.Username + "@" + domain, account.Password}, nil
	},
}
