package ipv4

import "ScoringEngine/internal/checks"

var SMTPS = &checks.Definition{
	Name:               "SMTPSCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"fromuser", "touser", "subject", "body"},
	Template:           "smtps_check {0} {1} {2} {3} {4} {5} {6} {7}",
	Format: func(t *checks.Target) ([]any, error) {
		account, err := t.RandomAccount()
		if err != nil {
			return nil, err
		}
		args, err := withProperties(t, []any{account.Username, account.Password}, "fromuser", "touser", "subject", "body")
		if err != nil {
			return nil, err
		}
		return append(args, t.Host, t.Port), nil
	},
}
