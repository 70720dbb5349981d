package ipv4

import "ScoringEngine/internal/checks"

// SMTP sends a message from the selected account to touser.
var SMTP = &checks.Definition{
	Name:               "SMTPCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"touser", "subject", "body"},
	Template:           "smtp_check {0} {1} {2} {3} {4} {5} {6} {7}",
	Format: func(t *checks.Target) ([]any, error) {
		account, err := t.RandomAccount()
		if err != nil {
			return nil, err
		}
		args, err := withProperties(t, []any{account.Username, account.Password, account.Username}, "touser", "subject", "body")
		if err != nil {
			return nil, err
		}
		return append(args, t.Host, t.Port), nil
	},
}
