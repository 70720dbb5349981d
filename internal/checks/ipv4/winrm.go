package ipv4

import "ScoringEngine/internal/checks"

var WinRM = &checks.Definition{
	Name:               "WinRMCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"commands"},
	Template:           "winrm_check {0} {1} {2} {3}",
	Format: func(t *checks.Target) ([]any, error) {
		account, err := t.RandomAccount()
		if err != nil {
			return nil, err
		}
		return withProperties(t, []any{t.Host, account.Username, account.Password}, "commands")
	},
}
