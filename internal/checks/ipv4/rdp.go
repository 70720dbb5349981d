package ipv4

import "ScoringEngine/internal/checks"

var RDP = &checks.Definition{
	Name:     "RDPCheck",
	Protocol: Protocol,
	Template: "xfreerdp /cert:ignore +auth-only /u:{0} /p:{1} /v:{2}:{3}",
	Format: func(t *checks.Target) ([]any, error) {
		account, err := t.RandomAccount()
		if err != nil {
			return nil, err
		}
		return []any{account.Username, account.Password, t.Host, t.Port}, nil
	},
}
