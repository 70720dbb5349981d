package ipv4

import "ScoringEngine/internal/checks"

var OpenVPN = &checks.Definition{
	Name:               "OpenVPNCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"ca"},
	Template:           "openvpn_check {0} {1} {2} {3} {4}",
	Format: func(t *checks.Target) ([]any, error) {
		args, err := credentialArgs(t)
		if err != nil {
			return nil, err
		}
		return withProperties(t, args, "ca")
	},
}
