package ipv4

import "ScoringEngine/internal/checks"

var VNC = &checks.Definition{
	Name:     "VNCCheck",
	Protocol: Protocol,
	Template: "medusa -R 1 -h {0} -n {1} -u {2} -p {3} -M vnc",
	Format:   credentialArgs,
}
