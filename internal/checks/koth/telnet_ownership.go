package koth

import "ScoringEngine/internal/checks"

var TelnetOwnership = &checks.Definition{
	Name:               "TelnetOwnershipCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"ownershipfilepath"},
	Template:           "telnet_ownership_check {0} {1} {2} {3} {4}",
	Format:             ownershipArgs,
}
