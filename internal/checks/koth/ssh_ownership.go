package koth

import "ScoringEngine/internal/checks"

var SSHOwnership = &checks.Definition{
	Name:               "SSHOwnershipCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"ownershipfilepath"},
	Template:           "ssh_ownership_check {0} {1} {2} {3} {4}",
	Format:             ownershipArgs,
}
