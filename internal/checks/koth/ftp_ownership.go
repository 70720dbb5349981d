package koth

import "ScoringEngine/internal/checks"

var FTPOwnership = &checks.Definition{
	Name:               "FTPOwnershipCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"ownershipfilepath"},
	Template:           "ftp_ownership_check {0} {1} {2} {3} {4}",
	Format:             ownershipArgs,
}
