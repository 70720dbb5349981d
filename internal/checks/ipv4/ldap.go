package ipv4

import (
	"strconv"

	"ScoringEngine/internal/checks"
)

// LDAP binds as user@domain and searches base_dn for user objects.
var LDAP = &checks.Definition{
	Name:               "LDAPCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"domain", "base_dn"},
	Template:           "ldapsearch -x -H {0} -D {1} -w {2} -b {3} '(objectclass=User)' cn",
	Format: func(t *checks.Target) ([]any, error) {
		account, err := t.RandomAccount()
		if err != nil {
			return nil, err
		}
		domain, err := t.Property("domain")
		if err != nil {
			return nil, err
		}
		baseDN, err := t.Property("base_dn")
		if err != nil {
			return nil, err
		}

		uri := "ldap://" + t.Host + ":" + strconv.Itoa(t.Port)
		return []any{uri, account.Username + "@" + domain, account.Password, baseDN}, nil
	},
}
