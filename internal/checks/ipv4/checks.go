// Package ipv4 holds checks that talk to a service directly by address.
package ipv4

import "ScoringEngine/internal/checks"

const Protocol = "ipv4"

// Checks lists every check of the ipv4 protocol.
func Checks() []*checks.Definition {
	return []*checks.Definition{
		DNS,
		FTP,
		ICMP,
		IMAP,
		LDAP,
		MSSQL,
		MySQL,
		NFS,
		OpenVPN,
		POP3,
		PostgreSQL,
		RDP,
		SMB,
		SMTP,
		SMTPS,
		SSH,
		TCP,
		Telnet,
		VNC,
		WinRM,
	}
}

// credentialArgs returns host, port, username and password, the prefix most
// authenticated checks share.
func credentialArgs(t *checks.Target) ([]any, error) {
	account, err := t.RandomAccount()
	if err != nil {
		return nil, err
	}
	return []any{t.Host, t.Port, account.Username, account.Password}, nil
}

// withProperties appends the named property values to args.
func withProperties(t *checks.Target, args []any, names ...string) ([]any, error) {
	values, err := t.Values(names...)
	if err != nil {
		return nil, err
	}
	return append(args, values...), nil
}
