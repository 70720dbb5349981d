package web

import "ScoringEngine/internal/checks"

// HTTPLogin posts the credentials of a random account to a login form.
// Arguments are percent-encoded, so they are safe both inside the form body
// and on the shell command line.
var HTTPLogin = &checks.Definition{
	Name:               "HTTPLoginCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"uri"},
	Escape:             checks.EscapeURL,
	Template:           "curl -s -S -4 -L --cookie-jar - --data 'username={0}&password={1}' 'http://{2}:{3}{4}'",
	Format: func(t *checks.Target) ([]any, error) {
		account, err := t.RandomAccount()
		if err != nil {
			return nil, err
		}
		uri, err := t.Property("uri")
		if err != nil {
			return nil, err
		}
		return []any{account.Username, account.Password, t.Host, t.Port, uri}, nil
	},
}
