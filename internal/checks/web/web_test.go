package web_test

import (
	"math/rand/v2"
	"testing"

	"ScoringEngine/internal/checks"
	"ScoringEngine/internal/checks/web"
	"ScoringEngine/internal/engine/models"

	"github.com/stretchr/testify/require"
)

func command(t *testing.T, def *checks.Definition, accounts []models.Account, props ...models.Property) string {
	t.Helper()

	service := &models.Service{ID: 2, Name: "Web", TeamName: "Team 2", CheckName: def.Name, Host: "10.0.0.2", Port: 8080, Accounts: accounts}
	env := &models.Environment{ID: 3, ServiceID: 2, Properties: props}

	check, err := checks.New(def, service, env, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)

	cmd, err := check.Command()
	require.NoError(t, err)
	return cmd
}

func TestHTTPCommand(t *testing.T) {
	cmd := command(t, web.HTTP, nil,
		models.Property{Name: "useragent", Value: "Mozilla/5.0 (compatible)"},
		models.Property{Name: "vhost", Value: "www.example.com"},
		models.Property{Name: "uri", Value: "/index.html"},
	)
	require.Equal(t,
		"curl -s -S -4 -v -L --cookie-jar - --header 'Host: www.example.com' -A 'Mozilla/5.0 (compatible)' http://10.0.0.2:8080/index.html",
		cmd)
}

func TestHTTPLoginPercentEncodesCredentials(t *testing.T) {
	accounts := []models.Account{{Username: "admin", Password: "p&ss word';id"}}

	cmd := command(t, web.HTTPLogin, accounts, models.Property{Name: "uri", Value: "/login"})
	require.Equal(t,
		"curl -s -S -4 -L --cookie-jar - --data 'username=admin&password=p%26ss%20word%27%3Bid' 'http://10.0.0.2:8080/login'",
		cmd)
}

func TestChecksAreWellFormed(t *testing.T) {
	for _, def := range web.Checks() {
		require.Equal(t, web.Protocol, def.Protocol, def.Name)
		require.NotNil(t, def.Format, def.Name)
	}
}
