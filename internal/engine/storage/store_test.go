package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"ScoringEngine/internal/engine/models"
	"ScoringEngine/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// testPool connects to SCORINGENGINE_TEST_DATABASE_URL, applies the schema
// and empties every table. The test is skipped when the variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("SCORINGENGINE_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("SCORINGENGINE_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := Connect(ctx, dsn, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool))
	require.NoError(t, Migrate(ctx, pool))

	_, err = pool.Exec(ctx, `TRUNCATE rounds, properties, environments, accounts, services, teams RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return pool
}

func TestServiceStoreList(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	var teamID, sshID, icmpID, envID int64
	require.NoError(t, pool.QueryRow(ctx, `INSERT INTO teams (name) VALUES ('Team 1') RETURNING id`).Scan(&teamID))
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO services (name, team_id, check_name, host, port) VALUES ('SSH', $1, 'SSHCheck', '10.0.0.5', 22) RETURNING id`,
		teamID).Scan(&sshID))
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO services (name, team_id, check_name, host) VALUES ('ICMP', $1, 'ICMPCheck', '10.0.0.5') RETURNING id`,
		teamID).Scan(&icmpID))

	_, err := pool.Exec(ctx, `INSERT INTO accounts (service_id, username, password) VALUES ($1, 'ttesterson', 'testpass')`, sshID)
	require.NoError(t, err)

	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO environments (service_id, matching_content) VALUES ($1, '^SUCCESS') RETURNING id`,
		sshID).Scan(&envID))
	_, err = pool.Exec(ctx, `INSERT INTO properties (environment_id, name, value) VALUES ($1, 'commands', 'ls -l;id')`, envID)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO environments (service_id, matching_content) VALUES ($1, '1 received')`, icmpID)
	require.NoError(t, err)

	services, err := NewServiceStore(pool).List(ctx)
	require.NoError(t, err)
	require.Len(t, services, 2)

	ssh := services[0]
	require.Equal(t, "Team 1 - SSH", ssh.FullName())
	require.Equal(t, 22, ssh.Port)
	require.Equal(t, []models.Account{{ID: 1, Username: "ttesterson", Password: "testpass"}}, ssh.Accounts)
	require.Len(t, ssh.Environments, 1)
	require.Equal(t, []models.Property{{Name: "commands", Value: "ls -l;id"}}, ssh.Environments[0].Properties)

	icmp := services[1]
	require.Equal(t, "ICMPCheck", icmp.CheckName)
	require.Len(t, icmp.Environments, 1)
	require.Empty(t, icmp.Environments[0].Properties)
}

func TestRoundStore(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	store := NewRoundStore(pool)

	last, err := store.LastRoundNumber(ctx)
	require.NoError(t, err)
	require.Zero(t, last)

	for _, n := range []int{1, 2} {
		require.NoError(t, store.Create(ctx, &models.Round{Number: n, StartedAt: time.Now(), JobCount: 5}))
	}

	last, err = store.LastRoundNumber(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, last)

	require.Error(t, store.Create(ctx, &models.Round{Number: 2, StartedAt: time.Now()}))
}
