package checks

import (
	"io"
	"log/slog"
	"testing"

	"ScoringEngine/internal/engine/models"

	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	registry := NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, registry.Register(loginDefinition))
	return registry
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := newTestRegistry(t)

	dup := *loginDefinition
	dup.Protocol = "other"
	err := registry.Register(&dup)
	require.ErrorIs(t, err, ErrDuplicateCheck)
	require.Equal(t, 1, registry.Len())
}

func TestRegistryLookup(t *testing.T) {
	registry := newTestRegistry(t)

	def, err := registry.Lookup("LoginCheck")
	require.NoError(t, err)
	require.Same(t, loginDefinition, def)

	_, err = registry.Lookup("GopherCheck")
	require.ErrorIs(t, err, ErrCheckNotFound)
}

func TestRegistryBind(t *testing.T) {
	registry := newTestRegistry(t)
	service := testService(models.Account{Username: "u", Password: "p"})

	check, err := registry.Bind(service, testEnvironment(models.Property{Name: "commands", Value: "id"}), seeded())
	require.NoError(t, err)

	cmd, err := check.Command()
	require.NoError(t, err)
	require.Equal(t, "login_check 10.0.0.5 22 u p id", cmd)

	service.CheckName = "GopherCheck"
	_, err = registry.Bind(service, testEnvironment(), seeded())
	require.ErrorIs(t, err, ErrCheckNotFound)
}

func TestRegistryVerify(t *testing.T) {
	registry := newTestRegistry(t)

	good := testService()
	bad := testService()
	bad.Name = "Gopher"
	bad.CheckName = "GopherCheck"

	require.NoError(t, registry.Verify([]*models.Service{good}))

	err := registry.Verify([]*models.Service{good, bad})
	require.ErrorIs(t, err, ErrCheckNotFound)
	require.Contains(t, err.Error(), "Team 1 - Gopher")
}

func TestRegistryNamesSorted(t *testing.T) {
	registry := newTestRegistry(t)
	require.NoError(t, registry.Register(&Definition{Name: "AlphaCheck", Template: "true"}))

	require.Equal(t, []string{"AlphaCheck", "LoginCheck"}, registry.Names())
}
