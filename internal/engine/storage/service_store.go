package storage

import (
	"context"
	"fmt"

	"ScoringEngine/internal/engine/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type serviceStore struct {
	pool *pgxpool.Pool
}

func NewServiceStore(pool *pgxpool.Pool) ServiceStore {
	return &serviceStore{pool: pool}
}

// List returns every service ordered by id, with accounts and environments
// attached. Properties keep their insertion order.
func (s *serviceStore) List(ctx context.Context) ([]*models.Service, error) {
	services, byID, err := s.listServices(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.attachAccounts(ctx, byID); err != nil {
		return nil, err
	}

	if err := s.attachEnvironments(ctx, byID); err != nil {
		return nil, err
	}

	return services, nil
}

func (s *serviceStore) listServices(ctx context.Context) ([]*models.Service, map[int64]*models.Service, error) {
	query := `
		SELECT s.id, s.name, s.team_id, t.name, s.check_name, s.host, s.port, s.points
		FROM services s
		JOIN teams t ON t.id = s.team_id
		ORDER BY s.id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("list services: failed to query services: %w", err)
	}
	defer rows.Close()

	var services []*models.Service
	byID := make(map[int64]*models.Service)
	for rows.Next() {
		var service models.Service
		err := rows.Scan(
			&service.ID,
			&service.Name,
			&service.TeamID,
			&service.TeamName,
			&service.CheckName,
			&service.Host,
			&service.Port,
			&service.Points,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("list services: failed to scan row: %w", err)
		}
		services = append(services, &service)
		byID[service.ID] = &service
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("list services: row iteration error: %w", err)
	}

	return services, byID, nil
}

func (s *serviceStore) attachAccounts(ctx context.Context, byID map[int64]*models.Service) error {
	rows, err := s.pool.Query(ctx, `SELECT id, service_id, username, password FROM accounts ORDER BY id`)
	if err != nil {
		return fmt.Errorf("list accounts: failed to query accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			account   models.Account
			serviceID int64
		)
		if err := rows.Scan(&account.ID, &serviceID, &account.Username, &account.Password); err != nil {
			return fmt.Errorf("list accounts: failed to scan row: %w", err)
		}
		if service, ok := byID[serviceID]; ok {
			service.Accounts = append(service.Accounts, account)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("list accounts: row iteration error: %w", err)
	}
	return nil
}

func (s *serviceStore) attachEnvironments(ctx context.Context, byID map[int64]*models.Service) error {
	query := `
		SELECT e.id, e.service_id, e.matching_content, p.name, p.value
		FROM environments e
		LEFT JOIN properties p ON p.environment_id = e.id
		ORDER BY e.id, p.id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("list environments: failed to query environments: %w", err)
	}
	defer rows.Close()

	var current *models.Environment
	for rows.Next() {
		var (
			env       models.Environment
			name, val *string
		)
		if err := rows.Scan(&env.ID, &env.ServiceID, &env.MatchingContent, &name, &val); err != nil {
			return fmt.Errorf("list environments: failed to scan row: %w", err)
		}

		if current == nil || current.ID != env.ID {
			service, ok := byID[env.ServiceID]
			if !ok {
				current = nil
				continue
			}
			service.Environments = append(service.Environments, env)
			current = &service.Environments[len(service.Environments)-1]
		}

		if name != nil && val != nil {
			current.Properties = append(current.Properties, models.Property{Name: *name, Value: *val})
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("list environments: row iteration error: %w", err)
	}
	return nil
}
