// Package checks turns a service environment into the shell command a worker
// runs against it.
//
// A Definition describes one kind of check: the properties it needs, a
// command template with {0}, {1}, ... placeholders and a Format hook that
// produces the template arguments. Binding a Definition to an Environment
// validates the property set; Command renders the escaped command line.
package checks

import (
	"fmt"
	"math/rand/v2"

	"ScoringEngine/internal/engine/models"
)

// FormatFunc returns the ordered template arguments for one invocation.
type FormatFunc func(t *Target) ([]any, error)

type Definition struct {
	Name               string
	Protocol           string
	RequiredProperties []string
	Template           string
	Escape             Escape
	Format             FormatFunc
}

// Target is what a Format hook sees: the service address, the bound
// property values and the service accounts.
type Target struct {
	Host       string
	Port       int
	Properties map[string]string

	accounts []models.Account
	rnd      *rand.Rand
}

// Property returns the bound value of a required property.
func (t *Target) Property(name string) (string, error) {
	value, ok := t.Properties[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrPropertyNotFound, name)
	}
	return value, nil
}

// Values returns the bound values of names, in order.
func (t *Target) Values(names ...string) ([]any, error) {
	values := make([]any, 0, len(names))
	for _, name := range names {
		value, err := t.Property(name)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// RandomAccount picks one of the service accounts uniformly at random, so
// consecutive rounds exercise different credentials.
func (t *Target) RandomAccount() (models.Account, error) {
	if len(t.accounts) == 0 {
		return models.Account{}, ErrNoAccounts
	}
	return t.accounts[t.rnd.IntN(len(t.accounts))], nil
}

// Check is a Definition bound to exactly one environment.
type Check struct {
	def    *Definition
	target *Target
	envID  int64
}

// New binds def to env. The environment must carry exactly as many
// properties as the definition requires, otherwise a *ConfigurationError is
// returned.
func New(def *Definition, service *models.Service, env *models.Environment, rnd *rand.Rand) (*Check, error) {
	if len(env.Properties) != len(def.RequiredProperties) {
		return nil, &ConfigurationError{
			Check:         def.Name,
			EnvironmentID: env.ID,
			Expected:      len(def.RequiredProperties),
			Got:           len(env.Properties),
		}
	}

	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	properties := make(map[string]string, len(env.Properties))
	for _, prop := range env.Properties {
		properties[prop.Name] = prop.Value
	}

	return &Check{
		def:   def,
		envID: env.ID,
		target: &Target{
			Host:       service.Host,
			Port:       service.Port,
			Properties: properties,
			accounts:   service.Accounts,
			rnd:        rnd,
		},
	}, nil
}

func (c *Check) Name() string {
	return c.def.Name
}

// Command renders the command line for this invocation.
func (c *Check) Command() (string, error) {
	for _, name := range c.def.RequiredProperties {
		if _, err := c.target.Property(name); err != nil {
			return "", fmt.Errorf("check %s, environment %d: %w", c.def.Name, c.envID, err)
		}
	}

	var args []any
	if c.def.Format != nil {
		var err error
		args, err = c.def.Format(c.target)
		if err != nil {
			return "", fmt.Errorf("check %s, environment %d: %w", c.def.Name, c.envID, err)
		}
	}

	cmd, err := Render(c.def.Template, c.def.Escape, args...)
	if err != nil {
		return "", fmt.Errorf("check %s: %w", c.def.Name, err)
	}

	return cmd, nil
}
