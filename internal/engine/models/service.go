package models

type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Account struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Environment is one parameter set a service is checked against.
// MatchingContent is consumed by the downstream scorer only.
type Environment struct {
	ID              int64      `json:"id"`
	ServiceID       int64      `json:"service_id"`
	MatchingContent string     `json:"matching_content"`
	Properties      []Property `json:"properties"`
}

type Service struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	TeamID       int64         `json:"team_id"`
	TeamName     string        `json:"team_name"`
	CheckName    string        `json:"check_name"`
	Host         string        `json:"host"`
	Port         int           `json:"port"`
	Points       int           `json:"points"`
	Accounts     []Account     `json:"accounts"`
	Environments []Environment `json:"environments"`
}

// FullName returns "team - service", used in logs and round reports
func (s *Service) FullName() string {
	if s.TeamName == "" {
		return s.Name
	}
	return s.TeamName + " - " + s.Name
}
