// Package web holds checks issued over HTTP(S).
package web

import (
	"strconv"

	"ScoringEngine/internal/checks"
)

const Protocol = "web"

func Checks() []*checks.Definition {
	return []*checks.Definition{
		Elasticsearch,
		HTTP,
		HTTPLogin,
		HTTPS,
		Wordpress,
	}
}

func hostHeader(t *checks.Target) (string, error) {
	vhost, err := t.Property("vhost")
	if err != nil {
		return "", err
	}
	return "Host: " + vhost, nil
}

func hostPort(t *checks.Target) string {
	return t.Host + ":" + strconv.Itoa(t.Port)
}
