package ipv4

import (
	"fmt"
	"strings"

	"ScoringEngine/internal/checks"

	"github.com/miekg/dns"
)

var DNS = &checks.Definition{
	Name:               "DNSCheck",
	Protocol:           Protocol,
	RequiredProperties: []string{"qtype", "domain"},
	Template:           "dig +noedns @{0} -p {1} -t {2} -q {3}",
	Format: func(t *checks.Target) ([]any, error) {
		qtype, err := t.Property("qtype")
		if err != nil {
			return nil, err
		}
		domain, err := t.Property("domain")
		if err != nil {
			return nil, err
		}

		qtype = strings.ToUpper(qtype)
		if _, ok := dns.StringToType[qtype]; !ok {
			return nil, fmt.Errorf("unknown dns record type %q", qtype)
		}
		if _, ok := dns.IsDomainName(domain); !ok {
			return nil, fmt.Errorf("invalid domain name %q", domain)
		}

		return []any{t.Host, t.Port, qtype, domain}, nil
	},
}
