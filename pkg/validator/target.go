package validator

import (
	"net"
	"strings"

	"github.com/miekg/dns"
)

// ValidateHost accepts an IP address or a domain name. Check commands
// interpolate the host unquoted into URLs, so anything else is rejected.
func ValidateHost(host string) bool {
	if host == "" {
		return false
	}

	if net.ParseIP(host) != nil {
		return true
	}

	if strings.ContainsAny(host, " /:@") {
		return false
	}

	_, ok := dns.IsDomainName(host)
	return ok
}

func ValidatePort(port int) bool {
	return port >= 0 && port <= 65535
}

// ValidateAddress checks a host:port pair such as a Redis address.
func ValidateAddress(addr string) bool {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}
	return port != "" && (host == "" || ValidateHost(host))
}
