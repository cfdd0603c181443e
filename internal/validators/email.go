package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const defaultLookupTimeout = 3 * time.Second

// NormalizeEmail trims and lowercases an address and splits off its domain.
// ok is false when there is no local part or no domain.
func NormalizeEmail(raw string) (email, domain string, ok bool) {
	email = strings.ToLower(strings.TrimSpace(raw))

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return email, "", false
	}
	return email, email[at+1:], true
}

// DomainResolver is the part of *net.Resolver the checker needs.
type DomainResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// EmailDomainChecker accepts an address when its domain can receive mail:
// it publishes MX records, or it resolves to an address (implicit MX).
type EmailDomainChecker struct {
	resolver DomainResolver
	timeout  time.Duration
}

func NewEmailDomainChecker(resolver DomainResolver, timeout time.Duration) *EmailDomainChecker {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}
	return &EmailDomainChecker{resolver: resolver, timeout: timeout}
}

func (c *EmailDomainChecker) Valid(ctx context.Context, raw string) bool {
	_, domain, ok := NormalizeEmail(raw)
	if !ok {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if mx, err := c.resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		// a single "." host is a null MX: the domain accepts no mail
		if len(mx) == 1 && strings.TrimSuffix(mx[0].Host, ".") == "" {
			return false
		}
		return true
	}

	if ips, err := c.resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
