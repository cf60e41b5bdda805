package pihole

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cockroachdb/errors"
)

// Domain type and kind values accepted by the domains endpoints.
const (
	DomainTypeAllow = "allow"
	DomainTypeDeny  = "deny"
	DomainKindExact = "exact"
	DomainKindRegex = "regex"
)

func validateDomainSelector(domainType, kind string) error {
	if domainType != DomainTypeAllow && domainType != DomainTypeDeny {
		return errors.Newf("invalid domain type %q (want %q or %q)", domainType, DomainTypeAllow, DomainTypeDeny)
	}
	if kind != DomainKindExact && kind != DomainKindRegex {
		return errors.Newf("invalid domain kind %q (want %q or %q)", kind, DomainKindExact, DomainKindRegex)
	}
	return nil
}

// ListDomains retrieves all managed domain entries.
func (c *Client) ListDomains(ctx context.Context) (*DomainsReply, error) {
	return doRequest[DomainsReply](ctx, c, http.MethodGet, "/domains", nil)
}

// ListDomainsByType retrieves domain entries of one type and kind.
func (c *Client) ListDomainsByType(ctx context.Context, domainType, kind string) (*DomainsReply, error) {
	if err := validateDomainSelector(domainType, kind); err != nil {
		return nil, err
	}
	return doRequest[DomainsReply](ctx, c, http.MethodGet, "/domains/"+domainType+"/"+kind, nil)
}

// AddDomain creates a domain entry of the given type and kind.
func (c *Client) AddDomain(ctx context.Context, domainType, kind string, input DomainInput) (*DomainsReply, error) {
	if err := validateDomainSelector(domainType, kind); err != nil {
		return nil, err
	}
	return doRequest[DomainsReply](ctx, c, http.MethodPost, "/domains/"+domainType+"/"+kind, input)
}

// DeleteDomain removes a domain entry.
func (c *Client) DeleteDomain(ctx context.Context, domainType, kind, domain string) error {
	if err := validateDomainSelector(domainType, kind); err != nil {
		return err
	}
	return doDelete(ctx, c, "/domains/"+domainType+"/"+kind+"/"+url.PathEscape(domain))
}
