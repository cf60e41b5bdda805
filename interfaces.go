package pihole

import "context"

// API defines the interface for Pi-hole API operations. It enables consumers
// to create mock implementations for testing; all methods mirror the
// corresponding methods on Client.
//
//nolint:interfacebloat // This interface mirrors the full client surface
type API interface {
	// Session lifecycle

	Authenticate(ctx context.Context, totpCode string) bool
	Logout(ctx context.Context) bool
	HasSession() bool
	IsTotpRequired() bool

	// Blocking

	GetBlocking(ctx context.Context) (*BlockingStatus, error)
	SetBlocking(ctx context.Context, enabled bool, timer *float64) (*BlockingStatus, error)
	EnableBlocking(ctx context.Context) (*BlockingStatus, error)
	DisableBlocking(ctx context.Context, seconds float64) (*BlockingStatus, error)

	// Statistics and query log

	GetSummary(ctx context.Context) (*StatsSummary, error)
	GetTopDomains(ctx context.Context, count int, blocked bool) (*TopDomainsReply, error)
	GetTopClients(ctx context.Context, count int, blocked bool) (*TopClientsReply, error)
	GetUpstreams(ctx context.Context) (*UpstreamsReply, error)
	GetHistory(ctx context.Context) (*HistoryReply, error)
	GetClientHistory(ctx context.Context, count int) (*ClientHistoryReply, error)
	GetQueries(ctx context.Context, filter QueryFilter) (*QueriesReply, error)

	// Domain management

	ListDomains(ctx context.Context) (*DomainsReply, error)
	ListDomainsByType(ctx context.Context, domainType, kind string) (*DomainsReply, error)
	AddDomain(ctx context.Context, domainType, kind string, input DomainInput) (*DomainsReply, error)
	DeleteDomain(ctx context.Context, domainType, kind, domain string) error

	// Groups, clients, lists

	ListGroups(ctx context.Context) (*GroupsReply, error)
	AddGroup(ctx context.Context, input GroupInput) (*GroupsReply, error)
	DeleteGroup(ctx context.Context, name string) error
	ListClients(ctx context.Context) (*ClientsReply, error)
	AddClient(ctx context.Context, input ClientInput) (*ClientsReply, error)
	DeleteClient(ctx context.Context, client string) error
	ListLists(ctx context.Context) (*ListsReply, error)
	AddList(ctx context.Context, input ListInput) (*ListsReply, error)
	DeleteList(ctx context.Context, address, listType string) error

	// DHCP

	GetDHCPLeases(ctx context.Context) (*DHCPLeasesReply, error)
	DeleteDHCPLease(ctx context.Context, ip string) error

	// Configuration and info

	GetConfig(ctx context.Context) (*ConfigReply, error)
	PatchConfig(ctx context.Context, patch any) (*ConfigReply, error)
	GetVersion(ctx context.Context) (*VersionInfo, error)
	GetSystemInfo(ctx context.Context) (*SystemInfo, error)
	GetFTLInfo(ctx context.Context) (*FTLInfo, error)

	// Maintenance actions

	RunGravity(ctx context.Context) (*ActionReply, error)
	RestartDNS(ctx context.Context) (*ActionReply, error)
	FlushLogs(ctx context.Context) (*ActionReply, error)
	FlushARP(ctx context.Context) (*ActionReply, error)
}

// Compile-time check that Client implements API.
var _ API = (*Client)(nil)
