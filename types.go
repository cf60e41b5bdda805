package pihole

import "encoding/json"

// BlockingStatus is the state of DNS blocking. Blocking is one of "enabled",
// "disabled", "failed", or "unknown"; Timer is the remaining seconds of a
// temporary state, nil when permanent.
type BlockingStatus struct {
	Blocking string   `json:"blocking"`
	Timer    *float64 `json:"timer"`
	Took     float64  `json:"took"`
}

// StatsSummary is the dashboard summary: query counts, client counts, and
// gravity list size.
type StatsSummary struct {
	Queries struct {
		Total          int            `json:"total"`
		Blocked        int            `json:"blocked"`
		PercentBlocked float64        `json:"percent_blocked"`
		UniqueDomains  int            `json:"unique_domains"`
		Forwarded      int            `json:"forwarded"`
		Cached         int            `json:"cached"`
		Types          map[string]int `json:"types"`
		Status         map[string]int `json:"status"`
		Replies        map[string]int `json:"replies"`
		Frequency      float64        `json:"frequency"`
	} `json:"queries"`
	Clients struct {
		Active int `json:"active"`
		Total  int `json:"total"`
	} `json:"clients"`
	Gravity struct {
		DomainsBeingBlocked int   `json:"domains_being_blocked"`
		LastUpdate          int64 `json:"last_update"`
	} `json:"gravity"`
	Took float64 `json:"took"`
}

// TopDomain is one entry of a top-domains ranking.
type TopDomain struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// TopDomainsReply ranks the most frequently queried (or blocked) domains.
type TopDomainsReply struct {
	Domains        []TopDomain `json:"domains"`
	TotalQueries   int         `json:"total_queries"`
	BlockedQueries int         `json:"blocked_queries"`
	Took           float64     `json:"took"`
}

// TopClient is one entry of a top-clients ranking.
type TopClient struct {
	IP    string `json:"ip"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TopClientsReply ranks the most active clients.
type TopClientsReply struct {
	Clients        []TopClient `json:"clients"`
	TotalQueries   int         `json:"total_queries"`
	BlockedQueries int         `json:"blocked_queries"`
	Took           float64     `json:"took"`
}

// Upstream is one upstream DNS destination with its share of forwarded
// queries.
type Upstream struct {
	IP         string  `json:"ip"`
	Name       string  `json:"name"`
	Port       int     `json:"port"`
	Count      int     `json:"count"`
	Statistics struct {
		Response float64 `json:"response"`
		Variance float64 `json:"variance"`
	} `json:"statistics"`
}

// UpstreamsReply lists upstream destinations.
type UpstreamsReply struct {
	Upstreams        []Upstream `json:"upstreams"`
	TotalQueries     int        `json:"total_queries"`
	ForwardedQueries int        `json:"forwarded_queries"`
	Took             float64    `json:"took"`
}

// HistoryEntry is one time slot of the queries-over-time graph.
type HistoryEntry struct {
	Timestamp int64 `json:"timestamp"`
	Total     int   `json:"total"`
	Cached    int   `json:"cached"`
	Blocked   int   `json:"blocked"`
	Forwarded int   `json:"forwarded"`
}

// HistoryReply is the queries-over-time graph.
type HistoryReply struct {
	History []HistoryEntry `json:"history"`
	Took    float64        `json:"took"`
}

// ClientHistoryEntry is one time slot of the per-client activity graph.
// Data maps client IPs to query counts in that slot.
type ClientHistoryEntry struct {
	Timestamp int64          `json:"timestamp"`
	Data      map[string]int `json:"data"`
}

// ClientHistoryInfo names a client appearing in the per-client graph.
type ClientHistoryInfo struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// ClientHistoryReply is the per-client activity graph.
type ClientHistoryReply struct {
	History []ClientHistoryEntry         `json:"history"`
	Clients map[string]ClientHistoryInfo `json:"clients"`
	Took    float64                      `json:"took"`
}

// Query is one entry of the query log.
type Query struct {
	ID       int     `json:"id"`
	Time     float64 `json:"time"`
	Type     string  `json:"type"`
	Status   string  `json:"status"`
	DNSSEC   string  `json:"dnssec"`
	Domain   string  `json:"domain"`
	Upstream *string `json:"upstream"`
	Reply    struct {
		Type string  `json:"type"`
		Time float64 `json:"time"`
	} `json:"reply"`
	Client struct {
		IP   string  `json:"ip"`
		Name *string `json:"name"`
	} `json:"client"`
	ListID *int    `json:"list_id"`
	CNAME  *string `json:"cname"`
}

// QueriesReply is a page of the query log.
type QueriesReply struct {
	Queries         []Query `json:"queries"`
	Cursor          int     `json:"cursor"`
	RecordsTotal    int     `json:"recordsTotal"`
	RecordsFiltered int     `json:"recordsFiltered"`
	Draw            int     `json:"draw"`
	Took            float64 `json:"took"`
}

// Domain is a managed allow/deny entry. Type is "allow" or "deny"; Kind is
// "exact" or "regex".
type Domain struct {
	ID           int     `json:"id"`
	Domain       string  `json:"domain"`
	Unicode      string  `json:"unicode"`
	Type         string  `json:"type"`
	Kind         string  `json:"kind"`
	Comment      *string `json:"comment"`
	Groups       []int   `json:"groups"`
	Enabled      bool    `json:"enabled"`
	DateAdded    int64   `json:"date_added"`
	DateModified int64   `json:"date_modified"`
}

// Processed reports which entries of a batched mutation were applied.
type Processed struct {
	Success []struct {
		Item string `json:"item"`
	} `json:"success"`
	Errors []struct {
		Item  string `json:"item"`
		Error string `json:"error"`
	} `json:"errors"`
}

// DomainsReply lists managed domains.
type DomainsReply struct {
	Domains   []Domain   `json:"domains"`
	Processed *Processed `json:"processed,omitempty"`
	Took      float64    `json:"took"`
}

// DomainInput is the body for creating a domain entry.
type DomainInput struct {
	Domain  string  `json:"domain"`
	Comment *string `json:"comment,omitempty"`
	Groups  []int   `json:"groups,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`
}

// Group is a client group.
type Group struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Comment      *string `json:"comment"`
	Enabled      bool    `json:"enabled"`
	DateAdded    int64   `json:"date_added"`
	DateModified int64   `json:"date_modified"`
}

// GroupsReply lists client groups.
type GroupsReply struct {
	Groups    []Group    `json:"groups"`
	Processed *Processed `json:"processed,omitempty"`
	Took      float64    `json:"took"`
}

// GroupInput is the body for creating a group.
type GroupInput struct {
	Name    string  `json:"name"`
	Comment *string `json:"comment,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`
}

// ClientEntry is a managed client (IP, subnet, MAC, or interface).
type ClientEntry struct {
	ID           int     `json:"id"`
	Client       string  `json:"client"`
	Name         *string `json:"name"`
	Comment      *string `json:"comment"`
	Groups       []int   `json:"groups"`
	DateAdded    int64   `json:"date_added"`
	DateModified int64   `json:"date_modified"`
}

// ClientsReply lists managed clients.
type ClientsReply struct {
	Clients   []ClientEntry `json:"clients"`
	Processed *Processed    `json:"processed,omitempty"`
	Took      float64       `json:"took"`
}

// ClientInput is the body for creating a client entry.
type ClientInput struct {
	Client  string  `json:"client"`
	Comment *string `json:"comment,omitempty"`
	Groups  []int   `json:"groups,omitempty"`
}

// ListEntry is a subscribed block/allow list (adlist).
type ListEntry struct {
	ID             int     `json:"id"`
	Address        string  `json:"address"`
	Type           string  `json:"type"`
	Comment        *string `json:"comment"`
	Groups         []int   `json:"groups"`
	Enabled        bool    `json:"enabled"`
	DateAdded      int64   `json:"date_added"`
	DateModified   int64   `json:"date_modified"`
	DateUpdated    int64   `json:"date_updated"`
	Number         int     `json:"number"`
	InvalidDomains int     `json:"invalid_domains"`
	Status         int     `json:"status"`
}

// ListsReply lists subscribed lists.
type ListsReply struct {
	Lists     []ListEntry `json:"lists"`
	Processed *Processed  `json:"processed,omitempty"`
	Took      float64     `json:"took"`
}

// ListInput is the body for subscribing a list.
type ListInput struct {
	Address string  `json:"address"`
	Type    string  `json:"type,omitempty"`
	Comment *string `json:"comment,omitempty"`
	Groups  []int   `json:"groups,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`
}

// DHCPLease is one active DHCP lease.
type DHCPLease struct {
	Expires  int64  `json:"expires"`
	Name     string `json:"name"`
	Hwaddr   string `json:"hwaddr"`
	IP       string `json:"ip"`
	ClientID string `json:"clientid"`
}

// DHCPLeasesReply lists active DHCP leases.
type DHCPLeasesReply struct {
	Leases []DHCPLease `json:"leases"`
	Took   float64     `json:"took"`
}

// ComponentVersion describes one installed component.
type ComponentVersion struct {
	Version string `json:"version"`
	Branch  string `json:"branch"`
	Hash    string `json:"hash"`
}

// VersionInfo reports installed and latest versions of the Pi-hole
// components.
type VersionInfo struct {
	Version struct {
		Core struct {
			Local  ComponentVersion `json:"local"`
			Remote ComponentVersion `json:"remote"`
		} `json:"core"`
		Web struct {
			Local  ComponentVersion `json:"local"`
			Remote ComponentVersion `json:"remote"`
		} `json:"web"`
		FTL struct {
			Local  ComponentVersion `json:"local"`
			Remote ComponentVersion `json:"remote"`
		} `json:"ftl"`
		Docker struct {
			Local  string `json:"local"`
			Remote string `json:"remote"`
		} `json:"docker"`
	} `json:"version"`
	Took float64 `json:"took"`
}

// SystemInfo reports host-level runtime information.
type SystemInfo struct {
	System struct {
		Uptime int64 `json:"uptime"`
		Memory struct {
			RAM struct {
				Total       int64   `json:"total"`
				Free        int64   `json:"free"`
				Used        int64   `json:"used"`
				Available   int64   `json:"available"`
				PercentUsed float64 `json:"%used"`
			} `json:"ram"`
			Swap struct {
				Total       int64   `json:"total"`
				Free        int64   `json:"free"`
				Used        int64   `json:"used"`
				PercentUsed float64 `json:"%used"`
			} `json:"swap"`
		} `json:"memory"`
		Procs int `json:"procs"`
		CPU   struct {
			Nprocs int `json:"nprocs"`
			Load   struct {
				Raw     []float64 `json:"raw"`
				Percent []float64 `json:"percent"`
			} `json:"load"`
		} `json:"cpu"`
	} `json:"system"`
	Took float64 `json:"took"`
}

// FTLInfo reports FTL daemon internals.
type FTLInfo struct {
	FTL struct {
		Database struct {
			Gravity int `json:"gravity"`
			Groups  int `json:"groups"`
			Lists   int `json:"lists"`
			Clients int `json:"clients"`
			Domains struct {
				Allowed int `json:"allowed"`
				Denied  int `json:"denied"`
			} `json:"domains"`
		} `json:"database"`
		PrivacyLevel int `json:"privacy_level"`
		Clients      struct {
			Total  int `json:"total"`
			Active int `json:"active"`
		} `json:"clients"`
		PID int `json:"pid"`
	} `json:"ftl"`
	Took float64 `json:"took"`
}

// ConfigReply carries the configuration tree. The tree is deployment-specific
// and deeply nested, so it is exposed as raw JSON for callers to walk.
type ConfigReply struct {
	Config json.RawMessage `json:"config"`
	Took   float64         `json:"took"`
}

// ActionReply is the outcome of a maintenance action.
type ActionReply struct {
	Status string  `json:"status"`
	Took   float64 `json:"took"`
}
