// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"sort"

	"github.com/ec2tui/ec2tui/internal/aws"
	"github.com/ec2tui/ec2tui/internal/log"
	"github.com/ec2tui/ec2tui/internal/mask"
)

// Record is one known instance as held by the registry. ID is the only
// field ever used for mutating calls; the Display accessors are render-only
// projections.
type Record struct {
	ID        string
	Name      string
	Type      string
	State     string
	PublicIP  string
	PrivateIP string
}

// DisplayID returns the masked id for rendering and log panes.
func (r Record) DisplayID() string { return mask.ID(r.ID) }

// DisplayPublicIP returns the masked public IP, empty when unassigned.
func (r Record) DisplayPublicIP() string { return mask.IP(r.PublicIP) }

// DisplayPrivateIP returns the masked private IP, empty when unassigned.
func (r Record) DisplayPrivateIP() string { return mask.IP(r.PrivateIP) }

// Registry owns the in-memory list of last-fetched instance records. It is
// the local view, not the remote source of truth. All mutation happens via
// Refresh/Apply on the UI-owning goroutine; no internal locking.
type Registry struct {
	client  aws.Client
	records []Record
}

// New returns an empty registry backed by the given cloud client.
func New(client aws.Client) *Registry {
	return &Registry{client: client}
}

// Refresh re-fetches the full instance list and replaces the in-memory
// records wholesale. On error the previous records are left untouched and
// the error (a *aws.FetchError from the client) is returned for display.
// No caching, no TTL: every call is a full re-fetch.
func (g *Registry) Refresh(ctx context.Context) ([]Record, error) {
	list, err := g.client.ListInstances(ctx)
	if err != nil {
		log.Warnf("refresh failed, keeping %d stale records: %v", len(g.records), err)
		return nil, err
	}
	return g.Apply(list), nil
}

// Apply maps fetched instances to records, sorts them by id for a stable
// display order, and replaces the list wholesale. Split out from Refresh so
// a UI can run the fetch on a background task and marshal the result back
// before mutating.
func (g *Registry) Apply(list []aws.Instance) []Record {
	records := make([]Record, 0, len(list))
	for _, inst := range list {
		records = append(records, Record{
			ID:        inst.ID,
			Name:      inst.Name,
			Type:      inst.Type,
			State:     inst.State,
			PublicIP:  inst.PublicIP,
			PrivateIP: inst.PrivateIP,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	g.records = records
	log.Debugf("registry replaced: count=%d", len(records))
	return g.Records()
}

// Records returns a copy of the current records. Callers get their own
// slice; the registry remains the only owner of the backing list.
func (g *Registry) Records() []Record {
	out := make([]Record, len(g.records))
	copy(out, g.records)
	return out
}

// Find returns the record with the given unmasked id.
func (g *Registry) Find(id string) (Record, bool) {
	for _, r := range g.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Len reports how many records the registry currently holds.
func (g *Registry) Len() int { return len(g.records) }
