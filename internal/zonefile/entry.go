// Package zonefile renders a Zone's materialized entry set: the ordered
// resource records comprising its zone-file view, the content hash that
// gates serial changes, and the SOA record itself.
package zonefile

import (
	"fmt"
	"sort"
	"time"

	"github.com/kubi-zone/kubizone/api/v1alpha1"
)

// SOA renders the Start-of-Authority entry for a resolved zone origin.
// rdata follows the conventional "ns.<origin> noc.<origin> (serial refresh
// retry expire negative-cache)" form.
func SOA(origin string, serial uint32, spec v1alpha1.ZoneSpec) v1alpha1.ZoneEntry {
	rdata := fmt.Sprintf("ns.%s noc.%s (%d %d %d %d %d)",
		origin, origin, serial, spec.GetRefresh(), spec.GetRetry(), spec.GetExpire(), spec.GetNegativeResponseCache())

	return v1alpha1.ZoneEntry{
		FQDN:  origin,
		Type:  v1alpha1.RRTypeSOA,
		Class: v1alpha1.RRClassIN,
		TTL:   spec.GetTTL(),
		RData: rdata,
	}
}

// ContentHash computes the deterministic, order-sensitive digest of
// (spec, entries) that gates serial changes. entries must NOT include the
// SOA record (see serial.go's Hasher doc) — callers compute the hash before
// prepending SOA.
func ContentHash(spec v1alpha1.ZoneSpec, entries []v1alpha1.ZoneEntry) string {
	h := NewHasher()

	h.Write(spec.DomainName)
	if spec.ZoneRef != nil {
		h.Write(spec.ZoneRef.String())
	}
	h.Write(fmt.Sprintf("%d", spec.GetTTL()))
	h.Write(fmt.Sprintf("%d", spec.GetRefresh()))
	h.Write(fmt.Sprintf("%d", spec.GetRetry()))
	h.Write(fmt.Sprintf("%d", spec.GetExpire()))
	h.Write(fmt.Sprintf("%d", spec.GetNegativeResponseCache()))
	for _, d := range spec.Delegations {
		hashDelegation(h, d)
	}

	for _, e := range entries {
		h.Write(e.FQDN)
		h.Write(string(e.Type))
		h.Write(string(e.Class))
		h.Write(fmt.Sprintf("%d", e.TTL))
		h.Write(e.RData)
	}

	return h.Sum()
}

func hashDelegation(h *Hasher, d v1alpha1.Delegation) {
	ns := append([]string(nil), d.Namespaces...)
	sort.Strings(ns)
	for _, n := range ns {
		h.Write(n)
	}
	for _, rd := range d.Records {
		h.Write(rd.Pattern)
		types := append([]v1alpha1.RRType(nil), rd.Types...)
		sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
		for _, t := range types {
			h.Write(string(t))
		}
	}
	for _, zd := range d.Zones {
		h.Write(zd.Pattern)
	}
}

// SortEntries orders entries deterministically by (fqdn, type, rdata) so
// that materialization is insensitive to the order Records/child Zones were
// listed in, while still being order-sensitive to actual content changes.
func SortEntries(entries []v1alpha1.ZoneEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].FQDN != entries[j].FQDN {
			return entries[i].FQDN < entries[j].FQDN
		}
		if entries[i].Type != entries[j].Type {
			return entries[i].Type < entries[j].Type
		}
		return entries[i].RData < entries[j].RData
	})
}

// Now is the injection point for "current UTC time" used by serial
// computation, so reconcilers (and their tests) can control it.
func Now() time.Time {
	return time.Now().UTC()
}
