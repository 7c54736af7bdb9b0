// Package delegation implements the authorization rules a Zone publishes
// over which Records and child Zones it is willing to adopt.
package delegation

import (
	"github.com/kubi-zone/kubizone/api/v1alpha1"
	"github.com/kubi-zone/kubizone/internal/domain"
)

// CoversNamespace reports whether d's namespace set covers ns. An empty
// Namespaces list covers only the zone's own namespace.
func CoversNamespace(d v1alpha1.Delegation, zoneNamespace, ns string) bool {
	if len(d.Namespaces) == 0 {
		return ns == zoneNamespace
	}
	for _, n := range d.Namespaces {
		if n == ns {
			return true
		}
	}
	return false
}

// ValidateRecord reports whether d authorizes a record of the given type at
// candidate, relative to parent. Unlike ValidateZone, candidate may equal
// parent: a record's domain_name of "@" resolves to the zone's own apex
// (e.g. the zone's NS/SOA records), which is a legitimate placement for a
// Record even though it would be a self-adoption cycle for a child Zone.
func ValidateRecord(d v1alpha1.Delegation, parent, candidate domain.Name, rrType v1alpha1.RRType) bool {
	if !candidate.Equal(parent) && !candidate.IsSubdomainOf(parent) {
		return false
	}
	rel := candidate.LabelsRelativeTo(parent)
	for _, rd := range d.Records {
		if !domain.ParsePattern(rd.Pattern).Match(rel) {
			continue
		}
		if len(rd.Types) == 0 {
			return true
		}
		for _, t := range rd.Types {
			if t.Normalized() == rrType.Normalized() {
				return true
			}
		}
	}
	return false
}

// ValidateZone reports whether d authorizes a child zone at candidate,
// relative to parent.
func ValidateZone(d v1alpha1.Delegation, parent, candidate domain.Name) bool {
	if !candidate.IsSubdomainOf(parent) {
		return false
	}
	rel := candidate.LabelsRelativeTo(parent)
	for _, zd := range d.Zones {
		if domain.ParsePattern(zd.Pattern).Match(rel) {
			return true
		}
	}
	return false
}

// AuthorizeRecord evaluates the OR-over-delegations / AND-within-a-delegation
// rule for a candidate Record: any delegation in delegations that covers the
// candidate's namespace AND validates the candidate name/type authorizes it.
func AuthorizeRecord(delegations []v1alpha1.Delegation, zoneNamespace string, parent, candidate domain.Name, rrType v1alpha1.RRType, candidateNamespace string) bool {
	for _, d := range delegations {
		if CoversNamespace(d, zoneNamespace, candidateNamespace) && ValidateRecord(d, parent, candidate, rrType) {
			return true
		}
	}
	return false
}

// AuthorizeZone is the child-Zone analogue of AuthorizeRecord.
func AuthorizeZone(delegations []v1alpha1.Delegation, zoneNamespace string, parent, candidate domain.Name, candidateNamespace string) bool {
	for _, d := range delegations {
		if CoversNamespace(d, zoneNamespace, candidateNamespace) && ValidateZone(d, parent, candidate) {
			return true
		}
	}
	return false
}
