/*
 * Software Name : kubizone
 *
 * SPDX-FileCopyrightText: Copyright (c) kubizone contributors
 * SPDX-License-Identifier: Apache-2.0
 *
 * This software is distributed under the Apache 2.0 License,
 * see the "LICENSE" file for more details
 */

package v1alpha1

import (
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Default zone timer values (seconds), applied by ZoneSpec.GetTTL and friends
// when the corresponding spec field is unset.
const (
	DefaultTTL                   = uint32(3600)
	DefaultRefresh               = uint32(86400)
	DefaultRetry                 = uint32(7200)
	DefaultExpire                = uint32(3600000)
	DefaultNegativeResponseCache = uint32(172800)
)

// ZoneRef is a reference to a Zone, optionally crossing namespaces. It
// renders to the canonical parent-zone label value via AsLabel.
type ZoneRef struct {
	// Name is the name of the referenced Zone.
	// +kubebuilder:validation:Required
	Name string `json:"name"`

	// Namespace is the namespace of the referenced Zone. When omitted, the
	// referencing resource's own namespace is used.
	// +optional
	Namespace *string `json:"namespace,omitempty"`
}

// AsLabel renders the canonical "<namespace>.<name>" label value used for
// the kubi.zone/parent-zone label. namespace/name must not themselves
// contain "." — the separator is not escaped (see spec's Open Questions).
func (r ZoneRef) AsLabel(fallbackNamespace string) string {
	ns := fallbackNamespace
	if r.Namespace != nil && *r.Namespace != "" {
		ns = *r.Namespace
	}
	return fmt.Sprintf("%s.%s", ns, r.Name)
}

func (r ZoneRef) String() string {
	if r.Namespace != nil {
		return fmt.Sprintf("%s/%s", *r.Namespace, r.Name)
	}
	return r.Name
}

// RecordDelegation authorizes Records whose name (relative to the zone's
// origin) matches Pattern and whose type is in Types (or any type, if Types
// is empty).
type RecordDelegation struct {
	// Pattern is a glob over the labels of the candidate record's name
	// relative to the zone's origin. "*" matches exactly one label.
	// +kubebuilder:validation:Required
	Pattern string `json:"pattern"`

	// Types restricts the delegation to these record types. Empty means
	// any type is allowed.
	// +optional
	Types []RRType `json:"types,omitempty"`
}

// ZoneDelegation authorizes child Zones whose FQDN, relative to the parent
// zone's origin, matches Pattern.
type ZoneDelegation struct {
	// +kubebuilder:validation:Required
	Pattern string `json:"pattern"`
}

// Delegation is one policy rule a Zone publishes, restricting which
// namespaces may have Records/Zones adopted and under which name/type
// patterns. A Zone may publish several Delegations; adoption succeeds if
// any one of them authorizes the candidate (OR across delegations, AND
// within a single delegation's namespace+pattern+type test).
type Delegation struct {
	// Namespaces is the set of namespaces this delegation covers. Empty
	// means "the zone's own namespace only".
	// +optional
	Namespaces []string `json:"namespaces,omitempty"`

	// Records lists the record name/type patterns this delegation authorizes.
	// +optional
	Records []RecordDelegation `json:"records,omitempty"`

	// Zones lists the child-zone name patterns this delegation authorizes.
	// +optional
	Zones []ZoneDelegation `json:"zones,omitempty"`
}

// ZoneEntry is the rendered form of a single resource record, as it appears
// in a Zone's materialized entries list.
type ZoneEntry struct {
	FQDN  string  `json:"fqdn"`
	Type  RRType  `json:"type"`
	Class RRClass `json:"class"`
	TTL   uint32  `json:"ttl"`
	RData string  `json:"rdata"`
}

// ZoneSpec defines the desired state of a Zone.
type ZoneSpec struct {
	// DomainName is either a partial name anchored via ZoneRef, or a fully
	// qualified name (trailing "."), in which case the parent zone (if
	// any) is discovered by longest-suffix match across the cluster.
	// +kubebuilder:validation:Required
	DomainName string `json:"domainName"`

	// ZoneRef anchors a partial DomainName to a parent Zone. Mutually
	// exclusive with a fully-qualified DomainName.
	// +optional
	ZoneRef *ZoneRef `json:"zoneRef,omitempty"`

	// +kubebuilder:default:=3600
	// +optional
	TTL *uint32 `json:"ttl,omitempty"`

	// +kubebuilder:default:=86400
	// +optional
	Refresh *uint32 `json:"refresh,omitempty"`

	// +kubebuilder:default:=7200
	// +optional
	Retry *uint32 `json:"retry,omitempty"`

	// +kubebuilder:default:=3600000
	// +optional
	Expire *uint32 `json:"expire,omitempty"`

	// +kubebuilder:default:=172800
	// +optional
	NegativeResponseCache *uint32 `json:"negativeResponseCache,omitempty"`

	// Delegations is the ordered list of adoption policies this zone
	// publishes. Order does not affect correctness (evaluation is OR
	// across delegations), but it does determine which delegation's
	// defensive re-check short-circuits first.
	// +optional
	Delegations []Delegation `json:"delegations,omitempty"`
}

func (s ZoneSpec) GetTTL() uint32 {
	if s.TTL != nil {
		return *s.TTL
	}
	return DefaultTTL
}

func (s ZoneSpec) GetRefresh() uint32 {
	if s.Refresh != nil {
		return *s.Refresh
	}
	return DefaultRefresh
}

func (s ZoneSpec) GetRetry() uint32 {
	if s.Retry != nil {
		return *s.Retry
	}
	return DefaultRetry
}

func (s ZoneSpec) GetExpire() uint32 {
	if s.Expire != nil {
		return *s.Expire
	}
	return DefaultExpire
}

func (s ZoneSpec) GetNegativeResponseCache() uint32 {
	if s.NegativeResponseCache != nil {
		return *s.NegativeResponseCache
	}
	return DefaultNegativeResponseCache
}

// ZoneStatus defines the observed state of a Zone.
type ZoneStatus struct {
	// FQDN is the zone's fully qualified origin, once resolved.
	// +optional
	FQDN *string `json:"fqdn,omitempty"`

	// Serial is the RFC 1912 zone serial, monotonically non-decreasing.
	// +optional
	Serial *uint32 `json:"serial,omitempty"`

	// Hash is a deterministic function of (spec, entries); Serial only
	// changes when Hash changes.
	// +optional
	Hash *string `json:"hash,omitempty"`

	// Entries is the materialized, ordered record set; Entries[0], when
	// present, is always the SOA record.
	// +optional
	Entries []ZoneEntry `json:"entries,omitempty"`

	// ObservedGeneration is the most recently reconciled .metadata.generation.
	// +optional
	ObservedGeneration *int64 `json:"observedGeneration,omitempty"`

	// Conditions represent the latest available observations of the
	// zone's reconciliation state.
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Domain",type="string",JSONPath=".spec.domainName"
// +kubebuilder:printcolumn:name="FQDN",type="string",JSONPath=".status.fqdn"
// +kubebuilder:printcolumn:name="Serial",type="integer",JSONPath=".status.serial"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// Zone is the Schema for the zones API.
type Zone struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ZoneSpec   `json:"spec"`
	Status ZoneStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ZoneList contains a list of Zone.
type ZoneList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Zone `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Zone{}, &ZoneList{})
}

// ZoneRefSelf returns the ZoneRef by which other resources may refer to this zone.
func (z *Zone) ZoneRefSelf() ZoneRef {
	ns := z.Namespace
	return ZoneRef{Name: z.Name, Namespace: &ns}
}

// FQDN returns the zone's resolved FQDN string, or false if unresolved.
func (z *Zone) FQDN() (string, bool) {
	if z.Status.FQDN == nil {
		return "", false
	}
	return *z.Status.FQDN, true
}
