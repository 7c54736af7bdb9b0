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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// RecordSpec defines the desired state of a Record.
type RecordSpec struct {
	// DomainName is either a partial name anchored via ZoneRef, or a fully
	// qualified name (trailing "."), in which case the parent zone (if
	// any) is discovered by longest-suffix match across the cluster.
	// +kubebuilder:validation:Required
	DomainName string `json:"domainName"`

	// ZoneRef anchors a partial DomainName to a parent Zone. Mutually
	// exclusive with a fully-qualified DomainName.
	// +optional
	ZoneRef *ZoneRef `json:"zoneRef,omitempty"`

	// +kubebuilder:validation:Required
	Type RRType `json:"type"`

	// +kubebuilder:default:=IN
	// +optional
	Class RRClass `json:"class,omitempty"`

	// +kubebuilder:default:=3600
	// +optional
	TTL *uint32 `json:"ttl,omitempty"`

	// RData is the record's rdata, in zone-file text form.
	// +kubebuilder:validation:Required
	RData string `json:"rdata"`
}

func (s RecordSpec) GetClass() RRClass {
	if s.Class == "" {
		return RRClassIN
	}
	return s.Class
}

func (s RecordSpec) GetTTL() uint32 {
	if s.TTL != nil {
		return *s.TTL
	}
	return DefaultTTL
}

// RecordStatus defines the observed state of a Record.
type RecordStatus struct {
	// FQDN is the record's fully qualified name, once resolved.
	// +optional
	FQDN *string `json:"fqdn,omitempty"`

	// ObservedGeneration is the most recently reconciled .metadata.generation.
	// +optional
	ObservedGeneration *int64 `json:"observedGeneration,omitempty"`

	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Domain",type="string",JSONPath=".spec.domainName"
// +kubebuilder:printcolumn:name="Type",type="string",JSONPath=".spec.type"
// +kubebuilder:printcolumn:name="FQDN",type="string",JSONPath=".status.fqdn"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// Record is the Schema for the records API.
type Record struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   RecordSpec   `json:"spec"`
	Status RecordStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// RecordList contains a list of Record.
type RecordList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Record `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Record{}, &RecordList{})
}

func (r *Record) FQDN() (string, bool) {
	if r.Status.FQDN == nil {
		return "", false
	}
	return *r.Status.FQDN, true
}
