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
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// HasDomainName captures the common placement fields shared by Zone and
// Record: a domain name, optionally anchored to a parent via ZoneRef, plus
// the object metadata needed to patch labels. Both reconcilers drive their
// placement phase purely against this interface, so the decision matrix is
// implemented exactly once.
type HasDomainName interface {
	client.Object

	GetDomainName() string
	GetZoneRef() *ZoneRef
}

// HasFQDNStatus is implemented by resources that publish a resolved FQDN in
// their status subresource.
type HasFQDNStatus interface {
	client.Object

	GetFQDN() (string, bool)
	SetFQDN(fqdn string)
}

func (z *Zone) GetDomainName() string   { return z.Spec.DomainName }
func (z *Zone) GetZoneRef() *ZoneRef    { return z.Spec.ZoneRef }
func (z *Zone) GetFQDN() (string, bool) { return z.FQDN() }
func (z *Zone) SetFQDN(fqdn string)     { z.Status.FQDN = &fqdn }

func (r *Record) GetDomainName() string   { return r.Spec.DomainName }
func (r *Record) GetZoneRef() *ZoneRef    { return r.Spec.ZoneRef }
func (r *Record) GetFQDN() (string, bool) { return r.FQDN() }
func (r *Record) SetFQDN(fqdn string)     { r.Status.FQDN = &fqdn }

// SetCondition upserts a condition by type, bumping ObservedGeneration.
func SetCondition(conditions *[]metav1.Condition, generation int64, cond metav1.Condition) {
	cond.ObservedGeneration = generation
	meta := existingCondition(*conditions, cond.Type)
	if meta != nil && meta.Status == cond.Status && meta.Reason == cond.Reason && meta.Message == cond.Message {
		meta.ObservedGeneration = generation
		return
	}
	if meta != nil {
		cond.LastTransitionTime = metav1.Now()
		*meta = cond
		return
	}
	cond.LastTransitionTime = metav1.Now()
	*conditions = append(*conditions, cond)
}

func existingCondition(conditions []metav1.Condition, condType string) *metav1.Condition {
	for i := range conditions {
		if conditions[i].Type == condType {
			return &conditions[i]
		}
	}
	return nil
}
