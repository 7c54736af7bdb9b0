/*
 * Software Name : kubizone
 *
 * SPDX-FileCopyrightText: Copyright (c) kubizone contributors
 * SPDX-License-Identifier: Apache-2.0
 *
 * This software is distributed under the Apache 2.0 License,
 * see the "LICENSE" file for more details
 */

package controller

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/api/errors"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/kubi-zone/kubizone/api/v1alpha1"
	"github.com/kubi-zone/kubizone/internal/domain"
)

// Requeue intervals, per the error-handling design: a dangling zone_ref gets
// a medium wait for the parent to show up, an unready parent gets a short
// poll, and an observed FQDN write gets requeued almost immediately so
// watchers settle. Transient store errors are not covered here: they are
// returned to the work queue, which applies its own backoff.
const (
	RequeueParentMissing = 30 * time.Second
	RequeueParentNotReady = 5 * time.Second
	RequeueFQDNChanged    = 1 * time.Second
)

// controllerNamePrefix returns "kubi.zone" unless KUBIZONE_DEV is set, in
// which case it returns "dev.kubi.zone" — mirroring the upstream project's
// dev-build field-manager naming so that controllers running against a
// shared dev cluster don't fight over field ownership with a production
// instance reconciling the same resources.
func controllerNamePrefix() string {
	if os.Getenv("KUBIZONE_DEV") != "" {
		return "dev.kubi.zone"
	}
	return "kubi.zone"
}

// RecordResolverName is the field-manager / log identity of the Record
// resolver controller.
func RecordResolverName() string { return controllerNamePrefix() + "/record-resolver" }

// ZoneResolverName is the field-manager / log identity of the Zone resolver
// controller.
func ZoneResolverName() string { return controllerNamePrefix() + "/zone-resolver" }

// setParentLabel idempotently sets (or removes, if label is nil) the
// parent-zone label on obj. The patch is elided when the desired value
// already matches, per the idempotence requirement (P7).
func setParentLabel(ctx context.Context, cl client.Client, obj client.Object, label *string) error {
	current, hasCurrent := obj.GetLabels()[v1alpha1.ParentZoneLabel]

	if label == nil {
		if !hasCurrent {
			return nil
		}
		original := obj.DeepCopyObject().(client.Object)
		labels := obj.GetLabels()
		delete(labels, v1alpha1.ParentZoneLabel)
		obj.SetLabels(labels)
		return cl.Patch(ctx, obj, client.MergeFrom(original))
	}

	if hasCurrent && current == *label {
		return nil
	}

	original := obj.DeepCopyObject().(client.Object)
	labels := obj.GetLabels()
	if labels == nil {
		labels = map[string]string{}
	}
	labels[v1alpha1.ParentZoneLabel] = *label
	obj.SetLabels(labels)
	return cl.Patch(ctx, obj, client.MergeFrom(original))
}

// setFQDNStatus idempotently patches obj's status.fqdn. It reports whether
// the value actually changed, since an observed change re-triggers a short
// requeue so dependent watchers (the zone resolver watching this resource's
// label) settle quickly.
func setFQDNStatus(ctx context.Context, cl client.Client, obj v1alpha1.HasFQDNStatus, fqdn string) (bool, error) {
	existing, ok := obj.GetFQDN()
	if ok && existing == fqdn {
		return false, nil
	}

	original := obj.DeepCopyObject().(client.Object)
	obj.SetFQDN(fqdn)
	if err := cl.Status().Patch(ctx, obj, client.MergeFrom(original)); err != nil {
		return false, err
	}
	return true, nil
}

// authorizeFunc evaluates whether a resolved parent Zone's delegations
// authorize a candidate at the given FQDN, originating in candidateNamespace.
// The Record and Zone resolvers each supply a closure binding validate_record
// / validate_zone per §4.2.
type authorizeFunc func(parent *v1alpha1.Zone, candidate domain.Name, candidateNamespace string) bool

// placementResult communicates the outcome of resolvePlacement back to the
// caller, which may run further (materialization) only when Resolved is true.
type placementResult struct {
	Result   ctrl.Result
	Resolved bool
	FQDN     domain.Name
}

// resolvePlacement implements the decision matrix common to §4.4 (Record)
// and §4.5 Phase 1 (Zone): given a resource's (zone_ref, domain_name), it
// resolves the resource's FQDN and parent-zone label, or determines that it
// cannot yet (or ever) be placed.
func resolvePlacement(
	ctx context.Context,
	cl client.Client,
	log logr.Logger,
	obj interface {
		v1alpha1.HasDomainName
		v1alpha1.HasFQDNStatus
	},
	authorize authorizeFunc,
) (placementResult, error) {
	name, err := domain.Parse(obj.GetDomainName())
	if err != nil {
		log.Info("underspecified domain name, skipping", "domainName", obj.GetDomainName(), "error", err.Error())
		return placementResult{Result: ctrl.Result{RequeueAfter: RequeueParentMissing}}, nil
	}

	zoneRef := obj.GetZoneRef()

	switch {
	case zoneRef != nil && name.IsPartial():
		return resolvePartialWithRef(ctx, cl, log, obj, *zoneRef, name, authorize)

	case zoneRef == nil && name.FullyQualified:
		return resolveFullyQualified(ctx, cl, log, obj, name, authorize)

	case zoneRef != nil && name.FullyQualified:
		log.Info("conflicting placement: zoneRef set alongside a fully-qualified domainName", "domainName", obj.GetDomainName())
		return placementResult{Result: ctrl.Result{RequeueAfter: RequeueParentMissing}}, nil

	default: // zoneRef == nil && name.IsPartial()
		log.Info("underspecified placement: no zoneRef and a partial domainName", "domainName", obj.GetDomainName())
		return placementResult{Result: ctrl.Result{RequeueAfter: RequeueParentMissing}}, nil
	}
}

func resolvePartialWithRef(
	ctx context.Context,
	cl client.Client,
	log logr.Logger,
	obj interface {
		v1alpha1.HasDomainName
		v1alpha1.HasFQDNStatus
	},
	ref v1alpha1.ZoneRef,
	partial domain.Name,
	authorize authorizeFunc,
) (placementResult, error) {
	ns := obj.GetNamespace()
	if ref.Namespace != nil && *ref.Namespace != "" {
		ns = *ref.Namespace
	}

	if zone, ok := obj.(*v1alpha1.Zone); ok && zone.GetNamespace() == ns && zone.GetName() == ref.Name {
		log.Info("zoneRef references self, treating as underspecified (cycle guard, §9)", "zone", ref.String())
		return placementResult{Result: ctrl.Result{RequeueAfter: RequeueParentMissing}}, nil
	}

	parent := &v1alpha1.Zone{}
	if err := cl.Get(ctx, client.ObjectKey{Namespace: ns, Name: ref.Name}, parent); err != nil {
		if errors.IsNotFound(err) {
			log.Info("parent zone not found, requeueing", "zoneRef", ref.String())
			return placementResult{Result: ctrl.Result{RequeueAfter: RequeueParentMissing}}, nil
		}
		return placementResult{}, fmt.Errorf("getting parent zone %s: %w", ref.String(), err)
	}

	parentFQDNStr, ok := parent.FQDN()
	if !ok {
		log.Info("parent zone has no resolved fqdn yet, requeueing", "zoneRef", ref.String())
		return placementResult{Result: ctrl.Result{RequeueAfter: RequeueParentNotReady}}, nil
	}
	parentFQDN := domain.MustParse(parentFQDNStr)

	alleged := partial.WithOrigin(parentFQDN)

	if !authorize(parent, alleged, obj.GetNamespace()) {
		log.Info("parent zone does not authorize candidate, requeueing", "candidate", alleged.String(), "zone", ref.String())
		return placementResult{Result: ctrl.Result{RequeueAfter: RequeueParentMissing}}, nil
	}

	if _, err := setFQDNStatus(ctx, cl, obj, alleged.String()); err != nil {
		return placementResult{}, fmt.Errorf("patching status.fqdn: %w", err)
	}
	label := parent.ZoneRefSelf().AsLabel(parent.Namespace)
	if err := setParentLabel(ctx, cl, obj, &label); err != nil {
		return placementResult{}, fmt.Errorf("patching parent-zone label: %w", err)
	}

	return placementResult{Resolved: true, FQDN: alleged}, nil
}

func resolveFullyQualified(
	ctx context.Context,
	cl client.Client,
	log logr.Logger,
	obj interface {
		v1alpha1.HasDomainName
		v1alpha1.HasFQDNStatus
	},
	name domain.Name,
	authorize authorizeFunc,
) (placementResult, error) {
	changed, err := setFQDNStatus(ctx, cl, obj, name.String())
	if err != nil {
		return placementResult{}, fmt.Errorf("patching status.fqdn: %w", err)
	}
	if changed {
		return placementResult{Result: ctrl.Result{RequeueAfter: RequeueFQDNChanged}}, nil
	}

	var candidates v1alpha1.ZoneList
	if err := cl.List(ctx, &candidates); err != nil {
		return placementResult{}, fmt.Errorf("listing zones: %w", err)
	}

	var best *v1alpha1.Zone
	var bestFQDN domain.Name
	for i := range candidates.Items {
		z := &candidates.Items[i]
		if z.GetNamespace() == obj.GetNamespace() && z.GetName() == obj.GetName() {
			continue // never adopt into self (cycle guard, §9)
		}
		zfqdnStr, ok := z.FQDN()
		if !ok {
			continue
		}
		zfqdn := domain.MustParse(zfqdnStr)
		if !name.IsSubdomainOf(zfqdn) {
			continue
		}
		if best == nil || zfqdn.Len() > bestFQDN.Len() ||
			(zfqdn.Len() == bestFQDN.Len() && isBefore(z, best)) {
			best = z
			bestFQDN = zfqdn
		}
	}

	if best == nil {
		if err := setParentLabel(ctx, cl, obj, nil); err != nil {
			return placementResult{}, fmt.Errorf("clearing parent-zone label: %w", err)
		}
		return placementResult{Resolved: true, FQDN: name}, nil
	}

	if !authorize(best, name, obj.GetNamespace()) {
		log.Info("candidate parent zone does not authorize this fqdn, clearing label", "zone", best.Name, "fqdn", name.String())
		if err := setParentLabel(ctx, cl, obj, nil); err != nil {
			return placementResult{}, fmt.Errorf("clearing parent-zone label: %w", err)
		}
		return placementResult{Resolved: true, FQDN: name}, nil
	}

	label := best.ZoneRefSelf().AsLabel(best.Namespace)
	if err := setParentLabel(ctx, cl, obj, &label); err != nil {
		return placementResult{}, fmt.Errorf("patching parent-zone label: %w", err)
	}

	return placementResult{Resolved: true, FQDN: name}, nil
}

// isBefore breaks longest-suffix ties deterministically by (namespace, name),
// per the Open Question in §9: the source's behavior is unspecified here,
// we pick lexicographically smallest.
func isBefore(a, b *v1alpha1.Zone) bool {
	if a.Namespace != b.Namespace {
		return a.Namespace < b.Namespace
	}
	return a.Name < b.Name
}
