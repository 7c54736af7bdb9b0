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
	"time"

	"github.com/go-logr/logr"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/handler"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/kubi-zone/kubizone/api/v1alpha1"
	"github.com/kubi-zone/kubizone/internal/delegation"
	"github.com/kubi-zone/kubizone/internal/domain"
	"github.com/kubi-zone/kubizone/internal/zonefile"
)

const (
	ZoneConditionAvailable = "Available"

	ZoneReasonMaterialized  = "Materialized"
	ZoneReasonUnresolved    = "Unresolved"
	ZoneMessageMaterialized = "zone origin resolved and entries materialized"
)

// ZoneReconciler reconciles a Zone object: it resolves the zone's own
// placement (mirroring the Record resolver's decision matrix, §4.5 phase 1)
// and, once an origin is known, materializes its entries and serial
// (§4.5 phase 2).
type ZoneReconciler struct {
	client.Client
	RequeueDefault time.Duration
}

// +kubebuilder:rbac:groups=kubi.zone,resources=zones,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=kubi.zone,resources=zones/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=kubi.zone,resources=records,verbs=get;list;watch

func (r *ZoneReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	log := log.FromContext(ctx).WithName(ZoneResolverName())
	log.V(1).Info("reconciling zone", "zone", req.NamespacedName)

	zone := &v1alpha1.Zone{}
	if err := r.Get(ctx, req.NamespacedName, zone); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	authorize := func(parent *v1alpha1.Zone, candidate domain.Name, candidateNamespace string) bool {
		parentFQDNStr, ok := parent.FQDN()
		if !ok {
			return false
		}
		return delegation.AuthorizeZone(parent.Spec.Delegations, parent.Namespace, domain.MustParse(parentFQDNStr), candidate, candidateNamespace)
	}

	placement, err := resolvePlacement(ctx, r.Client, log, zone, authorize)
	if err != nil {
		return ctrl.Result{}, err
	}
	if !placement.Resolved {
		return placement.Result, nil
	}

	return r.materialize(ctx, log, zone)
}

// materialize implements §4.5 phase 2: enumerate adopted Records and child
// Zones, synthesize NS/glue entries, and patch the zone's content hash and
// serial.
func (r *ZoneReconciler) materialize(ctx context.Context, log logr.Logger, zone *v1alpha1.Zone) (ctrl.Result, error) {
	origin := domain.MustParse(*zone.Status.FQDN)
	selfLabel := zone.ZoneRefSelf().AsLabel(zone.Namespace)

	var entries []v1alpha1.ZoneEntry

	var records v1alpha1.RecordList
	if err := r.List(ctx, &records, client.MatchingLabels{v1alpha1.ParentZoneLabel: selfLabel}); err != nil {
		return ctrl.Result{}, err
	}
	for i := range records.Items {
		rec := &records.Items[i]
		recFQDNStr, ok := rec.FQDN()
		if !ok {
			continue
		}
		recFQDN := domain.MustParse(recFQDNStr)
		if !delegation.AuthorizeRecord(zone.Spec.Delegations, zone.Namespace, origin, recFQDN, rec.Spec.Type, rec.Namespace) {
			log.Info("adopted record no longer authorized by delegations, skipping", "record", rec.Name)
			continue
		}
		ttl := zone.Spec.GetTTL()
		if rec.Spec.TTL != nil {
			ttl = *rec.Spec.TTL
		}
		entries = append(entries, v1alpha1.ZoneEntry{
			FQDN:  recFQDN.String(),
			Type:  rec.Spec.Type,
			Class: rec.Spec.GetClass(),
			TTL:   ttl,
			RData: rec.Spec.RData,
		})
	}

	var zones v1alpha1.ZoneList
	if err := r.List(ctx, &zones, client.MatchingLabels{v1alpha1.ParentZoneLabel: selfLabel}); err != nil {
		return ctrl.Result{}, err
	}
	for i := range zones.Items {
		child := &zones.Items[i]
		childFQDNStr, ok := child.FQDN()
		if !ok {
			continue
		}
		childFQDN := domain.MustParse(childFQDNStr)
		if !delegation.AuthorizeZone(zone.Spec.Delegations, zone.Namespace, origin, childFQDN, child.Namespace) {
			log.Info("adopted child zone no longer authorized by delegations, skipping", "zone", child.Name)
			continue
		}
		entries = append(entries, r.nsAndGlue(ctx, log, zone, child, childFQDN)...)
	}

	zonefile.SortEntries(entries)

	newHash := zonefile.ContentHash(zone.Spec, entries)
	oldHash := ""
	if zone.Status.Hash != nil {
		oldHash = *zone.Status.Hash
	}
	var lastSerial uint32
	if zone.Status.Serial != nil {
		lastSerial = *zone.Status.Serial
	}
	serial := zonefile.ComputeSerial(zonefile.Now(), newHash, oldHash, lastSerial)

	soa := zonefile.SOA(origin.String(), serial, zone.Spec)
	fullEntries := append([]v1alpha1.ZoneEntry{soa}, entries...)

	original := zone.DeepCopy()
	zone.Status.Hash = &newHash
	zone.Status.Serial = &serial
	zone.Status.Entries = fullEntries
	gen := zone.GetGeneration()
	zone.Status.ObservedGeneration = &gen
	v1alpha1.SetCondition(&zone.Status.Conditions, gen, metav1.Condition{
		Type:    ZoneConditionAvailable,
		Status:  metav1.ConditionTrue,
		Reason:  ZoneReasonMaterialized,
		Message: ZoneMessageMaterialized,
	})
	if err := r.Status().Patch(ctx, zone, client.MergeFrom(original)); err != nil {
		return ctrl.Result{}, err
	}
	updateZoneStatusMetric(zone.Name, zone.Namespace, "resolved")
	updateZoneSerialMetric(zone.Name, zone.Namespace, serial)

	return ctrl.Result{RequeueAfter: r.requeueDefault()}, nil
}

// nsAndGlue synthesizes the NS record (pointing at the child zone) and any
// matching glue A/AAAA records, per §4.5 step 3.
func (r *ZoneReconciler) nsAndGlue(ctx context.Context, log logr.Logger, zone, child *v1alpha1.Zone, childFQDN domain.Name) []v1alpha1.ZoneEntry {
	childLabel := child.ZoneRefSelf().AsLabel(child.Namespace)

	var childRecords v1alpha1.RecordList
	if err := r.List(ctx, &childRecords, client.MatchingLabels{v1alpha1.ParentZoneLabel: childLabel}); err != nil {
		log.Info("failed to list child zone records for glue synthesis", "zone", child.Name, "error", err.Error())
		return nil
	}

	var out []v1alpha1.ZoneEntry
	nsTargets := map[string]bool{}

	for i := range childRecords.Items {
		rec := &childRecords.Items[i]
		if !rec.Spec.GetClass().IsIN() || !rec.Spec.Type.IsNS() {
			continue
		}
		if rec.Spec.DomainName != "@" && rec.Spec.DomainName != childFQDN.String() {
			continue
		}
		ttl := zone.Spec.GetTTL()
		if rec.Spec.TTL != nil {
			ttl = *rec.Spec.TTL
		}
		out = append(out, v1alpha1.ZoneEntry{
			FQDN:  childFQDN.String(),
			Type:  v1alpha1.RRTypeNS,
			Class: rec.Spec.GetClass(),
			TTL:   ttl,
			RData: rec.Spec.RData,
		})
		nsTargets[rec.Spec.RData] = true
	}

	for i := range childRecords.Items {
		rec := &childRecords.Items[i]
		if !rec.Spec.GetClass().IsIN() || !(rec.Spec.Type.IsA() || rec.Spec.Type.IsAAAA()) {
			continue
		}
		recFQDNStr, ok := rec.FQDN()
		if !ok || !nsTargets[recFQDNStr] {
			continue
		}
		ttl := zone.Spec.GetTTL()
		if rec.Spec.TTL != nil {
			ttl = *rec.Spec.TTL
		}
		out = append(out, v1alpha1.ZoneEntry{
			FQDN:  recFQDNStr,
			Type:  rec.Spec.Type,
			Class: rec.Spec.GetClass(),
			TTL:   ttl,
			RData: rec.Spec.RData,
		})
	}

	return out
}

func (r *ZoneReconciler) requeueDefault() time.Duration {
	if r.RequeueDefault > 0 {
		return r.RequeueDefault
	}
	return 30 * time.Second
}

// SetupWithManager sets up the controller with the Manager. Zones watch
// themselves, and Records/child Zones labeled with a given Zone's canonical
// parent-zone label trigger that Zone's reconcile too, so materialization
// picks up adoption changes without the default requeue interval.
func (r *ZoneReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.Zone{}).
		Watches(&v1alpha1.Record{}, handler.EnqueueRequestsFromMapFunc(r.mapChildToZone)).
		Watches(&v1alpha1.Zone{}, handler.EnqueueRequestsFromMapFunc(r.mapChildToZone)).
		Complete(r)
}

// mapChildToZone implements the reverse-reference resolver of §4.3: given a
// change to a labeled Record or child Zone, enqueue the parent Zone it's
// currently labeled with.
func (r *ZoneReconciler) mapChildToZone(_ context.Context, obj client.Object) []ctrl.Request {
	label, ok := obj.GetLabels()[v1alpha1.ParentZoneLabel]
	if !ok {
		return nil
	}
	ns, name, ok := splitParentLabel(label)
	if !ok {
		return nil
	}
	return []ctrl.Request{{NamespacedName: client.ObjectKey{Namespace: ns, Name: name}}}
}

// splitParentLabel parses a "<namespace>.<name>" canonical label value. Per
// the Open Question in §9, the "." separator is not escaped; this splits on
// the first "." only, which is correct as long as Zone names/namespaces
// themselves avoid ".".
func splitParentLabel(label string) (namespace, name string, ok bool) {
	for i := 0; i < len(label); i++ {
		if label[i] == '.' {
			return label[:i], label[i+1:], true
		}
	}
	return "", "", false
}
