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
	"net/netip"
	"strings"

	networkingv1 "k8s.io/api/networking/v1"
	"k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/kubi-zone/kubizone/api/v1alpha1"
)

// IngressReconciler is the best-effort Ingress→Record bridge: it derives
// A/AAAA Records from an Ingress's observed load-balancer addresses, one per
// (hostname, address) pair. It never reconciles deletions beyond the normal
// owner-reference cascade, and it is a pure creator — it does not adopt or
// patch Records it didn't itself create.
type IngressReconciler struct {
	client.Client
	Scheme *runtime.Scheme
}

// +kubebuilder:rbac:groups=networking.k8s.io,resources=ingresses,verbs=get;list;watch
// +kubebuilder:rbac:groups=kubi.zone,resources=records,verbs=get;list;watch;create

func (r *IngressReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	log := log.FromContext(ctx).WithName("ingress-bridge")

	ingress := &networkingv1.Ingress{}
	if err := r.Get(ctx, req.NamespacedName, ingress); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	if len(ingress.Status.LoadBalancer.Ingress) == 0 || len(ingress.Spec.Rules) == 0 {
		return ctrl.Result{}, nil
	}

	var v4, v6 []string
	for _, lb := range ingress.Status.LoadBalancer.Ingress {
		if lb.IP == "" {
			continue
		}
		addr, err := netip.ParseAddr(lb.IP)
		if err != nil {
			continue
		}
		if addr.Is4() {
			v4 = append(v4, addr.String())
		} else {
			v6 = append(v6, addr.String())
		}
	}

	for _, rule := range ingress.Spec.Rules {
		if rule.Host == "" {
			continue
		}
		hostname := rule.Host + "."

		for _, addr := range v4 {
			if err := r.ensureRecord(ctx, log, ingress, hostname, v1alpha1.RRTypeA, addr); err != nil {
				return ctrl.Result{}, err
			}
		}
		for _, addr := range v6 {
			if err := r.ensureRecord(ctx, log, ingress, hostname, v1alpha1.RRTypeAAAA, addr); err != nil {
				return ctrl.Result{}, err
			}
		}
	}

	return ctrl.Result{}, nil
}

func (r *IngressReconciler) ensureRecord(ctx context.Context, log interface {
	Info(string, ...any)
}, ingress *networkingv1.Ingress, hostname string, rrType v1alpha1.RRType, addr string) error {
	name := recordName(ingress.Name, hostname, addr)

	record := &v1alpha1.Record{}
	err := r.Get(ctx, client.ObjectKey{Namespace: ingress.Namespace, Name: name}, record)
	if err == nil {
		return nil // already exists, idempotent no-op
	}
	if !errors.IsNotFound(err) {
		return fmt.Errorf("getting record %s/%s: %w", ingress.Namespace, name, err)
	}

	record = &v1alpha1.Record{}
	record.Namespace = ingress.Namespace
	record.Name = name
	record.Spec = v1alpha1.RecordSpec{
		DomainName: hostname,
		Type:       rrType,
		Class:      v1alpha1.RRClassIN,
		RData:      addr,
	}
	if err := ctrl.SetControllerReference(ingress, record, r.Scheme); err != nil {
		return fmt.Errorf("setting owner reference: %w", err)
	}

	if err := r.Create(ctx, record); err != nil {
		if errors.IsAlreadyExists(err) {
			return nil
		}
		return fmt.Errorf("creating record %s/%s: %w", ingress.Namespace, name, err)
	}
	log.Info("created record from ingress", "record", name, "hostname", hostname, "address", addr)
	return nil
}

// recordName derives a deterministic Record name from the owning Ingress,
// the hostname, and the address, so repeated reconciles of the same Ingress
// are idempotent under the resource store's "already exists" semantics.
func recordName(ingressName, hostname, addr string) string {
	return fmt.Sprintf("%s-%s-%s", ingressName, dashed(strings.TrimSuffix(hostname, ".")), dashed(addr))
}

func dashed(s string) string {
	return strings.NewReplacer(".", "-", ":", "-").Replace(s)
}

// SetupWithManager sets up the controller with the Manager. Registration is
// conditional on --ingress-record-creation; see cmd/main.go.
func (r *IngressReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&networkingv1.Ingress{}).
		Owns(&v1alpha1.Record{}).
		Complete(r)
}
