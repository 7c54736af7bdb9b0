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

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/kubi-zone/kubizone/api/v1alpha1"
	"github.com/kubi-zone/kubizone/internal/delegation"
	"github.com/kubi-zone/kubizone/internal/domain"
)

const (
	RecordConditionAvailable = "Available"
	RecordReasonResolved     = "Resolved"
	RecordMessageResolved    = "fqdn resolved and adopted by a parent zone"

	// RecordMetricsFinalizer delays a Record's removal from the API server
	// just long enough to drop its published metrics series, mirroring the
	// teacher's METRICS_FINALIZER_NAME use in its rrset_controller.go.
	RecordMetricsFinalizer = "kubi.zone/metrics-finalizer"
)

// RecordReconciler reconciles a Record object per §4.4's decision matrix.
type RecordReconciler struct {
	client.Client
	RequeueDefault time.Duration
}

// +kubebuilder:rbac:groups=kubi.zone,resources=records,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=kubi.zone,resources=records/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=kubi.zone,resources=records/finalizers,verbs=update
// +kubebuilder:rbac:groups=kubi.zone,resources=zones,verbs=get;list;watch

func (r *RecordReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	log := log.FromContext(ctx).WithName(RecordResolverName())
	log.V(1).Info("reconciling record", "record", req.NamespacedName)

	record := &v1alpha1.Record{}
	if err := r.Get(ctx, req.NamespacedName, record); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	isDeleted := !record.DeletionTimestamp.IsZero()

	if !isDeleted {
		if !controllerutil.ContainsFinalizer(record, RecordMetricsFinalizer) {
			controllerutil.AddFinalizer(record, RecordMetricsFinalizer)
			if err := r.Update(ctx, record); err != nil {
				return ctrl.Result{}, err
			}
		}
	} else {
		if controllerutil.ContainsFinalizer(record, RecordMetricsFinalizer) {
			removeRecordMetrics(record.Name, record.Namespace)
			controllerutil.RemoveFinalizer(record, RecordMetricsFinalizer)
			if err := r.Update(ctx, record); err != nil {
				return ctrl.Result{}, err
			}
		}
		return ctrl.Result{}, nil
	}

	authorize := func(parent *v1alpha1.Zone, candidate domain.Name, candidateNamespace string) bool {
		parentFQDNStr, ok := parent.FQDN()
		if !ok {
			return false
		}
		return delegation.AuthorizeRecord(parent.Spec.Delegations, parent.Namespace, domain.MustParse(parentFQDNStr), candidate, record.Spec.Type, candidateNamespace)
	}

	placement, err := resolvePlacement(ctx, r.Client, log, record, authorize)
	if err != nil {
		return ctrl.Result{}, err
	}
	if !placement.Resolved {
		return placement.Result, nil
	}

	original := record.DeepCopy()
	gen := record.GetGeneration()
	record.Status.ObservedGeneration = &gen
	v1alpha1.SetCondition(&record.Status.Conditions, gen, metav1.Condition{
		Type:    RecordConditionAvailable,
		Status:  metav1.ConditionTrue,
		Reason:  RecordReasonResolved,
		Message: RecordMessageResolved,
	})
	if err := r.Status().Patch(ctx, record, client.MergeFrom(original)); err != nil {
		return ctrl.Result{}, err
	}
	updateRecordStatusMetric(record.Name, record.Namespace, "resolved")

	return ctrl.Result{RequeueAfter: r.requeueDefault()}, nil
}

func (r *RecordReconciler) requeueDefault() time.Duration {
	if r.RequeueDefault > 0 {
		return r.RequeueDefault
	}
	return 30 * time.Second
}

// SetupWithManager sets up the controller with the Manager.
func (r *RecordReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.Record{}).
		Complete(r)
}
