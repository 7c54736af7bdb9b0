/*
 * Software Name : kubizone
 *
 * SPDX-FileCopyrightText: Copyright (c) kubizone contributors
 * SPDX-License-Identifier: Apache-2.0
 *
 * This software is distributed under the Apache 2.0 License,
 * see the "LICENSE" file for more details
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	_ "k8s.io/client-go/plugin/pkg/client/auth"

	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	"github.com/kubi-zone/kubizone/api/v1alpha1"
	"github.com/kubi-zone/kubizone/internal/controller"
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(v1alpha1.AddToScheme(scheme))
}

func main() {
	var metricsAddr string
	var probeAddr string
	var enableLeaderElection bool

	requeueTimeSecs := 30
	if v := os.Getenv("REQUEUE_TIME_SECS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			requeueTimeSecs = parsed
		}
	}
	ingressRecordCreation := false
	if v := os.Getenv("INGRESS_RECORD_CREATION"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			ingressRecordCreation = parsed
		}
	}

	flag.StringVar(&metricsAddr, "metrics-bind-address", ":8080", "The address the metric endpoint binds to.")
	flag.StringVar(&probeAddr, "health-probe-bind-address", ":8081", "The address the probe endpoint binds to.")
	flag.BoolVar(&enableLeaderElection, "leader-elect", false,
		"Enable leader election for controller manager. Enabling this will ensure there is only one active controller manager.")
	flag.IntVar(&requeueTimeSecs, "requeue-time-secs", requeueTimeSecs,
		"Default requeue interval in seconds for the record and zone resolvers.")
	flag.BoolVar(&ingressRecordCreation, "ingress-record-creation", ingressRecordCreation,
		"Enable the best-effort Ingress to Record bridge.")

	opts := zap.Options{Development: false}
	opts.BindFlags(flag.CommandLine)

	// The single subcommand is "reconcile"; flags follow it.
	if len(os.Args) < 2 || os.Args[1] != "reconcile" {
		fmt.Fprintf(os.Stderr, "usage: %s reconcile [flags]\n", os.Args[0])
		os.Exit(2)
	}
	_ = flag.CommandLine.Parse(os.Args[2:])

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	requeueTime := time.Duration(requeueTimeSecs) * time.Second
	setupLog.Info("default requeue interval", "seconds", requeueTimeSecs)

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), ctrl.Options{
		Scheme: scheme,
		Metrics: metricsserver.Options{
			BindAddress: metricsAddr,
		},
		HealthProbeBindAddress: probeAddr,
		LeaderElection:         enableLeaderElection,
		LeaderElectionID:       "kubizone.kubi.zone",
	})
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		os.Exit(1)
	}

	if err = (&controller.ZoneReconciler{
		Client:         mgr.GetClient(),
		RequeueDefault: requeueTime,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "Zone")
		os.Exit(1)
	}
	if err = (&controller.RecordReconciler{
		Client:         mgr.GetClient(),
		RequeueDefault: requeueTime,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "Record")
		os.Exit(1)
	}
	if ingressRecordCreation {
		if err = (&controller.IngressReconciler{
			Client: mgr.GetClient(),
			Scheme: mgr.GetScheme(),
		}).SetupWithManager(mgr); err != nil {
			setupLog.Error(err, "unable to create controller", "controller", "Ingress")
			os.Exit(1)
		}
	}

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up health check")
		os.Exit(1)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up ready check")
		os.Exit(1)
	}

	setupLog.Info("starting manager")
	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "problem running manager")
		os.Exit(1)
	}
}
