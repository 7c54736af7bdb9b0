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
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	zoneStatusMetric = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kubizone_zone_status",
			Help: "Resolution status of Zones processed (1 on the series whose status label is the current status)",
		},
		[]string{"name", "namespace", "status"},
	)
	recordStatusMetric = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kubizone_record_status",
			Help: "Resolution status of Records processed (1 on the series whose status label is the current status)",
		},
		[]string{"name", "namespace", "status"},
	)
	zoneSerialMetric = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kubizone_zone_serial",
			Help: "Current materialized serial of each Zone",
		},
		[]string{"name", "namespace"},
	)
)

func init() {
	metrics.Registry.MustRegister(zoneStatusMetric, recordStatusMetric, zoneSerialMetric)
}

func updateZoneStatusMetric(name, namespace, status string) {
	zoneStatusMetric.DeletePartialMatch(map[string]string{"namespace": namespace, "name": name})
	zoneStatusMetric.With(prometheus.Labels{"name": name, "namespace": namespace, "status": status}).Set(1)
}

func updateZoneSerialMetric(name, namespace string, serial uint32) {
	zoneSerialMetric.With(prometheus.Labels{"name": name, "namespace": namespace}).Set(float64(serial))
}

func removeZoneMetrics(name, namespace string) {
	zoneStatusMetric.DeletePartialMatch(map[string]string{"namespace": namespace, "name": name})
	zoneSerialMetric.DeletePartialMatch(map[string]string{"namespace": namespace, "name": name})
}

func updateRecordStatusMetric(name, namespace, status string) {
	recordStatusMetric.DeletePartialMatch(map[string]string{"namespace": namespace, "name": name})
	recordStatusMetric.With(prometheus.Labels{"name": name, "namespace": namespace, "status": status}).Set(1)
}

func removeRecordMetrics(name, namespace string) {
	recordStatusMetric.DeletePartialMatch(map[string]string{"namespace": namespace, "name": name})
}
