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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/kubi-zone/kubizone/api/v1alpha1"
)

// These specs cover the Ingress-to-Record bridge: a reconciled Ingress with
// observed load-balancer addresses and host rules gets one owned Record per
// (hostname, address) pair, and reconciling the same Ingress again doesn't
// create duplicates.
var _ = Describe("Ingress record bridge", func() {
	It("creates owned A/AAAA records from an Ingress's load-balancer status, idempotently", func() {
		ingress := &networkingv1.Ingress{
			ObjectMeta: metav1.ObjectMeta{Namespace: "local", Name: "bridge-ingress"},
			Spec: networkingv1.IngressSpec{
				Rules: []networkingv1.IngressRule{
					{Host: "bridge.example.com"},
				},
			},
		}
		Expect(k8sClient.Create(ctx, ingress)).To(Succeed())

		ingress.Status = networkingv1.IngressStatus{
			LoadBalancer: networkingv1.IngressLoadBalancerStatus{
				Ingress: []networkingv1.IngressLoadBalancerIngress{
					{IP: "203.0.113.9"},
					{IP: "2001:db8::9"},
				},
			},
		}
		Expect(k8sClient.Status().Update(ctx, ingress)).To(Succeed())

		var records v1alpha1.RecordList
		Eventually(func() int {
			if err := k8sClient.List(ctx, &records, client.InNamespace("local")); err != nil {
				return 0
			}
			return len(records.Items)
		}).Should(Equal(2))

		byType := map[v1alpha1.RRType]v1alpha1.Record{}
		for _, rec := range records.Items {
			byType[rec.Spec.Type] = rec
		}

		a, ok := byType[v1alpha1.RRTypeA]
		Expect(ok).To(BeTrue())
		Expect(a.Spec.DomainName).To(Equal("bridge.example.com."))
		Expect(a.Spec.RData).To(Equal("203.0.113.9"))

		aaaa, ok := byType[v1alpha1.RRTypeAAAA]
		Expect(ok).To(BeTrue())
		Expect(aaaa.Spec.DomainName).To(Equal("bridge.example.com."))
		Expect(aaaa.Spec.RData).To(Equal("2001:db8::9"))

		for _, rec := range []v1alpha1.Record{a, aaaa} {
			owners := rec.GetOwnerReferences()
			Expect(owners).To(HaveLen(1))
			Expect(owners[0].Name).To(Equal("bridge-ingress"))
			Expect(owners[0].Kind).To(Equal("Ingress"))
			Expect(owners[0].Controller).NotTo(BeNil())
			Expect(*owners[0].Controller).To(BeTrue())
		}

		// Writing the same observed state again must not create duplicates.
		// The bridge also runs again whenever one of its owned Records
		// changes, so the count is held over a window.
		again := ingress.DeepCopy()
		again.Status.LoadBalancer.Ingress[0].IP = "203.0.113.9"
		Expect(k8sClient.Status().Update(ctx, again)).To(Succeed())

		Consistently(func() int {
			if err := k8sClient.List(ctx, &records, client.InNamespace("local")); err != nil {
				return -1
			}
			return len(records.Items)
		}).Should(Equal(2))
	})
})
