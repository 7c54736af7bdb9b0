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
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/kubi-zone/kubizone/api/v1alpha1"
)

var _ = Describe("Zone and Record adoption", func() {

	// Scenario 1: a plain Record, with a zoneRef pointing at a resolved
	// parent Zone and a partial domainName, is adopted and appears in the
	// parent zone's materialized entries.
	It("adopts a Record with a resolved zoneRef into its parent zone's entries", func() {
		zone := newZone("a", "example-com", "example.com.",
			v1alpha1.Delegation{Records: []v1alpha1.RecordDelegation{{Pattern: "*"}}})
		Expect(k8sClient.Create(ctx, zone)).To(Succeed())

		Eventually(func() bool {
			got := &v1alpha1.Zone{}
			if err := k8sClient.Get(ctx, client.ObjectKeyFromObject(zone), got); err != nil {
				return false
			}
			_, ok := got.FQDN()
			return ok
		}).Should(BeTrue())

		record := &v1alpha1.Record{
			ObjectMeta: metav1.ObjectMeta{Namespace: "a", Name: "www"},
			Spec: v1alpha1.RecordSpec{
				DomainName: "www",
				ZoneRef:    &v1alpha1.ZoneRef{Name: "example-com"},
				Type:       v1alpha1.RRTypeA,
				Class:      v1alpha1.RRClassIN,
				RData:      "10.0.0.1",
			},
		}
		Expect(k8sClient.Create(ctx, record)).To(Succeed())

		Eventually(func() bool {
			got := &v1alpha1.Record{}
			if err := k8sClient.Get(ctx, client.ObjectKeyFromObject(record), got); err != nil {
				return false
			}
			fqdn, ok := got.FQDN()
			return ok && fqdn == "www.example.com."
		}).Should(BeTrue())

		Eventually(func() []string {
			got := &v1alpha1.Zone{}
			if err := k8sClient.Get(ctx, client.ObjectKeyFromObject(zone), got); err != nil {
				return nil
			}
			var fqdns []string
			for _, e := range got.Status.Entries {
				fqdns = append(fqdns, fmt.Sprintf("%s/%s", e.FQDN, e.Type))
			}
			return fqdns
		}).Should(ContainElement("www.example.com./A"))
	})

	// Scenario 2: a Record in a foreign namespace, without a namespace
	// delegation, is never adopted; once the zone grants that namespace,
	// the record resolves.
	It("denies cross-namespace adoption until the zone delegates the namespace", func() {
		zone := newZone("local", "internal-example-com", "internal.example.com.")
		Expect(k8sClient.Create(ctx, zone)).To(Succeed())
		Eventually(func() bool {
			got := &v1alpha1.Zone{}
			_ = k8sClient.Get(ctx, client.ObjectKeyFromObject(zone), got)
			_, ok := got.FQDN()
			return ok
		}).Should(BeTrue())

		record := newRecord("foreign", "api", "api.internal.example.com.", v1alpha1.RRTypeA, "10.0.0.2")
		Expect(k8sClient.Create(ctx, record)).To(Succeed())

		Consistently(func() bool {
			got := &v1alpha1.Record{}
			_ = k8sClient.Get(ctx, client.ObjectKeyFromObject(record), got)
			_, hasLabel := got.Labels[v1alpha1.ParentZoneLabel]
			return hasLabel
		}).Should(BeFalse())

		patched := &v1alpha1.Zone{}
		Expect(k8sClient.Get(ctx, client.ObjectKeyFromObject(zone), patched)).To(Succeed())
		patched.Spec.Delegations = []v1alpha1.Delegation{
			{Namespaces: []string{"foreign"}, Records: []v1alpha1.RecordDelegation{{Pattern: "*"}}},
		}
		Expect(k8sClient.Update(ctx, patched)).To(Succeed())

		Eventually(func() bool {
			got := &v1alpha1.Record{}
			if err := k8sClient.Get(ctx, client.ObjectKeyFromObject(record), got); err != nil {
				return false
			}
			label, ok := got.Labels[v1alpha1.ParentZoneLabel]
			return ok && label == "local.internal-example-com"
		}).Should(BeTrue())
	})

	// Scenario 3: a delegation limited to a single record type adopts only
	// matching records; deleting one updates the parent's entries and
	// bumps its serial.
	It("limits adoption by record type and reflects deletions in entries and serial", func() {
		zone := &v1alpha1.Zone{
			ObjectMeta: metav1.ObjectMeta{Namespace: "a", Name: "scoped-example-com"},
			Spec: v1alpha1.ZoneSpec{
				DomainName: "scoped.example.com.",
				Delegations: []v1alpha1.Delegation{
					{Records: []v1alpha1.RecordDelegation{{Pattern: "*", Types: []v1alpha1.RRType{v1alpha1.RRTypeA}}}},
				},
			},
		}
		Expect(k8sClient.Create(ctx, zone)).To(Succeed())
		Eventually(func() bool {
			got := &v1alpha1.Zone{}
			_ = k8sClient.Get(ctx, client.ObjectKeyFromObject(zone), got)
			_, ok := got.FQDN()
			return ok
		}).Should(BeTrue())

		a := &v1alpha1.Record{
			ObjectMeta: metav1.ObjectMeta{Namespace: "a", Name: "scoped-a"},
			Spec: v1alpha1.RecordSpec{
				DomainName: "host", ZoneRef: &v1alpha1.ZoneRef{Name: "scoped-example-com"},
				Type: v1alpha1.RRTypeA, Class: v1alpha1.RRClassIN, RData: "10.0.0.3",
				TTL: ptr.To(uint32(120)),
			},
		}
		txt := &v1alpha1.Record{
			ObjectMeta: metav1.ObjectMeta{Namespace: "a", Name: "scoped-txt"},
			Spec: v1alpha1.RecordSpec{
				DomainName: "host", ZoneRef: &v1alpha1.ZoneRef{Name: "scoped-example-com"},
				Type: "TXT", Class: v1alpha1.RRClassIN, RData: "\"hello\"",
			},
		}
		Expect(k8sClient.Create(ctx, a)).To(Succeed())
		Expect(k8sClient.Create(ctx, txt)).To(Succeed())

		var firstSerial uint32
		Eventually(func() bool {
			got := &v1alpha1.Zone{}
			if err := k8sClient.Get(ctx, client.ObjectKeyFromObject(zone), got); err != nil {
				return false
			}
			has := false
			for _, e := range got.Status.Entries {
				if e.FQDN == "host.scoped.example.com." && e.Type == v1alpha1.RRTypeA {
					has = true
				}
				if e.Type == "TXT" {
					Fail("TXT record should never have been adopted")
				}
			}
			if has && got.Status.Serial != nil {
				firstSerial = *got.Status.Serial
			}
			return has
		}).Should(BeTrue())

		Expect(k8sClient.Delete(ctx, a)).To(Succeed())

		Eventually(func() bool {
			got := &v1alpha1.Zone{}
			if err := k8sClient.Get(ctx, client.ObjectKeyFromObject(zone), got); err != nil {
				return false
			}
			for _, e := range got.Status.Entries {
				if e.FQDN == "host.scoped.example.com." && e.Type == v1alpha1.RRTypeA {
					return false
				}
			}
			return got.Status.Serial != nil && *got.Status.Serial != firstSerial
		}).Should(BeTrue())
	})

	// Scenario 4: with two Zones whose domain names are nested
	// (example.org. and dept.example.org.), a fully-qualified Record
	// matching both adopts under the longest (most specific) suffix.
	It("adopts a fully-qualified Record under the longest-suffix parent", func() {
		anyRecord := v1alpha1.Delegation{Records: []v1alpha1.RecordDelegation{{Pattern: "*"}}}
		parent := newZone("a", "example-org", "example.org.", anyRecord)
		child := newZone("a", "dept-example-org", "dept.example.org.", anyRecord)
		Expect(k8sClient.Create(ctx, parent)).To(Succeed())
		Expect(k8sClient.Create(ctx, child)).To(Succeed())

		for _, z := range []*v1alpha1.Zone{parent, child} {
			zz := z
			Eventually(func() bool {
				got := &v1alpha1.Zone{}
				_ = k8sClient.Get(ctx, client.ObjectKeyFromObject(zz), got)
				_, ok := got.FQDN()
				return ok
			}).Should(BeTrue())
		}

		record := newRecord("a", "host-dept", "host.dept.example.org.", v1alpha1.RRTypeA, "10.0.0.4")
		Expect(k8sClient.Create(ctx, record)).To(Succeed())

		Eventually(func() string {
			got := &v1alpha1.Record{}
			if err := k8sClient.Get(ctx, client.ObjectKeyFromObject(record), got); err != nil {
				return ""
			}
			return got.Labels[v1alpha1.ParentZoneLabel]
		}).Should(Equal("a.dept-example-org"))
	})

	// Scenario 5: a zone publishes two delegations, each scoping its own
	// namespace to its own record pattern. A candidate is authorized when
	// any one delegation matches both its namespace and its name (OR across
	// delegations, AND within one).
	It("authorizes via any one delegation whose namespace and pattern both match", func() {
		zone := &v1alpha1.Zone{
			ObjectMeta: metav1.ObjectMeta{Namespace: "a", Name: "split-example-com"},
			Spec: v1alpha1.ZoneSpec{
				DomainName: "split.example.com.",
				Delegations: []v1alpha1.Delegation{
					{Namespaces: []string{"dev"}, Records: []v1alpha1.RecordDelegation{{Pattern: "*.dev"}}},
					{Namespaces: []string{"prod"}, Records: []v1alpha1.RecordDelegation{{Pattern: "*"}}},
				},
			},
		}
		Expect(k8sClient.Create(ctx, zone)).To(Succeed())
		Eventually(func() bool {
			got := &v1alpha1.Zone{}
			_ = k8sClient.Get(ctx, client.ObjectKeyFromObject(zone), got)
			_, ok := got.FQDN()
			return ok
		}).Should(BeTrue())

		// In "prod" namespace: the prod delegation covers the namespace and
		// its "*" pattern matches the single relative label "svc"; the dev
		// delegation covers neither.
		record := newRecord("prod", "svc", "svc.split.example.com.", v1alpha1.RRTypeA, "10.0.0.5")
		Expect(k8sClient.Create(ctx, record)).To(Succeed())

		Eventually(func() string {
			got := &v1alpha1.Record{}
			if err := k8sClient.Get(ctx, client.ObjectKeyFromObject(record), got); err != nil {
				return ""
			}
			return got.Labels[v1alpha1.ParentZoneLabel]
		}).Should(Equal("a.split-example-com"))
	})

	// Scenario 6: withdrawing a delegation orphans previously-adopted
	// records; materialization must drop them from entries on next
	// reconcile without requiring the record itself to change.
	It("drops a previously-adopted Record from entries once its delegation is withdrawn", func() {
		zone := &v1alpha1.Zone{
			ObjectMeta: metav1.ObjectMeta{Namespace: "dev", Name: "withdraw-example-com"},
			Spec: v1alpha1.ZoneSpec{
				DomainName:  "withdraw.example.com.",
				Delegations: []v1alpha1.Delegation{{Namespaces: []string{"dev"}, Records: []v1alpha1.RecordDelegation{{Pattern: "*"}}}},
			},
		}
		Expect(k8sClient.Create(ctx, zone)).To(Succeed())
		Eventually(func() bool {
			got := &v1alpha1.Zone{}
			_ = k8sClient.Get(ctx, client.ObjectKeyFromObject(zone), got)
			_, ok := got.FQDN()
			return ok
		}).Should(BeTrue())

		record := &v1alpha1.Record{
			ObjectMeta: metav1.ObjectMeta{Namespace: "dev", Name: "withdraw-host"},
			Spec: v1alpha1.RecordSpec{
				DomainName: "host", ZoneRef: &v1alpha1.ZoneRef{Name: "withdraw-example-com"},
				Type: v1alpha1.RRTypeA, Class: v1alpha1.RRClassIN, RData: "10.0.0.6",
			},
		}
		Expect(k8sClient.Create(ctx, record)).To(Succeed())

		Eventually(func() bool {
			got := &v1alpha1.Zone{}
			if err := k8sClient.Get(ctx, client.ObjectKeyFromObject(zone), got); err != nil {
				return false
			}
			for _, e := range got.Status.Entries {
				if e.FQDN == "host.withdraw.example.com." {
					return true
				}
			}
			return false
		}).Should(BeTrue())

		patched := &v1alpha1.Zone{}
		Expect(k8sClient.Get(ctx, client.ObjectKeyFromObject(zone), patched)).To(Succeed())
		patched.Spec.Delegations = nil
		Expect(k8sClient.Update(ctx, patched)).To(Succeed())

		Eventually(func() bool {
			got := &v1alpha1.Zone{}
			if err := k8sClient.Get(ctx, client.ObjectKeyFromObject(zone), got); err != nil {
				return false
			}
			for _, e := range got.Status.Entries {
				if e.FQDN == "host.withdraw.example.com." {
					return false
				}
			}
			return true
		}).Should(BeTrue())
	})

	// Scenario 7: deleting a parent Zone leaves its formerly-adopted
	// Record intact (no cascading delete); the record's parent-zone label
	// is cleared on the next reconcile and its status.fqdn is retained
	// verbatim, since only the adoption, not the name itself, depended on
	// the parent. The record uses a fully-qualified domainName (no
	// zoneRef), matching the original implementation's equivalent test:
	// only resolveFullyQualified's best==nil branch clears the
	// parent-zone label once no candidate parent remains — the zoneRef
	// path instead keeps requeueing against a now-missing parent and
	// never clears the label, so it can't exercise this invariant.
	It("leaves an adopted Record orphaned, not deleted, after its parent Zone is removed", func() {
		zone := newZone("a", "doomed-example-com", "doomed.example.com.",
			v1alpha1.Delegation{Records: []v1alpha1.RecordDelegation{{Pattern: "*"}}})
		Expect(k8sClient.Create(ctx, zone)).To(Succeed())
		Eventually(func() bool {
			got := &v1alpha1.Zone{}
			_ = k8sClient.Get(ctx, client.ObjectKeyFromObject(zone), got)
			_, ok := got.FQDN()
			return ok
		}).Should(BeTrue())

		record := newRecord("a", "doomed-host", "host.doomed.example.com.", v1alpha1.RRTypeA, "10.0.0.7")
		Expect(k8sClient.Create(ctx, record)).To(Succeed())

		Eventually(func() bool {
			got := &v1alpha1.Record{}
			if err := k8sClient.Get(ctx, client.ObjectKeyFromObject(record), got); err != nil {
				return false
			}
			label, hasLabel := got.Labels[v1alpha1.ParentZoneLabel]
			return hasLabel && label == "a.doomed-example-com"
		}).Should(BeTrue())

		Expect(k8sClient.Delete(ctx, zone)).To(Succeed())

		Eventually(func() error {
			return k8sClient.Get(ctx, client.ObjectKeyFromObject(zone), &v1alpha1.Zone{})
		}).ShouldNot(Succeed())

		Consistently(func() error {
			return k8sClient.Get(ctx, types.NamespacedName{Namespace: "a", Name: "doomed-host"}, &v1alpha1.Record{})
		}).Should(Succeed())

		Eventually(func() bool {
			got := &v1alpha1.Record{}
			if err := k8sClient.Get(ctx, types.NamespacedName{Namespace: "a", Name: "doomed-host"}, got); err != nil {
				return false
			}
			_, hasLabel := got.Labels[v1alpha1.ParentZoneLabel]
			return !hasLabel
		}).Should(BeTrue())

		final := &v1alpha1.Record{}
		Expect(k8sClient.Get(ctx, types.NamespacedName{Namespace: "a", Name: "doomed-host"}, final)).To(Succeed())
		fqdn, ok := final.FQDN()
		Expect(ok).To(BeTrue())
		Expect(fqdn).To(Equal("host.doomed.example.com."))
	})
})
