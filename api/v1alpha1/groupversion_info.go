// Package v1alpha1 contains API Schema definitions for the kubi.zone v1alpha1 API group.
// +kubebuilder:object:generate=true
// +groupName=kubi.zone
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

var (
	// GroupVersion is group version used to register these objects.
	GroupVersion = schema.GroupVersion{Group: "kubi.zone", Version: "v1alpha1"}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme.
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

	// AddToScheme adds the types in this group-version to the given scheme.
	AddToScheme = SchemeBuilder.AddToScheme
)

// ParentZoneLabel is the metadata label a Zone or Record's current adopting
// Zone is recorded under. Its value is the adopting Zone's canonical label,
// see ZoneRef.AsLabel.
const ParentZoneLabel = "kubi.zone/parent-zone"
