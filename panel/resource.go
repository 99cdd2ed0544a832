// ABOUTME: Defines the fixed ordered set of configuration resource categories served by the backend.
// ABOUTME: Each category carries a machine key, a display label, and the singular path form used by the content endpoint.
package panel

// ResourceType identifies one of the five configuration resource categories.
// The zero value is ClassPlans, the first category in display order.
type ResourceType int

const (
	ClassPlans ResourceType = iota
	TimeLayouts
	SubjectsSource
	DefaultSettingsSource
	PolicySource
)

// ResourceTypes lists all categories in display order. The slice index of a
// category equals its ResourceType value.
var ResourceTypes = []ResourceType{
	ClassPlans,
	TimeLayouts,
	SubjectsSource,
	DefaultSettingsSource,
	PolicySource,
}

var resourceKeys = map[ResourceType]string{
	ClassPlans:            "ClassPlans",
	TimeLayouts:           "TimeLayouts",
	SubjectsSource:        "SubjectsSource",
	DefaultSettingsSource: "DefaultSettingsSource",
	PolicySource:          "PolicySource",
}

var resourceLabels = map[ResourceType]string{
	ClassPlans:            "Class Plans",
	TimeLayouts:           "Time Layouts",
	SubjectsSource:        "Subjects",
	DefaultSettingsSource: "Default Settings",
	PolicySource:          "Policies",
}

// Key returns the machine key used in backend URL paths.
func (rt ResourceType) Key() string {
	return resourceKeys[rt]
}

// Label returns the human-readable display label.
func (rt ResourceType) Label() string {
	return resourceLabels[rt]
}

// Singular returns the key with its trailing character removed. The content
// endpoint addresses a category by this form. The strip is a fixed wire
// convention the backend expects, not general pluralization: PolicySource
// becomes PolicySourc.
func (rt ResourceType) Singular() string {
	key := rt.Key()
	if key == "" {
		return ""
	}
	return key[:len(key)-1]
}

// String returns the machine key.
func (rt ResourceType) String() string {
	return rt.Key()
}

// ResourceTypeFromKey resolves a machine key back to its ResourceType.
// Returns false for unknown keys.
func ResourceTypeFromKey(key string) (ResourceType, bool) {
	for rt, k := range resourceKeys {
		if k == key {
			return rt, true
		}
	}
	return 0, false
}

// ResourceTypeFromSingular resolves a singular path form back to its
// ResourceType. Returns false for unknown forms.
func ResourceTypeFromSingular(singular string) (ResourceType, bool) {
	for _, rt := range ResourceTypes {
		if rt.Singular() == singular {
			return rt, true
		}
	}
	return 0, false
}
