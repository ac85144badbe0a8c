package domain

// Profile holds named default answer text per documentation section.
type Profile struct {
	Name     string            `json:"name"`
	Sections map[string]string `json:"sections,omitempty"`
}

// ProfileConfig is the on-disk shape of the profile store: named profiles
// plus cross-profile global defaults. Whole-file replace semantics; a
// concurrent writer races and the last write wins (acceptable for a
// single-user local tool).
type ProfileConfig struct {
	Profiles       map[string]Profile `json:"profiles,omitempty"`
	GlobalDefaults map[string]string  `json:"global_defaults,omitempty"`
}

// MergeDefaults composes suggested answers from global defaults and one
// profile's sections. Global values fill first, profile values override.
// Pure function of its two inputs; neither map is mutated.
func MergeDefaults(global, profile map[string]string) map[string]string {
	merged := make(map[string]string, len(global)+len(profile))
	for k, v := range global {
		merged[k] = v
	}
	for k, v := range profile {
		merged[k] = v
	}
	return merged
}

// DefaultsFor returns the merged answer defaults for the named profile.
// An unknown profile name yields the global defaults alone.
func (c ProfileConfig) DefaultsFor(name string) map[string]string {
	p, ok := c.Profiles[name]
	if !ok {
		return MergeDefaults(c.GlobalDefaults, nil)
	}
	return MergeDefaults(c.GlobalDefaults, p.Sections)
}
