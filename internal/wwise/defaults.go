package wwise

// Canonical locations of the always-present platform objects.
const (
	DefaultAssetParent    = `\Actor-Mixer Hierarchy\Default Work Unit`
	DefaultBusParent      = `\Master-Mixer Hierarchy\Default Work Unit\Master Audio Bus`
	DefaultEventParent    = `\Events\Default Work Unit`
	DefaultSwitchParent   = `\Switches\Default Work Unit`
	DefaultStateParent    = `\States\Default Work Unit`
	DefaultRTPCParent     = `\Game Parameters\Default Work Unit`
	DefaultEffectParent   = `\Effects\Default Work Unit`
	DefaultAttenuationWU  = `\Attenuations\Default Work Unit`
	ActorMixerHierarchy   = `Actor-Mixer Hierarchy`
	MasterMixerHierarchy  = `Master-Mixer Hierarchy`
	AttenuationsHierarchy = `Attenuations`
)

// DefaultParent returns the canonical location an object of kind k lands in
// when its declared parent is an alias like "Default Work Unit" or "Root".
func DefaultParent(k Kind) string {
	switch k {
	case KindBus, KindAuxBus:
		return DefaultBusParent
	case KindSwitchGroup, KindSwitch:
		return DefaultSwitchParent
	case KindStateGroup, KindState:
		return DefaultStateParent
	case KindGameParameter:
		return DefaultRTPCParent
	case KindEvent:
		return DefaultEventParent
	case KindEffect, KindAcousticTexture:
		return DefaultEffectParent
	}
	return DefaultAssetParent
}

// HierarchyKeyword returns the hierarchy name a registry candidate path must
// contain to be a plausible parent for an object of kind k. Empty means no
// filter applies.
func HierarchyKeyword(k Kind) string {
	switch k {
	case KindActorMixer, KindSound, KindRandomSequenceContainer,
		KindSwitchContainer, KindBlendContainer:
		return "Actor-Mixer Hierarchy"
	case KindEvent:
		return "Events"
	case KindBus, KindAuxBus:
		return "Master-Mixer Hierarchy"
	case KindGameParameter:
		return "Game Parameters"
	case KindSwitchGroup, KindSwitch:
		return "Switches"
	case KindStateGroup, KindState:
		return "States"
	}
	return ""
}

// ReferenceHierarchy returns the hierarchy a bare-name link target for the
// given canonical slot is expected to live in. Empty means no hint.
func ReferenceHierarchy(slot string) string {
	switch slot {
	case "OutputBus", "UserAuxSend0", "UserAuxSend1":
		return "Master-Mixer Hierarchy"
	case "Attenuation":
		return "Attenuations"
	case "SwitchGroupOrStateGroup":
		return "Switches"
	case "StateGroup":
		return "States"
	case "GameParameter":
		return "Game Parameters"
	}
	return ""
}

// PropertyWhitelist is the set of properties the reverse compiler emits and
// the validator recognizes without complaint.
var PropertyWhitelist = map[string]bool{
	"Volume":   true,
	"Pitch":    true,
	"Lowpass":  true,
	"Highpass": true,

	"InitialValue": true,
	"MinValue":     true,
	"MaxValue":     true,

	"OverrideOutput":       true,
	"OverridePositioning":  true,
	"OverrideGameAuxSends": true,

	"MakeUpGain":        true,
	"BusVolume":         true,
	"InitialDelay":      true,
	"IsLoopingEnabled":  true,
	"IsLoopingInfinite": true,
	"Inclusion":         true,
	"Color":             true,
	"Priority":          true,
}

// propertyDefaults lists platform default values the reverse compiler skips
// to keep samples minimal.
var propertyDefaults = map[string]string{
	"Volume":           "0",
	"Pitch":            "0",
	"Lowpass":          "0",
	"Highpass":         "0",
	"InitialValue":     "0",
	"Priority":         "50",
	"IsLoopingEnabled": "False",
	"Inclusion":        "True",
}

// IsDefaultPropertyValue reports whether value is the platform default for
// the named property.
func IsDefaultPropertyValue(name, value string) bool {
	return propertyDefaults[name] == value
}

// SystemObjectNames returns the names of platform objects that exist in every
// project. The validator seeds its known-object set with them.
func SystemObjectNames() []string {
	return []string{
		"Master Audio Bus", "Master", "Root",
		"Default Work Unit", "Default Conversion Settings",
		"Master-Mixer Hierarchy", "Actor-Mixer Hierarchy",
		"Events", "Switches", "States", "Game Parameters",
		"Attenuations", "Effects",
	}
}

// ImplicitRouteTarget is the bus every object routes to unless overridden;
// links to it are implied and never emitted by the reverse compiler.
const ImplicitRouteTarget = "Master Audio Bus"

// SkippedDefaultNames are always-present objects the reverse compiler never
// emits a CREATE for.
var SkippedDefaultNames = map[string]bool{
	"Default Work Unit":      true,
	"Master Audio Bus":       true,
	"Master-Mixer Hierarchy": true,
}
