package wwise

// Kind is the canonical category of an object in the project tree.
type Kind string

const (
	KindActorMixer              Kind = "ActorMixer"
	KindRandomSequenceContainer Kind = "RandomSequenceContainer"
	KindSwitchContainer         Kind = "SwitchContainer"
	KindBlendContainer          Kind = "BlendContainer"
	KindFolder                  Kind = "Folder"
	KindWorkUnit                Kind = "WorkUnit"
	KindSound                   Kind = "Sound"
	KindBus                     Kind = "Bus"
	KindAuxBus                  Kind = "AuxBus"
	KindEvent                   Kind = "Event"
	KindAction                  Kind = "Action"
	KindSwitchGroup             Kind = "SwitchGroup"
	KindSwitch                  Kind = "Switch"
	KindStateGroup              Kind = "StateGroup"
	KindState                   Kind = "State"
	KindGameParameter           Kind = "GameParameter"
	KindEffect                  Kind = "Effect"
	KindAttenuation             Kind = "Attenuation"
	KindAcousticTexture         Kind = "AcousticTexture"
)

// containerKinds are the kinds the ambiguity tie-break prefers when a name
// resolves to several paths: anything that can hold children.
var containerKinds = map[Kind]bool{
	KindActorMixer:              true,
	KindRandomSequenceContainer: true,
	KindSwitchContainer:         true,
	KindBlendContainer:          true,
	KindFolder:                  true,
	KindWorkUnit:                true,
	KindBus:                     true,
	KindAuxBus:                  true,
}

// assetKinds are the kinds the target platform refuses to place directly
// under a plain filesystem folder.
var assetKinds = map[Kind]bool{
	KindActorMixer:              true,
	KindSound:                   true,
	KindRandomSequenceContainer: true,
	KindSwitchContainer:         true,
	KindBlendContainer:          true,
}

// IsContainerKind reports whether k can hold children in the object tree.
func IsContainerKind(k Kind) bool { return containerKinds[k] }

// IsAssetKind reports whether k is an asset-hierarchy object that must live
// inside a logical work unit rather than a plain folder.
func IsAssetKind(k Kind) bool { return assetKinds[k] }

// LegalParentKinds returns the whitelist of kinds an object of kind k may be
// created under, or nil when no whitelist is known. The list drives the typed
// query fallback when a parent name cannot be resolved locally.
func LegalParentKinds(k Kind) []Kind {
	switch k {
	case KindActorMixer, KindSound, KindRandomSequenceContainer,
		KindSwitchContainer, KindBlendContainer, KindFolder, KindWorkUnit:
		return []Kind{KindWorkUnit, KindFolder, KindActorMixer,
			KindRandomSequenceContainer, KindSwitchContainer, KindBlendContainer}
	case KindEvent:
		return []Kind{KindWorkUnit, KindFolder}
	case KindBus, KindAuxBus:
		return []Kind{KindWorkUnit, KindFolder, KindBus, KindAuxBus}
	case KindGameParameter:
		return []Kind{KindWorkUnit, KindFolder}
	case KindSwitchGroup, KindSwitch:
		return []Kind{KindWorkUnit, KindFolder, KindSwitchGroup}
	case KindStateGroup, KindState:
		return []Kind{KindWorkUnit, KindFolder, KindStateGroup}
	}
	return nil
}
