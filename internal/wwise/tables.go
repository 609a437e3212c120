package wwise

import "strings"

// typeTable maps every accepted spelling of an object type, including the
// synonyms upstream text generators tend to produce, onto its canonical kind.
var typeTable = map[string]Kind{
	// containers
	"Actor-Mixer":               KindActorMixer,
	"ActorMixer":                KindActorMixer,
	"Random Sequence Container": KindRandomSequenceContainer,
	"RandomSequenceContainer":   KindRandomSequenceContainer,
	"RandomContainer":           KindRandomSequenceContainer,
	"SequenceContainer":         KindRandomSequenceContainer,
	"Switch Container":          KindSwitchContainer,
	"SwitchContainer":           KindSwitchContainer,
	"Blend Container":           KindBlendContainer,
	"BlendContainer":            KindBlendContainer,
	"Folder":                    KindFolder,

	// logic
	"Switch Group":   KindSwitchGroup,
	"SwitchGroup":    KindSwitchGroup,
	"Switch":         KindSwitch,
	"State Group":    KindStateGroup,
	"StateGroup":     KindStateGroup,
	"State":          KindState,
	"Game Parameter": KindGameParameter,
	"GameParameter":  KindGameParameter,
	"RTPC":           KindGameParameter,
	"Work Unit":      KindWorkUnit,
	"WorkUnit":       KindWorkUnit,

	// core assets
	"Event":        KindEvent,
	"Sound":        KindSound,
	"SoundSFX":     KindSound,
	"SoundVoice":   KindSound,
	"Bus":          KindBus,
	"AudioBus":     KindBus,
	"Aux Bus":      KindAuxBus,
	"AuxBus":       KindAuxBus,
	"AuxiliaryBus": KindAuxBus,
	"Action":       KindAction,

	// effects and parameters
	"Effect":          KindEffect,
	"AcousticTexture": KindAcousticTexture,
	"Attenuation":     KindAttenuation,
}

// NormalizeType maps a DSL type token to its canonical kind. Unknown tokens
// are returned unchanged with ok=false; the caller decides whether to warn.
func NormalizeType(token string) (kind Kind, ok bool) {
	if k, found := typeTable[token]; found {
		return k, true
	}
	return Kind(token), false
}

// referenceTable maps DSL reference-slot spellings onto the canonical slot
// names the remote API understands.
var referenceTable = map[string]string{
	"OutputBus":               "OutputBus",
	"Bus":                     "OutputBus",
	"Target":                  "Target",
	"SwitchGroupOrStateGroup": "SwitchGroupOrStateGroup",
	"SwitchGroup":             "SwitchGroupOrStateGroup",
	"StateGroup":              "StateGroup",
	"Attenuation":             "Attenuation",
	"Effect0":                 "Effect0",
	"Effect1":                 "Effect1",
	"Effect2":                 "Effect2",
	"Effect3":                 "Effect3",
	"GameParameter":           "GameParameter",
	"Conversion":              "Conversion",
	"UserAuxSend0":            "UserAuxSend0",
	"UserAuxSend1":            "UserAuxSend1",
}

// NormalizeReference maps a DSL reference-slot token to its canonical slot
// name. Unknown tokens are returned unchanged with ok=false.
func NormalizeReference(token string) (slot string, ok bool) {
	if s, found := referenceTable[token]; found {
		return s, true
	}
	return token, false
}

// dslReferenceAlias maps the reference names found in project XML back to the
// spelling the DSL grammar uses. OutputBus deliberately round-trips through
// the short "Bus" alias.
var dslReferenceAlias = map[string]string{
	"OutputBus":               "Bus",
	"Attenuation":             "Attenuation",
	"UserAuxSend0":            "UserAuxSend0",
	"UserAuxSend1":            "UserAuxSend1",
	"Effect0":                 "Effect0",
	"Effect1":                 "Effect1",
	"Effect2":                 "Effect2",
	"Effect3":                 "Effect3",
	"Conversion":              "Conversion",
	"SwitchGroupOrStateGroup": "SwitchGroupOrStateGroup",
	"StateGroup":              "StateGroup",
	"GameParameter":           "GameParameter",
}

// DSLReferenceAlias returns the DSL spelling for a project-side reference
// name. Unlisted Effect-family slots pass through under their own name.
func DSLReferenceAlias(refName string) (string, bool) {
	if alias, ok := dslReferenceAlias[refName]; ok {
		return alias, true
	}
	if strings.Contains(refName, "Effect") {
		return refName, true
	}
	return refName, false
}

// actionTypeCodes maps lower-case event action keywords to the numeric codes
// the remote API expects in the @ActionType field.
var actionTypeCodes = map[string]int{
	"play":               1,
	"stop":               2,
	"pause":              3,
	"resume":             4,
	"break":              5,
	"seek":               6,
	"mute":               7,
	"unmute":             8,
	"setgameparameter":   17,
	"setstate":           18,
	"setswitch":          19,
	"resetgameparameter": 20,
}

// ActionTypeCode returns the numeric code for an action keyword, matching
// case-insensitively. Unknown keywords fall back to Play.
func ActionTypeCode(name string) int {
	if code, ok := actionTypeCodes[strings.ToLower(name)]; ok {
		return code
	}
	return 1
}

// ActionTypeName returns the upper-case DSL keyword for a numeric action
// code. Unknown codes fall back to PLAY.
func ActionTypeName(code int) string {
	for name, c := range actionTypeCodes {
		if c == code {
			return strings.ToUpper(name)
		}
	}
	return "PLAY"
}
