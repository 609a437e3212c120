package wwise

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNormalizeType_Synonyms validates that every accepted spelling of a type
// lands on its canonical kind, and that canonical spellings are idempotent.
func TestNormalizeType_Synonyms(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		token string
		want  Kind
	}{
		{"RandomSequenceContainer", KindRandomSequenceContainer},
		{"Random Sequence Container", KindRandomSequenceContainer},
		{"RandomContainer", KindRandomSequenceContainer},
		{"SequenceContainer", KindRandomSequenceContainer},
		{"Actor-Mixer", KindActorMixer},
		{"ActorMixer", KindActorMixer},
		{"SoundSFX", KindSound},
		{"SoundVoice", KindSound},
		{"AudioBus", KindBus},
		{"Aux Bus", KindAuxBus},
		{"AuxiliaryBus", KindAuxBus},
		{"RTPC", KindGameParameter},
		{"Work Unit", KindWorkUnit},
	}

	for _, tc := range testCases {
		kind, ok := NormalizeType(tc.token)
		require.True(t, ok, "token %q should normalize", tc.token)
		require.Equal(t, tc.want, kind, "token %q", tc.token)

		// Canonical output must map back onto itself.
		again, ok := NormalizeType(string(kind))
		require.True(t, ok, "canonical kind %q should normalize", kind)
		require.Equal(t, kind, again)
	}
}

func TestNormalizeType_UnknownPassesThrough(t *testing.T) {
	t.Parallel()

	kind, ok := NormalizeType("MusicSegment")
	require.False(t, ok)
	require.Equal(t, Kind("MusicSegment"), kind)
}

func TestNormalizeReference(t *testing.T) {
	t.Parallel()

	slot, ok := NormalizeReference("Bus")
	require.True(t, ok)
	require.Equal(t, "OutputBus", slot)

	slot, ok = NormalizeReference("SwitchGroup")
	require.True(t, ok)
	require.Equal(t, "SwitchGroupOrStateGroup", slot)

	slot, ok = NormalizeReference("Bogus")
	require.False(t, ok)
	require.Equal(t, "Bogus", slot)
}

// TestDSLReferenceAlias validates the project-to-DSL direction, including the
// fuzzy Effect-family passthrough.
func TestDSLReferenceAlias(t *testing.T) {
	t.Parallel()

	alias, ok := DSLReferenceAlias("OutputBus")
	require.True(t, ok)
	require.Equal(t, "Bus", alias)

	alias, ok = DSLReferenceAlias("EffectCustom5")
	require.True(t, ok)
	require.Equal(t, "EffectCustom5", alias)

	_, ok = DSLReferenceAlias("Unrelated")
	require.False(t, ok)
}

func TestActionTypeCodes(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, ActionTypeCode("Play"))
	require.Equal(t, 1, ActionTypeCode("play"))
	require.Equal(t, 2, ActionTypeCode("STOP"))
	require.Equal(t, 19, ActionTypeCode("SetSwitch"))
	require.Equal(t, 20, ActionTypeCode("ResetGameParameter"))
	require.Equal(t, 1, ActionTypeCode("Teleport"), "unknown keywords fall back to Play")

	require.Equal(t, "PLAY", ActionTypeName(1))
	require.Equal(t, "SETSWITCH", ActionTypeName(19))
	require.Equal(t, "PLAY", ActionTypeName(99), "unknown codes fall back to PLAY")
}

func TestDefaultParent(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultBusParent, DefaultParent(KindBus))
	require.Equal(t, DefaultEventParent, DefaultParent(KindEvent))
	require.Equal(t, DefaultRTPCParent, DefaultParent(KindGameParameter))
	require.Equal(t, DefaultAssetParent, DefaultParent(KindSound))
	require.Equal(t, DefaultAssetParent, DefaultParent(KindRandomSequenceContainer))
}

func TestIsDefaultPropertyValue(t *testing.T) {
	t.Parallel()

	require.True(t, IsDefaultPropertyValue("Volume", "0"))
	require.True(t, IsDefaultPropertyValue("Priority", "50"))
	require.False(t, IsDefaultPropertyValue("Volume", "-6"))
	require.False(t, IsDefaultPropertyValue("MakeUpGain", "0"), "properties without a recorded default are never default")
}

func TestKindPredicates(t *testing.T) {
	t.Parallel()

	require.True(t, IsContainerKind(KindSwitchContainer))
	require.True(t, IsContainerKind(KindActorMixer))
	require.False(t, IsContainerKind(KindSound))
	require.True(t, IsAssetKind(KindSound))
	require.False(t, IsAssetKind(KindSwitchGroup))
}
