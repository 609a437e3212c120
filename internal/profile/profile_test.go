package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/wwisedsl/internal/wwise"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeProfile(t, `
include_sounds    = true
sample_roots      = ["SwitchContainer", "Event"]
extra_properties  = ["CenterPercentage"]
preseeded_objects = ["Ambience_Master"]
`)

	p, err := Load(path)
	require.NoError(t, err)
	require.True(t, p.IncludeSounds)
	require.Equal(t, []string{"SwitchContainer", "Event"}, p.SampleRoots)
	require.Equal(t, []string{"CenterPercentage"}, p.ExtraProperties)
	require.Equal(t, []string{"Ambience_Master"}, p.PreseededObjects)

	kinds, err := p.RootKinds()
	require.NoError(t, err)
	require.Equal(t, []wwise.Kind{wwise.KindSwitchContainer, wwise.KindEvent}, kinds)
}

func TestLoad_EmptyFileIsDefaults(t *testing.T) {
	t.Parallel()

	p, err := Load(writeProfile(t, ""))
	require.NoError(t, err)
	require.Equal(t, Default(), p)

	kinds, err := p.RootKinds()
	require.NoError(t, err)
	require.Nil(t, kinds, "no configured roots means use the compiled-in set")
}

func TestLoad_SynonymRoots(t *testing.T) {
	t.Parallel()

	p, err := Load(writeProfile(t, `sample_roots = ["Random Sequence Container", "RTPC"]`))
	require.NoError(t, err)

	kinds, err := p.RootKinds()
	require.NoError(t, err)
	require.Equal(t, []wwise.Kind{wwise.KindRandomSequenceContainer, wwise.KindGameParameter}, kinds)
}

func TestRootKinds_UnknownTokenFails(t *testing.T) {
	t.Parallel()

	p := &Profile{SampleRoots: []string{"MusicSegment"}}
	_, err := p.RootKinds()
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown sample root type "MusicSegment"`)
}

func TestLoad_BadSyntax(t *testing.T) {
	t.Parallel()

	_, err := Load(writeProfile(t, "include_sounds = "))
	require.Error(t, err)
}
