package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/wwisedsl/internal/project"
	"github.com/vk/wwisedsl/internal/wwise"
)

func TestRegister_GeneratesIdentifier(t *testing.T) {
	t.Parallel()

	reg := New()
	id := reg.Register(`\Actor-Mixer Hierarchy\Default Work Unit\Hit_01`, wwise.KindSound, "")

	require.NotEmpty(t, id)
	require.True(t, id[0] == '{' && id[len(id)-1] == '}', "generated identifiers are brace-wrapped, got %q", id)

	path, ok := reg.PathOf(id)
	require.True(t, ok)
	require.Equal(t, `\Actor-Mixer Hierarchy\Default Work Unit\Hit_01`, path)
}

func TestRegister_KeepsFirstIdentifier(t *testing.T) {
	t.Parallel()

	reg := New()
	path := `\Actor-Mixer Hierarchy\Default Work Unit\X`
	first := reg.Register(path, wwise.KindSound, "{AAAA}")
	second := reg.Register(path, wwise.KindActorMixer, "{BBBB}")

	require.Equal(t, first, second, "re-registering a path keeps its identifier")
	kind, ok := reg.KindOf(path)
	require.True(t, ok)
	require.Equal(t, wwise.KindActorMixer, kind, "re-registering updates the kind")

	require.Len(t, reg.LookupCandidates("X"), 1, "re-registering must not duplicate candidates")
}

func TestLookupCandidates_RegistrationOrder(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.Register(`\Events\Default Work Unit\Boss`, wwise.KindWorkUnit, "")
	reg.Register(`\Actor-Mixer Hierarchy\Default Work Unit\Boss`, wwise.KindActorMixer, "")

	require.Equal(t, []string{
		`\Events\Default Work Unit\Boss`,
		`\Actor-Mixer Hierarchy\Default Work Unit\Boss`,
	}, reg.LookupCandidates("Boss"))
}

func TestIdentifierOf_PreferContainer(t *testing.T) {
	t.Parallel()

	reg := New()
	containerID := reg.Register(`\Actor-Mixer Hierarchy\Default Work Unit\X`, wwise.KindActorMixer, "")
	soundID := reg.Register(`\Actor-Mixer Hierarchy\Default Work Unit\Combat\X`, wwise.KindSound, "")

	id, ok := reg.IdentifierOf("X", true)
	require.True(t, ok)
	require.Equal(t, containerID, id)

	id, ok = reg.IdentifierOf("X", false)
	require.True(t, ok)
	require.Equal(t, containerID, id, "without preference the earliest registration wins")

	id, ok = reg.IdentifierOf(`\Actor-Mixer Hierarchy\Default Work Unit\Combat\X`, true)
	require.True(t, ok)
	require.Equal(t, soundID, id, "full paths bypass candidate selection")
}

func TestPlainFolderMarking(t *testing.T) {
	t.Parallel()

	reg := New()
	folderID := reg.Register(`\Actor-Mixer Hierarchy\Default Work Unit\SFX`, wwise.KindFolder, "")
	soundID := reg.Register(`\Actor-Mixer Hierarchy\Default Work Unit\Hit`, wwise.KindSound, "")

	require.True(t, reg.IsPlainFolder(`\Actor-Mixer Hierarchy\Default Work Unit\SFX`))
	require.True(t, reg.IsPlainFolder(folderID), "identifier lookups see the flag too")
	require.False(t, reg.IsPlainFolder(soundID))
}

// TestFromTree validates pre-order registration with path building, and that
// event action children stay out of the registry.
func TestFromTree(t *testing.T) {
	t.Parallel()

	root := &project.Node{
		Kind: wwise.KindWorkUnit,
		Name: "Default Work Unit",
		ID:   "{ROOT}",
		Children: []*project.Node{
			{
				Kind: wwise.KindActorMixer,
				Name: "Player",
				Children: []*project.Node{
					{Kind: wwise.KindSound, Name: "Hit_01"},
				},
			},
			{
				Kind: wwise.KindEvent,
				Name: "Play_Hit",
				Children: []*project.Node{
					{Kind: wwise.KindAction, Name: ""},
				},
			},
		},
	}

	reg := New()
	reg.FromTree(root, `\Actor-Mixer Hierarchy`)

	kind, ok := reg.KindOf(`\Actor-Mixer Hierarchy\Default Work Unit\Player`)
	require.True(t, ok)
	require.Equal(t, wwise.KindActorMixer, kind)

	kind, ok = reg.KindOf(`\Actor-Mixer Hierarchy\Default Work Unit\Player\Hit_01`)
	require.True(t, ok)
	require.Equal(t, wwise.KindSound, kind)

	id, ok := reg.IdentifierOf(`\Actor-Mixer Hierarchy\Default Work Unit`, false)
	require.True(t, ok)
	require.Equal(t, "{ROOT}", id)

	require.Empty(t, reg.LookupCandidates(""), "unnamed action children are not registered")
}

func TestLoadIndex(t *testing.T) {
	t.Parallel()

	index := `objects:
  - path: \Master-Mixer Hierarchy\Default Work Unit\Master Audio Bus\SFX_Bus
    type: Bus
    id: "{AAAAAAAA-AAAA-AAAA-AAAA-AAAAAAAAAAAA}"
  - path: \Actor-Mixer Hierarchy\Default Work Unit\SFX
    type: Folder
  - path: \Actor-Mixer Hierarchy\Default Work Unit\Weapons
    type: ActorMixer
    folder: true
`
	path := filepath.Join(t.TempDir(), "index.yaml")
	require.NoError(t, os.WriteFile(path, []byte(index), 0o644))

	reg, err := LoadIndex(path)
	require.NoError(t, err)

	id, ok := reg.IdentifierOf(`\Master-Mixer Hierarchy\Default Work Unit\Master Audio Bus\SFX_Bus`, false)
	require.True(t, ok)
	require.Equal(t, "{AAAAAAAA-AAAA-AAAA-AAAA-AAAAAAAAAAAA}", id)

	require.True(t, reg.IsPlainFolder(`\Actor-Mixer Hierarchy\Default Work Unit\SFX`), "Folder kind implies plain")
	require.True(t, reg.IsPlainFolder(`\Actor-Mixer Hierarchy\Default Work Unit\Weapons`), "explicit folder flag")
}

func TestLoadIndex_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadIndex(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("objects:\n  - type: Bus\n"), 0o644))
	_, err = LoadIndex(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "has no path")
}
