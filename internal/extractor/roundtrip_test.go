package extractor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/wwisedsl/internal/compiler"
	"github.com/vk/wwisedsl/internal/plan"
	"github.com/vk/wwisedsl/internal/registry"
	"github.com/vk/wwisedsl/internal/wwise"
)

// TestRoundTrip validates that extracted DSL compiles back into a plan that
// recreates every object of the subtree with its kind and name intact.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tree := footstepsTree()
	records := New(Options{}).Extract(tree, "Default Work Unit", "player.wwu")
	require.NotEmpty(t, records)

	reg := registry.New()
	reg.FromTree(tree, wwise.DefaultAssetParent)

	result := compiler.New(compiler.WithRegistry(reg)).CompileText(records[0].Output)
	require.Empty(t, result.Errors)
	require.Empty(t, result.Warnings)

	type created struct {
		kind string
		name string
	}
	var creates []created
	for _, step := range result.Plan {
		if step.Action == plan.ActionCreate {
			creates = append(creates, created{step.Args["type"].(string), step.Args["name"].(string)})
		}
	}
	require.Equal(t, []created{
		{"ActorMixer", "Player"},
		{"RandomSequenceContainer", "Footsteps"},
		{"Sound", "Footstep_01"},
		{"Sound", "Footstep_02"},
	}, creates)

	// The registry resolves the bare parent names back to real paths.
	var parents []string
	for _, step := range result.Plan {
		if step.Action == plan.ActionCreate {
			parents = append(parents, step.Args["parent"].(string))
		}
	}
	require.Equal(t, wwise.DefaultAssetParent, parents[0])
	require.Equal(t, wwise.DefaultAssetParent+`\Player`, parents[1])
	require.Equal(t, wwise.DefaultAssetParent+`\Player\Footsteps`, parents[2])
}
