package project

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/wwisedsl/internal/wwise"
)

const sampleWorkUnit = `<?xml version="1.0" encoding="utf-8"?>
<WwiseDocument Type="WorkUnit" ID="{00000000-0000-0000-0000-000000000000}" SchemaVersion="120">
	<AudioObjects>
		<WorkUnit Name="Default Work Unit" ID="{11111111-1111-1111-1111-111111111111}" PersistMode="Standalone">
			<ChildrenList>
				<RandomSequenceContainer Name="Footsteps" ID="{22222222-2222-2222-2222-222222222222}">
					<PropertyList>
						<Property Name="Volume" Type="Real64" Value="-6"/>
						<Property Name="Pitch" Type="int32" Value="0"/>
					</PropertyList>
					<ReferenceList>
						<Reference Name="OutputBus">
							<ObjectRef Name="SFX_Bus" ID="{33333333-3333-3333-3333-333333333333}"/>
						</Reference>
					</ReferenceList>
					<ChildrenList>
						<Sound Name="Footstep_01" ID="{44444444-4444-4444-4444-444444444444}"/>
						<Sound Name="Footstep_02" ID="{55555555-5555-5555-5555-555555555555}"/>
					</ChildrenList>
				</RandomSequenceContainer>
				<SwitchContainer Name="Surface_Switch" ID="{66666666-6666-6666-6666-666666666666}">
					<GroupingInfo>
						<GroupingList>
							<SwitchAssignmentList>
								<Assignment>
									<ChildRef Name="Footsteps_Grass"/>
									<StateRef Name="Grass"/>
								</Assignment>
							</SwitchAssignmentList>
						</GroupingList>
					</GroupingInfo>
				</SwitchContainer>
			</ChildrenList>
		</WorkUnit>
	</AudioObjects>
</WwiseDocument>`

// TestDecodeWorkUnits validates the full decode of a representative
// work-unit document: properties, references, nested children, and a switch
// assignment buried inside a wrapper element.
func TestDecodeWorkUnits(t *testing.T) {
	t.Parallel()

	nodes, err := DecodeWorkUnits(strings.NewReader(sampleWorkUnit))
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	wu := nodes[0]
	require.Equal(t, wwise.KindWorkUnit, wu.Kind)
	require.Equal(t, "Default Work Unit", wu.Name)
	require.Equal(t, "{11111111-1111-1111-1111-111111111111}", wu.ID)
	require.Len(t, wu.Children, 2)

	footsteps := wu.Children[0]
	require.Equal(t, wwise.KindRandomSequenceContainer, footsteps.Kind)
	require.Equal(t, "Footsteps", footsteps.Name)

	volume, ok := footsteps.Property("Volume")
	require.True(t, ok)
	require.Equal(t, "-6", volume)

	bus, ok := footsteps.Reference("OutputBus")
	require.True(t, ok)
	require.Equal(t, "SFX_Bus", bus)

	require.Len(t, footsteps.Children, 2)
	require.Equal(t, wwise.KindSound, footsteps.Children[0].Kind)
	require.Equal(t, "Footstep_01", footsteps.Children[0].Name)

	surface := wu.Children[1]
	require.Equal(t, wwise.KindSwitchContainer, surface.Kind)
	require.Len(t, surface.Assignments, 1)
	require.Equal(t, "Footsteps_Grass", surface.Assignments[0].Child)
	require.Equal(t, "Grass", surface.Assignments[0].State)
}

func TestDecodeWorkUnits_MultipleRoots(t *testing.T) {
	t.Parallel()

	doc := `<Root>
		<WorkUnit Name="A" ID="{1}"/>
		<WorkUnit Name="B" ID="{2}"/>
	</Root>`

	nodes, err := DecodeWorkUnits(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	require.Equal(t, "A", nodes[0].Name)
	require.Equal(t, "B", nodes[1].Name)
}

// TestWalk validates pre-order traversal with depth tracking, and that event
// action children stay out of the walk.
func TestWalk(t *testing.T) {
	t.Parallel()

	root := &Node{
		Kind: wwise.KindActorMixer,
		Name: "Mixer",
		Children: []*Node{
			{
				Kind: wwise.KindRandomSequenceContainer,
				Name: "Container",
				Children: []*Node{
					{Kind: wwise.KindSound, Name: "Leaf"},
				},
			},
			{
				Kind: wwise.KindEvent,
				Name: "Play_It",
				Children: []*Node{
					{Kind: wwise.KindAction, Name: ""},
				},
			},
		},
	}

	type visit struct {
		name   string
		parent string
		depth  int
	}
	var visits []visit
	Walk(root, "Root", func(n *Node, parentName string, depth int) {
		visits = append(visits, visit{n.Name, parentName, depth})
	})

	require.Equal(t, []visit{
		{"Mixer", "Root", 0},
		{"Container", "Mixer", 1},
		{"Leaf", "Container", 2},
		{"Play_It", "Mixer", 1},
	}, visits)
}
