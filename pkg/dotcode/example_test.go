package dotcode_test

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/a17hq/btviz/pkg/behaviour"
	"github.com/a17hq/btviz/pkg/dotcode"
	"github.com/a17hq/btviz/pkg/render/dot"
)

// Example demonstrates projecting a two-node snapshot to DOT source.
func Example() {
	rootID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	leafID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	tree := behaviour.Tree{
		Behaviours: []behaviour.Behaviour{
			{
				ID:       rootID,
				Name:     "Patrol",
				Type:     behaviour.TypeSequence,
				Status:   behaviour.StatusRunning,
				ChildIDs: []uuid.UUID{leafID},
			},
			{
				ID:     leafID,
				Name:   "Move",
				Type:   behaviour.TypeBehaviour,
				Status: behaviour.StatusSuccess,
			},
		},
	}

	gen := dotcode.NewGenerator()
	out, err := gen.Generate(dot.New(), tree, dotcode.WithRankDir(dotcode.RankDirLR))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(string(out))
	// Output:
	// digraph behaviourtree {
	//   rankdir=LR;
	//   ranksep=0.2;
	//   rank=same;
	//
	//   "11111111-1111-1111-1111-111111111111" [label="Patrol", shape=box, style=filled, fillcolor="#000000", tooltip="<b>Class Name:</b> <i>empty</i><br><b>Type:</b> Sequence<br><b>Status:</b> Running<br><b>Message:</b> <i>empty</i><br>"];
	//   "22222222-2222-2222-2222-222222222222" [label="Move", shape=ellipse, style=filled, fillcolor="#00ff00", tooltip="<b>Class Name:</b> <i>empty</i><br><b>Type:</b> Behaviour<br><b>Status:</b> Success<br><b>Message:</b> <i>empty</i><br>"];
	//
	//   "11111111-1111-1111-1111-111111111111" -> "22222222-2222-2222-2222-222222222222" [color="#00ff00"];
	// }
}
