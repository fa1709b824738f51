package dotcode

// Rank modes controlling how the backend groups nodes of equal rank.
const (
	RankNone   = "none"
	RankSame   = "same"
	RankMin    = "min"
	RankMax    = "max"
	RankSource = "source"
	RankSink   = "sink"
)

// Rank directions controlling overall layout orientation.
const (
	RankDirTB = "TB" // top to bottom
	RankDirLR = "LR" // left to right
)

// ValidRanks is the set of supported rank modes. The empty string means
// "no rank attribute".
var ValidRanks = map[string]bool{
	"":         true,
	RankNone:   true,
	RankSame:   true,
	RankMin:    true,
	RankMax:    true,
	RankSource: true,
	RankSink:   true,
}

// ValidRankDirs is the set of supported rank directions.
var ValidRankDirs = map[string]bool{
	RankDirTB: true,
	RankDirLR: true,
}

// Graph accumulates the visual nodes and edges of one projection. A Graph
// belongs to the Factory that created it and must not be shared between
// projections; backends are expected to keep per-graph state isolated.
type Graph interface {
	// AddNode adds one visual node. An empty shape, color, or tooltip
	// means "backend default".
	AddNode(id, label, shape, color, tooltip string)

	// AddEdge adds one directed edge coloured by the child's status.
	AddEdge(from, to, color string)
}

// Factory is the pluggable rendering backend boundary. Implementations
// turn abstract graphs into drawable artifacts (DOT text, SVG, PNG).
// Factories are compared by identity when deciding whether drawing
// arguments changed between projection calls.
type Factory interface {
	// NewGraph returns an empty graph configured with the given layout
	// hints. rank may be "" to omit the attribute.
	NewGraph(rank, rankDir string, rankSep float64) Graph

	// Render serializes a graph produced by this factory. Errors
	// propagate to the projection caller unmodified.
	Render(g Graph) ([]byte, error)
}
