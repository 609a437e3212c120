package dsl

// Op identifies which instruction form a parsed line carries.
type Op int

const (
	OpUnknown Op = iota
	OpBlank
	OpComment
	OpCreate
	OpSetProp
	OpLink
	OpAssign
	OpAddAction
	OpCreateEvent
	OpImportAudio
	OpSetRTPCCurve
	OpDelete
	OpCopy
	OpMove
	OpRename
)

// String returns the DSL keyword for the op, or a placeholder for the
// non-keyword variants.
func (o Op) String() string {
	switch o {
	case OpCreate:
		return "CREATE"
	case OpSetProp:
		return "SET_PROP"
	case OpLink:
		return "LINK"
	case OpAssign:
		return "ASSIGN"
	case OpAddAction:
		return "ADD_ACTION"
	case OpCreateEvent:
		return "CREATE_EVENT"
	case OpImportAudio:
		return "IMPORT_AUDIO"
	case OpSetRTPCCurve:
		return "SET_RTPC_CURVE"
	case OpDelete:
		return "DELETE"
	case OpCopy:
		return "COPY"
	case OpMove:
		return "MOVE"
	case OpRename:
		return "RENAME"
	case OpBlank:
		return "(blank)"
	case OpComment:
		return "(comment)"
	}
	return "(unknown)"
}

// CurvePoint is one point of an RTPC curve.
type CurvePoint struct {
	X float64
	Y float64
}

// Instruction is the tagged result of parsing one DSL line. Only the fields
// relevant to the Op are populated; Raw always carries the cleaned line.
type Instruction struct {
	Op  Op
	Raw string

	// CREATE / CREATE_EVENT / IMPORT_AUDIO
	Type   string // raw type token, not yet normalized
	Name   string
	Parent string

	// SET_PROP / SET_RTPC_CURVE / DELETE / COPY / MOVE / RENAME
	Object   string
	Property string
	RawValue string
	NewName  string

	// LINK / ASSIGN / ADD_ACTION
	Child      string
	Target     string
	Slot       string // raw slot token, not yet normalized
	Event      string
	ActionType string
	Extra      string // switch or state value for SetSwitch/SetState actions

	// IMPORT_AUDIO
	AudioFile string

	// SET_RTPC_CURVE
	Parameter string
	Points    []CurvePoint
}
