package dsl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	enumPrefix = regexp.MustCompile(`^\d+\.\s*`)

	reCreate = regexp.MustCompile(`(?i)^CREATE\s+(\w[\w\s-]*?)\s*"([^"]+)"\s+UNDER\s+"([^"]+)"`)
	reSetProp = regexp.MustCompile(`(?i)^SET_PROP\s+"([^"]+)"\s+"([^"]+)"\s*=\s*(.+)`)
	reLink    = regexp.MustCompile(`(?i)^LINK\s+"([^"]+)"\s+TO\s+"([^"]+)"\s+AS\s+"([^"]+)"`)
	reAssign  = regexp.MustCompile(`(?i)^ASSIGN\s+"([^"]+)"\s+TO\s+"([^"]+)"`)
	reAction  = regexp.MustCompile(`(?i)^ADD_ACTION\s+"([^"]+)"\s+(\w+)\s+"([^"]+)"(?:\s+"([^"]+)")?`)
	reEvent   = regexp.MustCompile(`(?i)^CREATE_EVENT\s+"([^"]+)"(?:\s+UNDER\s+"([^"]+)")?\s+PLAY\s+"([^"]+)"`)
	reImport  = regexp.MustCompile(`(?i)^IMPORT_AUDIO\s+"([^"]+)"\s+INTO\s+"([^"]+)"(?:\s+AS\s+"([^"]+)")?`)
	reRTPC    = regexp.MustCompile(`(?i)^SET_RTPC_CURVE\s+"([^"]+)"\s+"([^"]+)"\s+"([^"]+)"\s+POINTS\s+\[(.+)\]`)
	reDelete  = regexp.MustCompile(`(?i)^DELETE\s+"([^"]+)"`)
	reCopy    = regexp.MustCompile(`(?i)^COPY\s+"([^"]+)"\s+TO\s+"([^"]+)"\s+AS\s+"([^"]+)"`)
	reMove    = regexp.MustCompile(`(?i)^MOVE\s+"([^"]+)"\s+TO\s+"([^"]+)"`)
	reRename  = regexp.MustCompile(`(?i)^RENAME\s+"([^"]+)"\s+TO\s+"([^"]+)"`)

	rePoint = regexp.MustCompile(`\(([^,]+),\s*([^)]+)\)`)
)

// keywordOps routes the leading keyword of a line to its instruction form.
// Every form starts with a unique keyword, so a first-token lookup is enough.
var keywordOps = map[string]Op{
	"CREATE":         OpCreate,
	"SET_PROP":       OpSetProp,
	"LINK":           OpLink,
	"ASSIGN":         OpAssign,
	"ADD_ACTION":     OpAddAction,
	"CREATE_EVENT":   OpCreateEvent,
	"IMPORT_AUDIO":   OpImportAudio,
	"SET_RTPC_CURVE": OpSetRTPCCurve,
	"DELETE":         OpDelete,
	"COPY":           OpCopy,
	"MOVE":           OpMove,
	"RENAME":         OpRename,
}

// ParseLine parses a single DSL line into a tagged Instruction.
//
// Blank lines and #/// comments come back as OpBlank/OpComment. A line whose
// first token is not a known keyword comes back as OpUnknown with the cleaned
// text in Raw. An error is returned only when a known keyword is followed by
// arguments its grammar cannot match.
func ParseLine(line string) (Instruction, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Instruction{Op: OpBlank}, nil
	}
	if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
		return Instruction{Op: OpComment, Raw: line}, nil
	}

	// Upstream producers sometimes number their output ("1. CREATE ...").
	line = enumPrefix.ReplaceAllString(line, "")

	keyword := line
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		keyword = line[:i]
	}
	op, ok := keywordOps[strings.ToUpper(keyword)]
	if !ok {
		return Instruction{Op: OpUnknown, Raw: line}, nil
	}

	inst := Instruction{Op: op, Raw: line}
	switch op {
	case OpCreate:
		m := reCreate.FindStringSubmatch(line)
		if m == nil {
			return inst, malformed(op)
		}
		inst.Type = strings.TrimSpace(m[1])
		inst.Name = m[2]
		inst.Parent = m[3]

	case OpSetProp:
		m := reSetProp.FindStringSubmatch(line)
		if m == nil {
			return inst, malformed(op)
		}
		inst.Object = m[1]
		inst.Property = m[2]
		inst.RawValue = strings.TrimSpace(m[3])

	case OpLink:
		m := reLink.FindStringSubmatch(line)
		if m == nil {
			return inst, malformed(op)
		}
		inst.Child = m[1]
		inst.Target = m[2]
		inst.Slot = m[3]

	case OpAssign:
		m := reAssign.FindStringSubmatch(line)
		if m == nil {
			return inst, malformed(op)
		}
		inst.Child = m[1]
		inst.Target = m[2]

	case OpAddAction:
		m := reAction.FindStringSubmatch(line)
		if m == nil {
			return inst, malformed(op)
		}
		inst.Event = m[1]
		inst.ActionType = m[2]
		inst.Target = m[3]
		inst.Extra = m[4]

	case OpCreateEvent:
		m := reEvent.FindStringSubmatch(line)
		if m == nil {
			return inst, malformed(op)
		}
		inst.Event = m[1]
		inst.Parent = m[2]
		inst.Target = m[3]

	case OpImportAudio:
		m := reImport.FindStringSubmatch(line)
		if m == nil {
			return inst, malformed(op)
		}
		inst.AudioFile = m[1]
		inst.Parent = m[2]
		inst.Name = m[3]

	case OpSetRTPCCurve:
		m := reRTPC.FindStringSubmatch(line)
		if m == nil {
			return inst, malformed(op)
		}
		inst.Object = m[1]
		inst.Parameter = m[2]
		inst.Property = m[3]
		points, err := parsePoints(m[4])
		if err != nil {
			return inst, err
		}
		inst.Points = points

	case OpDelete:
		m := reDelete.FindStringSubmatch(line)
		if m == nil {
			return inst, malformed(op)
		}
		inst.Object = m[1]

	case OpCopy:
		m := reCopy.FindStringSubmatch(line)
		if m == nil {
			return inst, malformed(op)
		}
		inst.Object = m[1]
		inst.Parent = m[2]
		inst.NewName = m[3]

	case OpMove:
		m := reMove.FindStringSubmatch(line)
		if m == nil {
			return inst, malformed(op)
		}
		inst.Object = m[1]
		inst.Parent = m[2]

	case OpRename:
		m := reRename.FindStringSubmatch(line)
		if m == nil {
			return inst, malformed(op)
		}
		inst.Object = m[1]
		inst.NewName = m[2]
	}

	return inst, nil
}

// IsNoise reports whether an unrecognized line is markup debris (code fences,
// rulers, chevrons) rather than a failed instruction attempt. Noise is
// silently skipped; anything else earns a warning.
func IsNoise(line string) bool {
	for _, prefix := range []string{"<", ">", "```", "---", "==="} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func parsePoints(s string) ([]CurvePoint, error) {
	matches := rePoint.FindAllStringSubmatch(s, -1)
	if matches == nil {
		return nil, fmt.Errorf("no curve points in %q", s)
	}
	points := make([]CurvePoint, 0, len(matches))
	for _, m := range matches {
		x, errX := strconv.ParseFloat(strings.TrimSpace(m[1]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(m[2]), 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("malformed curve point (%s, %s)", m[1], m[2])
		}
		points = append(points, CurvePoint{X: x, Y: y})
	}
	return points, nil
}

func malformed(op Op) error {
	return fmt.Errorf("malformed %s instruction", op)
}
