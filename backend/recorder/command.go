package recorder

import "github.com/gogpu/vg"

// CommandType identifies a recorded submission.
type CommandType uint8

const (
	CmdClear     CommandType = iota // Clear the target
	CmdTriangles                    // Colored triangle list
	CmdTextured                     // Textured triangle list
)

var commandTypeNames = [...]string{
	CmdClear:     "Clear",
	CmdTriangles: "Triangles",
	CmdTextured:  "Textured",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by every recorded submission.
type Command interface {
	Type() CommandType
}

// ClearCommand records Backend.Clear.
type ClearCommand struct {
	Color vg.RGBA
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// TrianglesCommand records Backend.SubmitTriangles.
type TrianglesCommand struct {
	Color    vg.RGBA
	Vertices []vg.Vertex
	State    vg.DrawState
}

// Type implements Command.
func (TrianglesCommand) Type() CommandType { return CmdTriangles }

// TexturedCommand records Backend.SubmitTexturedTriangles.
type TexturedCommand struct {
	Texture  vg.Texture
	Vertices []vg.Vertex
	Tint     vg.RGBA
	State    vg.DrawState
}

// Type implements Command.
func (TexturedCommand) Type() CommandType { return CmdTextured }
