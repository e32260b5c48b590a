package shaders

import "fmt"

// Kind is a programmable pipeline stage.
type Kind int

const (
	Vertex Kind = iota
	TessControl
	TessEvaluation
	Geometry
	Fragment
)

var kindNames = map[Kind]string{
	Vertex:         "vertex",
	TessControl:    "tess_control",
	TessEvaluation: "tess_evaluation",
	Geometry:       "geometry",
	Fragment:       "fragment",
}

func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown shader kind: %q", s)
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
