package shaders

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompiler struct {
	next     uint32
	kinds    map[uint32]Kind
	linked   []uint32
	deleted  []uint32
	failKind *Kind
	failLink bool
}

func newFakeCompiler() *fakeCompiler {
	return &fakeCompiler{next: 1, kinds: make(map[uint32]Kind)}
}

func (c *fakeCompiler) Compile(kind Kind, source string) (uint32, error) {
	if c.failKind != nil && *c.failKind == kind {
		return 0, errors.New("syntax error")
	}
	if !strings.HasPrefix(source, "#version 450 core\n") {
		return 0, errors.New("missing version directive")
	}
	h := c.next
	c.next++
	c.kinds[h] = kind
	return h, nil
}

func (c *fakeCompiler) Link(shaders []uint32) (uint32, error) {
	c.linked = append([]uint32(nil), shaders...)
	if c.failLink {
		return 0, errors.New("link error")
	}
	return 100, nil
}

func (c *fakeCompiler) DeleteShader(shader uint32) {
	c.deleted = append(c.deleted, shader)
}

func (c *fakeCompiler) linkedKinds() []Kind {
	var kinds []Kind
	for _, h := range c.linked {
		kinds = append(kinds, c.kinds[h])
	}
	return kinds
}

var allStages = []Stage{
	{File: "triangle.vert", Kind: Vertex, Link: true},
	{File: "triangle.tcs", Kind: TessControl},
	{File: "triangle.tes", Kind: TessEvaluation},
	{File: "triangle.geom", Kind: Geometry},
	{File: "triangle.frag", Kind: Fragment, Link: true},
}

func newTestShaderer(t *testing.T) *Shaderer {
	t.Helper()
	s, err := NewShaderer(&ShaderData{GLSLVersion: "450 core"})
	require.NoError(t, err)
	return s
}

func TestBuildProgramLinksOnlyMarkedStages(t *testing.T) {
	c := newFakeCompiler()

	program, err := BuildProgram(c, newTestShaderer(t), allStages)
	require.NoError(t, err)

	assert.Equal(t, uint32(100), program)
	assert.Len(t, c.kinds, 5)
	assert.Equal(t, []Kind{Vertex, Fragment}, c.linkedKinds())
	assert.ElementsMatch(t, []uint32{1, 2, 3, 4, 5}, c.deleted)
}

func TestBuildProgramWithoutInertStages(t *testing.T) {
	c := newFakeCompiler()

	_, err := BuildProgram(c, newTestShaderer(t), []Stage{allStages[0], allStages[4]})
	require.NoError(t, err)

	assert.Equal(t, []Kind{Vertex, Fragment}, c.linkedKinds())
}

func TestBuildProgramCompileFailure(t *testing.T) {
	c := newFakeCompiler()
	geom := Geometry
	c.failKind = &geom

	_, err := BuildProgram(c, newTestShaderer(t), allStages)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not compile triangle.geom")
	assert.Nil(t, c.linked)
	// the three stages compiled before the failure are cleaned up
	assert.ElementsMatch(t, []uint32{1, 2, 3}, c.deleted)
}

func TestBuildProgramLinkFailure(t *testing.T) {
	c := newFakeCompiler()
	c.failLink = true

	_, err := BuildProgram(c, newTestShaderer(t), allStages)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not link program")
	assert.Len(t, c.deleted, 5)
}

func TestBuildProgramUnknownFile(t *testing.T) {
	_, err := BuildProgram(newFakeCompiler(), newTestShaderer(t), []Stage{{File: "nope.vert", Kind: Vertex, Link: true}})
	assert.ErrorContains(t, err, "no such shader: nope.vert")
}

func TestShaderer(t *testing.T) {
	s := newTestShaderer(t)

	assert.ElementsMatch(t, []string{
		"triangle.vert", "triangle.frag", "triangle.tcs", "triangle.tes", "triangle.geom",
	}, s.TemplateNames())

	for _, name := range s.TemplateNames() {
		source, err := s.Source(name)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(source, "#version 450 core\n"), name)
		assert.Contains(t, source, "void main(void)", name)
	}
}

func TestParseKind(t *testing.T) {
	for k, name := range kindNames {
		parsed, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
		assert.Equal(t, name, k.String())
	}

	_, err := ParseKind("compute")
	assert.Error(t, err)
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
