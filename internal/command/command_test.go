package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/spotter/polar"
	"github.com/osuushi/spotter/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestInterpreter() (*Interpreter, *session.Session, *bytes.Buffer) {
	s := session.New(3, zap.NewNop())
	out := &bytes.Buffer{}
	return New(s, out, aurora.NewAurora(false), nil), s, out
}

func TestExecSkipsBlankAndComments(t *testing.T) {
	in, _, out := newTestInterpreter()
	assert.NoError(t, in.Exec(""))
	assert.NoError(t, in.Exec("   "))
	assert.NoError(t, in.Exec("# set friend fl1 1 2"))
	assert.Empty(t, out.String())
}

func TestExecErrors(t *testing.T) {
	in, _, _ := newTestInterpreter()

	assert.EqualError(t, in.Exec("launch"), `unknown command "launch"`)
	assert.EqualError(t, in.Exec("select friend"), "usage: select <team> <key>")
	assert.EqualError(t, in.Exec("rename"), "usage: rename <key> [label...]")
	assert.EqualError(t, in.Exec("distance friend far"), `invalid distance "far"`)
	assert.EqualError(t, in.Exec("select enemy el1"), `unknown team "enemy" (want friend or target)`)
	assert.EqualError(t, in.Exec("distance friend -3"), "distance must not be negative, got -3")
	assert.EqualError(t, in.Exec("select target fl1"), `no target point "fl1"`)
}

func TestExecSet(t *testing.T) {
	in, s, _ := newTestInterpreter()
	require.NoError(t, in.Exec("set target tl2 25 90"))

	selected := s.Selected(session.Target)
	assert.Equal(t, "tl2", selected.Key)
	assert.Equal(t, polar.Vector{Distance: 25, Bearing: 90}, selected.Vector)
}

func TestExecEdits(t *testing.T) {
	in, s, _ := newTestInterpreter()
	require.NoError(t, in.Exec("select friend fl3"))
	require.NoError(t, in.Exec("distance friend 4.5"))
	require.NoError(t, in.Exec("BEARING f 12"))

	p, _ := s.Point("fl3")
	assert.Equal(t, polar.Vector{Distance: 4.5, Bearing: 12}, p.Vector)
}

func TestExecResult(t *testing.T) {
	in, _, out := newTestInterpreter()
	require.NoError(t, in.Exec("set friend fl1 10 0"))
	require.NoError(t, in.Exec("set target tl1 10 90"))
	require.NoError(t, in.Exec("result"))
	assert.Equal(t, "Location 1 -> Location 1: distance 14.1 bearing 135.0\n", out.String())
}

func TestExecRename(t *testing.T) {
	in, s, out := newTestInterpreter()
	require.NoError(t, in.Exec("rename tl1 Water Tower"))
	assert.Equal(t, "tl1 is now Water Tower\n", out.String())
	p, _ := s.Point("tl1")
	assert.Equal(t, "Water Tower", p.Label)
}

func TestExecRelocateAndReset(t *testing.T) {
	in, s, _ := newTestInterpreter()
	require.NoError(t, in.Exec("set friend fl1 10 0"))
	require.NoError(t, in.Exec("relocate 10 180"))
	assert.Equal(t, 0.0, s.Selected(session.Friend).Vector.Distance)

	require.NoError(t, in.Exec("reset"))
	assert.Equal(t, polar.NewVector(), s.Selected(session.Friend).Vector)
}

func TestExecShow(t *testing.T) {
	in, _, out := newTestInterpreter()
	require.NoError(t, in.Exec("set target tl2 3 45"))
	require.NoError(t, in.Exec("show"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "* friend fl1"))
	assert.True(t, strings.HasSuffix(lines[0], "unset"))
	assert.True(t, strings.HasPrefix(lines[4], "* target tl2"))
	assert.True(t, strings.HasSuffix(lines[4], "distance 3.0 bearing 45.0"))
}

func TestRun(t *testing.T) {
	in, _, out := newTestInterpreter()
	script := strings.Join([]string{
		"# spotter log",
		"set friend fl1 5 45",
		"",
		"set target tl1 15 45",
		"result",
	}, "\n")
	require.NoError(t, in.Run(strings.NewReader(script)))
	assert.Equal(t, "Location 1 -> Location 1: distance 10.0 bearing 45.0\n", out.String())
}

func TestRunStopsAtFirstError(t *testing.T) {
	in, s, _ := newTestInterpreter()
	script := "set friend fl1 5 45\nbogus\nset friend fl2 1 1\n"
	err := in.Run(strings.NewReader(script))
	assert.EqualError(t, err, `line 2: unknown command "bogus"`)
	p, _ := s.Point("fl2")
	assert.True(t, p.Vector.Default)
}

func TestFormatVector(t *testing.T) {
	assert.Equal(t, "distance 14.1 bearing 315.0", FormatVector(polar.Vector{Distance: 14.142, Bearing: 314.96}))
}

func TestUsage(t *testing.T) {
	usage := Usage()
	assert.Len(t, usage, len(commands))
	assert.Contains(t, usage, "reset")
}
