// Package command drives a session from line-oriented text, one command per
// line. Blank lines and lines starting with # are ignored.
//
//	set <team> <key> <distance> <bearing>
//	select <team> <key>
//	distance <team> <value>
//	bearing <team> <value>
//	rename <key> [label...]
//	relocate <distance> <bearing>
//	reset
//	result
//	show
package command

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/spotter/polar"
	"github.com/osuushi/spotter/session"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const renameUsage = "rename <key> [label...]"

type handler func(in *Interpreter, args []string)

type spec struct {
	usage string
	nargs int // -1 for any number
	run   handler
}

var commands = map[string]spec{
	"set":      {"set <team> <key> <distance> <bearing>", 4, (*Interpreter).set},
	"select":   {"select <team> <key>", 2, (*Interpreter).selectPoint},
	"distance": {"distance <team> <value>", 2, (*Interpreter).distance},
	"bearing":  {"bearing <team> <value>", 2, (*Interpreter).bearing},
	"rename":   {renameUsage, -1, (*Interpreter).rename},
	"relocate": {"relocate <distance> <bearing>", 2, (*Interpreter).relocate},
	"reset":    {"reset", 0, (*Interpreter).reset},
	"result":   {"result", 0, (*Interpreter).result},
	"show":     {"show", 0, (*Interpreter).show},
}

type Interpreter struct {
	session *session.Session
	out     io.Writer
	color   aurora.Aurora
	logger  *zap.Logger
}

func New(s *session.Session, out io.Writer, color aurora.Aurora, logger *zap.Logger) *Interpreter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interpreter{session: s, out: out, color: color, logger: logger}
}

// Usage lines for every command, sorted.
func Usage() []string {
	var lines []string
	for _, c := range commands {
		lines = append(lines, c.usage)
	}
	sort.Strings(lines)
	return lines
}

// Run every line from r, stopping at the first one that fails.
func (in *Interpreter) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if err := in.Exec(scanner.Text()); err != nil {
			return errors.Wrapf(err, "line %d", lineNumber)
		}
	}
	return errors.Wrap(scanner.Err(), "reading commands")
}

// Execute a single line.
func (in *Interpreter) Exec(line string) (err error) {
	defer func() {
		recoveredErr := handleCommandPanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()

	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]
	c, ok := commands[name]
	if !ok {
		fatalf("unknown command %q", fields[0])
	}
	if c.nargs >= 0 && len(args) != c.nargs {
		fatalf("usage: %s", c.usage)
	}

	in.logger.Debug("exec", zap.String("command", name), zap.Strings("args", args))
	c.run(in, args)
	return nil
}

func (in *Interpreter) set(args []string) {
	team := parseTeam(args[0])
	check(in.session.Select(team, args[1]))
	check(in.session.SetDistance(team, parseNumber("distance", args[2])))
	check(in.session.SetBearing(team, parseNumber("bearing", args[3])))
}

func (in *Interpreter) selectPoint(args []string) {
	check(in.session.Select(parseTeam(args[0]), args[1]))
}

func (in *Interpreter) distance(args []string) {
	check(in.session.SetDistance(parseTeam(args[0]), parseNumber("distance", args[1])))
}

func (in *Interpreter) bearing(args []string) {
	check(in.session.SetBearing(parseTeam(args[0]), parseNumber("bearing", args[1])))
}

func (in *Interpreter) rename(args []string) {
	if len(args) == 0 {
		fatalf("usage: %s", renameUsage)
	}
	label, err := in.session.Rename(args[0], strings.Join(args[1:], " "))
	check(err)
	fmt.Fprintf(in.out, "%s is now %s\n", args[0], in.color.Bold(label))
}

func (in *Interpreter) relocate(args []string) {
	check(in.session.Relocate(parseNumber("distance", args[0]), parseNumber("bearing", args[1])))
}

func (in *Interpreter) reset(args []string) {
	in.session.Reset()
}

func (in *Interpreter) result(args []string) {
	friend := in.session.Selected(session.Friend)
	target := in.session.Selected(session.Target)
	result := in.session.Result()
	fmt.Fprintf(in.out, "%s -> %s: %s\n",
		in.color.Cyan(friend.Label),
		in.color.Red(target.Label),
		in.color.Green(FormatVector(result)),
	)
}

func (in *Interpreter) show(args []string) {
	for _, team := range []session.Team{session.Friend, session.Target} {
		selected := in.session.Selected(team).Key
		for _, p := range in.session.Points(team) {
			marker := " "
			if p.Key == selected {
				marker = "*"
			}
			value := "unset"
			if !p.Vector.Default {
				value = FormatVector(p.Vector)
			}
			fmt.Fprintf(in.out, "%s %-6s %-4s %-16s %s\n", marker, team, p.Key, p.Label, value)
		}
	}
}

// Distance and bearing to one decimal place, as they're shown to the user.
func FormatVector(v polar.Vector) string {
	return fmt.Sprintf("distance %.1f bearing %.1f", v.Distance, v.Bearing)
}

func parseTeam(s string) session.Team {
	team, err := session.ParseTeam(s)
	check(err)
	return team
}

func parseNumber(what, s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fatalf("invalid %s %q", what, s)
	}
	return f
}
