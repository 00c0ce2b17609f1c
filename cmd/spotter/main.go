package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/spotter/internal/command"
	"github.com/osuushi/spotter/internal/plot"
	"github.com/osuushi/spotter/polar"
	"github.com/osuushi/spotter/session"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end. Bearings are degrees clockwise from north.
// Positional numbers can't start with "-", so give bearings in [0, 360).

var (
	app     = kingpin.New("spotter", "Work out where a target is from a friend's position, given polar fixes on both from a spotter.")
	verbose = app.Flag("verbose", "Log each step to stderr.").Short('v').Envar("SPOTTER_VERBOSE").Bool()
	noColor = app.Flag("no-color", "Disable colored output.").Envar("SPOTTER_NO_COLOR").Bool()

	calcCmd = app.Command("calc", "Compute the target's position from the friend's once.")
	calcFix = addFixArgs(calcCmd)

	sessionCmd    = app.Command("session", "Read session commands from stdin, one per line.")
	sessionPoints = sessionCmd.Flag("points", "Named points per team.").Default("3").Envar("SPOTTER_POINTS").Int()

	plotCmd    = app.Command("plot", "Draw the spotter, friend and target to a PNG.")
	plotFix    = addFixArgs(plotCmd)
	plotOut    = plotCmd.Flag("out", "Output path.").Short('o').Default("spotter.png").String()
	plotSize   = plotCmd.Flag("size", "Image width and height in pixels.").Default("400").Int()
	plotInline = plotCmd.Flag("imgcat", "Also print the image inline (iTerm only).").Bool()
)

type fixArgs struct {
	friendDistance, friendBearing *float64
	targetDistance, targetBearing *float64
}

func addFixArgs(cmd *kingpin.CmdClause) fixArgs {
	return fixArgs{
		friendDistance: cmd.Arg("friend-distance", "Distance from spotter to friend.").Required().Float64(),
		friendBearing:  cmd.Arg("friend-bearing", "Bearing from spotter to friend.").Required().Float64(),
		targetDistance: cmd.Arg("target-distance", "Distance from spotter to target.").Required().Float64(),
		targetBearing:  cmd.Arg("target-bearing", "Bearing from spotter to target.").Required().Float64(),
	}
}

// Run the fixes through a fresh session, so they get the same validation as
// interactive input.
func (f fixArgs) session(logger *zap.Logger) (*session.Session, error) {
	s := session.New(1, logger)
	edits := []func() error{
		func() error { return s.SetDistance(session.Friend, *f.friendDistance) },
		func() error { return s.SetBearing(session.Friend, *f.friendBearing) },
		func() error { return s.SetDistance(session.Target, *f.targetDistance) },
		func() error { return s.SetBearing(session.Target, *f.targetBearing) },
	}
	for _, edit := range edits {
		if err := edit(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func main() {
	app.HelpFlag.Short('h')
	app.Command("commands", "List the commands understood by session.")
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := newLogger(*verbose)
	defer logger.Sync()
	color := aurora.NewAurora(!*noColor)

	switch cmd {
	case calcCmd.FullCommand():
		s, err := calcFix.session(logger)
		app.FatalIfError(err, "calc")
		fmt.Println(color.Green(command.FormatVector(s.Result())))

	case sessionCmd.FullCommand():
		s := session.New(*sessionPoints, logger)
		in := command.New(s, os.Stdout, color, logger)
		app.FatalIfError(in.Run(os.Stdin), "session")

	case plotCmd.FullCommand():
		s, err := plotFix.session(logger)
		app.FatalIfError(err, "plot")
		friend := s.Selected(session.Friend).Vector
		target := s.Selected(session.Target).Vector
		app.FatalIfError(plot.SavePNG(*plotOut, friend, target, *plotSize), "plot")
		logger.Info("plot saved", zap.String("path", *plotOut))
		fmt.Println(color.Green(command.FormatVector(polar.Triangulate(friend, target))))
		if *plotInline {
			plot.Show(*plotOut, os.Stdout)
		}

	case "commands":
		fmt.Println(strings.Join(command.Usage(), "\n"))
	}
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "spotter: could not start logger: %v\n", err)
		return zap.NewNop()
	}
	return logger
}
