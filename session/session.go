// Package session holds the named points a spotter has recorded, and which of
// them are currently being compared.
//
// A Session is plain state owned by the caller. It is not safe for concurrent
// use.
package session

import (
	"fmt"
	"math"
	"strings"

	"github.com/osuushi/spotter/internal/names"
	"github.com/osuushi/spotter/polar"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Team int

const (
	Friend Team = iota
	Target
)

var teams = []Team{Friend, Target}

func (t Team) String() string {
	switch t {
	case Friend:
		return "friend"
	case Target:
		return "target"
	}
	return fmt.Sprintf("Team(%d)", int(t))
}

// Key prefix for points on this team
func (t Team) prefix() string {
	if t == Target {
		return "tl"
	}
	return "fl"
}

func ParseTeam(s string) (Team, error) {
	switch strings.ToLower(s) {
	case "friend", "f":
		return Friend, nil
	case "target", "t":
		return Target, nil
	}
	return 0, errors.Errorf("unknown team %q (want friend or target)", s)
}

type Point struct {
	Key    string
	Label  string
	Vector polar.Vector
}

type roster struct {
	keys     []string
	selected string
}

type Session struct {
	points  map[string]*Point
	rosters map[Team]*roster
	labels  *names.Labeler
	logger  *zap.Logger
}

// Create a session with n points per team, each unset and labelled
// "Location 1" through "Location n". The first point of each team starts out
// selected.
func New(n int, logger *zap.Logger) *Session {
	if n < 1 {
		n = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		points:  make(map[string]*Point),
		rosters: make(map[Team]*roster),
		labels:  names.NewLabeler(),
		logger:  logger,
	}
	for _, team := range teams {
		r := &roster{}
		for i := 1; i <= n; i++ {
			key := fmt.Sprintf("%s%d", team.prefix(), i)
			r.keys = append(r.keys, key)
			s.points[key] = &Point{Key: key, Label: defaultLabel(i), Vector: polar.NewVector()}
		}
		r.selected = r.keys[0]
		s.rosters[team] = r
	}
	return s
}

func defaultLabel(i int) string {
	return fmt.Sprintf("Location %d", i)
}

func (s *Session) roster(team Team) *roster {
	r, ok := s.rosters[team]
	if !ok {
		panic(fmt.Sprintf("invalid team %v", team))
	}
	return r
}

// All points on a team, in order. The returned values are copies.
func (s *Session) Points(team Team) []Point {
	r := s.roster(team)
	result := make([]Point, 0, len(r.keys))
	for _, key := range r.keys {
		result = append(result, *s.points[key])
	}
	return result
}

func (s *Session) Point(key string) (Point, bool) {
	p, ok := s.points[key]
	if !ok {
		return Point{}, false
	}
	return *p, true
}

func (s *Session) Selected(team Team) Point {
	return *s.points[s.roster(team).selected]
}

func (s *Session) Select(team Team, key string) error {
	r := s.roster(team)
	for _, k := range r.keys {
		if k == key {
			r.selected = key
			return nil
		}
	}
	return errors.Errorf("no %s point %q", team, key)
}

func (s *Session) SetDistance(team Team, distance float64) error {
	if err := validateDistance(distance); err != nil {
		return err
	}
	p := s.points[s.roster(team).selected]
	p.Vector = p.Vector.WithDistance(distance)
	s.logger.Debug("distance set", zap.String("point", p.Key), zap.Float64("distance", distance))
	return nil
}

func (s *Session) SetBearing(team Team, bearing float64) error {
	if err := validateBearing(bearing); err != nil {
		return err
	}
	p := s.points[s.roster(team).selected]
	p.Vector = p.Vector.WithBearing(bearing)
	s.logger.Debug("bearing set", zap.String("point", p.Key), zap.Float64("bearing", bearing))
	return nil
}

// Give a point a new label. A blank label gets a generated one.
func (s *Session) Rename(key, label string) (string, error) {
	p, ok := s.points[key]
	if !ok {
		return "", errors.Errorf("no point %q", key)
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = s.labels.Next()
	} else {
		s.labels.Reserve(label)
	}
	s.logger.Debug("point renamed", zap.String("point", key), zap.String("from", p.Label), zap.String("to", label))
	p.Label = label
	return label, nil
}

// Where the selected target is, as seen from the selected friend.
func (s *Session) Result() polar.Vector {
	friend := s.Selected(Friend)
	target := s.Selected(Target)
	result := polar.Triangulate(friend.Vector, target.Vector)
	s.logger.Debug("result computed",
		zap.String("friend", friend.Key),
		zap.String("target", target.Key),
		zap.Float64("distance", result.Distance),
		zap.Float64("bearing", result.Bearing),
	)
	return result
}

// Move the spotter. The distance and bearing locate the previous spot as seen
// from the new one. Every point that has been set is rebased onto the new
// spot. Unset points are left alone.
func (s *Session) Relocate(distance, bearing float64) error {
	if err := validateDistance(distance); err != nil {
		return errors.Wrap(err, "relocate")
	}
	if err := validateBearing(bearing); err != nil {
		return errors.Wrap(err, "relocate")
	}
	offset := polar.NewVector().WithDistance(distance).WithBearing(bearing)

	moved := 0
	for _, team := range teams {
		for _, key := range s.roster(team).keys {
			p := s.points[key]
			if p.Vector.Default {
				continue
			}
			p.Vector = polar.Rebase(offset, p.Vector)
			moved++
		}
	}
	s.logger.Debug("relocated",
		zap.Float64("distance", distance),
		zap.Float64("bearing", bearing),
		zap.Int("points", moved),
	)
	return nil
}

// Forget every measurement and label. Selections are kept.
func (s *Session) Reset() {
	for _, team := range teams {
		for i, key := range s.roster(team).keys {
			p := s.points[key]
			p.Label = defaultLabel(i + 1)
			p.Vector = polar.NewVector()
		}
	}
	s.logger.Debug("session reset")
}

func validateDistance(d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return errors.Errorf("distance must be a finite number, got %v", d)
	}
	if d < 0 {
		return errors.Errorf("distance must not be negative, got %v", d)
	}
	return nil
}

func validateBearing(b float64) error {
	if math.IsNaN(b) || math.IsInf(b, 0) {
		return errors.Errorf("bearing must be a finite number, got %v", b)
	}
	return nil
}
