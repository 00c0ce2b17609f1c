package names

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable labels for points that were renamed to nothing. Labels are random
// (adjective plus name) but never repeat within one Labeler.

func init() {
	// Without this the same sequence of names comes out on every run
	petname.NonDeterministicMode()
}

type Labeler struct {
	used     map[string]struct{}
	generate func() string
}

func NewLabeler() *Labeler {
	return newLabeler(Readable)
}

func newLabeler(generate func() string) *Labeler {
	return &Labeler{
		used:     make(map[string]struct{}),
		generate: generate,
	}
}

// A random name such as "ShinyGopher".
func Readable() string {
	return fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
}

// Mark a label as taken, so Next will never return it.
func (l *Labeler) Reserve(label string) {
	l.used[label] = struct{}{}
}

func (l *Labeler) Taken(label string) bool {
	_, ok := l.used[label]
	return ok
}

// Generate a fresh label and reserve it. If the generator keeps colliding, a
// numeric suffix breaks the tie.
func (l *Labeler) Next() string {
	const attempts = 10
	var label string
	for i := 0; i < attempts; i++ {
		label = l.generate()
		if !l.Taken(label) {
			l.Reserve(label)
			return label
		}
	}

	base := label
	for n := 2; ; n++ {
		label = fmt.Sprintf("%s%d", base, n)
		if !l.Taken(label) {
			l.Reserve(label)
			return label
		}
	}
}
