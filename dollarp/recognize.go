package dollarp

import (
	"errors"

	"github.com/strokerec/strokerec/strokemodel"
)

// ErrNoTemplates is returned by Recognize when the context has no templates
// to match against.
var ErrNoTemplates = errors.New("dollarp: context has no templates")

// Match is a single template's comparison result.
type Match struct {
	Name     string
	Distance float64
	Score    float64
}

// Recognize normalizes s and returns the best-matching template plus the
// comparison against every template in the context, in the order the
// templates were added (the slice is not sorted by distance). Score is max((2-d)/2, 0), so a perfect match (d=0) scores 1 and
// distance at or beyond 2 scores 0.
func (c *Context) Recognize(s *strokemodel.Stroke) (Match, []Match, error) {
	if len(c.Templates) == 0 {
		return Match{}, nil, ErrNoTemplates
	}

	candidate := Normalize(s, c.N)

	matches := make([]Match, len(c.Templates))
	for i, t := range c.Templates {
		d := greedyCloudMatch(candidate, t.Points, c.Epsilon)
		matches[i] = Match{Name: t.Name, Distance: d, Score: score(d)}
	}

	best := matches[0]
	for _, m := range matches[1:] {
		if m.Distance < best.Distance {
			best = m
		}
	}
	return best, matches, nil
}

func score(d float64) float64 {
	s := (2 - d) / 2
	if s < 0 {
		return 0
	}
	return s
}
