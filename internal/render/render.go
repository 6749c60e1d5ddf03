// Package render maps verification results onto a presentation-neutral
// visual model and applies that model to a display Surface.
//
// Build is pure. Apply is the only place a Surface is mutated for a result.
package render

import (
	"fmt"
	"math"

	"factcheck/internal/claim"
)

// RingRadius is the radius of the confidence ring.
const RingRadius = 26

// Circumference is the ring's stroke length.
var Circumference = 2 * math.Pi * RingRadius

// Category is the badge category a verdict is displayed under.
type Category string

const (
	CategoryReal      Category = "real"
	CategoryFake      Category = "fake"
	CategoryUncertain Category = "uncertain"
)

// ColorToken names a theme color; surfaces resolve it to a concrete color.
type ColorToken string

const (
	ColorReal      ColorToken = "verdict-real"
	ColorFake      ColorToken = "verdict-fake"
	ColorUncertain ColorToken = "verdict-uncertain"
	ColorMuted     ColorToken = "text-secondary"
)

// UnrecognizedLabel is shown on the badge when a provider returns a verdict
// outside the enumeration.
const UnrecognizedLabel = "UNVERIFIED"

// Badge is the verdict badge.
type Badge struct {
	Category Category
	Label    string
	Color    ColorToken
	// Recognized is false when the verdict fell back to uncertain.
	Recognized bool
}

// Ring is the confidence indicator geometry.
type Ring struct {
	Circumference float64
	Offset        float64
	Percent       int
	Color         ColorToken
}

// Fill returns the visible fraction of the ring in [0,1].
func (r Ring) Fill() float64 {
	if r.Circumference == 0 {
		return 0
	}
	return 1 - r.Offset/r.Circumference
}

// Label renders the percentage text, e.g. "87%".
func (r Ring) Label() string {
	return fmt.Sprintf("%d%%", r.Percent)
}

// Card is one evidence card.
type Card struct {
	Source  string
	Excerpt string
}

// VisualModel is everything a surface needs to show a result.
type VisualModel struct {
	Badge Badge
	Ring  Ring
	Cards []Card
}

// Build maps a result onto its visual model.
func Build(res claim.Result) VisualModel {
	badge := BadgeFor(res.Verdict)

	ring := RingFor(res.Confidence)
	ring.Color = badge.Color

	cards := make([]Card, 0, len(res.Sources))
	for _, src := range res.Sources {
		cards = append(cards, Card{Source: src.Name, Excerpt: src.Text})
	}

	return VisualModel{Badge: badge, Ring: ring, Cards: cards}
}

// BadgeFor maps a verdict to its badge. Unknown verdicts fall back to the
// uncertain category.
func BadgeFor(v claim.Verdict) Badge {
	switch v {
	case claim.VerdictReal:
		return Badge{Category: CategoryReal, Label: "REAL", Color: ColorReal, Recognized: true}
	case claim.VerdictFake:
		return Badge{Category: CategoryFake, Label: "FAKE", Color: ColorFake, Recognized: true}
	case claim.VerdictNotEnoughInfo:
		return Badge{Category: CategoryUncertain, Label: "NOT ENOUGH INFO", Color: ColorUncertain, Recognized: true}
	default:
		return Badge{Category: CategoryUncertain, Label: UnrecognizedLabel, Color: ColorUncertain}
	}
}

// RingFor computes the ring geometry for a confidence percentage. The value
// is clamped to [0,100] first.
func RingFor(confidence int) Ring {
	c := clamp(confidence, 0, 100)
	return Ring{
		Circumference: Circumference,
		Offset:        Circumference - (float64(c)/100)*Circumference,
		Percent:       c,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
