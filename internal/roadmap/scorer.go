package roadmap

import (
	"fmt"
	"math"
	"strings"
)

// Feature normalisation caps.
const (
	MaxDepth         = 4
	MaxDurationWeeks = 8
)

// Features is the input vector for step scoring. Every field is in [0, 1].
type Features struct {
	Importance     float64 `json:"importance"`
	IsPrerequisite float64 `json:"is_prerequisite"`
	Depth          float64 `json:"depth"`
	Duration       float64 `json:"duration"`
	ShortTermRole  float64 `json:"short_term_role"`
}

// NewFeatures normalises raw step attributes into a feature vector.
func NewFeatures(importance float64, isPrereq bool, depth, durationWeeks int, senior bool) Features {
	f := Features{
		Importance: clamp01(importance),
		Depth:      clamp01(float64(depth) / MaxDepth),
		Duration:   clamp01(float64(durationWeeks) / MaxDurationWeeks),
	}
	if isPrereq {
		f.IsPrerequisite = 1
	}
	if !senior {
		f.ShortTermRole = 1
	}
	return f
}

// Vector returns the features in scorer input order.
func (f Features) Vector() [5]float64 {
	return [5]float64{f.Importance, f.IsPrerequisite, f.Depth, f.Duration, f.ShortTermRole}
}

// Scorer turns a feature vector into a priority. Higher schedules earlier.
// Implementations must be pure.
type Scorer interface {
	Name() string
	Score(f Features) float64
}

// Scorer names accepted by ScorerByName.
const (
	ScorerTinyNetwork = "tiny-network"
	ScorerLinear      = "linear"
)

// ScorerByName returns the named built-in scorer.
func ScorerByName(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ScorerTinyNetwork:
		return NewTinyNetwork(), nil
	case ScorerLinear:
		return NewLinear(), nil
	default:
		return nil, fmt.Errorf("unknown scorer %q (want %s or %s)", name, ScorerTinyNetwork, ScorerLinear)
	}
}

// TinyNetwork is a fixed-weight 5-6-1 feed-forward scorer with a tanh hidden
// layer and sigmoid output. Output weights are all positive and each input
// column keeps one sign across hidden units, so the score rises with
// importance and the prerequisite flag and falls with depth.
type TinyNetwork struct {
	w1 [6][5]float64
	b1 [6]float64
	w2 [6]float64
	b2 float64
}

// NewTinyNetwork returns the network with its built-in weights.
func NewTinyNetwork() *TinyNetwork {
	return &TinyNetwork{
		w1: [6][5]float64{
			{0.92, 0.41, -0.38, -0.12, 0.05},
			{0.64, 0.55, -0.47, -0.08, 0.11},
			{0.81, 0.27, -0.22, -0.19, 0.02},
			{0.47, 0.62, -0.51, -0.05, 0.07},
			{0.73, 0.35, -0.29, -0.15, 0.09},
			{0.58, 0.48, -0.44, -0.10, 0.04},
		},
		b1: [6]float64{-0.21, 0.08, -0.14, 0.03, -0.06, 0.12},
		w2: [6]float64{0.66, 0.52, 0.71, 0.44, 0.59, 0.48},
		b2: -0.35,
	}
}

func (n *TinyNetwork) Name() string { return ScorerTinyNetwork }

// Score runs the forward pass and returns a value in (0, 1).
func (n *TinyNetwork) Score(f Features) float64 {
	x := f.Vector()
	out := n.b2
	for h := range n.w1 {
		z := n.b1[h]
		for i, v := range x {
			z += n.w1[h][i] * v
		}
		out += n.w2[h] * math.Tanh(z)
	}
	return sigmoid(out)
}

// Linear is a weighted sum of the features.
type Linear struct {
	Weights [5]float64
	Bias    float64
}

// NewLinear returns a linear scorer with the default weights.
func NewLinear() *Linear {
	return &Linear{
		Weights: [5]float64{1.0, 0.5, -0.4, -0.2, 0.1},
	}
}

func (l *Linear) Name() string { return ScorerLinear }

func (l *Linear) Score(f Features) float64 {
	x := f.Vector()
	s := l.Bias
	for i, v := range x {
		s += l.Weights[i] * v
	}
	return s
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
