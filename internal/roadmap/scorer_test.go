package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeatures(t *testing.T) {
	f := NewFeatures(0.9, true, 6, 2, false)
	assert.InDelta(t, 0.9, f.Importance, 1e-9)
	assert.Equal(t, 1.0, f.IsPrerequisite)
	assert.Equal(t, 1.0, f.Depth, "depth is capped at MaxDepth")
	assert.InDelta(t, 0.25, f.Duration, 1e-9)
	assert.Equal(t, 1.0, f.ShortTermRole)

	senior := NewFeatures(1.4, false, 0, 12, true)
	assert.Equal(t, 1.0, senior.Importance)
	assert.Zero(t, senior.IsPrerequisite)
	assert.Zero(t, senior.Depth)
	assert.Equal(t, 1.0, senior.Duration)
	assert.Zero(t, senior.ShortTermRole)
}

func TestScorers_Monotonic(t *testing.T) {
	scorers := []Scorer{NewTinyNetwork(), NewLinear()}
	steps := []float64{0, 0.25, 0.5, 0.75, 1}

	for _, sc := range scorers {
		t.Run(sc.Name(), func(t *testing.T) {
			for _, depth := range steps {
				for _, dur := range steps {
					for _, short := range []float64{0, 1} {
						for _, prereq := range []float64{0, 1} {
							prev := -1e9
							for _, imp := range steps {
								s := sc.Score(Features{imp, prereq, depth, dur, short})
								if s <= prev {
									t.Fatalf("score not increasing in importance at %v", Features{imp, prereq, depth, dur, short})
								}
								prev = s
							}
						}

						for _, imp := range steps {
							lo := sc.Score(Features{imp, 0, depth, dur, short})
							hi := sc.Score(Features{imp, 1, depth, dur, short})
							if hi <= lo {
								t.Fatalf("prerequisite flag should raise the score (imp=%v depth=%v)", imp, depth)
							}
						}
					}
				}
			}

			for _, imp := range steps {
				prev := 1e9
				for _, depth := range steps {
					s := sc.Score(Features{imp, 1, depth, 0.25, 1})
					if s >= prev {
						t.Fatalf("score should fall as depth grows (imp=%v depth=%v)", imp, depth)
					}
					prev = s
				}
			}
		})
	}
}

func TestTinyNetwork_Range(t *testing.T) {
	n := NewTinyNetwork()
	for _, f := range []Features{{}, {1, 1, 1, 1, 1}, {0.5, 0, 0.25, 0.375, 1}} {
		s := n.Score(f)
		assert.Greater(t, s, 0.0)
		assert.Less(t, s, 1.0)
	}
}

func TestScorerByName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", ScorerTinyNetwork, false},
		{"tiny-network", ScorerTinyNetwork, false},
		{" Linear ", ScorerLinear, false},
		{"random-forest", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := ScorerByName(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, sc.Name())
		})
	}
}
