package gap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

func TestResolve(t *testing.T) {
	g := skillgraph.Default()

	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"python", "python", true},
		{"  ML-Basics ", "ml-basics", true},
		{"Probability & Statistics", "probability-statistics", true},
		{"TensorFlow", "deep-learning", true},
		{"postgres", "sql", true},
		{"pythn", "python", true},
		{"Dokcer", "docker", true},
		{"kubernetes", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := Resolve(g, tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	g := skillgraph.Default()
	got := Normalize(g, []string{"Python", "pythn", "Deep Learning", "TensorFlow", "kubernetes", "python3", "  ", "SQL"})
	assert.Equal(t, []string{"python", "deep-learning", "kubernetes", "sql"}, got)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, Normalize(skillgraph.Default(), nil))
}

func TestDetect(t *testing.T) {
	g := skillgraph.Default()
	resume := `
	Ahmed Hassan
	Skills: Python, pandas, linear algebra, tensorflow, SQL
	Experience: Built small ML models for university projects.
	`
	got := Detect(g, resume)
	assert.Equal(t, []string{"deep-learning", "linear-algebra", "ml-basics", "pandas", "python", "sql"}, got)
}

func TestDetect_WholeWordsOnly(t *testing.T) {
	g := skillgraph.Default()
	got := Detect(g, "Used numpy and mysqldump; redeployed the restful gateway.")
	assert.Empty(t, got)
}

func TestWordPattern_Cached(t *testing.T) {
	first := wordPattern("c++")
	assert.Same(t, first, wordPattern("c++"))
	assert.False(t, mentions("wrote c++ daily", "python"))

	g := skillgraph.Default()
	text := "SQL and Python"
	assert.Equal(t, Detect(g, text), Detect(g, text), "repeated detection is stable")
}

func TestDetect_EmptyText(t *testing.T) {
	assert.Empty(t, Detect(skillgraph.Default(), "   "))
}

func TestAnalyze(t *testing.T) {
	g := skillgraph.Default()
	detected := []string{"deep-learning", "linear-algebra", "ml-basics", "pandas", "python", "sql"}

	gaps, err := Analyze(g, detected, "Machine Learning Engineer")
	require.NoError(t, err)
	require.Len(t, gaps, 2)
	assert.Equal(t, "model-deployment", gaps[0].SkillID)
	assert.Equal(t, "Model Deployment", gaps[0].Name)
	assert.InDelta(t, 0.8, gaps[0].Importance, 1e-9)
	assert.Equal(t, "data-engineering", gaps[1].SkillID)
}

func TestAnalyze_TiesKeepRequirementOrder(t *testing.T) {
	g := skillgraph.Default()
	gaps, err := Analyze(g, nil, "data-scientist")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"Machine Learning Basics", "Pandas for Data Analysis", "SQL", "Probability & Statistics", "Python", "Data Visualization"},
		Names(gaps))
}

func TestAnalyze_NoGaps(t *testing.T) {
	g := skillgraph.Default()
	gaps, err := Analyze(g, []string{"rest-apis", "sql", "docker", "python"}, "backend-engineer")
	require.NoError(t, err)
	assert.Empty(t, gaps)
}

func TestAnalyze_UnknownRole(t *testing.T) {
	_, err := Analyze(skillgraph.Default(), nil, "Astronaut")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownRole))
	assert.Contains(t, err.Error(), "Astronaut")
}
