package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreAllCorrect(t *testing.T) {
	score := Score(map[int]string{0: "Python Framework", 1: "Python"})
	assert.Equal(t, 2, score)
}

func TestScoreEmptySubmission(t *testing.T) {
	assert.Equal(t, 0, Score(map[int]string{}))
}

func TestScoreWrongAnswer(t *testing.T) {
	assert.Equal(t, 0, Score(map[int]string{0: "wrong"}))
}

func TestScorePartial(t *testing.T) {
	assert.Equal(t, 1, Score(map[int]string{1: "Python"}))
	assert.Equal(t, 1, Score(map[int]string{0: "Python Framework", 1: "Java"}))
}

func TestScoreIgnoresUnknownIndexes(t *testing.T) {
	assert.Equal(t, 0, Score(map[int]string{7: "Python"}))
}

func TestQuestionsFixedSet(t *testing.T) {
	qs := Questions()
	assert.Len(t, qs, 2)
	for _, q := range qs {
		assert.Contains(t, q.Options, q.Answer)
	}
}
