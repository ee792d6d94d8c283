package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleQuiz() *Quiz {
	return &Quiz{
		ID:       1,
		LessonID: 1,
		Title:    "Greetings",
		Questions: []*Question{
			{Prompt: "hello", Choices: []string{"hola", "adios"}, AnswerIndex: 0},
			{Prompt: "goodbye", Choices: []string{"hola", "adios"}, AnswerIndex: 1},
			{Prompt: "thanks", Choices: []string{"gracias", "por favor"}, AnswerIndex: 0},
		},
	}
}

func TestQuizScore(t *testing.T) {
	q := sampleQuiz()

	tests := []struct {
		name        string
		answers     []int
		wantCorrect int
	}{
		{"all correct", []int{0, 1, 0}, 3},
		{"all wrong", []int{1, 0, 1}, 0},
		{"partially correct", []int{0, 0, 0}, 2},
		{"short submission counts missing as wrong", []int{0}, 1},
		{"extra answers ignored", []int{0, 1, 0, 9, 9}, 3},
		{"empty submission", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correct, total := q.Score(tt.answers)
			assert.Equal(t, tt.wantCorrect, correct)
			assert.Equal(t, 3, total)
		})
	}
}

func TestQuizValidate(t *testing.T) {
	q := sampleQuiz()
	assert.NoError(t, q.Validate())

	q.Questions[0].AnswerIndex = 5
	assert.Error(t, q.Validate())

	q = sampleQuiz()
	q.Questions[1].Choices = []string{"only one"}
	assert.Error(t, q.Validate())

	q = sampleQuiz()
	q.Questions = nil
	assert.Error(t, q.Validate())

	q = sampleQuiz()
	q.LessonID = 0
	assert.Error(t, q.Validate())
}
