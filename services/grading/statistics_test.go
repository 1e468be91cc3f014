package grading

import (
	"testing"
	"time"

	quizModels "lms/models/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func completedAttempt(userID uint, score, maxScore int, passed bool, records []quizModels.AnswerRecord) quizModels.Attempt {
	now := time.Now()
	return quizModels.Attempt{
		UserID:      userID,
		Status:      quizModels.AttemptCompleted,
		Score:       score,
		MaxScore:    maxScore,
		Passed:      passed,
		Answers:     datatypes.NewJSONType(records),
		StartedAt:   now,
		CompletedAt: &now,
	}
}

func TestStatisticsZeroAttempts(t *testing.T) {
	qz := testQuiz()

	stats := ComputeStatistics(qz)
	assert.Equal(t, 0, stats.TotalAttempts)
	assert.Equal(t, 0, stats.PassedAttempts)
	assert.Equal(t, 0, stats.PassRate)
	assert.Equal(t, 0, stats.AverageScore)
	require.Len(t, stats.QuestionStats, 2)
	for _, qs := range stats.QuestionStats {
		assert.Equal(t, 0, qs.TotalAnswered)
		assert.Equal(t, 0, qs.CorrectPercentage)
	}
}

func TestStatisticsIgnoresInProgressAttempts(t *testing.T) {
	qz := testQuiz()
	qz.Attempts = []quizModels.Attempt{
		{UserID: 1, Status: quizModels.AttemptInProgress, StartedAt: time.Now()},
	}

	stats := ComputeStatistics(qz)
	assert.Equal(t, 0, stats.TotalAttempts)
}

func TestStatisticsAggregation(t *testing.T) {
	qz := testQuiz()
	qz.Attempts = []quizModels.Attempt{
		// 100%, passed; answered both, both correct
		completedAttempt(1, 10, 10, true, []quizModels.AnswerRecord{
			{QuestionIndex: 0, IsCorrect: true, PointsEarned: 5},
			{QuestionIndex: 1, IsCorrect: true, PointsEarned: 5},
		}),
		// 50%, passed; first correct only
		completedAttempt(2, 5, 10, true, []quizModels.AnswerRecord{
			{QuestionIndex: 0, IsCorrect: true, PointsEarned: 5},
			{QuestionIndex: 1, IsCorrect: false},
		}),
		// 0%, failed; answered first only
		completedAttempt(3, 0, 10, false, []quizModels.AnswerRecord{
			{QuestionIndex: 0, IsCorrect: false},
		}),
	}

	stats := ComputeStatistics(qz)
	assert.Equal(t, 3, stats.TotalAttempts)
	assert.Equal(t, 2, stats.PassedAttempts)
	assert.Equal(t, 67, stats.PassRate)     // 2/3 rounds half-up
	assert.Equal(t, 50, stats.AverageScore) // mean(100, 50, 0)

	require.Len(t, stats.QuestionStats, 2)
	q0 := stats.QuestionStats[0]
	assert.Equal(t, 3, q0.TotalAnswered)
	assert.Equal(t, 2, q0.CorrectCount)
	assert.Equal(t, 67, q0.CorrectPercentage)

	q1 := stats.QuestionStats[1]
	assert.Equal(t, 2, q1.TotalAnswered)
	assert.Equal(t, 1, q1.CorrectCount)
	assert.Equal(t, 50, q1.CorrectPercentage)
}

func TestStatisticsUnansweredQuestionReportsZero(t *testing.T) {
	qz := testQuiz()
	qz.Attempts = []quizModels.Attempt{
		completedAttempt(1, 5, 10, true, []quizModels.AnswerRecord{
			{QuestionIndex: 0, IsCorrect: true, PointsEarned: 5},
		}),
	}

	stats := ComputeStatistics(qz)
	require.Len(t, stats.QuestionStats, 2)
	assert.Equal(t, 0, stats.QuestionStats[1].TotalAnswered)
	assert.Equal(t, 0, stats.QuestionStats[1].CorrectCount)
	assert.Equal(t, 0, stats.QuestionStats[1].CorrectPercentage)
}

func TestStatisticsAverageUsesRoundedPerAttemptPercentages(t *testing.T) {
	qz := &quizModels.Quiz{
		Model:        gorm.Model{ID: 10},
		CourseID:     1,
		PassingScore: 50,
		IsActive:     true,
		Questions: []quizModels.Question{
			{QuestionType: quizModels.QuestionMultipleChoice, CorrectIndex: intPtr(0), Points: 1},
			{QuestionType: quizModels.QuestionMultipleChoice, CorrectIndex: intPtr(0), Points: 1},
			{QuestionType: quizModels.QuestionMultipleChoice, CorrectIndex: intPtr(0), Points: 1},
		},
	}
	// Two attempts at 1/3: each rounds to 33 first, then the mean is taken
	qz.Attempts = []quizModels.Attempt{
		completedAttempt(1, 1, 3, false, nil),
		completedAttempt(2, 1, 3, false, nil),
	}

	stats := ComputeStatistics(qz)
	assert.Equal(t, 33, stats.AverageScore)
}
