package grading

import (
	"math"

	quizModels "lms/models/quiz"
	"lms/services/progress"
)

// QuestionStat reports item difficulty for one question index: how many
// completed attempts answered it and how many of those were correct.
type QuestionStat struct {
	QuestionIndex     int `json:"question_index"`
	TotalAnswered     int `json:"total_answered"`
	CorrectCount      int `json:"correct_count"`
	CorrectPercentage int `json:"correct_percentage"`
}

// Statistics aggregates completed attempts for instructor-facing reporting
type Statistics struct {
	TotalAttempts  int            `json:"total_attempts"`
	PassedAttempts int            `json:"passed_attempts"`
	PassRate       int            `json:"pass_rate"`
	AverageScore   int            `json:"average_score"`
	QuestionStats  []QuestionStat `json:"question_stats"`
}

// ComputeStatistics aggregates the quiz's completed attempts. In-progress
// attempts are ignored. Zero completed attempts yields all-zero statistics.
// Each attempt's percentage is rounded first and the average is taken over
// the rounded values, so the reported average matches what each student saw.
func ComputeStatistics(qz *quizModels.Quiz) Statistics {
	questions := activeQuestions(qz)
	stats := Statistics{
		QuestionStats: make([]QuestionStat, len(questions)),
	}
	for i := range stats.QuestionStats {
		stats.QuestionStats[i].QuestionIndex = i
	}

	percentageSum := 0
	for i := range qz.Attempts {
		a := &qz.Attempts[i]
		if a.IsDeleted || a.Status != quizModels.AttemptCompleted {
			continue
		}
		stats.TotalAttempts++
		if a.Passed {
			stats.PassedAttempts++
		}
		percentageSum += progress.Percentage(a.Score, a.MaxScore)

		for _, rec := range a.Answers.Data() {
			if rec.QuestionIndex < 0 || rec.QuestionIndex >= len(questions) {
				continue
			}
			qs := &stats.QuestionStats[rec.QuestionIndex]
			qs.TotalAnswered++
			if rec.IsCorrect {
				qs.CorrectCount++
			}
		}
	}

	if stats.TotalAttempts > 0 {
		stats.PassRate = progress.Percentage(stats.PassedAttempts, stats.TotalAttempts)
		stats.AverageScore = int(math.Round(float64(percentageSum) / float64(stats.TotalAttempts)))
	}

	for i := range stats.QuestionStats {
		qs := &stats.QuestionStats[i]
		qs.CorrectPercentage = progress.Percentage(qs.CorrectCount, qs.TotalAnswered)
	}

	return stats
}
