// Package grading scores quiz attempts against a quiz's answer key and
// derives attempt-level statistics. Like services/progress it works on
// loaded aggregates only; callers persist the mutated attempt and
// enrollment afterward.
package grading

import (
	"errors"
	"time"

	courseModels "lms/models/course"
	quizModels "lms/models/quiz"
	"lms/services/progress"

	"gorm.io/datatypes"
)

var (
	// ErrQuizInactive is returned when the quiz is not accepting attempts.
	ErrQuizInactive = errors.New("quiz is not active")
	// ErrNoActiveAttempt is returned on submit without a prior start.
	ErrNoActiveAttempt = errors.New("no active attempt for this quiz")
	// ErrAlreadyCompleted is returned when the student's attempt was already
	// submitted; a completed attempt is final and is never re-graded.
	ErrAlreadyCompleted = errors.New("attempt already completed")
	// ErrInvalidAnswerSet is returned when the answer list does not fit the
	// quiz's question list.
	ErrInvalidAnswerSet = errors.New("answer set does not match quiz questions")
)

// GivenAnswer is one submitted answer: a selected option index for
// MULTIPLE_CHOICE/TRUE_FALSE questions, or a literal text for SHORT_ANSWER.
type GivenAnswer struct {
	SelectedIndex *int    `json:"selected_index,omitempty"`
	Text          *string `json:"text,omitempty"`
}

// Summary is the graded result returned to the caller alongside the attempt
type Summary struct {
	Score      int  `json:"score"`
	MaxScore   int  `json:"max_score"`
	Percentage int  `json:"percentage"`
	Passed     bool `json:"passed"`
}

// MaxScore sums the points of every question in the quiz, answered or not
func MaxScore(qz *quizModels.Quiz) int {
	total := 0
	for _, q := range qz.Questions {
		if q.IsDeleted {
			continue
		}
		total += q.Points
	}
	return total
}

// StartAttempt opens (or resumes) the student's attempt at a quiz. The quiz
// must be active and the student must hold an approved enrollment in its
// course. An existing in-progress attempt is returned unchanged rather than
// creating a second one; the returned bool reports whether the attempt was
// resumed.
func StartAttempt(qz *quizModels.Quiz, crs *courseModels.Course, userID uint, now time.Time) (*quizModels.Attempt, bool, error) {
	if !qz.IsActive || qz.IsDeleted {
		return nil, false, ErrQuizInactive
	}
	if _, err := progress.FindApprovedEnrollment(crs, userID); err != nil {
		return nil, false, err
	}

	for i := range qz.Attempts {
		a := &qz.Attempts[i]
		if a.UserID == userID && a.Status == quizModels.AttemptInProgress && !a.IsDeleted {
			return a, true, nil
		}
	}

	qz.Attempts = append(qz.Attempts, quizModels.Attempt{
		QuizID:    qz.ID,
		UserID:    userID,
		Status:    quizModels.AttemptInProgress,
		Score:     0,
		MaxScore:  MaxScore(qz),
		StartedAt: now,
	})
	return &qz.Attempts[len(qz.Attempts)-1], false, nil
}

// SubmitAttempt grades the student's in-progress attempt against the quiz's
// answer key and finalizes it. Fewer answers than questions is allowed (the
// unanswered tail scores zero but still counts toward the denominator); more
// answers than questions is rejected. On a passing result the enrollment's
// quiz score is upserted and the completion percentage recomputed.
func SubmitAttempt(qz *quizModels.Quiz, crs *courseModels.Course, userID uint, answers []GivenAnswer, now time.Time) (*quizModels.Attempt, Summary, error) {
	attempt, err := findActiveAttempt(qz, userID)
	if err != nil {
		return nil, Summary{}, err
	}

	questions := activeQuestions(qz)
	if len(answers) > len(questions) {
		return nil, Summary{}, ErrInvalidAnswerSet
	}

	maxScore := 0
	for _, q := range questions {
		maxScore += q.Points
	}

	totalScore := 0
	records := make([]quizModels.AnswerRecord, 0, len(answers))
	for i, ans := range answers {
		q := questions[i]
		correct := isCorrect(q, ans)
		earned := 0
		if correct {
			earned = q.Points
		}
		totalScore += earned
		records = append(records, quizModels.AnswerRecord{
			QuestionIndex: i,
			SelectedIndex: ans.SelectedIndex,
			Text:          ans.Text,
			IsCorrect:     correct,
			PointsEarned:  earned,
		})
	}

	percentage := progress.Percentage(totalScore, maxScore)
	// A quiz with no scorable points cannot be passed
	passed := maxScore > 0 && percentage >= qz.PassingScore

	attempt.Score = totalScore
	attempt.MaxScore = maxScore
	attempt.Answers = datatypes.NewJSONType(records)
	attempt.Status = quizModels.AttemptCompleted
	attempt.CompletedAt = &now
	attempt.TimeSpent = int(now.Sub(attempt.StartedAt).Seconds())
	attempt.Passed = passed

	if passed {
		enr, err := progress.FindApprovedEnrollment(crs, userID)
		if err != nil {
			return nil, Summary{}, err
		}
		scores := enr.Progress.QuizScores.Data()
		if scores == nil {
			scores = make(map[uint]courseModels.QuizScore)
		}
		scores[qz.ID] = courseModels.QuizScore{
			Score:       totalScore,
			MaxScore:    maxScore,
			CompletedAt: now,
		}
		enr.Progress.QuizScores = datatypes.NewJSONType(scores)
		enr.Progress.LastAccessedAt = &now
		progress.RecomputeCompletion(crs, enr)
	}

	return attempt, Summary{
		Score:      totalScore,
		MaxScore:   maxScore,
		Percentage: percentage,
		Passed:     passed,
	}, nil
}

// findActiveAttempt returns the user's in-progress attempt. A user whose only
// attempt is already completed gets ErrAlreadyCompleted; a user who never
// started gets ErrNoActiveAttempt.
func findActiveAttempt(qz *quizModels.Quiz, userID uint) (*quizModels.Attempt, error) {
	hasCompleted := false
	for i := range qz.Attempts {
		a := &qz.Attempts[i]
		if a.UserID != userID || a.IsDeleted {
			continue
		}
		if a.Status == quizModels.AttemptInProgress {
			return a, nil
		}
		hasCompleted = true
	}
	if hasCompleted {
		return nil, ErrAlreadyCompleted
	}
	return nil, ErrNoActiveAttempt
}

// activeQuestions returns the quiz's questions in their authored order
func activeQuestions(qz *quizModels.Quiz) []quizModels.Question {
	out := make([]quizModels.Question, 0, len(qz.Questions))
	for _, q := range qz.Questions {
		if q.IsDeleted {
			continue
		}
		out = append(out, q)
	}
	return out
}

// isCorrect applies type-appropriate equality: option index for choice
// questions, exact text for short answers. An answer of the wrong kind for
// the question type is simply incorrect.
func isCorrect(q quizModels.Question, ans GivenAnswer) bool {
	switch q.QuestionType {
	case quizModels.QuestionShortAnswer:
		return q.CorrectText != nil && ans.Text != nil && *ans.Text == *q.CorrectText
	default: // MULTIPLE_CHOICE, TRUE_FALSE
		return q.CorrectIndex != nil && ans.SelectedIndex != nil && *ans.SelectedIndex == *q.CorrectIndex
	}
}
