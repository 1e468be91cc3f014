package grading

import (
	"testing"
	"time"

	courseModels "lms/models/course"
	quizModels "lms/models/quiz"
	"lms/services/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const studentID uint = 7

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// testQuiz builds an active 2-question multiple-choice quiz worth 5+5 points
// with correct answers [1, 0] and a 50% passing threshold.
func testQuiz() *quizModels.Quiz {
	return &quizModels.Quiz{
		Model:        gorm.Model{ID: 10},
		CourseID:     1,
		PassingScore: 50,
		IsActive:     true,
		Questions: []quizModels.Question{
			{QuestionType: quizModels.QuestionMultipleChoice, CorrectIndex: intPtr(1), Points: 5},
			{QuestionType: quizModels.QuestionMultipleChoice, CorrectIndex: intPtr(0), Points: 5},
		},
	}
}

// testCourse builds a course whose only required item is the quiz itself
func testCourse(qz *quizModels.Quiz) *courseModels.Course {
	return &courseModels.Course{
		Model:   gorm.Model{ID: 1},
		Quizzes: []quizModels.Quiz{*qz},
		Enrollments: []courseModels.Enrollment{
			{Model: gorm.Model{ID: 1}, UserID: studentID, Status: courseModels.EnrollmentApproved},
		},
	}
}

func TestStartAttemptQuizInactive(t *testing.T) {
	qz := testQuiz()
	qz.IsActive = false
	crs := testCourse(qz)

	_, _, err := StartAttempt(qz, crs, studentID, time.Now())
	assert.ErrorIs(t, err, ErrQuizInactive)
}

func TestStartAttemptNotEnrolled(t *testing.T) {
	qz := testQuiz()
	crs := testCourse(qz)

	_, _, err := StartAttempt(qz, crs, 99, time.Now())
	assert.ErrorIs(t, err, progress.ErrNotEnrolled)
}

func TestStartAttemptCreatesAndResumes(t *testing.T) {
	qz := testQuiz()
	crs := testCourse(qz)
	started := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	attempt, resumed, err := StartAttempt(qz, crs, studentID, started)
	require.NoError(t, err)
	assert.False(t, resumed)
	assert.Equal(t, quizModels.AttemptInProgress, attempt.Status)
	assert.Equal(t, 0, attempt.Score)
	assert.Equal(t, 10, attempt.MaxScore)
	assert.Equal(t, started, attempt.StartedAt)

	// Starting again resumes the same attempt instead of opening a second one
	again, resumed, err := StartAttempt(qz, crs, studentID, started.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, resumed)
	assert.Equal(t, started, again.StartedAt)
	assert.Len(t, qz.Attempts, 1)
}

func TestSubmitWithoutStart(t *testing.T) {
	qz := testQuiz()
	crs := testCourse(qz)

	_, _, err := SubmitAttempt(qz, crs, studentID, nil, time.Now())
	assert.ErrorIs(t, err, ErrNoActiveAttempt)
}

func TestSubmitCompletedAttemptRejected(t *testing.T) {
	qz := testQuiz()
	crs := testCourse(qz)
	now := time.Now()

	_, _, err := StartAttempt(qz, crs, studentID, now)
	require.NoError(t, err)
	_, _, err = SubmitAttempt(qz, crs, studentID, []GivenAnswer{{SelectedIndex: intPtr(1)}}, now)
	require.NoError(t, err)

	// A completed attempt is final; it is never silently re-graded
	_, _, err = SubmitAttempt(qz, crs, studentID, []GivenAnswer{{SelectedIndex: intPtr(1)}}, now)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestSubmitTooManyAnswers(t *testing.T) {
	qz := testQuiz()
	crs := testCourse(qz)
	now := time.Now()

	_, _, err := StartAttempt(qz, crs, studentID, now)
	require.NoError(t, err)

	answers := []GivenAnswer{
		{SelectedIndex: intPtr(1)},
		{SelectedIndex: intPtr(0)},
		{SelectedIndex: intPtr(0)},
	}
	_, _, err = SubmitAttempt(qz, crs, studentID, answers, now)
	assert.ErrorIs(t, err, ErrInvalidAnswerSet)
}

func TestGradeHalfCorrect(t *testing.T) {
	qz := testQuiz()
	crs := testCourse(qz)
	started := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	submitted := started.Add(90 * time.Second)

	_, _, err := StartAttempt(qz, crs, studentID, started)
	require.NoError(t, err)

	// First answer correct, second wrong
	attempt, summary, err := SubmitAttempt(qz, crs, studentID, []GivenAnswer{
		{SelectedIndex: intPtr(1)},
		{SelectedIndex: intPtr(1)},
	}, submitted)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Score)
	assert.Equal(t, 10, summary.MaxScore)
	assert.Equal(t, 50, summary.Percentage)
	assert.True(t, summary.Passed) // boundary: percentage == passingScore passes

	assert.Equal(t, quizModels.AttemptCompleted, attempt.Status)
	require.NotNil(t, attempt.CompletedAt)
	assert.Equal(t, 90, attempt.TimeSpent)

	records := attempt.Answers.Data()
	require.Len(t, records, 2)
	assert.True(t, records[0].IsCorrect)
	assert.Equal(t, 5, records[0].PointsEarned)
	assert.False(t, records[1].IsCorrect)
	assert.Equal(t, 0, records[1].PointsEarned)
}

func TestGradeOnePointQuestions(t *testing.T) {
	qz := testQuiz()
	qz.Questions[0].Points = 1
	qz.Questions[1].Points = 1
	crs := testCourse(qz)
	now := time.Now()

	_, _, err := StartAttempt(qz, crs, studentID, now)
	require.NoError(t, err)

	_, summary, err := SubmitAttempt(qz, crs, studentID, []GivenAnswer{
		{SelectedIndex: intPtr(1)},
		{SelectedIndex: intPtr(1)},
	}, now)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Score)
	assert.Equal(t, 2, summary.MaxScore)
	assert.Equal(t, 50, summary.Percentage)
	assert.True(t, summary.Passed)
}

func TestUnansweredTrailingQuestionCountsInDenominator(t *testing.T) {
	qz := testQuiz()
	crs := testCourse(qz)
	now := time.Now()

	_, _, err := StartAttempt(qz, crs, studentID, now)
	require.NoError(t, err)

	_, summary, err := SubmitAttempt(qz, crs, studentID, []GivenAnswer{
		{SelectedIndex: intPtr(1)},
	}, now)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Score)
	assert.Equal(t, 10, summary.MaxScore)
	assert.Equal(t, 50, summary.Percentage)
}

func TestShortAnswerExactMatch(t *testing.T) {
	qz := &quizModels.Quiz{
		Model:        gorm.Model{ID: 10},
		CourseID:     1,
		PassingScore: 100,
		IsActive:     true,
		Questions: []quizModels.Question{
			{QuestionType: quizModels.QuestionShortAnswer, CorrectText: strPtr("goroutine"), Points: 2},
		},
	}
	crs := testCourse(qz)
	now := time.Now()

	_, _, err := StartAttempt(qz, crs, studentID, now)
	require.NoError(t, err)

	_, summary, err := SubmitAttempt(qz, crs, studentID, []GivenAnswer{{Text: strPtr("Goroutine")}}, now)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Score) // exact match only

	qz2 := &quizModels.Quiz{
		Model:        gorm.Model{ID: 11},
		CourseID:     1,
		PassingScore: 100,
		IsActive:     true,
		Questions: []quizModels.Question{
			{QuestionType: quizModels.QuestionShortAnswer, CorrectText: strPtr("goroutine"), Points: 2},
		},
	}
	_, _, err = StartAttempt(qz2, crs, studentID, now)
	require.NoError(t, err)
	_, summary, err = SubmitAttempt(qz2, crs, studentID, []GivenAnswer{{Text: strPtr("goroutine")}}, now)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Score)
	assert.True(t, summary.Passed)
}

func TestEmptyQuizCannotBePassed(t *testing.T) {
	qz := &quizModels.Quiz{
		Model:        gorm.Model{ID: 10},
		CourseID:     1,
		PassingScore: 0,
		IsActive:     true,
	}
	crs := testCourse(qz)
	now := time.Now()

	_, _, err := StartAttempt(qz, crs, studentID, now)
	require.NoError(t, err)

	_, summary, err := SubmitAttempt(qz, crs, studentID, nil, now)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.MaxScore)
	assert.Equal(t, 0, summary.Percentage)
	assert.False(t, summary.Passed)
}

func TestPassingSubmitUpdatesEnrollmentProgress(t *testing.T) {
	qz := testQuiz()
	crs := testCourse(qz)
	now := time.Now()

	_, _, err := StartAttempt(qz, crs, studentID, now)
	require.NoError(t, err)

	_, summary, err := SubmitAttempt(qz, crs, studentID, []GivenAnswer{
		{SelectedIndex: intPtr(1)},
		{SelectedIndex: intPtr(0)},
	}, now)
	require.NoError(t, err)
	require.True(t, summary.Passed)

	enr := &crs.Enrollments[0]
	scores := enr.Progress.QuizScores.Data()
	require.Contains(t, scores, qz.ID)
	assert.Equal(t, 10, scores[qz.ID].Score)
	assert.Equal(t, 10, scores[qz.ID].MaxScore)

	// The quiz is the course's only required item
	assert.Equal(t, 100, enr.Progress.CompletionPercentage)
}

func TestFailingSubmitLeavesProgressUntouched(t *testing.T) {
	qz := testQuiz()
	crs := testCourse(qz)
	now := time.Now()

	_, _, err := StartAttempt(qz, crs, studentID, now)
	require.NoError(t, err)

	_, summary, err := SubmitAttempt(qz, crs, studentID, []GivenAnswer{
		{SelectedIndex: intPtr(0)},
		{SelectedIndex: intPtr(1)},
	}, now)
	require.NoError(t, err)
	require.False(t, summary.Passed)

	enr := &crs.Enrollments[0]
	assert.Empty(t, enr.Progress.QuizScores.Data())
	assert.Equal(t, 0, enr.Progress.CompletionPercentage)
}
