package progress

import (
	"testing"
	"time"

	courseModels "lms/models/course"
	quizModels "lms/models/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const studentID uint = 7

// testCourse builds a course with 3 required materials, 1 optional material
// and 1 quiz: 4 required items in total.
func testCourse() *courseModels.Course {
	return &courseModels.Course{
		Model: gorm.Model{ID: 1},
		Modules: []courseModels.Module{
			{
				Model:      gorm.Model{ID: 1},
				OrderIndex: 1,
				Materials: []courseModels.Material{
					{Model: gorm.Model{ID: 1}, IsRequired: true},
					{Model: gorm.Model{ID: 2}, IsRequired: true},
					{Model: gorm.Model{ID: 3}, IsRequired: false},
				},
			},
			{
				Model:      gorm.Model{ID: 2},
				OrderIndex: 2,
				Materials: []courseModels.Material{
					{Model: gorm.Model{ID: 4}, IsRequired: true},
				},
			},
		},
		Quizzes: []quizModels.Quiz{
			{Model: gorm.Model{ID: 10}, PassingScore: 50},
		},
		Enrollments: []courseModels.Enrollment{
			{Model: gorm.Model{ID: 1}, UserID: studentID, Status: courseModels.EnrollmentApproved},
		},
	}
}

func TestRecomputeCompletionNoRequiredItems(t *testing.T) {
	crs := &courseModels.Course{
		Enrollments: []courseModels.Enrollment{
			{UserID: studentID, Status: courseModels.EnrollmentApproved},
		},
	}
	enr := &crs.Enrollments[0]

	assert.Equal(t, 0, RecomputeCompletion(crs, enr))
	assert.Equal(t, 0, enr.Progress.CompletionPercentage)
}

func TestRecordLessonCompletionNotEnrolled(t *testing.T) {
	crs := testCourse()

	_, err := RecordLessonCompletion(crs, 99, 1, true, time.Now())
	assert.ErrorIs(t, err, ErrNotEnrolled)

	// A pending enrollment does not count either
	crs.Enrollments[0].Status = courseModels.EnrollmentPending
	_, err = RecordLessonCompletion(crs, studentID, 1, true, time.Now())
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestRecordLessonCompletionToggle(t *testing.T) {
	crs := testCourse()
	now := time.Now()

	enr, err := RecordLessonCompletion(crs, studentID, 1, true, now)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, []uint(enr.Progress.CompletedLessons))
	require.NotNil(t, enr.Progress.LastAccessedAt)
	assert.Equal(t, now, *enr.Progress.LastAccessedAt)

	// Completing again is a no-op, not a duplicate
	enr, err = RecordLessonCompletion(crs, studentID, 1, true, now)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, []uint(enr.Progress.CompletedLessons))

	// Unmarking removes it
	enr, err = RecordLessonCompletion(crs, studentID, 1, false, now)
	require.NoError(t, err)
	assert.Empty(t, []uint(enr.Progress.CompletedLessons))

	// Unmarking an absent id is a no-op
	enr, err = RecordLessonCompletion(crs, studentID, 1, false, now)
	require.NoError(t, err)
	assert.Empty(t, []uint(enr.Progress.CompletedLessons))
}

func TestOptionalMaterialDoesNotCount(t *testing.T) {
	crs := testCourse()

	enr, err := RecordLessonCompletion(crs, studentID, 3, true, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, enr.Progress.CompletionPercentage)
}

func TestCompletionPercentageProgression(t *testing.T) {
	crs := testCourse()
	now := time.Now()

	// 1 of 4 required items
	enr, err := RecordLessonCompletion(crs, studentID, 1, true, now)
	require.NoError(t, err)
	assert.Equal(t, 25, enr.Progress.CompletionPercentage)

	// 3 of 4
	_, err = RecordLessonCompletion(crs, studentID, 2, true, now)
	require.NoError(t, err)
	enr, err = RecordLessonCompletion(crs, studentID, 4, true, now)
	require.NoError(t, err)
	assert.Equal(t, 75, enr.Progress.CompletionPercentage)

	// Passing the quiz drives it to exactly 100
	enr.Progress.QuizScores = datatypes.NewJSONType(map[uint]courseModels.QuizScore{
		10: {Score: 8, MaxScore: 10, CompletedAt: now},
	})
	assert.Equal(t, 100, RecomputeCompletion(crs, enr))
}

func TestQuizScoreBelowPassingDoesNotCount(t *testing.T) {
	crs := testCourse()
	enr := &crs.Enrollments[0]

	// 40% on a quiz with a 50% threshold
	enr.Progress.QuizScores = datatypes.NewJSONType(map[uint]courseModels.QuizScore{
		10: {Score: 4, MaxScore: 10, CompletedAt: time.Now()},
	})
	assert.Equal(t, 0, RecomputeCompletion(crs, enr))
}

func TestModuleCompletionDoesNotAffectPercentage(t *testing.T) {
	crs := testCourse()
	now := time.Now()

	enr, err := RecordModuleCompletion(crs, studentID, 1, true, now)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, []int(enr.Progress.CompletedModules))
	assert.Equal(t, 0, enr.Progress.CompletionPercentage)
	require.NotNil(t, enr.Progress.LastAccessedAt)

	enr, err = RecordModuleCompletion(crs, studentID, 1, false, now)
	require.NoError(t, err)
	assert.Empty(t, []int(enr.Progress.CompletedModules))
}

func TestPercentageRounding(t *testing.T) {
	crs := &courseModels.Course{
		Modules: []courseModels.Module{
			{Materials: []courseModels.Material{
				{Model: gorm.Model{ID: 1}, IsRequired: true},
				{Model: gorm.Model{ID: 2}, IsRequired: true},
				{Model: gorm.Model{ID: 3}, IsRequired: true},
			}},
		},
		Enrollments: []courseModels.Enrollment{
			{UserID: studentID, Status: courseModels.EnrollmentApproved},
		},
	}

	enr, err := RecordLessonCompletion(crs, studentID, 1, true, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 33, enr.Progress.CompletionPercentage)

	// 2/3 rounds half-up to 67
	enr, err = RecordLessonCompletion(crs, studentID, 2, true, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 67, enr.Progress.CompletionPercentage)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, Percentage(1, 0))
	assert.Equal(t, 0, Percentage(0, 4))
	assert.Equal(t, 50, Percentage(1, 2))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 13, Percentage(1, 8)) // 12.5 rounds half-up
	assert.Equal(t, 100, Percentage(4, 4))
}
