// Package progress maintains the derived completion state of a course
// enrollment. Functions here operate on a fully loaded course aggregate
// (modules, materials, quizzes, enrollments) and mutate it in memory;
// callers persist the enrollment afterward.
package progress

import (
	"errors"
	"math"
	"time"

	courseModels "lms/models/course"
)

// ErrNotEnrolled is returned when the acting user holds no approved
// enrollment in the course.
var ErrNotEnrolled = errors.New("no approved enrollment for this course")

// Percentage rounds 100*part/total half-up. A zero total yields 0.
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// FindApprovedEnrollment locates the user's approved enrollment within the
// course aggregate.
func FindApprovedEnrollment(crs *courseModels.Course, userID uint) (*courseModels.Enrollment, error) {
	for i := range crs.Enrollments {
		e := &crs.Enrollments[i]
		if e.UserID == userID && e.Status == courseModels.EnrollmentApproved && !e.IsDeleted {
			return e, nil
		}
	}
	return nil, ErrNotEnrolled
}

// RecordLessonCompletion marks a material as completed (or not) for the
// user's enrollment. Completing an already-completed material and clearing
// an absent one are both no-ops. Recomputes the completion percentage and
// returns the mutated enrollment.
func RecordLessonCompletion(crs *courseModels.Course, userID uint, materialID uint, completed bool, now time.Time) (*courseModels.Enrollment, error) {
	enr, err := FindApprovedEnrollment(crs, userID)
	if err != nil {
		return nil, err
	}

	lessons := []uint(enr.Progress.CompletedLessons)
	if completed {
		if !containsUint(lessons, materialID) {
			lessons = append(lessons, materialID)
		}
	} else {
		lessons = removeUint(lessons, materialID)
	}
	enr.Progress.CompletedLessons = lessons

	enr.Progress.LastAccessedAt = &now
	RecomputeCompletion(crs, enr)
	return enr, nil
}

// RecordModuleCompletion marks a module (by its order number) as completed
// for the user's enrollment. Module completions are tracked for granular
// display but deliberately do not feed the completion percentage; only
// lessons and quiz scores do.
func RecordModuleCompletion(crs *courseModels.Course, userID uint, moduleOrder int, completed bool, now time.Time) (*courseModels.Enrollment, error) {
	enr, err := FindApprovedEnrollment(crs, userID)
	if err != nil {
		return nil, err
	}

	mods := []int(enr.Progress.CompletedModules)
	if completed {
		if !containsInt(mods, moduleOrder) {
			mods = append(mods, moduleOrder)
		}
	} else {
		mods = removeInt(mods, moduleOrder)
	}
	enr.Progress.CompletedModules = mods

	enr.Progress.LastAccessedAt = &now
	RecomputeCompletion(crs, enr)
	return enr, nil
}

// RecomputeCompletion recomputes the enrollment's completion percentage from
// the course's required items: every required material plus every quiz counts
// toward the total; a required material counts as done when its ID is in
// CompletedLessons, a quiz counts as done when its recorded score meets the
// quiz's passing threshold. This is the only writer of CompletionPercentage.
func RecomputeCompletion(crs *courseModels.Course, enr *courseModels.Enrollment) int {
	total := 0
	done := 0

	completedLessons := make(map[uint]bool, len(enr.Progress.CompletedLessons))
	for _, id := range enr.Progress.CompletedLessons {
		completedLessons[id] = true
	}

	for _, mod := range crs.Modules {
		if mod.IsDeleted {
			continue
		}
		for _, mat := range mod.Materials {
			if mat.IsDeleted || !mat.IsRequired {
				continue
			}
			total++
			if completedLessons[mat.ID] {
				done++
			}
		}
	}

	scores := enr.Progress.QuizScores.Data()
	for _, qz := range crs.Quizzes {
		if qz.IsDeleted {
			continue
		}
		total++
		if s, ok := scores[qz.ID]; ok && Percentage(s.Score, s.MaxScore) >= qz.PassingScore {
			done++
		}
	}

	pct := Percentage(done, total)
	enr.Progress.CompletionPercentage = pct
	return pct
}

func containsUint(list []uint, v uint) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func removeUint(list []uint, v uint) []uint {
	out := list[:0]
	for _, x := range list {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func removeInt(list []int, v int) []int {
	out := list[:0]
	for _, x := range list {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
