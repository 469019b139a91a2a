package coursematching

import (
	"strings"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/feature"
	"github.com/trezcool/safari/core/submission"
)

// defaultDifficulty is used for unrecognized difficulty strings.
const defaultDifficulty = 3

// difficultyTable maps student-entered difficulty strings to 1-5.
var difficultyTable = map[string]int{
	"1": 1, "2": 2, "3": 3, "4": 4, "5": 5,
	"easy":   2,
	"medium": 3,
	"hard":   4,
}

// DifficultyScore maps a free-text difficulty to its numeric 1-5 value,
// defaulting to 3 for unrecognized input.
func DifficultyScore(raw string) int {
	if score, ok := difficultyTable[core.CleanString(raw, true)]; ok {
		return score
	}
	return defaultDifficulty
}

// ExamTypeVocabulary is the closed exam-type tag universe detected in
// free-text exam descriptions.
var ExamTypeVocabulary = feature.Vocabulary{
	"written":        {"written", "write-up", "sit-down exam"},
	"oral":           {"oral", "viva"},
	"project":        {"project", "coursework", "group work"},
	"presentation":   {"presentation", "defence", "defense"},
	"multiplechoice": {"multiple choice", "multiple-choice", "mcq"},
	"openbook":       {"open book", "open-book"},
	"takehome":       {"take home", "take-home"},
	"continuous":     {"continuous assessment", "midterm", "weekly assignment"},
}

var examTypeMatcher = feature.NewMatcher(ExamTypeVocabulary)

// New normalizes a raw COURSE_MATCHING submission. Missing fields default,
// never error.
func New(sub submission.Submission) Experience {
	m := sub.DataMap()

	exp := Experience{
		ID:             sub.ID,
		UserID:         sub.UserID,
		StudentName:    submission.Str(m, "studentName", "author", "name"),
		HomeUniversity: submission.Str(m, "homeUniversity", "home_university"),
		HostUniversity: submission.Str(m, "hostUniversity", "host_university", "university"),
		Department:     submission.Str(m, "department", "faculty"),
		City:           submission.Str(m, "city", "destinationCity"),
		Country:        submission.Str(m, "country", "destinationCountry"),
		Semester:       submission.Str(m, "semester", "year", "period"),
		DifficultyRaw:  submission.Str(m, "difficulty", "courseDifficulty"),
		FoundDifficult: core.CleanString(submission.Str(m, "foundDifficult", "foundCoursesDifficult"), true),
		Challenges:     submission.Strs(m, "challenges", "courseMatchingChallenges"),
	}
	exp.DifficultyScore = DifficultyScore(exp.DifficultyRaw)

	if v, ok := submission.Num(m, "ects", "ectsCredits", "credits"); ok && v > 0 {
		exp.ECTS = v
	}
	if v, ok := submission.Num(m, "rating", "overallRating"); ok && v >= 1 && v <= 5 {
		exp.Rating = null.Float64From(v)
	}

	examText := strings.Join(append(submission.Strs(m, "examTypes", "exams"), submission.Str(m, "examDescription")), " ")
	exp.ExamTypes = examTypeMatcher.Extract(examText)

	if courses, ok := m["courses"].([]interface{}); ok {
		for _, item := range courses {
			cm, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			mapping := CourseMapping{
				HomeCourse: submission.Str(cm, "homeCourse", "home"),
				HostCourse: submission.Str(cm, "hostCourse", "host"),
			}
			if v, ok := submission.Num(cm, "ects", "credits"); ok {
				mapping.ECTS = v
			}
			if mapping.HomeCourse != "" || mapping.HostCourse != "" {
				exp.Courses = append(exp.Courses, mapping)
			}
		}
	}

	return exp
}
