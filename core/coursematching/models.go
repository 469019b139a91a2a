package coursematching

import "github.com/volatiletech/null/v8"

type (
	// CourseMapping pairs a home course with the host course it was
	// matched against.
	CourseMapping struct {
		HomeCourse string  `json:"homeCourse"`
		HostCourse string  `json:"hostCourse"`
		ECTS       float64 `json:"ects,omitempty"`
	}

	// Experience is the canonical record a COURSE_MATCHING submission
	// normalizes into.
	Experience struct {
		ID              string          `json:"id"`
		UserID          string          `json:"userId"`
		StudentName     string          `json:"studentName,omitempty"`
		HomeUniversity  string          `json:"homeUniversity,omitempty"`
		HostUniversity  string          `json:"hostUniversity"`
		Department      string          `json:"department,omitempty"`
		City            string          `json:"city,omitempty"`
		Country         string          `json:"country,omitempty"`
		Semester        string          `json:"semester,omitempty"` // free text, e.g. "2023/2024" or "WS24"
		DifficultyRaw   string          `json:"difficulty,omitempty"`
		DifficultyScore int             `json:"difficultyScore"` // 1-5
		ECTS            float64         `json:"ects,omitempty"`
		ExamTypes       []string        `json:"examTypes"`
		FoundDifficult  string          `json:"foundDifficult,omitempty"` // raw yes/no flag
		Challenges      []string        `json:"challenges,omitempty"`
		Courses         []CourseMapping `json:"courses,omitempty"`
		Rating          null.Float64    `json:"rating"`
	}

	// DestinationCount is one entry of a top-N destination ranking.
	DestinationCount struct {
		City  string `json:"city"`
		Count int    `json:"count"`
	}

	// Stats summarizes all course-matching experiences.
	Stats struct {
		TotalExperiences    int                `json:"totalExperiences"`
		AverageDifficulty   float64            `json:"averageDifficulty"`
		AverageECTS         float64            `json:"averageEcts"`
		DifficultyBreakdown map[string]int     `json:"difficultyBreakdown"` // "1".."5" -> count
		CommonExamTypes     []string           `json:"commonExamTypes"`
		TopDestinations     []DestinationCount `json:"topDestinations"`
	}

	// Insights summarizes the experiences of one destination city.
	Insights struct {
		Destination               string   `json:"destination"`
		Country                   string   `json:"country,omitempty"`
		TotalExperiences          int      `json:"totalExperiences"`
		AverageDifficulty         float64  `json:"averageDifficulty"`
		AverageECTS               float64  `json:"averageEcts"`
		CommonExamTypes           []string `json:"commonExamTypes"`
		StudentsWhoFoundDifficult int      `json:"studentsWhoFoundDifficult"`
		HostUniversities          []string `json:"hostUniversities"`
		CommonChallenges          []string `json:"commonChallenges"`
	}
)
