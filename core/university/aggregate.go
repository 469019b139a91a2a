package university

import (
	"math"
	"sort"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/coursematching"
	"github.com/trezcool/safari/core/feature"
)

// defaultDepartment groups students whose submissions name no department.
const defaultDepartment = "General"

type (
	// StudentExperience is one student's entry within a department.
	StudentExperience struct {
		SubmissionID    string       `json:"submissionId"`
		StudentName     string       `json:"studentName,omitempty"`
		HomeUniversity  string       `json:"homeUniversity,omitempty"`
		Year            string       `json:"year,omitempty"`
		Rating          null.Float64 `json:"rating"`
		HasCourseData   bool         `json:"hasCourseData"`
		DifficultyScore int          `json:"difficultyScore,omitempty"`
		ECTS            float64      `json:"ects,omitempty"`
	}

	// CourseStats summarizes the course-matching data of one department.
	CourseStats struct {
		TotalStudentsWithCourseData int      `json:"totalStudentsWithCourseData"`
		AverageDifficulty           float64  `json:"averageDifficulty"`
		AverageECTS                 float64  `json:"averageEcts"`
		CommonExamTypes             []string `json:"commonExamTypes"`
		StudentsWhoFoundDifficult   int      `json:"studentsWhoFoundDifficult"`
		Challenges                  []string `json:"challenges"` // first 3 reported
	}

	Department struct {
		Name          string              `json:"name"`
		Students      []StudentExperience `json:"students"`
		AverageRating null.Float64        `json:"averageRating"`
		CourseStats   CourseStats         `json:"courseMatchingStats"`
	}

	University struct {
		Name          string       `json:"name"`
		Slug          string       `json:"slug"`
		City          string       `json:"city,omitempty"`
		Country       string       `json:"country,omitempty"`
		TotalStudents int          `json:"totalStudents"`
		AverageRating null.Float64 `json:"averageRating"`
		Departments   []Department `json:"departments"`
	}

	// Summary is the list-view projection of a University.
	Summary struct {
		Name          string       `json:"name"`
		Slug          string       `json:"slug"`
		City          string       `json:"city,omitempty"`
		Country       string       `json:"country,omitempty"`
		TotalStudents int          `json:"totalStudents"`
		AverageRating null.Float64 `json:"averageRating"`
	}
)

// deptAccum carries the running course-stats sums; averages are computed
// once at the end, not per record.
type deptAccum struct {
	dept          *Department
	difficultySum int
	ectsSum       float64
	ectsCount     int
	examSets      [][]string
}

// Build folds basic-info records and course-matching experiences into the
// university -> department -> student hierarchy. Universities are keyed by
// Slugify(host university name); names that slugify identically merge by
// design. Experiences are joined to basic-info records by user id; orphan
// experiences still produce a student entry of their own.
func Build(basics []BasicInfo, exps []coursematching.Experience) []University {
	expByUser := make(map[string]coursematching.Experience, len(exps))
	for _, exp := range exps {
		if exp.UserID == "" {
			continue
		}
		if _, ok := expByUser[exp.UserID]; !ok {
			expByUser[exp.UserID] = exp
		}
	}

	unis := make(map[string]*University)
	accums := make(map[string]map[string]*deptAccum) // slug -> dept name -> accum
	joined := make(map[string]bool)                  // experience ids consumed by a join

	addStudent := func(uniName, city, country, deptName string, student StudentExperience, exp *coursematching.Experience) {
		slug := core.Slugify(uniName)
		if slug == "" {
			return
		}
		uni, ok := unis[slug]
		if !ok {
			uni = &University{Name: uniName, Slug: slug, City: city, Country: country}
			unis[slug] = uni
			accums[slug] = make(map[string]*deptAccum)
		}
		if uni.City == "" {
			uni.City = city
		}
		if uni.Country == "" {
			uni.Country = country
		}

		if deptName == "" {
			deptName = defaultDepartment
		}
		accum, ok := accums[slug][deptName]
		if !ok {
			uni.Departments = append(uni.Departments, Department{Name: deptName})
			accum = &deptAccum{dept: &uni.Departments[len(uni.Departments)-1]}
			accums[slug][deptName] = accum
		}
		// Departments slice may have been reallocated by append; re-point.
		for i := range uni.Departments {
			accums[slug][uni.Departments[i].Name].dept = &uni.Departments[i]
		}
		accum = accums[slug][deptName]

		if exp != nil {
			student.HasCourseData = true
			student.DifficultyScore = exp.DifficultyScore
			student.ECTS = exp.ECTS
			accum.dept.CourseStats.TotalStudentsWithCourseData++
			accum.difficultySum += exp.DifficultyScore
			if exp.ECTS > 0 {
				accum.ectsSum += exp.ECTS
				accum.ectsCount++
			}
			accum.examSets = append(accum.examSets, exp.ExamTypes)
			if exp.FoundDifficult == "yes" {
				accum.dept.CourseStats.StudentsWhoFoundDifficult++
			}
			for _, challenge := range exp.Challenges {
				if len(accum.dept.CourseStats.Challenges) < 3 {
					accum.dept.CourseStats.Challenges = append(accum.dept.CourseStats.Challenges, challenge)
				}
			}
		}
		accum.dept.Students = append(accum.dept.Students, student)
		uni.TotalStudents++
	}

	for _, basic := range basics {
		var exp *coursematching.Experience
		if e, ok := expByUser[basic.UserID]; ok && basic.UserID != "" {
			exp = &e
			joined[e.ID] = true
		}

		uniName := basic.HostUniversity
		deptName := basic.Department
		if exp != nil {
			if uniName == "" {
				uniName = exp.HostUniversity
			}
			if deptName == "" {
				deptName = exp.Department
			}
		}
		addStudent(uniName, basic.City, basic.Country, deptName, StudentExperience{
			SubmissionID:   basic.ID,
			StudentName:    basic.StudentName,
			HomeUniversity: basic.HomeUniversity,
			Year:           basic.Year,
			Rating:         basic.Rating,
		}, exp)
	}

	// orphan experiences: no basic-info record to hang them off
	for _, exp := range exps {
		if joined[exp.ID] {
			continue
		}
		e := exp
		addStudent(exp.HostUniversity, exp.City, exp.Country, exp.Department, StudentExperience{
			SubmissionID:   exp.ID,
			StudentName:    exp.StudentName,
			HomeUniversity: exp.HomeUniversity,
			Year:           exp.Semester,
			Rating:         exp.Rating,
		}, &e)
	}

	out := make([]University, 0, len(unis))
	for slug, uni := range unis {
		finalize(uni, accums[slug])
		out = append(out, *uni)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalStudents != out[j].TotalStudents {
			return out[i].TotalStudents > out[j].TotalStudents
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func finalize(uni *University, accums map[string]*deptAccum) {
	var ratingSum float64
	var ratingCount int

	for i := range uni.Departments {
		dept := &uni.Departments[i]
		accum := accums[dept.Name]

		if n := dept.CourseStats.TotalStudentsWithCourseData; n > 0 {
			dept.CourseStats.AverageDifficulty = round1(float64(accum.difficultySum) / float64(n))
		}
		if accum.ectsCount > 0 {
			dept.CourseStats.AverageECTS = round1(accum.ectsSum / float64(accum.ectsCount))
		}
		dept.CourseStats.CommonExamTypes = feature.Union(accum.examSets...)
		if dept.CourseStats.Challenges == nil {
			dept.CourseStats.Challenges = []string{}
		}

		var deptSum float64
		var deptCount int
		for _, student := range dept.Students {
			if student.Rating.Valid {
				deptSum += student.Rating.Float64
				deptCount++
				ratingSum += student.Rating.Float64
				ratingCount++
			}
		}
		if deptCount > 0 {
			dept.AverageRating = null.Float64From(round1(deptSum / float64(deptCount)))
		}

		// students: best-rated first, then most recent year; the year is
		// compared as a raw string ("9" sorts above "2024") which matches
		// the historical ordering of the data set
		sort.SliceStable(dept.Students, func(a, b int) bool {
			ra, rb := dept.Students[a].Rating, dept.Students[b].Rating
			if ra.Float64 != rb.Float64 {
				return ra.Float64 > rb.Float64
			}
			return dept.Students[a].Year > dept.Students[b].Year
		})
	}

	sort.SliceStable(uni.Departments, func(i, j int) bool {
		if len(uni.Departments[i].Students) != len(uni.Departments[j].Students) {
			return len(uni.Departments[i].Students) > len(uni.Departments[j].Students)
		}
		return uni.Departments[i].Name < uni.Departments[j].Name
	})

	if ratingCount > 0 {
		uni.AverageRating = null.Float64From(round1(ratingSum / float64(ratingCount)))
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
