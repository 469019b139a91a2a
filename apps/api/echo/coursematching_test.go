package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/safari/core/submission"
)

func TestCourseMatchingExperiencesAPI(t *testing.T) {
	repo := newRepo(t)
	app := initApp(repo)

	createSubmission(t, repo, "cm1", submission.TypeCourseMatching, "u1", true, map[string]interface{}{
		"hostUniversity": "TU Wien", "city": "Vienna", "difficulty": "hard", "ects": 30,
	})
	createSubmission(t, repo, "cm2", submission.TypeCourseMatching, "u2", true, map[string]interface{}{
		"hostUniversity": "NOVA", "city": "Lisbon", "difficulty": "easy", "ects": 24,
	})
	createSubmission(t, repo, "cm3", submission.TypeCourseMatching, "u3", false, map[string]interface{}{
		"hostUniversity": "Pending U", "city": "Oslo",
	})

	rec := doRequest(app, http.MethodGet, "/v1/course-matching/experiences", "")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["experiences"].([]interface{}), 2) // pending submission hidden

	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["totalExperiences"])
	assert.Equal(t, 3.0, stats["averageDifficulty"])
	assert.Equal(t, 27.0, stats["averageEcts"])
}

func TestCourseMatchingExperiencesAPI_staffSeesUnapproved(t *testing.T) {
	repo := newRepo(t)
	app := initApp(repo)

	createSubmission(t, repo, "cm1", submission.TypeCourseMatching, "u1", true, map[string]interface{}{
		"hostUniversity": "TU Wien", "city": "Vienna",
	})
	createSubmission(t, repo, "cm2", submission.TypeCourseMatching, "u2", false, map[string]interface{}{
		"hostUniversity": "Pending U", "city": "Oslo",
	})

	rec := doRequest(app, http.MethodGet, "/v1/course-matching/experiences", getStaffToken(t))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["experiences"].([]interface{}), 2)

	// a garbage token falls back to the anonymous view
	rec = doRequest(app, http.MethodGet, "/v1/course-matching/experiences", "not-a-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["experiences"].([]interface{}), 1)
}

func TestCourseMatchingExperiencesAPI_failSoft(t *testing.T) {
	app := initApp(brokenRepo{})

	rec := doRequest(app, http.MethodGet, "/v1/course-matching/experiences", "")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Empty(t, body["experiences"])

	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(0), stats["totalExperiences"])
	assert.Equal(t, 0.0, stats["averageDifficulty"])
}

func TestDestinationInsightsAPI(t *testing.T) {
	repo := newRepo(t)
	app := initApp(repo)

	createSubmission(t, repo, "cm1", submission.TypeCourseMatching, "u1", true, map[string]interface{}{
		"hostUniversity": "TU Wien", "city": "Vienna", "country": "Austria", "difficulty": "hard",
	})
	createSubmission(t, repo, "cm2", submission.TypeCourseMatching, "u2", true, map[string]interface{}{
		"hostUniversity": "BOKU", "city": "vienna", "country": "Austria", "difficulty": "medium",
	})

	tests := []httpTest{
		{name: "known city", path: "/v1/destinations/Vienna/course-matching", wantCode: http.StatusOK},
		{name: "city match is case-insensitive", path: "/v1/destinations/VIENNA/course-matching", wantCode: http.StatusOK},
		{name: "country narrows the match", path: "/v1/destinations/Vienna/course-matching?country=Portugal", wantCode: http.StatusNotFound},
		{name: "unknown city", path: "/v1/destinations/Atlantis/course-matching", wantCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(app, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}

	rec := doRequest(app, http.MethodGet, "/v1/destinations/Vienna/course-matching?country=Austria", "")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	insights := body["insights"].(map[string]interface{})
	assert.Equal(t, float64(2), insights["totalExperiences"])
	assert.Equal(t, 3.5, insights["averageDifficulty"])
}
