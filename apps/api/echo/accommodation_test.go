package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/safari/core/submission"
)

func TestAccommodationCompareAPI(t *testing.T) {
	repo := newRepo(t)
	app := initApp(repo)

	createSubmission(t, repo, "a1", submission.TypeAccommodation, "u1", true, map[string]interface{}{
		"name": "Casa Azul", "monthlyRent": 450, "overallRating": 4.5, "valueForMoneyRating": 4,
		"description": "balcony, wifi and a washing machine",
	})
	createSubmission(t, repo, "a2", submission.TypeAccommodation, "u2", true, map[string]interface{}{
		"name": "Riverside Loft", "monthlyRent": 680, "overallRating": 4,
	})
	createSubmission(t, repo, "a3", submission.TypeAccommodation, "u3", false, map[string]interface{}{
		"name": "Pending Flat", "monthlyRent": 300,
	})

	tests := []httpTest{
		{name: "no ids", path: "/v1/accommodations/compare", wantCode: http.StatusBadRequest},
		{name: "one id", path: "/v1/accommodations/compare?ids=a1", wantCode: http.StatusBadRequest},
		{name: "five ids", path: "/v1/accommodations/compare?ids=a1,a2,a3,a4,a5", wantCode: http.StatusBadRequest},
		{name: "two valid ids", path: "/v1/accommodations/compare?ids=a1,a2", wantCode: http.StatusOK},
		{name: "two valid plus two unknown", path: "/v1/accommodations/compare?ids=a1,a2,x,y", wantCode: http.StatusOK},
		{name: "unapproved record does not resolve", path: "/v1/accommodations/compare?ids=a1,a3", wantCode: http.StatusNotFound},
		{name: "all unknown", path: "/v1/accommodations/compare?ids=x,y", wantCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(app, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			if tt.wantCode != http.StatusOK {
				body := decodeBody(t, rec)
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestAccommodationCompareAPI_payload(t *testing.T) {
	repo := newRepo(t)
	app := initApp(repo)

	createSubmission(t, repo, "a1", submission.TypeAccommodation, "u1", true, map[string]interface{}{
		"name": "Casa Azul", "monthlyRent": 450, "overallRating": 4.5, "valueForMoneyRating": 4,
	})
	createSubmission(t, repo, "a2", submission.TypeAccommodation, "u2", true, map[string]interface{}{
		"name": "Riverside Loft", "monthlyRent": 680,
	})

	rec := doRequest(app, http.MethodGet, "/v1/accommodations/compare?ids=a1,a2", "")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// comparisons are pure functions of approved records: cacheable
	assert.Equal(t, compareCacheControl, rec.Header().Get("Cache-Control"))

	body := decodeBody(t, rec)
	accommodations := body["accommodations"].([]interface{})
	assert.Len(t, accommodations, 2)

	summary := body["summary"].(map[string]interface{})
	cheapest := summary["cheapest"].(map[string]interface{})
	mostExpensive := summary["mostExpensive"].(map[string]interface{})
	assert.Equal(t, "a1", cheapest["id"])
	assert.Equal(t, "a2", mostExpensive["id"])
	assert.Equal(t, float64(23000), summary["priceGapCents"])

	recommendations := body["recommendations"].([]interface{})
	assert.NotEmpty(t, recommendations) // €230 gap crosses the €200 threshold
}
