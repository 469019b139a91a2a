package coursematching_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/coursematching"
	"github.com/trezcool/safari/core/submission"
	inmemdb "github.com/trezcool/safari/storage/database/inmem"
)

func setup(t *testing.T) (*coursematching.Service, submission.Repository) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := inmemdb.NewSubmissionRepository(db)
	return coursematching.NewService(repo), repo
}

func createExperience(t *testing.T, repo submission.Repository, status string, public bool, data map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("createExperience() failed: %v", err)
	}
	if _, err := repo.CreateSubmission(submission.Submission{
		Type:     submission.TypeCourseMatching,
		Status:   status,
		IsPublic: public,
		Data:     raw,
	}); err != nil {
		t.Fatalf("createExperience() failed: %v", err)
	}
}

func TestServiceExperiences(t *testing.T) {
	svc, repo := setup(t)
	createExperience(t, repo, submission.StatusApproved, true, map[string]interface{}{
		"hostUniversity": "TU Wien", "city": "Vienna", "difficulty": "hard",
	})
	createExperience(t, repo, submission.StatusApproved, true, map[string]interface{}{
		"hostUniversity": "NOVA", "city": "Lisbon", "difficulty": "easy",
	})
	createExperience(t, repo, submission.StatusSubmitted, false, map[string]interface{}{
		"hostUniversity": "Pending U", "city": "Oslo",
	})

	exps, stats, err := svc.Experiences(false)
	assert.NoError(t, err)
	assert.Len(t, exps, 2) // pending submission hidden
	assert.Equal(t, 2, stats.TotalExperiences)
	assert.Equal(t, 3.0, stats.AverageDifficulty) // (4+2)/2

	// staff sees unapproved records too
	exps, stats, err = svc.Experiences(true)
	assert.NoError(t, err)
	assert.Len(t, exps, 3)
	assert.Equal(t, 3, stats.TotalExperiences)
}

func TestServiceDestinationInsights(t *testing.T) {
	svc, repo := setup(t)
	createExperience(t, repo, submission.StatusApproved, true, map[string]interface{}{
		"hostUniversity": "TU Wien", "city": "Vienna", "country": "Austria", "difficulty": "hard",
	})
	createExperience(t, repo, submission.StatusApproved, true, map[string]interface{}{
		"hostUniversity": "BOKU", "city": "vienna", "country": "Austria", "difficulty": "medium",
	})
	createExperience(t, repo, submission.StatusApproved, true, map[string]interface{}{
		"hostUniversity": "NOVA", "city": "Lisbon", "country": "Portugal",
	})

	insights, err := svc.DestinationInsights("Vienna", "")
	assert.NoError(t, err)
	assert.Equal(t, 2, insights.TotalExperiences) // city match is case-insensitive
	assert.Equal(t, 3.5, insights.AverageDifficulty)

	insights, err = svc.DestinationInsights("Vienna", "Austria")
	assert.NoError(t, err)
	assert.Equal(t, 2, insights.TotalExperiences)

	_, err = svc.DestinationInsights("Vienna", "Portugal")
	assert.True(t, core.IsNotFound(err), "want NotFoundError, got %v", err)

	_, err = svc.DestinationInsights("Atlantis", "")
	assert.True(t, core.IsNotFound(err), "want NotFoundError, got %v", err)

	_, err = svc.DestinationInsights("", "")
	_, ok := err.(*core.ValidationError)
	assert.True(t, ok, "want ValidationError, got %v", err)
}
