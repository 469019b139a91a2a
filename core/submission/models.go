package submission

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	// errors
	ErrNotFound = errors.New("submission not found")
)

// Submission types.
const (
	TypeAccommodation  = "ACCOMMODATION"
	TypeCourseMatching = "COURSE_MATCHING"
	TypeBasicInfo      = "BASIC_INFO"
	TypeStory          = "STORY"
)

// Submission statuses.
const (
	StatusDraft     = "DRAFT"
	StatusSubmitted = "SUBMITTED"
	StatusPublished = "PUBLISHED"
	StatusApproved  = "APPROVED"
)

// Submission is a single student-entered form record. The `Data` payload is
// free-form JSON whose shape varies per Type (and per frontend version);
// it is only ever interpreted past the normalization boundary.
// Submissions are immutable once read by the analytics core.
type Submission struct {
	ID        string          `db:"id" json:"id"`
	Type      string          `db:"type" json:"type"`
	Status    string          `db:"status" json:"status"`
	Data      json.RawMessage `db:"data" json:"data"`
	UserID    string          `db:"user_id" json:"userId"`
	IsPublic  bool            `db:"is_public" json:"isPublic"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"` // UTC
}

// IsVisible reports whether the submission may be served to anonymous
// visitors: it must have passed moderation and be shared publicly.
func (s Submission) IsVisible() bool {
	return s.Status == StatusApproved && s.IsPublic
}

// DataMap decodes the raw payload into a generic map.
// A nil/invalid payload yields an empty map, never an error: statistics
// must not crash on partial student-entered data.
func (s Submission) DataMap() map[string]interface{} {
	m := make(map[string]interface{})
	if len(s.Data) > 0 {
		_ = json.Unmarshal(s.Data, &m)
	}
	return m
}

type (
	// QueryFilter applies AND operation on available fields.
	QueryFilter struct {
		Types       []string
		Statuses    []string
		VisibleOnly bool
	}

	Repository interface {
		// GetSubmissionsByID resolves `ids` in one batched query;
		// unknown ids are skipped, duplicates resolve once.
		GetSubmissionsByID(ids ...string) ([]Submission, error)
		FilterSubmissions(filter QueryFilter) ([]Submission, error)
		CreateSubmission(sub Submission) (Submission, error)
	}
)

// Matches reports whether `sub` passes `f`.
func (f QueryFilter) Matches(sub Submission) bool {
	if f.VisibleOnly && !sub.IsVisible() {
		return false
	}
	if len(f.Types) > 0 && !contains(f.Types, sub.Type) {
		return false
	}
	if len(f.Statuses) > 0 && !contains(f.Statuses, sub.Status) {
		return false
	}
	return true
}

func contains(vals []string, v string) bool {
	for _, val := range vals {
		if val == v {
			return true
		}
	}
	return false
}
