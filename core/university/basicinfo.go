package university

import (
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/safari/core/submission"
)

// BasicInfo is the canonical record a BASIC_INFO submission normalizes
// into: who went where, and how they rated the exchange overall.
type BasicInfo struct {
	ID             string       `json:"id"`
	UserID         string       `json:"userId"`
	StudentName    string       `json:"studentName,omitempty"`
	HomeUniversity string       `json:"homeUniversity,omitempty"`
	HostUniversity string       `json:"hostUniversity"`
	Department     string       `json:"department,omitempty"`
	City           string       `json:"city,omitempty"`
	Country        string       `json:"country,omitempty"`
	Year           string       `json:"year,omitempty"` // free text, e.g. "2023/2024"
	Rating         null.Float64 `json:"rating"`
}

// NewBasicInfo normalizes a raw BASIC_INFO submission. Missing fields
// default, never error.
func NewBasicInfo(sub submission.Submission) BasicInfo {
	m := sub.DataMap()

	info := BasicInfo{
		ID:             sub.ID,
		UserID:         sub.UserID,
		StudentName:    submission.Str(m, "studentName", "name", "author"),
		HomeUniversity: submission.Str(m, "homeUniversity", "home_university"),
		HostUniversity: submission.Str(m, "hostUniversity", "host_university", "university"),
		Department:     submission.Str(m, "department", "faculty"),
		City:           submission.Str(m, "city", "destinationCity"),
		Country:        submission.Str(m, "country", "destinationCountry"),
		Year:           submission.Str(m, "year", "semester", "period"),
	}
	if v, ok := submission.Num(m, "rating", "overallRating", "experienceRating"); ok && v >= 1 && v <= 5 {
		info.Rating = null.Float64From(v)
	}
	return info
}
