package inmemdb

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/safari/core/submission"
)

type submissionRepository struct {
	db *submissionTable
}

var _ submission.Repository = (*submissionRepository)(nil) // interface compliance check

func NewSubmissionRepository(db *DB) submission.Repository {
	return &submissionRepository{db: db.submission}
}

func (repo *submissionRepository) query() []submission.Submission {
	subs := make([]submission.Submission, 0, len(repo.db.table))
	for _, sub := range repo.db.table {
		subs = append(subs, *sub)
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].CreatedAt.Before(subs[j].CreatedAt) })
	return subs
}

func (repo *submissionRepository) GetSubmissionsByID(ids ...string) ([]submission.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	seen := make(map[string]bool, len(ids))
	subs := make([]submission.Submission, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if sub, ok := repo.db.table[id]; ok {
			subs = append(subs, *sub)
		}
	}
	return subs, nil
}

func (repo *submissionRepository) FilterSubmissions(filter submission.QueryFilter) ([]submission.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	subs := make([]submission.Submission, 0)
	for _, sub := range repo.query() {
		if filter.Matches(sub) {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

func (repo *submissionRepository) CreateSubmission(sub submission.Submission) (submission.Submission, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	repo.db.table[sub.ID] = &sub
	return sub, nil
}
