package inmemdb

import (
	"sync"

	"github.com/trezcool/safari/core/submission"
)

type (
	DB struct {
		submission *submissionTable
	}

	submissionTable struct {
		sync.RWMutex
		table map[string]*submission.Submission
	}
)

func Open() (*DB, error) {
	db := &DB{
		submission: &submissionTable{table: make(map[string]*submission.Submission)},
	}
	return db, nil
}
