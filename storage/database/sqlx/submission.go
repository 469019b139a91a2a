package sqlxrepos

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/safari/core/submission"
)

const submissionCols = `id, type, status, data, user_id, is_public, created_at`

type submissionRepository struct {
	db *sqlx.DB
}

var _ submission.Repository = (*submissionRepository)(nil) // interface compliance check

func NewSubmissionRepository(db *sqlx.DB) submission.Repository {
	return &submissionRepository{db: db}
}

func (repo *submissionRepository) GetSubmissionsByID(ids ...string) ([]submission.Submission, error) {
	if len(ids) == 0 {
		return []submission.Submission{}, nil
	}
	query, args, err := sqlx.In(
		`SELECT `+submissionCols+` FROM submissions WHERE id IN (?);`, ids,
	)
	if err != nil {
		return nil, errors.Wrap(err, "expanding id list")
	}

	subs := make([]submission.Submission, 0, len(ids))
	if err := repo.db.Select(&subs, repo.db.Rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "selecting submissions by id")
	}
	return subs, nil
}

func (repo *submissionRepository) FilterSubmissions(filter submission.QueryFilter) ([]submission.Submission, error) {
	query := `SELECT ` + submissionCols + ` FROM submissions WHERE 1=1`
	args := make([]interface{}, 0, 3)

	if len(filter.Types) > 0 {
		q, a, err := sqlx.In(` AND type IN (?)`, filter.Types)
		if err != nil {
			return nil, errors.Wrap(err, "expanding type list")
		}
		query += q
		args = append(args, a...)
	}
	if len(filter.Statuses) > 0 {
		q, a, err := sqlx.In(` AND status IN (?)`, filter.Statuses)
		if err != nil {
			return nil, errors.Wrap(err, "expanding status list")
		}
		query += q
		args = append(args, a...)
	}
	if filter.VisibleOnly {
		query += ` AND status = ? AND is_public = true`
		args = append(args, submission.StatusApproved)
	}
	query += ` ORDER BY created_at;`

	subs := make([]submission.Submission, 0)
	if err := repo.db.Select(&subs, repo.db.Rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "selecting submissions")
	}
	return subs, nil
}

func (repo *submissionRepository) CreateSubmission(sub submission.Submission) (submission.Submission, error) {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	res, err := repo.db.NamedExec(
		`INSERT INTO submissions (`+submissionCols+`)
		 VALUES (:id, :type, :status, :data, :user_id, :is_public, :created_at);`, sub,
	)
	if err != nil {
		return submission.Submission{}, errors.Wrap(err, "inserting submission")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return submission.Submission{}, errors.Wrap(sql.ErrNoRows, "inserting submission")
	}
	return sub, nil
}
