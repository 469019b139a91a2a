package university

import (
	"github.com/pkg/errors"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/coursematching"
	"github.com/trezcool/safari/core/submission"
)

type Service struct {
	repo submission.Repository
}

func NewService(repo submission.Repository) *Service {
	return &Service{repo: repo}
}

// buildAll fetches both submission types in one batch each and joins them
// in memory (by user id); no per-record queries.
func (svc *Service) buildAll() ([]University, error) {
	basicSubs, err := svc.repo.FilterSubmissions(submission.QueryFilter{
		Types:       []string{submission.TypeBasicInfo},
		VisibleOnly: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "filtering basic-info submissions")
	}
	matchSubs, err := svc.repo.FilterSubmissions(submission.QueryFilter{
		Types:       []string{submission.TypeCourseMatching},
		VisibleOnly: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "filtering course-matching submissions")
	}

	basics := make([]BasicInfo, 0, len(basicSubs))
	for _, sub := range basicSubs {
		basics = append(basics, NewBasicInfo(sub))
	}
	exps := make([]coursematching.Experience, 0, len(matchSubs))
	for _, sub := range matchSubs {
		exps = append(exps, coursematching.New(sub))
	}
	return Build(basics, exps), nil
}

// List returns the list-view summaries, most visited university first.
func (svc *Service) List() ([]Summary, error) {
	unis, err := svc.buildAll()
	if err != nil {
		return nil, err
	}
	summaries := make([]Summary, 0, len(unis))
	for _, uni := range unis {
		summaries = append(summaries, Summary{
			Name:          uni.Name,
			Slug:          uni.Slug,
			City:          uni.City,
			Country:       uni.Country,
			TotalStudents: uni.TotalStudents,
			AverageRating: uni.AverageRating,
		})
	}
	return summaries, nil
}

// GetBySlug returns the full aggregate for one university. The id is a
// normalized-name slug; anything that slugifies to it matches.
func (svc *Service) GetBySlug(slug string) (University, error) {
	slug = core.Slugify(slug)
	if slug == "" {
		return University{}, core.NewValidationError(errors.New("a university id is required"))
	}

	unis, err := svc.buildAll()
	if err != nil {
		return University{}, err
	}
	for _, uni := range unis {
		if uni.Slug == slug {
			return uni, nil
		}
	}
	return University{}, core.NewNotFoundError("no exchange submissions for this university")
}
