package echoapi

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http/httptest"
	"testing"

	en_locale "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/accommodation"
	"github.com/trezcool/safari/core/coursematching"
	"github.com/trezcool/safari/core/submission"
	"github.com/trezcool/safari/core/university"
	logsvc "github.com/trezcool/safari/services/logger"
	inmemdb "github.com/trezcool/safari/storage/database/inmem"
)

type httpTest struct {
	name     string
	method   string
	path     string
	token    string
	wantCode int
}

func initApp(repo submission.Repository) *echo.Echo {
	app := echo.New()
	app.Pre(middleware.RemoveTrailingSlash())

	en := en_locale.New()
	uni := ut.New(en, en)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)

	logger := logsvc.NewConsoleLogger(log.New(ioutil.Discard, "", 0))
	app.HTTPErrorHandler = newAppHTTPErrorHandler(logger, translator, func() {})

	v1 := app.Group("/v1")
	registerAccommodationAPI(v1, accommodation.NewService(repo), validate)
	registerCourseMatchingAPI(v1, optionalJWT(), coursematching.NewService(repo), logger)
	registerUniversityAPI(v1, university.NewService(repo))
	return app
}

func newRepo(t *testing.T) submission.Repository {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("newRepo() failed: %v", err)
	}
	return inmemdb.NewSubmissionRepository(db)
}

func createSubmission(
	t *testing.T,
	repo submission.Repository,
	id, typ, userID string,
	visible bool,
	data map[string]interface{},
) submission.Submission {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("createSubmission() failed: %v", err)
	}
	status := submission.StatusApproved
	if !visible {
		status = submission.StatusSubmitted
	}
	sub, err := repo.CreateSubmission(submission.Submission{
		ID:       id,
		Type:     typ,
		Status:   status,
		IsPublic: visible,
		UserID:   userID,
		Data:     raw,
	})
	if err != nil {
		t.Fatalf("createSubmission() failed: %v", err)
	}
	return sub
}

func doRequest(app *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	body := make(map[string]interface{})
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decodeBody() failed: %v; body: %s", err, rec.Body.String())
	}
	return body
}

func getStaffToken(t *testing.T) string {
	t.Helper()
	token, err := GenerateToken(NewStaffClaims("staff@safari"))
	if err != nil {
		t.Fatalf("getStaffToken() failed: %v", err)
	}
	return token
}

// brokenRepo fails every query; used to exercise the fail-soft contract.
type brokenRepo struct{}

var _ submission.Repository = (*brokenRepo)(nil)

var errStoreDown = errors.New("store is down")

func (brokenRepo) GetSubmissionsByID(ids ...string) ([]submission.Submission, error) {
	return nil, errStoreDown
}

func (brokenRepo) FilterSubmissions(filter submission.QueryFilter) ([]submission.Submission, error) {
	return nil, errStoreDown
}

func (brokenRepo) CreateSubmission(sub submission.Submission) (submission.Submission, error) {
	return submission.Submission{}, errStoreDown
}
