package main

import (
	"log"
	"os"

	en_locale "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/safari/apps/api/echo"
	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/accommodation"
	"github.com/trezcool/safari/core/coursematching"
	"github.com/trezcool/safari/core/submission"
	"github.com/trezcool/safari/core/university"
	logsvc "github.com/trezcool/safari/services/logger"
	"github.com/trezcool/safari/storage/database"
	inmemdb "github.com/trezcool/safari/storage/database/inmem"
	sqlxrepos "github.com/trezcool/safari/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lshortfile)

	var logger core.Logger
	if core.Conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
	}

	// set up the record store; DEV runs off the in-memory store
	var repo submission.Repository
	if core.Conf.Debug {
		db, err := inmemdb.Open()
		errAndDie(std, err)
		repo = inmemdb.NewSubmissionRepository(db)
	} else {
		db, err := database.Open(core.Conf)
		errAndDie(std, err)
		defer db.Close()
		repo = sqlxrepos.NewSubmissionRepository(db)
	}

	// set up validation
	en := en_locale.New()
	uni := ut.New(en, en)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:              core.Conf.Addr(),
			Logger:            logger,
			Validate:          validate,
			Translator:        translator,
			AccommodationSvc:  accommodation.NewService(repo),
			CourseMatchingSvc: coursematching.NewService(repo),
			UniversitySvc:     university.NewService(repo),
		},
	)
	logger.Info("starting API server on " + core.Conf.Addr())
	app.Start()
}

func errAndDie(std *log.Logger, err error) {
	if err != nil {
		std.Fatal(err)
	}
}
