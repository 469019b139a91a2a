package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/safari/core/accommodation"
)

// comparison responses are pure functions of currently-approved records
const compareCacheControl = "public, max-age=1800, stale-while-revalidate=1800"

type accommodationApi struct {
	svc      *accommodation.Service
	validate *validator.Validate
}

func registerAccommodationAPI(g *echo.Group, svc *accommodation.Service, validate *validator.Validate) {
	api := accommodationApi{svc: svc, validate: validate}

	g.GET("/accommodations/compare", api.compare)
}

func (api *accommodationApi) compare(ctx echo.Context) error {
	var data IDList
	data.Bind(ctx)
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	res, err := api.svc.Compare(data.IDs)
	if err != nil {
		return errors.Wrap(err, "comparing accommodations")
	}

	ctx.Response().Header().Set("Cache-Control", compareCacheControl)
	return ctx.JSON(http.StatusOK, res)
}
