package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/safari/core/university"
)

type universityApi struct {
	svc *university.Service
}

func registerUniversityAPI(g *echo.Group, svc *university.Service) {
	api := universityApi{svc: svc}

	g.GET("/university-exchanges", api.list)
	g.GET("/university-exchanges/:id", api.retrieve)
}

func (api *universityApi) list(ctx echo.Context) error {
	summaries, err := api.svc.List()
	if err != nil {
		return errors.Wrap(err, "listing universities")
	}
	return ctx.JSON(http.StatusOK, summaries)
}

func (api *universityApi) retrieve(ctx echo.Context) error {
	uni, err := api.svc.GetBySlug(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "retrieving university")
	}
	return ctx.JSON(http.StatusOK, uni)
}
