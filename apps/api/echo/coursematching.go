package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/coursematching"
)

type (
	courseMatchingApi struct {
		svc    *coursematching.Service
		logger core.Logger
	}

	experiencesResponse struct {
		Success     bool                        `json:"success"`
		Experiences []coursematching.Experience `json:"experiences"`
		Stats       coursematching.Stats        `json:"stats"`
	}

	insightsResponse struct {
		Success  bool                    `json:"success"`
		Insights coursematching.Insights `json:"insights"`
	}
)

func registerCourseMatchingAPI(g *echo.Group, optJWT echo.MiddlewareFunc, svc *coursematching.Service, logger core.Logger) {
	api := courseMatchingApi{svc: svc, logger: logger}

	g.GET("/course-matching/experiences", api.experiences, optJWT)
	g.GET("/destinations/:city/course-matching", api.destinationInsights)
}

func (api *courseMatchingApi) experiences(ctx echo.Context) error {
	exps, stats, err := api.svc.Experiences(contextIsStaff(ctx))
	if err != nil {
		// fail-soft: a broken aggregation must never break page rendering
		api.logger.Error("listing course-matching experiences", errors.Wrap(err, "listing experiences"))
		return ctx.JSON(http.StatusOK, experiencesResponse{
			Success:     false,
			Experiences: []coursematching.Experience{},
			Stats:       coursematching.BuildStats(nil),
		})
	}
	return ctx.JSON(http.StatusOK, experiencesResponse{Success: true, Experiences: exps, Stats: stats})
}

func (api *courseMatchingApi) destinationInsights(ctx echo.Context) error {
	insights, err := api.svc.DestinationInsights(ctx.Param("city"), ctx.QueryParam("country"))
	if err != nil {
		return errors.Wrap(err, "building destination insights")
	}
	return ctx.JSON(http.StatusOK, insightsResponse{Success: true, Insights: insights})
}
