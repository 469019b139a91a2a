package echoapi

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var idsParam = "ids"

// IDList binds the comma-separated `ids` query parameter.
type IDList struct {
	IDs []string `json:"ids" validate:"required,min=2,max=4"`
}

func (l *IDList) Bind(ctx echo.Context) {
	raw := ctx.QueryParam(idsParam)
	if raw == "" {
		return
	}
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			l.IDs = append(l.IDs, id)
		}
	}
}

func (l *IDList) Validate(validate *validator.Validate) error {
	return validate.Struct(l)
}
