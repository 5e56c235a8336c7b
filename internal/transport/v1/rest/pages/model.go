package pagescntrl

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/chup1x/carmodels/internal/domain"
)

// selectionFromQuery reads a partial selection carried back from /next.
func selectionFromQuery(c *fiber.Ctx) domain.Selection {
	return domain.Selection{
		VehicleType: c.Query("make"),
		Year:        c.QueryInt("year", 0),
	}
}

func selectionQuery(sel domain.Selection) string {
	v := url.Values{}
	if sel.VehicleType != "" {
		v.Set("make", sel.VehicleType)
	}
	if sel.Year != 0 {
		v.Set("year", fmt.Sprint(sel.Year))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// routeFromParams reads the results route, undoing the path escaping the
// selector applied to the make.
func routeFromParams(c *fiber.Ctx) domain.ResultRoute {
	return domain.ResultRoute{
		MakeID: unescapeParam(c.Params("makeID")),
		Year:   unescapeParam(c.Params("year")),
	}
}

// unescapeParam copies the value out of the request buffer, which fasthttp
// reuses once the handler returns.
func unescapeParam(raw string) string {
	v, err := url.PathUnescape(raw)
	if err != nil {
		return strings.Clone(raw)
	}
	return strings.Clone(v)
}
