package vehiclescntrl

import (
	"github.com/gofiber/fiber/v2"

	resultserv "github.com/chup1x/carmodels/internal/services/results"
	selectorserv "github.com/chup1x/carmodels/internal/services/selector"
)

func RegisterVehiclesRoutes(router fiber.Router, selector *selectorserv.SelectorService, results *resultserv.ResultService) {
	vehiclesCntrl := NewVehiclesController(selector, results)
	router.Get("/makes", vehiclesCntrl.getMakesHandler)
	router.Get("/models/:makeID?/:year?", vehiclesCntrl.getModelsHandler)
}
