package api

import (
	"net/http"

	"github.com/phrazzld/finstart-api/internal/api/shared"
	"github.com/phrazzld/finstart-api/internal/service"
)

// SimulationHandler handles calculator HTTP requests.
type SimulationHandler struct {
	simulationService service.SimulationService
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(simulationService service.SimulationService) *SimulationHandler {
	return &SimulationHandler{simulationService: simulationService}
}

// Calculate handles POST /api/simulations/calculate requests and responds
// with the calculator outputs.
func (h *SimulationHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req SimulationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.simulationService.Calculate(r.Context(), userID, req.SimulationType, req.Inputs)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
