package api

import (
	"math"
	"net/http"

	"github.com/phrazzld/finstart-api/internal/api/shared"
	"github.com/phrazzld/finstart-api/internal/catalog"
)

// CatalogHandler serves the static curriculum and scenario advice.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Welcome handles GET /api/ requests.
func (h *CatalogHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: WelcomeMessage})
}

// ListModules handles GET /api/modules requests.
func (h *CatalogHandler) ListModules(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, catalog.Modules())
}

// GetScenario handles GET /api/scenarios/{scenario_type} requests. Unknown
// scenario types get the student advice.
func (h *CatalogHandler) GetScenario(w http.ResponseWriter, r *http.Request) {
	scenarioType, ok := requirePathParam(w, r, "scenario_type")
	if !ok {
		return
	}

	income, err := queryFloat(r, "income", catalog.DefaultIncome)
	if err != nil || math.IsNaN(income) || math.IsInf(income, 0) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid income: must be a number")
		return
	}

	age, err := queryInt(r, "age", catalog.DefaultAge)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid age: must be an integer")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, catalog.LookupScenario(scenarioType, income, age))
}
