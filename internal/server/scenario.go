package server

import (
	"strings"

	scenariodomain "github.com/flowmetriclabs/aproi/internal/scenario/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var scenariosCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "aproi_scenarios_created_total",
	Help: "Scenarios persisted through the API.",
})

// @Summary      Simulate ROI
// @Description  Validate inputs and compute derived metrics without saving
// @Tags         simulations
// @Accept       json
// @Produce      json
// @Param        request body scenariodomain.CreateRequest true "Scenario Inputs"
// @Success      200  {object}  scenariodomain.Estimate
// @Router       /simulations [post]
func (s *Server) Simulate(c *gin.Context) {
	var req scenariodomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.scenarioSvc.Simulate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Create Scenario
// @Description  Compute and persist a named scenario
// @Tags         scenarios
// @Accept       json
// @Produce      json
// @Param        request body scenariodomain.CreateRequest true "Scenario Inputs"
// @Success      200  {object}  scenariodomain.Response
// @Router       /scenarios [post]
func (s *Server) CreateScenario(c *gin.Context) {
	var req scenariodomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.scenarioSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	scenariosCreated.Inc()
	respondData(c, resp)
}

// @Summary      List Scenarios
// @Description  List saved scenarios, newest first
// @Tags         scenarios
// @Produce      json
// @Success      200  {array}  scenariodomain.Response
// @Router       /scenarios [get]
func (s *Server) ListScenarios(c *gin.Context) {
	resp, err := s.scenarioSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Get Scenario
// @Description  Fetch one scenario by id
// @Tags         scenarios
// @Produce      json
// @Param        id   path      string  true  "Scenario ID"
// @Success      200  {object}  scenariodomain.Response
// @Router       /scenarios/{id} [get]
func (s *Server) GetScenarioByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.scenarioSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Delete Scenario
// @Description  Permanently delete a scenario
// @Tags         scenarios
// @Produce      json
// @Param        id   path      string  true  "Scenario ID"
// @Success      200  {object}  map[string]string
// @Router       /scenarios/{id} [delete]
func (s *Server) DeleteScenario(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.scenarioSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, gin.H{"deleted": id})
}
