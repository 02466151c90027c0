package routes

import (
	"aerocode/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAircraft = "/aeronaves"
)

func addAircraftRoutes(
	rg *gin.RouterGroup,
	aircraftHandler *handlers.AircraftHandler,
	partHandler *handlers.PartHandler,
	stageHandler *handlers.StageHandler,
	testHandler *handlers.TestHandler,
) {
	aircraft := rg.Group(PathAircraft)
	{
		aircraft.GET("", aircraftHandler.ListAircraft)
		aircraft.POST("", aircraftHandler.CreateAircraft)
		aircraft.GET("/:codigo", aircraftHandler.GetAircraft)
		aircraft.PUT("/:codigo", aircraftHandler.UpdateAircraft)
		aircraft.DELETE("/:codigo", aircraftHandler.DeleteAircraft)
		aircraft.POST("/:codigo/relatorio", aircraftHandler.GenerateReport)
	}

	parts := aircraft.Group("/:codigo/pecas")
	{
		parts.GET("", partHandler.ListParts)
		parts.POST("", partHandler.AddPart)
		parts.GET("/:idx", partHandler.GetPart)
		parts.PUT("/:idx", partHandler.UpdatePart)
		parts.PUT("/:idx/status", partHandler.UpdatePartStatus)
		parts.DELETE("/:idx", partHandler.DeletePart)
	}

	stages := aircraft.Group("/:codigo/etapas")
	{
		stages.GET("", stageHandler.ListStages)
		stages.POST("", stageHandler.AddStage)
		stages.POST("/:idx/avancar", stageHandler.AdvanceStage)
		stages.POST("/:idx/concluir", stageHandler.CompleteStage)
		stages.POST("/:idx/funcionario", stageHandler.AssignEmployee)
	}

	tests := aircraft.Group("/:codigo/testes")
	{
		tests.GET("", testHandler.ListTests)
		tests.POST("", testHandler.RegisterTest)
		tests.GET("/:idx", testHandler.GetTest)
		tests.PUT("/:idx", testHandler.UpdateTest)
		tests.DELETE("/:idx", testHandler.DeleteTest)
	}
}
