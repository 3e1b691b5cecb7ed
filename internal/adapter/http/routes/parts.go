package routes

import (
	"autopecas_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathItems = "/items"

func addPartRoutes(r *gin.Engine, partHandler *handlers.PartHandler) {
	items := r.Group(PathItems)
	{
		items.POST("", partHandler.CreatePart)
		items.GET("", partHandler.ListParts)
		items.GET("/:id", partHandler.GetPart)
		items.PUT("/:id", partHandler.UpdatePart)
		items.DELETE("/:id", partHandler.DeletePart)
	}
}
