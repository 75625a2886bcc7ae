package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VShilovich/fitness-bot/controllers"
)

func SetupRouter(progress *controllers.ProgressController) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := r.Group("/users")
	{
		users.GET("/:id/progress", progress.GetProgress)
		users.GET("/:id/progress/chart.png", progress.GetProgressChart)
	}

	return r
}
