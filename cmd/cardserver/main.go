// cardserver exposes the card generators over HTTP. Each endpoint accepts the
// card options as JSON and responds with the rendered PNG.
package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/pictora/cardgen"
)

func main() {
	r := newRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

// newRouter wires the card endpoints onto a gin engine.
func newRouter() *gin.Engine {
	r := gin.Default()

	v1 := r.Group("/v1/cards")
	v1.POST("/profile", profileHandler)
	v1.POST("/welcome", welcomeHandler)
	v1.POST("/rank", rankHandler)

	return r
}

func profileHandler(c *gin.Context) {
	var opts cardgen.ProfileOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := cardgen.NewProfileCard(&opts).Render()
	respond(c, data, err)
}

func welcomeHandler(c *gin.Context) {
	var opts cardgen.WelcomeOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := cardgen.NewWelcomeCard(&opts).Render()
	respond(c, data, err)
}

func rankHandler(c *gin.Context) {
	var opts cardgen.RankOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := cardgen.NewRankCard(&opts).Render()
	respond(c, data, err)
}

// respond writes the PNG bytes, or maps asset errors to 422 so callers can
// distinguish a bad avatar reference from a server fault.
func respond(c *gin.Context, data []byte, err error) {
	if err != nil {
		var fetchErr *cardgen.FetchError
		var loadErr *cardgen.LoadError

		status := http.StatusInternalServerError
		if errors.As(err, &fetchErr) || errors.As(err, &loadErr) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}
