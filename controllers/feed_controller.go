// File: /controllers/feed_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pulsenet-api/middleware"
	"pulsenet-api/services"
	"pulsenet-api/utils"
)

type FeedController struct {
	feedService services.FeedService
}

func NewFeedController(feedService services.FeedService) *FeedController {
	return &FeedController{feedService: feedService}
}

// GetFeed returns the public chronological feed page. Works for both
// anonymous and authenticated viewers; the viewer only affects the
// is_liked flags.
func (fc *FeedController) GetFeed(c *gin.Context) {
	offset, limit, ok := utils.ParsePagination(c)
	if !ok {
		return
	}

	feed, err := fc.feedService.GetFeed(c.Request.Context(), offset, limit, middleware.ViewerID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}
