package course

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/controllers/authentication"
)

// ProgressPage shows the signed-in user's completion and quiz score for
// every catalog lesson.
func (h *CourseHandler) ProgressPage(c *gin.Context) {
	userID := c.GetUint(authentication.ContextUserID)

	rows, err := h.Progress.ListForUser(userID)
	if err != nil {
		log.Printf("list progress for user %d: %v", userID, err)
		c.HTML(http.StatusInternalServerError, "progress.html", gin.H{
			"Title":    "My Progress",
			"UserName": c.GetString(authentication.ContextUserName),
			"Error":    "Internal error, please try again later",
		})
		return
	}

	c.HTML(http.StatusOK, "progress.html", gin.H{
		"Title":    "My Progress",
		"UserName": c.GetString(authentication.ContextUserName),
		"Lessons":  rows,
		"Flashes":  h.Sessions.TakeFlashes(c),
	})
}
