package course

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/controllers/authentication"
	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/quiz"
)

// ShowQuiz renders the fixed question set for a lesson.
func (h *CourseHandler) ShowQuiz(c *gin.Context) {
	lesson, ok := h.lessonFromParam(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "quiz.html", gin.H{
		"Title":     "Quiz",
		"Lesson":    lesson,
		"Questions": quiz.Questions(),
	})
}

// SubmitQuiz scores the posted answers and records the result for the
// signed-in user. Missing answers count as incorrect.
func (h *CourseHandler) SubmitQuiz(c *gin.Context) {
	lesson, ok := h.lessonFromParam(c)
	if !ok {
		return
	}
	userID := c.GetUint(authentication.ContextUserID)

	answers := make(map[int]string)
	for i := range quiz.Questions() {
		if v, present := c.GetPostForm(fmt.Sprintf("q%d", i)); present {
			answers[i] = v
		}
	}
	score := quiz.Score(answers)

	if err := h.Progress.RecordQuizScore(userID, lesson.ID, score); err != nil {
		log.Printf("record quiz score for user %d lesson %d: %v", userID, lesson.ID, err)
		h.Sessions.Flash(c, "danger", "Internal error, please try again later")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	h.Sessions.Flash(c, "success", fmt.Sprintf("Quiz submitted! Score: %d/%d", score, len(quiz.Questions())))
	c.Redirect(http.StatusFound, "/progress")
}
