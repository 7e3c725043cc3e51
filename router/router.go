package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/controllers/authentication"
	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/controllers/course"
)

type Config struct {
	Mode         string
	TemplateGlob string
	Sessions     *authentication.SessionManager
	Auth         *authentication.AuthHandler
	Courses      *course.CourseHandler
}

// Setup builds the gin engine: templates, public routes, and the
// session-guarded group.
func Setup(cfg Config) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	glob := cfg.TemplateGlob
	if glob == "" {
		glob = "web/templates/*.html"
	}
	r.LoadHTMLGlob(glob)

	r.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", func(c *gin.Context) {
		_, name, _ := cfg.Sessions.Current(c)
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Title":    "Online Learning Platform",
			"UserName": name,
			"Flashes":  cfg.Sessions.TakeFlashes(c),
		})
	})

	r.GET("/register", cfg.Auth.ShowRegister)
	r.POST("/register", cfg.Auth.Register)
	r.GET("/login", cfg.Auth.ShowLogin)
	r.POST("/login", cfg.Auth.Login)
	r.GET("/logout", cfg.Auth.Logout)

	protected := r.Group("/")
	protected.Use(cfg.Sessions.RequireSession())
	protected.GET("/dashboard", cfg.Courses.Dashboard)
	protected.GET("/course/:lessonId", cfg.Courses.ShowLesson)
	protected.GET("/complete/:lessonId", cfg.Courses.Complete)
	protected.GET("/quiz/:lessonId", cfg.Courses.ShowQuiz)
	protected.POST("/quiz/:lessonId", cfg.Courses.SubmitQuiz)
	protected.GET("/progress", cfg.Courses.ProgressPage)

	return r
}
