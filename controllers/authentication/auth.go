package authentication

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/repository"
)

type AuthHandler struct {
	Users    repository.UserRepository
	Sessions *SessionManager
}

func NewAuthHandler(users repository.UserRepository, sessions *SessionManager) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Title":   "Register",
		"Name":    "",
		"Email":   "",
		"Flashes": h.Sessions.TakeFlashes(c),
	})
}

// Register creates a local account from the posted form and redirects to
// the login page. A duplicate email re-renders the form with an error.
func (h *AuthHandler) Register(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	if name == "" || email == "" || password == "" {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Title":   "Register",
			"Error":   "All fields are required",
			"Name":    name,
			"Email":   email,
			"Flashes": h.Sessions.TakeFlashes(c),
		})
		return
	}

	_, err := h.Users.Register(name, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.HTML(http.StatusConflict, "register.html", gin.H{
				"Title":   "Register",
				"Error":   "Email already exists!",
				"Name":    name,
				"Email":   email,
				"Flashes": h.Sessions.TakeFlashes(c),
			})
			return
		}
		log.Printf("register failed: %v", err)
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{
			"Title":   "Register",
			"Error":   "Internal error, please try again later",
			"Name":    name,
			"Email":   email,
			"Flashes": h.Sessions.TakeFlashes(c),
		})
		return
	}

	h.Sessions.Flash(c, "success", "Account created successfully! Please login.")
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if _, _, ok := h.Sessions.Current(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title":   "Login",
		"Email":   "",
		"Flashes": h.Sessions.TakeFlashes(c),
	})
}

// Login authenticates the posted credentials and establishes the session.
// Unknown email and wrong password are reported identically.
func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	user, err := h.Users.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"Title":   "Login",
				"Error":   "Invalid credentials!",
				"Email":   email,
				"Flashes": h.Sessions.TakeFlashes(c),
			})
			return
		}
		log.Printf("login failed: %v", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Title":   "Login",
			"Error":   "Internal error, please try again later",
			"Email":   email,
			"Flashes": h.Sessions.TakeFlashes(c),
		})
		return
	}

	if err := h.Sessions.SignIn(c, user); err != nil {
		log.Printf("establish session: %v", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Title":   "Login",
			"Error":   "Internal error, please try again later",
			"Email":   email,
			"Flashes": h.Sessions.TakeFlashes(c),
		})
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Sessions.SignOut(c); err != nil {
		log.Printf("destroy session: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}
