package authentication

import (
	"encoding/gob"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/models/users"
)

const (
	ContextUserID   = "userID"
	ContextUserName = "userName"
)

// Flash is a one-shot notice carried in the session cookie.
type Flash struct {
	Kind    string // "success" or "danger"
	Message string
}

func init() {
	gob.Register(Flash{})
}

// SessionManager associates a browser with an authenticated user via a
// gorilla cookie session, and carries flash messages on the same cookie.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
}

func NewSessionManager(secret, name string, maxAge int) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.MaxAge = maxAge
	return &SessionManager{store: store, name: name}
}

func (m *SessionManager) session(c *gin.Context) *sessions.Session {
	// Get never fails fatally: a bad cookie yields a fresh session.
	s, _ := m.store.Get(c.Request, m.name)
	return s
}

func (m *SessionManager) SignIn(c *gin.Context, user *users.User) error {
	s := m.session(c)
	s.Values["user_id"] = user.ID
	s.Values["user_name"] = user.Name
	return s.Save(c.Request, c.Writer)
}

func (m *SessionManager) SignOut(c *gin.Context) error {
	s := m.session(c)
	delete(s.Values, "user_id")
	delete(s.Values, "user_name")
	s.Options.MaxAge = -1
	return s.Save(c.Request, c.Writer)
}

// Current returns the signed-in user's id and name, or ok=false.
func (m *SessionManager) Current(c *gin.Context) (uint, string, bool) {
	s := m.session(c)
	id, ok := s.Values["user_id"].(uint)
	if !ok {
		return 0, "", false
	}
	name, _ := s.Values["user_name"].(string)
	return id, name, true
}

func (m *SessionManager) Flash(c *gin.Context, kind, message string) {
	s := m.session(c)
	s.AddFlash(Flash{Kind: kind, Message: message})
	_ = s.Save(c.Request, c.Writer)
}

// TakeFlashes returns and clears pending flash messages.
func (m *SessionManager) TakeFlashes(c *gin.Context) []Flash {
	s := m.session(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save(c.Request, c.Writer)
	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}

// RequireSession guards protected routes: anonymous clients are redirected
// to the login page, authenticated ones get their identity placed in the
// request context.
func (m *SessionManager) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, name, ok := m.Current(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ContextUserID, id)
		c.Set(ContextUserName, name)
		c.Next()
	}
}
