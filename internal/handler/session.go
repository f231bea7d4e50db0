package handler

import (
	"net/http"

	"bibliomate/internal/presenter"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie identifies the visitor's page
const SessionCookie = "bibliomate_session"

// sessionPage returns the caller's page, issuing a new session cookie when
// the request has none or carries one that is not a UUID.
func sessionPage(c *gin.Context) *presenter.Page {
	store, _ := sessionStore()

	id, err := c.Cookie(SessionCookie)
	if err == nil {
		if _, perr := uuid.Parse(id); perr == nil {
			return store.Get(id)
		}
	}

	id = uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, id, 0, "/", "", c.Request.TLS != nil, true)
	return store.Get(id)
}
