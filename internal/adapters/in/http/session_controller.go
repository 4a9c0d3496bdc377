package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	inport "github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

// SessionController owns login/logout, the session view, the role-gated
// navigation listing and the notification drain.
type SessionController struct {
	session  inport.SessionUseCase
	nav      inport.NavigationUseCase
	notifier out.NotifierPort
	logger   out.LoggerPort
}

func NewSessionController(
	session inport.SessionUseCase,
	nav inport.NavigationUseCase,
	notifier out.NotifierPort,
	logger out.LoggerPort,
) *SessionController {
	return &SessionController{
		session:  session,
		nav:      nav,
		notifier: notifier,
		logger:   logger.WithModule("SessionController"),
	}
}

func (c *SessionController) RegisterRoutes(router *gin.Engine) {
	router.GET("/login", c.loginForm)
	router.POST("/login", c.login)
	router.POST("/logout", c.logout)
	router.GET("/session", c.currentSession)

	authed := router.Group("/", requireAuth(c.session))
	{
		authed.GET("/navigation", c.navigation)
		authed.GET("/notifications", c.notifications)
	}
}

// LoginRequest carries credentials already verified upstream; the gateway
// performs no credential check of its own.
type LoginRequest struct {
	Email  string `json:"email" binding:"required"`
	Token  string `json:"token" binding:"required"`
	Role   string `json:"role" binding:"required"`
	UserID string `json:"userId" binding:"required"`
}

// loginForm is a stub: authentication happens against the backend, this
// route only exists as the redirect target for unauthorized sessions.
func (c *SessionController) loginForm(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "authentication required",
	})
}

func (c *SessionController) login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !domain.Role(req.Role).Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	session, err := c.session.Login(ctx.Request.Context(), req.Email, req.Token, req.Role, req.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sessionView(session))
}

func (c *SessionController) logout(ctx *gin.Context) {
	if err := c.session.Logout(ctx.Request.Context()); err != nil {
		respondError(ctx, err)
		return
	}

	// Logout always lands on the landing route.
	ctx.Redirect(http.StatusFound, "/")
}

func (c *SessionController) currentSession(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, sessionView(c.session.Current()))
}

func (c *SessionController) navigation(ctx *gin.Context) {
	role := c.session.Current().Role
	ctx.JSON(http.StatusOK, gin.H{
		"role":    role,
		"actions": c.nav.Actions(role),
	})
}

func (c *SessionController) notifications(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"notifications": c.notifier.Drain(),
	})
}

func sessionView(session domain.Session) gin.H {
	view := gin.H{
		"isAuthenticated": session.IsAuthenticated,
	}
	if session.IsAuthenticated {
		view["email"] = session.Email
		view["role"] = session.Role
		view["userId"] = session.UserID
	}
	return view
}
