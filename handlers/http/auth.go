package httpHandler

import (
	"errors"
	"net/http"

	"portfolio-server/confs"
	"portfolio-server/entities"
	"portfolio-server/usecases"

	"github.com/gin-gonic/gin"
)

const sessionCookieMaxAge = 7 * 24 * 60 * 60 // seconds

type AuthHandler struct {
	useCase *usecases.AuthUseCase
}

func NewAuthHandler(useCase *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

// ShowWelcome handles GET /
func (h *AuthHandler) ShowWelcome(c *gin.Context) {
	c.HTML(http.StatusOK, "welcome.html", gin.H{})
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	session, err := h.useCase.LogIn(email, password)
	if err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"result": loginMessage(err)})
		return
	}

	h.setSessionCookie(c, session)
	c.Redirect(http.StatusFound, "/home")
}

// ShowSignup handles GET /signup
func (h *AuthHandler) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	session, err := h.useCase.SignUp(username, email, password, confirm)
	if err != nil {
		c.HTML(http.StatusOK, "signup.html", gin.H{"result": signupMessage(err)})
		return
	}

	h.setSessionCookie(c, session)
	c.Redirect(http.StatusFound, "/home")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookie); err == nil {
		_ = h.useCase.LogOut(token)
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", confs.CookieSecure(), true)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, session *entities.Session) {
	c.SetCookie(SessionCookie, session.Token, sessionCookieMaxAge, "/", "", confs.CookieSecure(), true)
}

func loginMessage(err error) string {
	if errors.Is(err, usecases.ErrFieldsRequired) {
		return "Please fill in all fields"
	}
	return "Incorrect Email or Password"
}

func signupMessage(err error) string {
	switch {
	case errors.Is(err, usecases.ErrFieldsRequired):
		return "Please fill in all fields"
	case errors.Is(err, usecases.ErrPasswordTooShort):
		return "Password must be at least 6 characters"
	case errors.Is(err, usecases.ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, usecases.ErrEmailExists):
		return "Email already exists"
	}
	return "Something went wrong, please try again"
}
