package httpHandler

import (
	"errors"
	"net/http"

	"portfolio-server/usecases"

	"github.com/gin-gonic/gin"
)

// APIAuthHandler exposes signup/login as JSON endpoints for non-browser
// clients, primarily the setup wizard. Semantics match the form flow; the
// returned token is the same opaque session token the cookie would carry.
type APIAuthHandler struct {
	useCase *usecases.AuthUseCase
}

func NewAPIAuthHandler(useCase *usecases.AuthUseCase) *APIAuthHandler {
	return &APIAuthHandler{useCase: useCase}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type signupRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type authResponse struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
	Success  bool   `json:"success"`
}

// Login handles POST /api/v1/auth/login
func (h *APIAuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	session, err := h.useCase.LogIn(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}

	c.JSON(http.StatusOK, authResponse{
		UserID:   session.UserID,
		Username: session.Username,
		Token:    session.Token,
		Success:  true,
	})
}

// Signup handles POST /api/v1/auth/signup
func (h *APIAuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	session, err := h.useCase.SignUp(req.Username, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, usecases.ErrEmailExists) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": signupMessage(err)})
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		UserID:   session.UserID,
		Username: session.Username,
		Token:    session.Token,
		Success:  true,
	})
}
