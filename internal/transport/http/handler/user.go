package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"goblog/internal/app"
	"goblog/internal/transport/http/middleware"
)

type UserHandler struct {
	authService  *app.AuthService
	cookieName   string
	cookieMaxAge int
}

func NewUserHandler(authService *app.AuthService, cookieName string, cookieMaxAge int) *UserHandler {
	return &UserHandler{
		authService:  authService,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
	}
}

func (h *UserHandler) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"userName": middleware.UserName(c),
	})
}

func (h *UserHandler) Signup(c *gin.Context) {
	result, err := h.authService.Register(app.RegisterInput{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrValidation):
			renderError(c, http.StatusBadRequest, "Name, email and password are required")
		case errors.Is(err, app.ErrEmailExists):
			renderError(c, http.StatusBadRequest, "Email is already registered")
		default:
			log.Printf("signup failed: %v", err)
			renderError(c, http.StatusInternalServerError, "Failed to create account")
		}
		return
	}

	h.setAuthCookie(c, result.Token)
	c.Redirect(http.StatusFound, "/")
}

func (h *UserHandler) SigninForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signin.html", gin.H{
		"userName": middleware.UserName(c),
	})
}

func (h *UserHandler) Signin(c *gin.Context) {
	result, err := h.authService.Login(app.LoginInput{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrValidation):
			renderError(c, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, app.ErrInvalidCredential):
			renderError(c, http.StatusUnauthorized, "Invalid email or password")
		default:
			log.Printf("signin failed: %v", err)
			renderError(c, http.StatusInternalServerError, "Failed to sign in")
		}
		return
	}

	h.setAuthCookie(c, result.Token)
	c.Redirect(http.StatusFound, "/")
}

// Signout clears the cookie whether or not one was set, so repeating it
// is harmless.
func (h *UserHandler) Signout(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *UserHandler) setAuthCookie(c *gin.Context, token string) {
	c.SetCookie(h.cookieName, token, h.cookieMaxAge, "/", "", false, true)
}
