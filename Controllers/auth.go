package Controllers

import (
	"errors"
	"net/http"
	"regexp"

	"MediTrack/Logger"
	"MediTrack/Middleware"
	"MediTrack/Models"

	"github.com/gin-gonic/gin"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type RegisterInput struct {
	Username  string `json:"username" binding:"required,min=3,max=20"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	Role      string `json:"role" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if !usernamePattern.MatchString(input.Username) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "username may only contain letters, digits, underscores and hyphens"})
		return
	}
	role := Models.Role(input.Role)
	if !role.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "role must be admin or user"})
		return
	}

	user := Models.User{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      role,
	}

	if _, err := user.SaveUser(input.Password); err != nil {
		switch {
		case errors.Is(err, Models.ErrDuplicateUsername),
			errors.Is(err, Models.ErrDuplicateEmail),
			errors.Is(err, Models.ErrConstraint):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			Logger.Error("register failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

type LoginInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	_, token, err := Models.LoginCheck(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, Models.ErrUnauthorized) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect username or password"})
			return
		}
		Logger.Error("login failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// CurrentUser returns the caller's own account.
func CurrentUser(c *gin.Context) {
	user, ok := Middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}
	c.JSON(http.StatusOK, user)
}
