package controllers

import (
	"net/http"

	"movie-discovery-backend/helper"
	"movie-discovery-backend/models"
	"movie-discovery-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		helper.Fail(ctx, http.StatusBadRequest, authValidationMessage(err))
		return
	}

	data, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		helper.Fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	helper.OK(ctx, http.StatusCreated, "Registration successful", data)
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		helper.Fail(ctx, http.StatusBadRequest, authValidationMessage(err))
		return
	}

	data, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		helper.Fail(ctx, http.StatusUnauthorized, err.Error())
		return
	}

	helper.OK(ctx, http.StatusOK, "Login successful", data)
}

// Me returns the authenticated user's full record, collections included.
func (c *AuthController) Me(ctx *gin.Context) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		helper.Fail(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		helper.Fail(ctx, http.StatusUnauthorized, "Invalid user ID format")
		return
	}

	user, err := c.authService.CurrentUser(ctx.Request.Context(), objID)
	if err != nil {
		helper.Fail(ctx, http.StatusInternalServerError, "Failed to load user")
		return
	}
	if user == nil {
		helper.Fail(ctx, http.StatusUnauthorized, "User not found")
		return
	}

	helper.OK(ctx, http.StatusOK, "", user)
}

func (c *AuthController) Logout(ctx *gin.Context) {
	// Stateless JWT setup, the client just drops its token
	helper.OK(ctx, http.StatusOK, "Successfully logged out", nil)
}

func authValidationMessage(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request format"
	}
	for _, e := range ve {
		switch e.Field() {
		case "Username":
			if e.Tag() == "min" {
				return "Username must be at least 3 characters long"
			}
			return "Username is required"
		case "Email":
			return "Please provide a valid email address"
		case "Password":
			if e.Tag() == "min" {
				return "Password must be at least 6 characters long"
			}
			return "Password is required"
		}
	}
	return "Invalid input data"
}
