package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vidaleve/missioncal/utils"
)

// AuthController owns the thin session surface of this service: tokens are
// minted by the auth service, but logout revokes the presented token here so
// a stolen token stops working before its natural expiration.
type AuthController struct{}

// NewAuthController creates a new controller instance.
func NewAuthController() *AuthController {
	return &AuthController{}
}

// Logout blacklists the presented bearer token until it expires. The auth
// middleware has already validated it by the time this handler runs.
func (a *AuthController) Logout(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		utils.Error(ctx, http.StatusUnauthorized, 40102, "invalid authorization header format")
		return
	}

	tokenString := strings.TrimSpace(parts[1])
	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		utils.Error(ctx, http.StatusUnauthorized, 40105, "invalid token")
		return
	}

	if claims.ExpiresAt != nil {
		utils.BlacklistToken(tokenString, claims.ExpiresAt.Time)
	}

	utils.Success(ctx, gin.H{"message": "logged out"})
}
