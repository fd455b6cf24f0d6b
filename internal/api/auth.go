package api

import (
	"net/http" // HTTP status codes

	"github.com/borhan98/UniFood-Server/internal/utils" // Utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// TokenRequest is the identity payload a token is issued for
type TokenRequest struct {
	Email string `json:"email" binding:"required"` // Email must be provided
	Name  string `json:"name"`                     // Optional display name
}

// TokenResponse carries the signed token
type TokenResponse struct {
	Token string `json:"token"` // JWT token
}

// IssueTokenHandler signs a 1-hour JWT for the supplied identity payload
func IssueTokenHandler(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TokenRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Sign the token for the supplied identity
		token, err := utils.GenerateJWT(req.Email, req.Name, jwtSecret)
		if err != nil {
			// If signing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, TokenResponse{Token: token})
	}
}
