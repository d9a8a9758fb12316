package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/paypointhq/pos-register/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	OperatorID string
	Email      string
	Name       string
	Role       enums.OperatorRole
	JTI        string
}

// AccessTokenClaims represents the typed JWT issued to register clients.
type AccessTokenClaims struct {
	OperatorID string             `json:"operator_id"`
	Email      string             `json:"email"`
	Name       string             `json:"name,omitempty"`
	Role       enums.OperatorRole `json:"role"`
	jwt.RegisteredClaims
}
