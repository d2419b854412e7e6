package domain

import "github.com/golang-jwt/jwt/v5"

// Claims identifica o operador que chama a API administrativa
type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}
