package service

import (
	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/deppfellow/biztime/internal/server"
)

type AuthService struct {
	server *server.Server
}

// NewAuthService registers the Clerk secret key when auth is enabled.
func NewAuthService(s *server.Server) *AuthService {
	if s.Config.Auth.Enabled {
		clerk.SetKey(s.Config.Auth.SecretKey)
	}
	return &AuthService{
		server: s,
	}
}
