package services

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hanmart/internal/repos"
)

var ErrBadCreds = errors.New("invalid password")

// AuthService gates the admin surface with a single bcrypt-hashed password
// and sid-cookie sessions.
type AuthService struct {
	Sessions *repos.SessionRepo
	hash     []byte
}

func NewAuthService(sessions *repos.SessionRepo, adminPassword string) (*AuthService, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{Sessions: sessions, hash: h}, nil
}

// Login checks the admin password and mints a session id for the cookie.
func (s *AuthService) Login(password string) (string, error) {
	if bcrypt.CompareHashAndPassword(s.hash, []byte(password)) != nil {
		return "", ErrBadCreds
	}
	sid := uuid.NewString()
	if err := s.Sessions.Create(sid); err != nil {
		return "", err
	}
	return sid, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Sessions.Delete(sid)
}

func (s *AuthService) IsAdmin(sid string) bool {
	if sid == "" {
		return false
	}
	ok, err := s.Sessions.Exists(sid)
	return err == nil && ok
}
