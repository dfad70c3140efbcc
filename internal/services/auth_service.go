package services

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"golang.org/x/crypto/bcrypt"
)

// sessionTTL is fixed: no renewal, no sliding expiry. Expired rows stay in
// the table and are treated as absent at resolution time.
const sessionTTL = 24 * time.Hour

// AdminCredentials is the single shared moderator login. The password is a
// bcrypt hash from config; there is no per-admin identity.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

type AuthService interface {
	Login(email string) (*dto.LoginResponse, error)
	AdminLogin(username, password string) (*dto.LoginResponse, error)

	// ResolveSession returns the identity behind a token, or (nil, nil) for
	// missing, expired or orphaned sessions.
	ResolveSession(token string) (*dto.Identity, error)

	Logout(token string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserStore
	sessionRepo   repositories.SessionStore
	whitelistRepo repositories.WhitelistStore
	admin         AdminCredentials
}

func NewAuthService(
	userRepo repositories.UserStore,
	sessionRepo repositories.SessionStore,
	whitelistRepo repositories.WhitelistStore,
	admin AdminCredentials,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		whitelistRepo: whitelistRepo,
		admin:         admin,
	}
}

// Login authenticates a resident by whitelist membership alone. The user
// record is created lazily on first login; repeat logins reuse it but always
// mint a fresh session.
func (s *AuthServiceImpl) Login(email string) (*dto.LoginResponse, error) {
	email = normalizeEmail(email)

	entry, err := s.whitelistRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWhitelistEntryNotFound) {
			return nil, apperrors.ErrAccessDenied
		}
		return nil, apperrors.InternalError(err)
	}
	if !entry.IsActive {
		return nil, apperrors.ErrAccessDenied
	}

	user, err := s.ensureUser(email, entry.Name, models.UserRoleUser)
	if err != nil {
		return nil, err
	}

	session, err := s.createSession(email, false)
	if err != nil {
		return nil, err
	}

	logger.Info("resident logged in", "email", email)
	return &dto.LoginResponse{Token: session.SessionID, User: user}, nil
}

// AdminLogin checks the fixed credential pair and issues an admin session.
func (s *AuthServiceImpl) AdminLogin(username, password string) (*dto.LoginResponse, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password))
	if !usernameOK || passwordErr != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	adminEmail := normalizeEmail(s.admin.Username + "@admin.local")
	user, err := s.ensureUser(adminEmail, "Administrator", models.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	session, err := s.createSession(adminEmail, true)
	if err != nil {
		return nil, err
	}

	logger.Info("admin logged in")
	return &dto.LoginResponse{Token: session.SessionID, User: user}, nil
}

func (s *AuthServiceImpl) ResolveSession(token string) (*dto.Identity, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessionRepo.FindByToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}

	// Lazy expiry: the row stays, the session just stops resolving.
	if session.Expired(time.Now()) {
		return nil, nil
	}

	user, err := s.userRepo.FindByEmail(session.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// User removed out-of-band; the session is orphaned.
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.Identity{
		Email:   session.Email,
		IsAdmin: session.IsAdmin,
		User:    user,
	}, nil
}

// Logout drops the session row. Unknown tokens are a no-op success.
func (s *AuthServiceImpl) Logout(token string) error {
	if err := s.sessionRepo.Delete(token); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) ensureUser(email, name string, role models.UserRole) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err == nil {
		return user, nil
	}
	if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	user = &models.User{Email: email, Name: name, Role: role}
	if err := s.userRepo.Create(user); err != nil {
		// Lost a race with a concurrent first login; reread.
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return s.userRepo.FindByEmail(email)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *AuthServiceImpl) createSession(email string, isAdmin bool) (*models.Session, error) {
	now := time.Now()
	session := &models.Session{
		SessionID: generateSessionToken(),
		Email:     email,
		IsAdmin:   isAdmin,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return session, nil
}

func generateSessionToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
