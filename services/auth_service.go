package services

import (
	"context"
	"errors"
	"fmt"
	"lifehub/database"
	"lifehub/models"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

// IDTokenValidator checks a Google ID token against an audience
type IDTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthService handles accounts and sessions
type AuthService struct {
	repo            UserRepository
	sessionStore    SessionStore
	googleClientID  string
	validateIDToken IDTokenValidator
	bcryptCost      int
}

// NewAuthService creates a new auth service. Google login is disabled when googleClientID is empty.
func NewAuthService(repo UserRepository, sessionStore SessionStore, googleClientID string) *AuthService {
	return &AuthService{
		repo:            repo,
		sessionStore:    sessionStore,
		googleClientID:  googleClientID,
		validateIDToken: idtoken.Validate,
		bcryptCost:      bcrypt.DefaultCost,
	}
}

// LoginResponse contains the session and the user it belongs to
type LoginResponse struct {
	User    *models.User
	Session *models.Session
}

// Register creates an account with the default dashboard layout
func (as *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	existing, err := as.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), as.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		Email:        req.Email,
		Preferences:  models.JSONMap{},
	}
	if err := as.repo.CreateUserWithWidgets(ctx, user, models.DefaultWidgets); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies a password and opens a session
func (as *AuthService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := as.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return as.openSession(ctx, user)
}

// LoginWithGoogle validates a Google ID token, creating the account on first login
func (as *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (*LoginResponse, error) {
	if as.googleClientID == "" {
		return nil, ErrGoogleLoginDisabled
	}

	payload, err := as.validateIDToken(ctx, idToken, as.googleClientID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	googleID := payload.Subject
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if googleID == "" {
		return nil, ErrInvalidUserInfo
	}

	user, err := as.repo.GetUserByGoogleID(ctx, googleID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		if name == "" {
			name = strings.Split(email, "@")[0]
		}
		user = &models.User{
			Username:    googleUsername(googleID),
			DisplayName: name,
			Email:       email,
			GoogleID:    &googleID,
			Preferences: models.JSONMap{},
		}
		if err := as.repo.CreateUserWithWidgets(ctx, user, models.DefaultWidgets); err != nil {
			return nil, err
		}
	}

	return as.openSession(ctx, user)
}

// Authenticate resolves a session id to a live session
func (as *AuthService) Authenticate(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}

	sess, err := as.sessionStore.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	if err := as.sessionStore.Touch(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Logout ends a session
func (as *AuthService) Logout(ctx context.Context, sessionID string) error {
	return as.sessionStore.Delete(ctx, sessionID)
}

// Me returns the account behind a session's user id
func (as *AuthService) Me(ctx context.Context, userID int64) (*models.User, error) {
	user, err := as.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (as *AuthService) openSession(ctx context.Context, user *models.User) (*LoginResponse, error) {
	sess, err := as.sessionStore.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{User: user, Session: sess}, nil
}

// googleUsername derives a stable login name that cannot collide with the username format
func googleUsername(subject string) string {
	name := "google:" + subject
	if len(name) > 50 {
		name = name[:50]
	}
	return name
}
