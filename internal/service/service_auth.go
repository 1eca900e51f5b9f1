package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/savrasovpm/go-pantry-keeper/internal/config"
	"github.com/savrasovpm/go-pantry-keeper/internal/logger"
	"github.com/savrasovpm/go-pantry-keeper/internal/store"
	"github.com/savrasovpm/go-pantry-keeper/internal/utils"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

// authService is the concrete implementation of [AuthService]. Passwords are
// hashed with bcrypt before storage; sessions are represented by signed HS256
// JWTs.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// [store.UserRepository] and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both username and password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the repository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registered, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     strings.TrimSpace(creds.Username),
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. user not found —
//     see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the bcrypt comparison fails.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	found, err := a.userRepository.FindUserByUsername(ctx, strings.TrimSpace(creds.Username))
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(creds.Password)); err != nil {
		log.Warn().
			Int64("id", found.UserID).
			Str("username", found.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return found, nil
}

// CreateToken issues a signed JWT for user using the configured issuer,
// duration and signing key.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("token generation failed: %w", err)
	}

	return token, nil
}

// ParseToken validates tokenString's signature, issuer and expiry and
// returns the parsed token. An expired token maps to [ErrTokenIsExpired].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("token validation failed")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, fmt.Errorf("token validation failed: %w", err)
	}

	return token, nil
}

// Me resolves the identity behind an authenticated user id.
func (a *authService) Me(ctx context.Context, userID int64) (models.Identity, error) {
	log := logger.FromContext(ctx)

	found, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("identity lookup failed")
		return models.Identity{}, fmt.Errorf("identity lookup failed: %w", err)
	}

	return models.Identity{ID: found.UserID, Username: found.Username}, nil
}
