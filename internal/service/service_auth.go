package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"todokeeper/internal/config"
	"todokeeper/internal/logger"
	"todokeeper/internal/store"
	"todokeeper/internal/utils"
	"todokeeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and the JWT
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
//
// All security parameters are copied out of the validated configuration at
// construction time and are read-only afterwards; nothing is re-read from
// configuration per call.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// uuidGenerator assigns identifiers to newly registered accounts.
	uuidGenerator *utils.UUIDGenerator

	// tokenSignKey is the symmetric secret used to sign and verify JWTs.
	// Its strength (>= 32 chars) was enforced once at configuration load.
	tokenSignKey string

	// tokenAlgorithm is the HMAC signing method name, identical for issue
	// and verify.
	tokenAlgorithm string

	// tokenIssuer is the "iss" claim embedded in every issued JWT. Tokens
	// whose issuer does not match are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		uuidGenerator:  utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.AuthSecret,
		tokenAlgorithm: cfg.TokenAlgorithm,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration(),
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// The email is trimmed and lower-cased before storage so that two addresses
// differing only in case collide on the database uniqueness constraint. The
// password is bcrypt-hashed; the plaintext never reaches the repository.
//
// Returns the persisted user (with a server-assigned UserID and CreatedAt) or:
//   - ErrInvalidDataProvided if email or password is empty or the email has
//     no "@".
//   - A wrapped storage error if the repository call fails (e.g. the email is
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := foldEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") || req.Password == "" {
		log.Error().Str("email", email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:       a.uuidGenerator.Generate(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: passwordHash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("id", registeredUser.UserID).Str("email", registeredUser.Email).Msg("user signup success")

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// The email is folded identically to Signup before lookup. Every failure
// mode — unknown email, account without a credential record (externally
// provisioned identity), wrong password — collapses into
// ErrInvalidCredentials so the caller cannot probe which check failed.
//
// A malformed stored hash is NOT a failed login: it propagates as an internal
// error (see utils.ErrHashCorrupted).
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := foldEmail(req.Email)
	if email == "" || req.Password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", email).Msg("login failed: email not found")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !foundUser.HasPassword() {
		log.Warn().Str("email", email).Msg("login failed: account has no credential record")
		return models.User{}, ErrInvalidCredentials
	}

	ok, err := utils.VerifyPassword(req.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Str("id", foundUser.UserID).Msg("stored password hash is unreadable")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Warn().Str("email", email).Msg("login failed: wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	log.Info().Str("id", foundUser.UserID).Str("email", foundUser.Email).Msg("login success")

	return foundUser, nil
}

// GetUser loads the account with the given identifier.
// Returns store.ErrNoUserWasFound (wrapped) when the account does not exist.
func (a *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured secret and algorithm, carries the
// configured issuer as the "iss" claim, the account id as "sub", and the
// email as a denormalized convenience claim. It expires after the configured
// duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Email, a.tokenDuration, a.tokenSignKey, a.tokenAlgorithm)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken and normalises every failure
// into one of three machine-distinguishable outcomes:
//   - ErrTokenExpired — signature valid, expiry elapsed;
//   - ErrTokenMissingSubject — token verified but has no usable identity;
//   - ErrTokenInvalid — anything else (bad signature, malformed structure,
//     wrong algorithm or issuer).
//
// Callers use the distinction for logging; all three map to the same
// user-visible rejection.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAlgorithm)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, ErrTokenExpired
		case errors.Is(err, utils.ErrTokenMissingSubject):
			return models.Token{}, ErrTokenMissingSubject
		default:
			return models.Token{}, ErrTokenInvalid
		}
	}

	return token, nil
}

// TokenExpirySeconds converts the configured token lifetime to whole seconds.
// Used for response metadata only; the authoritative expiry is the token's
// own "exp" claim.
func (a *authService) TokenExpirySeconds() int64 {
	return int64(a.tokenDuration / time.Second)
}

// foldEmail normalizes a contact identifier: trims surrounding whitespace and
// lower-cases it. Applied before both storage and lookup.
func foldEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
