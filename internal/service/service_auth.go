package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-score-board/internal/config"
	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/store"
	"github.com/MKhiriev/go-score-board/internal/utils"
	"github.com/MKhiriev/go-score-board/models"
	"golang.org/x/crypto/bcrypt"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// authService is the concrete implementation of AuthService.
// It handles player registration, credential verification, and username
// availability using a PlayerRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// playerRepository is the data-access layer used to create and look up players.
	playerRepository store.PlayerRepository

	// tokenService issues the initial access token for new sessions.
	tokenService TokenService

	// uuidGenerator mints the opaque player identities.
	uuidGenerator *utils.UUIDGenerator

	// bcryptCost is the bcrypt cost factor; zero falls back to
	// bcrypt.DefaultCost.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// PlayerRepository and TokenService, with the hashing cost taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(playerRepository store.PlayerRepository, tokenService TokenService, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		playerRepository: playerRepository,
		tokenService:     tokenService,
		uuidGenerator:    utils.NewUUIDGenerator(),
		bcryptCost:       cost,
		logger:           logger,
	}
}

// Register creates a new player account.
//
// It validates the username against the allowed pattern, hashes the password
// with bcrypt, mints a fresh player id and an initial access token, and
// persists the account in one INSERT.
//
// Returns the persisted player with Token set or:
//   - ErrInvalidDataProvided if the password is empty.
//   - ErrInvalidUsername if the username fails validation.
//   - A wrapped storage error if the repository call fails (e.g. username
//     taken — see store.ErrUsernameTaken).
func (a *authService) Register(ctx context.Context, username string, password string) (models.Player, error) {
	log := logger.FromContext(ctx)

	if password == "" {
		log.Error().Str("username", username).Msg("empty password provided")
		return models.Player{}, ErrInvalidDataProvided
	}
	if !usernamePattern.MatchString(username) {
		log.Error().Str("username", username).Msg("invalid username provided")
		return models.Player{}, ErrInvalidUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Player{}, fmt.Errorf("password hashing failed: %w", err)
	}

	token, err := a.tokenService.Generate()
	if err != nil {
		log.Err(err).Msg("initial token generation failed")
		return models.Player{}, err
	}

	player := models.Player{
		PlayerID:     a.uuidGenerator.Generate(),
		Username:     username,
		PasswordHash: string(hash),
		Token:        token,
	}

	registeredPlayer, err := a.playerRepository.CreatePlayer(ctx, player)
	if err != nil {
		log.Err(err).Str("username", username).Msg("player creation ended with error")
		return models.Player{}, fmt.Errorf("player creation ended with error: %w", err)
	}

	return registeredPlayer, nil
}

// Login authenticates an existing player.
//
// It looks up the account by username, compares the bcrypt hash, and on
// success issues a fresh access token: every successful login rotates,
// invalidating any previously held token.
//
// Returns the player with the freshly issued Token or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. player not found —
//     see store.ErrPlayerNotFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, username string, password string) (models.Player, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid credentials provided")
		return models.Player{}, ErrInvalidDataProvided
	}

	foundPlayer, err := a.playerRepository.FindPlayerByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("player search by username failed")
		return models.Player{}, fmt.Errorf("player search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundPlayer.PasswordHash), []byte(password)); err != nil {
		log.Error().
			Str("id", foundPlayer.PlayerID).
			Str("username", foundPlayer.Username).
			Msg("wrong password")
		return models.Player{}, ErrWrongPassword
	}

	token, err := a.tokenService.Issue(ctx, foundPlayer.PlayerID)
	if err != nil {
		log.Err(err).Str("id", foundPlayer.PlayerID).Msg("token issue failed")
		return models.Player{}, err
	}
	foundPlayer.Token = token

	return foundPlayer, nil
}

// PlayerByID looks up a player account by its uuid. Used by the
// authenticated request pipeline to resolve the presented identity.
func (a *authService) PlayerByID(ctx context.Context, playerID string) (models.Player, error) {
	log := logger.FromContext(ctx)

	if playerID == "" {
		return models.Player{}, ErrInvalidDataProvided
	}

	foundPlayer, err := a.playerRepository.FindPlayerByID(ctx, playerID)
	if err != nil {
		log.Err(err).Str("id", playerID).Msg("player search by id failed")
		return models.Player{}, fmt.Errorf("player search by id failed: %w", err)
	}

	return foundPlayer, nil
}

// Available reports whether a username is free to register. Usernames that
// fail validation are reported as unavailable without a storage call.
func (a *authService) Available(ctx context.Context, username string) (bool, error) {
	log := logger.FromContext(ctx)

	if !usernamePattern.MatchString(username) {
		return false, nil
	}

	_, err := a.playerRepository.FindPlayerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrPlayerNotFound) {
			return true, nil
		}
		log.Err(err).Str("username", username).Msg("availability check failed")
		return false, fmt.Errorf("availability check failed: %w", err)
	}

	return false, nil
}
