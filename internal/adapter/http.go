package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-score-board/internal/config"
	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/utils"
	"github.com/MKhiriev/go-score-board/models"
)

// authEnvelope mirrors [models.AuthEnvelope] with the operation payload kept
// raw so each caller can decode it into its own shape.
type authEnvelope struct {
	AuthError       bool            `json:"authError"`
	AuthErrorString string          `json:"authErrorString"`
	AccessToken     string          `json:"accessToken"`
	Successful      *bool           `json:"successful"`
	Data            json.RawMessage `json:"data"`
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu      sync.Mutex
	session models.Session

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSession implements [ServerAdapter].
func (h *httpServerAdapter) SetSession(session models.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = session
}

// Session implements [ServerAdapter].
func (h *httpServerAdapter) Session() models.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.session
}

// adoptToken replaces the stored token with the freshly rotated one. The old
// token is spent the moment the server processed the request, so this runs on
// every envelope whose AuthError is false, operation failures included.
func (h *httpServerAdapter) adoptToken(token string) {
	if token == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session.Token = token
}

// ServerVersion implements [ServerAdapter]. It GETs /api/version and returns
// the plain-text version string.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// Available implements [ServerAdapter]. It POSTs the username to
// POST /api/user/available.
func (h *httpServerAdapter) Available(ctx context.Context, username string) (bool, error) {
	var result models.AvailableResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AvailableRequest{Username: username}).
		SetResult(&result).
		Post("/api/user/available")
	if err != nil {
		return false, fmt.Errorf("available request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.Available, nil
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/register and installs the issued session on success.
func (h *httpServerAdapter) Register(ctx context.Context, username string, password string) (models.Session, error) {
	return h.credentialsExchange(ctx, "/api/user/register", "register", username, password)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login and installs the issued session on success.
func (h *httpServerAdapter) Login(ctx context.Context, username string, password string) (models.Session, error) {
	return h.credentialsExchange(ctx, "/api/user/login", "login", username, password)
}

func (h *httpServerAdapter) credentialsExchange(ctx context.Context, path string, op string, username string, password string) (models.Session, error) {
	var result models.CredentialsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CredentialsRequest{Username: username, Password: password}).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.Session{}, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	if !result.Successful {
		return models.Session{}, fmt.Errorf("%w: %s", ErrCredentialsRejected, result.Reason)
	}

	session := models.Session{
		PlayerID: result.UUID,
		Username: username,
		Token:    result.AccessToken,
	}
	h.SetSession(session)

	return session, nil
}

// Logout implements [ServerAdapter].
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	_, err := h.authedPost(ctx, "/api/user/logout", nil)
	return err
}

// SubmitScore implements [ServerAdapter].
func (h *httpServerAdapter) SubmitScore(ctx context.Context, submission models.ScoreSubmission) error {
	_, err := h.authedPost(ctx, "/api/score/submit", submission)
	return err
}

// TopScores implements [ServerAdapter]. The leaderboard is a public read, no
// session is required.
func (h *httpServerAdapter) TopScores(ctx context.Context, mode models.GameMode, timeframe models.Timeframe, limit int) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"mode":      mode.String(),
			"timeframe": timeframe.String(),
			"limit":     strconv.Itoa(limit),
		}).
		SetResult(&entries).
		Get("/api/score/top")
	if err != nil {
		return nil, fmt.Errorf("top scores request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entries, nil
}

// PlayerScores implements [ServerAdapter]. It reads the current player's
// records via the public POST /api/score/player endpoint.
func (h *httpServerAdapter) PlayerScores(ctx context.Context, mode models.GameMode) ([]models.ScoreRecord, error) {
	session := h.Session()
	if session.PlayerID == "" {
		return nil, ErrNotAuthenticated
	}

	var records []models.ScoreRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PlayerScoresRequest{ID: session.PlayerID, Mode: mode}).
		SetResult(&records).
		Post("/api/score/player")
	if err != nil {
		return nil, fmt.Errorf("player scores request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return records, nil
}

// Achievements implements [ServerAdapter]. It reads the current player's
// achievement set via the public GET /api/achievement/list endpoint.
func (h *httpServerAdapter) Achievements(ctx context.Context) ([]models.Achievement, error) {
	session := h.Session()
	if session.PlayerID == "" {
		return nil, ErrNotAuthenticated
	}

	var achievements []models.Achievement

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("id", session.PlayerID).
		SetResult(&achievements).
		Get("/api/achievement/list")
	if err != nil {
		return nil, fmt.Errorf("achievements request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return achievements, nil
}

// Award implements [ServerAdapter].
func (h *httpServerAdapter) Award(ctx context.Context, achievementID string) error {
	_, err := h.authedPost(ctx, "/api/achievement/award", models.AwardRequest{AchievementID: achievementID})
	return err
}

// authedPost performs one authenticated envelope exchange: it presents the
// current (id, token) pair together with the optional payload, then adopts the
// rotated access token from every response that passed authentication,
// operation failures included. An identity-layer rejection leaves the stored
// token untouched, matching the server which did not rotate it.
func (h *httpServerAdapter) authedPost(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	session := h.Session()
	if session.PlayerID == "" || session.Token == "" {
		return nil, ErrNotAuthenticated
	}

	request := models.AuthRequest{ID: session.PlayerID, Token: session.Token}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request payload: %w", err)
		}
		request.Data = data
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", path, err)
	}

	// The envelope is present on 200 and on 401, so decode the raw body
	// instead of relying on resty's success-only result binding.
	var envelope authEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		if mapped := mapHTTPError(resp); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("decode response envelope: %w", err)
	}

	if envelope.AuthError {
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, envelope.AuthErrorString)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.adoptToken(envelope.AccessToken)

	if envelope.Successful == nil || !*envelope.Successful {
		return nil, ErrOperationRejected
	}

	return envelope.Data, nil
}
