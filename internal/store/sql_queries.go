package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-score-board/models"
)

const (
	createPlayer = `INSERT INTO players (player_id, username, password_hash, token)
    VALUES ($1, $2, $3, $4)
    RETURNING player_id, username, password_hash, token, created_at;`

	findPlayerByUsername = `SELECT player_id, username, password_hash, token, created_at
    FROM players
    WHERE username = $1;`

	findPlayerByID = `SELECT player_id, username, password_hash, token, created_at
    FROM players
    WHERE player_id = $1;`

	setPlayerToken = `UPDATE players
    SET token = $2
    WHERE player_id = $1;`

	// Compare-and-swap: only rotates when the stored token is still the one
	// the caller presented. Zero affected rows means another request won.
	swapPlayerToken = `UPDATE players
    SET token = $3
    WHERE player_id = $1 AND token = $2;`

	getScore = `SELECT player_id, mode, score, deaths, updated_at
    FROM scores
    WHERE player_id = $1 AND mode = $2;`

	insertScore = `INSERT INTO scores (player_id, mode, score, deaths, updated_at)
    VALUES ($1, $2, $3, $4, NOW());`

	// Conditional on the score value the caller verified against.
	updateScore = `UPDATE scores
    SET score = $3, deaths = $4, updated_at = NOW()
    WHERE player_id = $1 AND mode = $2 AND score = $5;`

	listPlayerScores = `SELECT player_id, mode, score, deaths, updated_at
    FROM scores
    WHERE player_id = $1
    ORDER BY mode;`

	listAchievements = `SELECT player_id, achievement_id, awarded_at
    FROM achievements
    WHERE player_id = $1
    ORDER BY awarded_at;`

	// Primary key (player_id, achievement_id) absorbs duplicate awards.
	addAchievement = `INSERT INTO achievements (player_id, achievement_id, awarded_at)
    VALUES ($1, $2, NOW())
    ON CONFLICT (player_id, achievement_id) DO NOTHING;`

	wipeAchievements = `DELETE FROM achievements
    WHERE player_id = $1;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildTopScoresQuery builds the leaderboard read query for a mode, an
// optional timeframe window, and a row limit.
//
// Rows are ordered score DESC with earlier updated_at winning ties, so the
// player who reached a score first ranks above later arrivals.
func buildTopScoresQuery(mode models.GameMode, timeframe models.Timeframe, limit uint64) (string, []any, error) {
	builder := psql.
		Select("p.username", "s.score", "s.deaths", "s.updated_at").
		From("scores s").
		Join("players p ON p.player_id = s.player_id").
		Where(sq.Eq{"s.mode": mode.String()}).
		OrderBy("s.score DESC", "s.updated_at ASC").
		Limit(limit)

	switch timeframe {
	case models.TimeframeDaily:
		builder = builder.Where(sq.Expr("s.updated_at >= NOW() - INTERVAL '1 day'"))
	case models.TimeframeWeekly:
		builder = builder.Where(sq.Expr("s.updated_at >= NOW() - INTERVAL '7 days'"))
	}

	return builder.ToSql()
}
