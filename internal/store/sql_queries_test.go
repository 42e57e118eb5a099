// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-score-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildTopScoresQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildTopScoresQuery(models.ModeNormal, models.TimeframeAll, 10)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, "normal", args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from scores s")
	require.Contains(t, q, "join players p on p.player_id = s.player_id")
	require.Contains(t, q, "order by s.score desc, s.updated_at asc")
	require.Contains(t, q, "limit 10")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// all-time query carries no window filter
	assert.NotContains(t, q, "interval")
}

func Test_buildTopScoresQuery_DailyWindow(t *testing.T) {
	query, args, err := buildTopScoresQuery(models.ModeHard, models.TimeframeDaily, 25)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "hard", args[0])

	assert.Contains(t, query, "INTERVAL '1 day'")
}

func Test_buildTopScoresQuery_WeeklyWindow(t *testing.T) {
	query, args, err := buildTopScoresQuery(models.ModeEndless, models.TimeframeWeekly, 25)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "endless", args[0])

	assert.Contains(t, query, "INTERVAL '7 days'")
}

func Test_buildTopScoresQuery_NoQuestionMarkPlaceholders(t *testing.T) {
	query, _, err := buildTopScoresQuery(models.ModeEasy, models.TimeframeAll, 5)
	require.NoError(t, err)

	assert.NotContains(t, query, "?")
}
