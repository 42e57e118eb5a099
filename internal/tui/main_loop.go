package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-score-board/internal/adapter"
	"github.com/MKhiriev/go-score-board/internal/service"
	"github.com/MKhiriev/go-score-board/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mainScreen int

const (
	screenMenu mainScreen = iota
	screenLeaderboard
	screenMyScores
	screenSubmit
	screenAchievements
	screenAwardForm
)

const leaderboardLimit = 10

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  models.Session

	screen mainScreen
	idx    int
	items  []string

	mode      models.GameMode
	timeframe models.Timeframe

	entries      []models.LeaderboardEntry
	records      []models.ScoreRecord
	achievements []models.Achievement

	loading bool
	status  string
	errMsg  string

	submitInputs    []textinput.Model
	submitFocus     int
	submitting      bool
	awardInput      textinput.Model
	awardSubmitting bool
	loggingOut      bool

	logout bool
}

type leaderboardLoadedMsg struct {
	entries []models.LeaderboardEntry
	err     error
}

type myScoresLoadedMsg struct {
	records []models.ScoreRecord
	err     error
}

type achievementsLoadedMsg struct {
	items []models.Achievement
	err   error
}

type submitDoneMsg struct {
	err error
}

type awardDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, session models.Session) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		session:  session,
		items: []string{
			"Таблица лидеров",
			"Мои результаты",
			"Отправить результат",
			"Достижения",
			"Скопировать ID игрока",
			"Выйти из аккаунта",
		},
		mode:      models.ModeNormal,
		timeframe: models.TimeframeAll,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case leaderboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = operationErrorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.entries = msg.entries
		return m, nil
	case myScoresLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = operationErrorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.records = msg.records
		return m, nil
	case achievementsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = operationErrorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.achievements = msg.items
		return m, nil
	case submitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = operationErrorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Результат принят"
		m.resetSubmitForm()
		m.screen = screenMenu
		return m, nil
	case awardDoneMsg:
		m.awardSubmitting = false
		if msg.err != nil {
			m.errMsg = operationErrorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Достижение получено"
		m.screen = screenAchievements
		m.loading = true
		return m, m.cmdLoadAchievements()
	case logoutDoneMsg:
		m.loggingOut = false
		if msg.err != nil {
			m.errMsg = operationErrorMessage(msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenSubmit || m.screen == screenAwardForm {
			return m.updateForms(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(keyMsg)
	case screenLeaderboard:
		return m.updateLeaderboard(keyMsg)
	case screenMyScores:
		return m.updateMyScores(keyMsg)
	case screenAchievements:
		return m.updateAchievements(keyMsg)
	case screenSubmit, screenAwardForm:
		return m.updateForms(msg)
	}

	return m, nil
}

func (m mainLoopModel) updateMenu(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		m.status = ""
		m.errMsg = ""
		switch m.idx {
		case 0:
			m.screen = screenLeaderboard
			m.loading = true
			return m, m.cmdLoadLeaderboard()
		case 1:
			m.screen = screenMyScores
			m.loading = true
			return m, m.cmdLoadMyScores()
		case 2:
			m.screen = screenSubmit
			m.initSubmitForm()
			return m, textinput.Blink
		case 3:
			m.screen = screenAchievements
			m.loading = true
			return m, m.cmdLoadAchievements()
		case 4:
			if err := clipboard.WriteAll(m.session.PlayerID); err != nil {
				m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
				return m, nil
			}
			m.status = "ID игрока скопирован"
		case 5:
			if m.loggingOut {
				return m, nil
			}
			m.loggingOut = true
			m.status = "Выход..."
			return m, m.cmdLogout()
		}
	}

	return m, nil
}

func (m mainLoopModel) updateLeaderboard(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q":
		m.screen = screenMenu
		m.errMsg = ""
	case "m":
		m.mode = nextMode(m.mode)
		m.loading = true
		return m, m.cmdLoadLeaderboard()
	case "t":
		m.timeframe = nextTimeframe(m.timeframe)
		m.loading = true
		return m, m.cmdLoadLeaderboard()
	case "r":
		m.loading = true
		return m, m.cmdLoadLeaderboard()
	}

	return m, nil
}

func (m mainLoopModel) updateMyScores(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q":
		m.screen = screenMenu
		m.errMsg = ""
	case "m":
		m.mode = nextMode(m.mode)
		m.loading = true
		return m, m.cmdLoadMyScores()
	case "r":
		m.loading = true
		return m, m.cmdLoadMyScores()
	}

	return m, nil
}

func (m mainLoopModel) updateAchievements(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q":
		m.screen = screenMenu
		m.errMsg = ""
	case "r":
		m.loading = true
		return m, m.cmdLoadAchievements()
	case "a":
		m.screen = screenAwardForm
		m.initAwardForm()
		return m, textinput.Blink
	}

	return m, nil
}

func (m mainLoopModel) updateForms(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.screen == screenAwardForm {
		return m.updateAwardForm(msg)
	}
	return m.updateSubmitForm(msg)
}

func (m mainLoopModel) updateSubmitForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetSubmitForm()
			m.screen = screenMenu
			return m, nil
		case "ctrl+m":
			m.mode = nextMode(m.mode)
			return m, nil
		case "tab":
			m.submitInputs[m.submitFocus].Blur()
			m.submitFocus = (m.submitFocus + 1) % len(m.submitInputs)
			m.submitInputs[m.submitFocus].Focus()
			return m, nil
		case "shift+tab":
			m.submitInputs[m.submitFocus].Blur()
			m.submitFocus = (m.submitFocus - 1 + len(m.submitInputs)) % len(m.submitInputs)
			m.submitInputs[m.submitFocus].Focus()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			score, err := strconv.Atoi(strings.TrimSpace(m.submitInputs[0].Value()))
			if err != nil || score < 0 {
				m.errMsg = "Очки должны быть целым неотрицательным числом"
				return m, nil
			}
			deaths := 0
			if raw := strings.TrimSpace(m.submitInputs[1].Value()); raw != "" {
				deaths, err = strconv.Atoi(raw)
				if err != nil || deaths < 0 {
					m.errMsg = "Смерти должны быть целым неотрицательным числом"
					return m, nil
				}
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmitScore(models.ScoreSubmission{
				Mode:   m.mode,
				Score:  score,
				Deaths: deaths,
			})
		}
	}

	var cmd tea.Cmd
	m.submitInputs[m.submitFocus], cmd = m.submitInputs[m.submitFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateAwardForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenAchievements
			m.errMsg = ""
			return m, nil
		case "enter":
			if m.awardSubmitting {
				return m, nil
			}

			achievementID := strings.TrimSpace(m.awardInput.Value())
			if achievementID == "" {
				m.errMsg = "Идентификатор достижения обязателен"
				return m, nil
			}

			m.errMsg = ""
			m.awardSubmitting = true
			return m, m.cmdAward(achievementID)
		}
	}

	var cmd tea.Cmd
	m.awardInput, cmd = m.awardInput.Update(msg)
	return m, cmd
}

func (m *mainLoopModel) initSubmitForm() {
	score := textinput.New()
	score.Placeholder = "очки"
	score.CharLimit = 6
	score.Width = 20
	score.Focus()

	deaths := textinput.New()
	deaths.Placeholder = "смерти"
	deaths.CharLimit = 6
	deaths.Width = 20

	m.submitInputs = []textinput.Model{score, deaths}
	m.submitFocus = 0
	m.submitting = false
}

func (m *mainLoopModel) resetSubmitForm() {
	m.submitInputs = nil
	m.submitFocus = 0
	m.submitting = false
}

func (m *mainLoopModel) initAwardForm() {
	input := textinput.New()
	input.Placeholder = "achievement id"
	input.CharLimit = 64
	input.Width = 40
	input.Focus()

	m.awardInput = input
	m.awardSubmitting = false
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenLeaderboard:
		return m.viewLeaderboard()
	case screenMyScores:
		return m.viewMyScores()
	case screenSubmit:
		return m.viewSubmitForm()
	case screenAchievements:
		return m.viewAchievements()
	case screenAwardForm:
		return m.viewAwardForm()
	}

	return m.viewMenu()
}

func (m mainLoopModel) viewMenu() string {
	var b strings.Builder

	b.WriteString("Игрок: " + m.session.Username + "\n\n")

	if m.errMsg != "" {
		b.WriteString("Ошибка: " + m.errMsg + "\n\n")
	}
	if m.status != "" {
		b.WriteString("Статус: " + m.status + "\n\n")
	}

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, item))
	}

	return renderPage("ГЛАВНАЯ СТРАНИЦА", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ q: выход")
}

func (m mainLoopModel) viewLeaderboard() string {
	title := fmt.Sprintf("ТАБЛИЦА ЛИДЕРОВ: %s / %s", modeLabel(m.mode), timeframeLabel(m.timeframe))

	if m.loading {
		return renderPage(title, "Загрузка...", "esc: назад")
	}

	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString("Ошибка: " + m.errMsg + "\n\n")
	}

	if len(m.entries) == 0 {
		b.WriteString("Записей нет")
	} else {
		b.WriteString("Место │ Игрок                │ Очки    │ Смерти\n")
		b.WriteString("──────┼──────────────────────┼─────────┼───────\n")
		for _, e := range m.entries {
			b.WriteString(fmt.Sprintf(
				"%-5d │ %-20s │ %-7d │ %d\n",
				e.Rank,
				fitText(e.Username, 20),
				e.Score,
				e.Deaths,
			))
		}
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "m: режим │ t: период │ r: обновить │ esc: назад")
}

func (m mainLoopModel) viewMyScores() string {
	title := "МОИ РЕЗУЛЬТАТЫ: " + modeLabel(m.mode)

	if m.loading {
		return renderPage(title, "Загрузка...", "esc: назад")
	}

	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString("Ошибка: " + m.errMsg + "\n\n")
	}

	if len(m.records) == 0 {
		b.WriteString("Записей нет")
	} else {
		b.WriteString("Режим        │ Очки    │ Смерти │ Обновлено\n")
		b.WriteString("─────────────┼─────────┼────────┼───────────────────\n")
		for _, r := range m.records {
			b.WriteString(fmt.Sprintf(
				"%-12s │ %-7d │ %-6d │ %s\n",
				fitText(modeLabel(r.Mode), 12),
				r.Score,
				r.Deaths,
				r.UpdatedAt.Format("2006-01-02 15:04:05"),
			))
		}
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "m: режим │ r: обновить │ esc: назад")
}

func (m mainLoopModel) viewSubmitForm() string {
	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────\n")
	b.WriteString("Режим   │ " + modeLabel(m.mode) + "\n")
	b.WriteString("Очки    │ [")
	b.WriteString(m.submitInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Смерти  │ [")
	b.WriteString(m.submitInputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Отправить...]\n")
	} else {
		b.WriteString("\n[Отправить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	return renderPage("ОТПРАВКА РЕЗУЛЬТАТА", strings.TrimRight(b.String(), "\n"), "ctrl+m: режим │ tab: след. поле │ enter: отправить │ esc: отмена")
}

func (m mainLoopModel) viewAchievements() string {
	if m.loading {
		return renderPage("ДОСТИЖЕНИЯ", "Загрузка...", "esc: назад")
	}

	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString("Ошибка: " + m.errMsg + "\n\n")
	}
	if m.status != "" {
		b.WriteString("Статус: " + m.status + "\n\n")
	}

	if len(m.achievements) == 0 {
		b.WriteString("Достижений пока нет")
	} else {
		b.WriteString("Достижение                     │ Получено\n")
		b.WriteString("───────────────────────────────┼───────────────────\n")
		for _, a := range m.achievements {
			b.WriteString(fmt.Sprintf(
				"%-30s │ %s\n",
				fitText(a.AchievementID, 30),
				a.AwardedAt.Format("2006-01-02 15:04:05"),
			))
		}
	}

	return renderPage("ДОСТИЖЕНИЯ", strings.TrimRight(b.String(), "\n"), "a: получить │ r: обновить │ esc: назад")
}

func (m mainLoopModel) viewAwardForm() string {
	var b strings.Builder
	b.WriteString("Идентификатор │ [")
	b.WriteString(m.awardInput.View())
	b.WriteString("]\n")

	if m.awardSubmitting {
		b.WriteString("\n[Получить...]\n")
	} else {
		b.WriteString("\n[Получить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	return renderPage("НОВОЕ ДОСТИЖЕНИЕ", strings.TrimRight(b.String(), "\n"), "enter: получить │ esc: отмена")
}

func (m mainLoopModel) cmdLoadLeaderboard() tea.Cmd {
	ctx := m.ctx
	svc := m.services.GameService
	mode := m.mode
	timeframe := m.timeframe

	return func() tea.Msg {
		entries, err := svc.Leaderboard(ctx, mode, timeframe, leaderboardLimit)
		return leaderboardLoadedMsg{entries: entries, err: err}
	}
}

func (m mainLoopModel) cmdLoadMyScores() tea.Cmd {
	ctx := m.ctx
	svc := m.services.GameService
	mode := m.mode

	return func() tea.Msg {
		records, err := svc.MyScores(ctx, mode)
		return myScoresLoadedMsg{records: records, err: err}
	}
}

func (m mainLoopModel) cmdLoadAchievements() tea.Cmd {
	ctx := m.ctx
	svc := m.services.GameService

	return func() tea.Msg {
		items, err := svc.Achievements(ctx)
		return achievementsLoadedMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdSubmitScore(submission models.ScoreSubmission) tea.Cmd {
	ctx := m.ctx
	svc := m.services.GameService

	return func() tea.Msg {
		err := svc.SubmitScore(ctx, submission)
		return submitDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdAward(achievementID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.GameService

	return func() tea.Msg {
		err := svc.Award(ctx, achievementID)
		return awardDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AuthService

	return func() tea.Msg {
		err := svc.Logout(ctx)
		return logoutDoneMsg{err: err}
	}
}

func nextMode(mode models.GameMode) models.GameMode {
	for i, known := range models.GameModes {
		if known == mode {
			return models.GameModes[(i+1)%len(models.GameModes)]
		}
	}
	return models.GameModes[0]
}

func nextTimeframe(timeframe models.Timeframe) models.Timeframe {
	frames := []models.Timeframe{models.TimeframeAll, models.TimeframeDaily, models.TimeframeWeekly}
	for i, known := range frames {
		if known == timeframe {
			return frames[(i+1)%len(frames)]
		}
	}
	return models.TimeframeAll
}

func modeLabel(mode models.GameMode) string {
	switch mode {
	case models.ModeEasy:
		return "Лёгкий"
	case models.ModeNormal:
		return "Обычный"
	case models.ModeHard:
		return "Сложный"
	case models.ModeEndless:
		return "Бесконечный"
	default:
		return string(mode)
	}
}

func timeframeLabel(timeframe models.Timeframe) string {
	switch timeframe {
	case models.TimeframeDaily:
		return "День"
	case models.TimeframeWeekly:
		return "Неделя"
	default:
		return "Всё время"
	}
}

func operationErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, adapter.ErrOperationRejected) {
		return "Сервер отклонил запрос"
	}
	if errors.Is(err, adapter.ErrUnauthorized) {
		return "Сессия недействительна, войдите заново"
	}
	return humanizeServerUnavailableError(err)
}
