package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/bagdasarian/auction-draft/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	teams   *MockTeamService
	players *MockPlayerService
	drafts  *MockDraftService
	stats   *MockStatsService
	handler *Handler
}

func newHandlerFixture() *handlerFixture {
	f := &handlerFixture{
		teams:   new(MockTeamService),
		players: new(MockPlayerService),
		drafts:  new(MockDraftService),
		stats:   new(MockStatsService),
	}
	logger, _ := test.NewNullLogger()
	f.handler = NewHandler(f.teams, f.players, f.drafts, f.stats, logger)
	return f
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	return httptest.NewRequest(method, target, &buf)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func TestHandler_DraftPlayer(t *testing.T) {
	price45 := 45

	t.Run("успешный драфт", func(t *testing.T) {
		f := newHandlerFixture()

		allen := &domain.Player{ID: 10, Name: "Josh Allen", Position: domain.PositionQB, Drafted: true, Price: &price45}
		team := &domain.Team{
			ID:              1,
			Name:            "Sharks",
			BudgetRemaining: 155,
			Roster:          domain.BuildRoster([]*domain.RosterEntry{{TeamID: 1, Slot: domain.SlotQB, Cost: 45, Player: allen}}),
		}
		f.drafts.On("DraftPlayer", mock.Anything, service.DraftRequest{PlayerID: 10, TeamID: 1, Price: 45, Slot: domain.SlotQB}).
			Return(&domain.DraftResult{Team: team, Player: allen}, nil).Once()

		rec := httptest.NewRecorder()
		f.handler.DraftPlayer(rec, jsonRequest(t, http.MethodPost, "/draft", map[string]interface{}{
			"player_id": 10, "team_id": 1, "price": 45, "roster_slot": "qb",
		}))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp DraftResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 155, resp.Team.BudgetRemaining)
		require.NotNil(t, resp.Team.QB)
		assert.Equal(t, "Josh Allen", resp.Team.QB.Name)
		assert.Nil(t, resp.Team.RB1)
		assert.NotNil(t, resp.Team.Bench)
		assert.True(t, resp.Player.Drafted)
		assert.Equal(t, 45, *resp.Player.Price)
		f.drafts.AssertExpectations(t)
	})

	t.Run("BENCH передается в сервис как запрос скамейки", func(t *testing.T) {
		f := newHandlerFixture()

		f.drafts.On("DraftPlayer", mock.Anything, service.DraftRequest{PlayerID: 10, TeamID: 1, Price: 0, Slot: domain.SlotBench}).
			Return(&domain.DraftResult{Team: &domain.Team{ID: 1}, Player: &domain.Player{ID: 10}}, nil).Once()

		rec := httptest.NewRecorder()
		f.handler.DraftPlayer(rec, jsonRequest(t, http.MethodPost, "/draft", map[string]interface{}{
			"player_id": 10, "team_id": 1, "price": 0, "roster_slot": "BENCH",
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
		f.drafts.AssertExpectations(t)
	})

	errorCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"слот занят", domain.ErrSlotOccupied, http.StatusConflict, domain.CodeConflict},
		{"скамейка заполнена", domain.ErrBenchFull, http.StatusConflict, domain.CodeConflict},
		{"не хватает бюджета", domain.ErrInsufficientBudget, http.StatusBadRequest, domain.CodeInsufficientBudget},
		{"игрок не найден", domain.NewNotFoundError("player"), http.StatusNotFound, domain.CodeNotFound},
		{"внутренняя ошибка", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newHandlerFixture()
			f.drafts.On("DraftPlayer", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			rec := httptest.NewRecorder()
			f.handler.DraftPlayer(rec, jsonRequest(t, http.MethodPost, "/draft", map[string]interface{}{
				"player_id": 10, "team_id": 1, "price": 5, "roster_slot": "QB",
			}))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCode, decodeError(t, rec).Code)
		})
	}

	invalid := []struct {
		name string
		body interface{}
	}{
		{"неизвестный слот", map[string]interface{}{"player_id": 10, "team_id": 1, "price": 5, "roster_slot": "RB"}},
		{"нет цены", map[string]interface{}{"player_id": 10, "team_id": 1, "roster_slot": "QB"}},
		{"нет команды", map[string]interface{}{"player_id": 10, "price": 5, "roster_slot": "QB"}},
		{"цена не число", map[string]interface{}{"player_id": 10, "team_id": 1, "price": "five", "roster_slot": "QB"}},
		{"лишнее поле", map[string]interface{}{"player_id": 10, "team_id": 1, "price": 5, "roster_slot": "QB", "bid": 6}},
	}

	for _, tc := range invalid {
		t.Run("ошибка валидации: "+tc.name, func(t *testing.T) {
			f := newHandlerFixture()

			rec := httptest.NewRecorder()
			f.handler.DraftPlayer(rec, jsonRequest(t, http.MethodPost, "/draft", tc.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, domain.CodeValidation, decodeError(t, rec).Code)
			f.drafts.AssertNotCalled(t, "DraftPlayer", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_UndraftPlayer(t *testing.T) {
	t.Run("успешная отмена", func(t *testing.T) {
		f := newHandlerFixture()
		f.drafts.On("UndraftPlayer", mock.Anything, service.UndraftRequest{PlayerID: 10, TeamID: 1}).Return(true, nil).Once()

		rec := httptest.NewRecorder()
		f.handler.UndraftPlayer(rec, jsonRequest(t, http.MethodPost, "/draft/undraft", map[string]int{"player_id": 10, "team_id": 1}))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp UndraftResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Success)
	})

	t.Run("назначение не найдено", func(t *testing.T) {
		f := newHandlerFixture()
		f.drafts.On("UndraftPlayer", mock.Anything, mock.Anything).
			Return(false, domain.NewNotFoundError("draft assignment")).Once()

		rec := httptest.NewRecorder()
		f.handler.UndraftPlayer(rec, jsonRequest(t, http.MethodPost, "/draft/undraft", map[string]int{"player_id": 10, "team_id": 1}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "draft assignment not found", decodeError(t, rec).Message)
	})
}

func TestHandler_Teams(t *testing.T) {
	t.Run("создание команды", func(t *testing.T) {
		f := newHandlerFixture()
		f.teams.On("CreateTeam", mock.Anything, "Sharks", "carol").
			Return(&domain.Team{ID: 3, Name: "Sharks", Owner: "carol", BudgetRemaining: 200, Roster: domain.BuildRoster(nil)}, nil).Once()

		rec := httptest.NewRecorder()
		f.handler.CreateTeam(rec, jsonRequest(t, http.MethodPost, "/teams", map[string]string{"name": "Sharks", "owner": "carol"}))

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp TeamResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 3, resp.TeamID)
		assert.Equal(t, 200, resp.BudgetRemaining)
		assert.Empty(t, resp.Bench)
	})

	t.Run("список команд", func(t *testing.T) {
		f := newHandlerFixture()
		f.teams.On("ListTeams", mock.Anything).Return([]*domain.Team{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil).Once()

		rec := httptest.NewRecorder()
		f.handler.ListTeams(rec, httptest.NewRequest(http.MethodGet, "/teams", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp TeamsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp.Teams, 2)
	})

	t.Run("команда по ID", func(t *testing.T) {
		f := newHandlerFixture()
		f.teams.On("GetTeam", mock.Anything, 7).Return(&domain.Team{ID: 7, Name: "Hawks"}, nil).Once()

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/teams/7", nil), map[string]string{"teamID": "7"})
		rec := httptest.NewRecorder()
		f.handler.GetTeam(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		f.teams.AssertExpectations(t)
	})

	t.Run("некорректный ID команды", func(t *testing.T) {
		f := newHandlerFixture()

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/teams/abc", nil), map[string]string{"teamID": "abc"})
		rec := httptest.NewRecorder()
		f.handler.GetTeam(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.teams.AssertNotCalled(t, "GetTeam", mock.Anything, mock.Anything)
	})
}

func TestHandler_Players(t *testing.T) {
	t.Run("список игроков", func(t *testing.T) {
		f := newHandlerFixture()
		value := 52
		f.players.On("ListPlayers", mock.Anything).Return([]*domain.Player{
			{ID: 1, Name: "Josh Allen", Position: domain.PositionQB, ProjectedPoints: 391, Value: &value},
			{ID: 2, Name: "Justin Tucker", Position: domain.PositionK, ProjectedPoints: 143},
		}, nil).Once()

		rec := httptest.NewRecorder()
		f.handler.ListPlayers(rec, httptest.NewRequest(http.MethodGet, "/players", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp PlayersResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, 52, *resp.Players[0].Value)
		assert.Nil(t, resp.Players[1].Price)
		assert.False(t, resp.Players[1].Drafted)
	})

	t.Run("игрок не найден", func(t *testing.T) {
		f := newHandlerFixture()
		f.players.On("GetPlayer", mock.Anything, 99).Return(nil, domain.NewNotFoundError("player")).Once()

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/players/99", nil), map[string]string{"playerID": "99"})
		rec := httptest.NewRecorder()
		f.handler.GetPlayer(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_GetStats(t *testing.T) {
	f := newHandlerFixture()
	f.stats.On("GetStats", mock.Anything).Return(&domain.DraftStats{
		Teams:     []*domain.TeamSpendStat{{TeamID: 1, TeamName: "Sharks", Spent: 45, BudgetRemaining: 155, RosterSize: 1}},
		Positions: []*domain.PositionStat{{Position: domain.PositionQB, Drafted: 1, TotalCost: 45}},
	}, nil).Once()

	rec := httptest.NewRecorder()
	f.handler.GetStats(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp StatsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Sharks", resp.Teams[0].TeamName)
	assert.Equal(t, "QB", resp.Positions[0].Position)
}
