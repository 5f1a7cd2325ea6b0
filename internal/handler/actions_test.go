package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/economy"
	"github.com/osse101/MagicGarden_Go/internal/session"
)

func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestActionsHandler_Buy(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		sess := &MockSession{}
		out := &session.Outcome{
			RequestID: "req-1",
			Action:    domain.ActionBuyPlant,
			Delta:     economy.Delta{CoinsChange: -10},
			Economy:   domain.Economy{Coins: 90, Level: 1},
			Item:      &domain.InventoryItem{InstanceID: "i-1", Plant: domain.Plant{ID: 1, Name: "Carrot"}},
		}
		sess.On("BuyPlant", mock.Anything, 1).Return(out, nil)

		w := newRecorder()
		NewActionsHandler(sess).HandleBuy(w, postJSON("/api/v1/actions/buy", `{"plant_id":1}`))

		require.Equal(t, http.StatusOK, w.Code)
		var got session.Outcome
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "req-1", got.RequestID)
		assert.Equal(t, 90, got.Economy.Coins)
		require.NotNil(t, got.Item)
		assert.Equal(t, "i-1", got.Item.InstanceID)
		sess.AssertExpectations(t)
	})

	t.Run("Not Enough Coins", func(t *testing.T) {
		sess := &MockSession{}
		sess.On("BuyPlant", mock.Anything, 2).Return(nil,
			&session.RefusalError{Message: domain.MsgNotEnoughCoins, Err: domain.ErrInsufficientFunds})

		w := newRecorder()
		NewActionsHandler(sess).HandleBuy(w, postJSON("/api/v1/actions/buy", `{"plant_id":2}`))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), domain.MsgNotEnoughCoins)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		sess := &MockSession{}

		w := newRecorder()
		NewActionsHandler(sess).HandleBuy(w, postJSON("/api/v1/actions/buy", `{"plant_id":`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		sess.AssertNotCalled(t, "BuyPlant", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Field", func(t *testing.T) {
		sess := &MockSession{}

		w := newRecorder()
		NewActionsHandler(sess).HandleBuy(w, postJSON("/api/v1/actions/buy", `{"plant_id":1,"coins":5}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing Plant", func(t *testing.T) {
		sess := &MockSession{}

		w := newRecorder()
		NewActionsHandler(sess).HandleBuy(w, postJSON("/api/v1/actions/buy", `{}`))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"plantid"`)
	})
}

func TestActionsHandler_BedActions(t *testing.T) {
	harvested := &session.Outcome{
		RequestID: "req-2",
		Action:    domain.ActionHarvest,
		Delta:     economy.Delta{CoinsChange: 25, ExpChanged: true},
		Economy:   domain.Economy{Coins: 125},
		Bed:       &domain.Bed{ID: 3},
	}

	tests := []struct {
		name       string
		method     string
		call       func(h *ActionsHandler) http.HandlerFunc
		path       string
		ret        *session.Outcome
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name: "harvest ok", method: "Harvest", path: "/api/v1/actions/harvest",
			call: func(h *ActionsHandler) http.HandlerFunc { return h.HandleHarvest },
			ret:  harvested, wantStatus: http.StatusOK, wantBody: `"request_id":"req-2"`,
		},
		{
			name: "harvest not ready", method: "Harvest", path: "/api/v1/actions/harvest",
			call:       func(h *ActionsHandler) http.HandlerFunc { return h.HandleHarvest },
			err:        &session.RefusalError{Message: domain.MsgNotReady, Err: domain.ErrNotReady},
			wantStatus: http.StatusUnprocessableEntity, wantBody: domain.MsgNotReady,
		},
		{
			name: "plant without selection", method: "PlantSelected", path: "/api/v1/actions/plant",
			call:       func(h *ActionsHandler) http.HandlerFunc { return h.HandlePlant },
			err:        &session.RefusalError{Message: domain.MsgSelectPlantFirst, Err: domain.ErrNoSelection},
			wantStatus: http.StatusUnprocessableEntity, wantBody: domain.MsgSelectPlantFirst,
		},
		{
			name: "plant while busy", method: "PlantSelected", path: "/api/v1/actions/plant",
			call:       func(h *ActionsHandler) http.HandlerFunc { return h.HandlePlant },
			err:        domain.ErrActionInFlight,
			wantStatus: http.StatusConflict, wantBody: ErrMsgSessionBusy,
		},
		{
			name: "unlock rejected", method: "UnlockBed", path: "/api/v1/actions/unlock",
			call:       func(h *ActionsHandler) http.HandlerFunc { return h.HandleUnlock },
			err:        &session.RefusalError{Message: "Bed already unlocked", Err: fmt.Errorf("%w: 400", domain.ErrActionRejected)},
			wantStatus: http.StatusBadRequest, wantBody: "Bed already unlocked",
		},
		{
			name: "unlock transport failure", method: "UnlockBed", path: "/api/v1/actions/unlock",
			call:       func(h *ActionsHandler) http.HandlerFunc { return h.HandleUnlock },
			err:        fmt.Errorf("%w: connection refused", domain.ErrTransport),
			wantStatus: http.StatusBadGateway, wantBody: ErrMsgAuthorityFailed,
		},
		{
			name: "harvest after close", method: "Harvest", path: "/api/v1/actions/harvest",
			call:       func(h *ActionsHandler) http.HandlerFunc { return h.HandleHarvest },
			err:        domain.ErrSessionClosed,
			wantStatus: http.StatusServiceUnavailable, wantBody: ErrMsgSessionClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := &MockSession{}
			if tt.ret != nil {
				sess.On(tt.method, mock.Anything, 3).Return(tt.ret, nil)
			} else {
				sess.On(tt.method, mock.Anything, 3).Return(nil, tt.err)
			}

			w := newRecorder()
			tt.call(NewActionsHandler(sess))(w, postJSON(tt.path, `{"bed_id":3}`))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			sess.AssertExpectations(t)
		})
	}
}

// A client hanging up must not cancel an action already sent to the authority.
func TestActionsHandler_ClientDisconnect(t *testing.T) {
	var got context.Context
	sess := &MockSession{}
	sess.On("Harvest", mock.Anything, 3).
		Run(func(args mock.Arguments) { got = args.Get(0).(context.Context) }).
		Return(&session.Outcome{RequestID: "req-9", Action: domain.ActionHarvest}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	req := postJSON("/api/v1/actions/harvest", `{"bed_id":3}`).WithContext(ctx)
	cancel()

	w := newRecorder()
	NewActionsHandler(sess).HandleHarvest(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.NoError(t, got.Err())
	sess.AssertExpectations(t)
}

func TestActionsHandler_BedIDValidation(t *testing.T) {
	sess := &MockSession{}

	w := newRecorder()
	NewActionsHandler(sess).HandleHarvest(w, postJSON("/api/v1/actions/harvest", `{"bed_id":-1}`))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	sess.AssertNotCalled(t, "Harvest", mock.Anything, mock.Anything)
}
