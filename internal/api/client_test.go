package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Vancheszz/Registry/internal/models"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zap.NewNop())
}

func TestBearerTokenInjected(t *testing.T) {
	var gotAuth string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{ID: 1, Username: "reg"})
	})

	_, err := client.Me(context.Background(), "secret-token")
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestLoginWithoutToken(t *testing.T) {
	var gotAuth string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "reg", creds.Username)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Token{AccessToken: "tok", TokenType: "bearer"})
	})

	token, err := client.Login(context.Background(), models.Credentials{Username: "reg", Password: "pass"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "логин не должен отправлять Authorization")
	assert.Equal(t, "tok", token.AccessToken)
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Patients(context.Background(), "expired", "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = client.DeleteShift(context.Background(), "expired", 1)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestStatusErrorCarriesCode(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "нет прав", http.StatusForbidden)
	})

	_, err := client.ExportHandovers(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusForbidden))
	assert.False(t, IsStatus(err, http.StatusUnprocessableEntity))
}

func TestAssetFilterQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Asset{})
	})

	_, err := client.Assets(context.Background(), "tok", AssetFilter{
		AssetType: models.AssetTypeOrangeCase,
		Search:    "срочный",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{models.AssetTypeOrangeCase}, gotQuery["asset_type"])
	assert.Equal(t, []string{"срочный"}, gotQuery["search"])
	// пустой статус не отправляется вовсе
	_, ok := gotQuery["status"]
	assert.False(t, ok)
}

func TestBulkShiftsPayload(t *testing.T) {
	var got struct {
		Shifts []models.CreateShift `json:"shifts"`
	}
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/shifts/bulk", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Shift{{ID: 1}, {ID: 2}})
	})

	batch := []models.CreateShift{
		{Date: "2024-03-05", StartTime: "09:00", EndTime: "09:30", ShiftType: "consultation", UserID: 1},
		{Date: "2024-03-05", StartTime: "09:00", EndTime: "09:30", ShiftType: "consultation", UserID: 2},
	}
	created, err := client.CreateShifts(context.Background(), "tok", batch)
	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Equal(t, batch, got.Shifts)
}

func TestDeleteSendsSingleRequest(t *testing.T) {
	var calls []string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeletePatient(context.Background(), "tok", 42))
	assert.Equal(t, []string{"DELETE /api/patients/42"}, calls)
}

func TestNoRetriesOnServerError(t *testing.T) {
	var calls int
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Handovers(context.Background(), "tok")
	require.Error(t, err)
	assert.Equal(t, 1, calls, "неудавшийся запрос не повторяется автоматически")
}

func TestClearHandoversParsesCounts(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/handovers/clear", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ClearResponse{
			Message:          "Журнал очищен",
			DeletedHandovers: 3,
			DeletedLogs:      9,
		})
	})

	cleared, err := client.ClearHandovers(context.Background(), "admin-tok")
	require.NoError(t, err)
	assert.Equal(t, 3, cleared.DeletedHandovers)
	assert.Equal(t, 9, cleared.DeletedLogs)
}
