package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"campus-board/config"
	"campus-board/literals"
)

func testConfig() config.AppConfig {
	return config.AppConfig{Items: config.ItemsConfig{DefaultPageSize: 20, MaxPageSize: 100}}
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		recorder := httptest.NewRecorder()
		New(mt.DB, testConfig()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(mt, http.StatusOK, recorder.Code)
		assert.JSONEq(mt, `{"status":"ok"}`, recorder.Body.String())
	})

	mt.Run("mongo down", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 1, Message: "down"}))

		recorder := httptest.NewRecorder()
		New(mt.DB, testConfig()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(mt, http.StatusServiceUnavailable, recorder.Code)
	})
}

func TestGetItemRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("projects stored link", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + literals.LINK_TABLE
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "id", Value: "l1"},
			{Key: "title", Value: "Go blog"},
			{Key: "addedBy", Value: "ann"},
			{Key: "link", Value: "https://go.dev/blog"},
			{Key: "netVotes", Value: int32(2)},
		}))

		recorder := httptest.NewRecorder()
		New(mt.DB, testConfig()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/items/link/l1", nil))

		require.Equal(mt, http.StatusOK, recorder.Code)
		var body map[string]any
		require.NoError(mt, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(mt, "link", body["type"])
		assert.Equal(mt, "ann", body["author"])
		assert.Equal(mt, "https://go.dev/blog", body["url"])
		assert.Equal(mt, float64(2), body["votes"])
		assert.Equal(mt, float64(0), body["voteValue"])
		assert.NotContains(mt, body, "voted")
	})
}
