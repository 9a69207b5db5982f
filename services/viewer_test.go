package services

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testContext(t *testing.T, url string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", url, nil)
	return c
}

func TestParsePagination_Defaults(t *testing.T) {
	page, limit := parsePagination(testContext(t, "/patient/fetchAll"))
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)
}

func TestParsePagination_Explicit(t *testing.T) {
	page, limit := parsePagination(testContext(t, "/patient/fetchAll?page=3&limit=5"))
	assert.Equal(t, 3, page)
	assert.Equal(t, 5, limit)
}

func TestParsePagination_RejectsNonPositive(t *testing.T) {
	page, limit := parsePagination(testContext(t, "/patient/fetchAll?page=0&limit=-2"))
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)
}

func TestAsDocument(t *testing.T) {
	doc, ok := asDocument(bson.M{"code": "P0001"})
	assert.True(t, ok)
	assert.Equal(t, "P0001", doc["code"])

	doc, ok = asDocument(map[string]interface{}{"code": "P0002"})
	assert.True(t, ok)
	assert.Equal(t, "P0002", doc["code"])

	_, ok = asDocument(nil)
	assert.False(t, ok)
	_, ok = asDocument("not a doc")
	assert.False(t, ok)
}

func TestAsTime(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	got, ok := asTime(primitive.NewDateTimeFromTime(now))
	assert.True(t, ok)
	assert.True(t, got.Equal(now))

	got, ok = asTime(now)
	assert.True(t, ok)
	assert.True(t, got.Equal(now))

	_, ok = asTime("2026-01-12")
	assert.False(t, ok)
}
