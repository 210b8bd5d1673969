package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gossipboard/gossip-client/internal/config"
	"github.com/gossipboard/gossip-client/internal/repository"
)

type api struct {
	t *testing.T
	h http.Handler
}

func newAPI(t *testing.T) *api {
	cfg := config.ServerConfig{JWTSecret: "test", AccessTTL: time.Hour, BcryptCost: bcrypt.MinCost}
	return &api{t: t, h: New(cfg, repository.NewBoard(true), nil)}
}

func (a *api) call(method, path, token, body string) (int, map[string]any) {
	a.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.h.ServeHTTP(rec, req)
	out := map[string]any{}
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec.Code, out
}

func (a *api) login(name string) string {
	a.t.Helper()
	code, _ := a.call(http.MethodPost, "/signup", "",
		`{"username":"`+name+`","email":"`+name+`@example.com","password":"pw"}`)
	require.Equal(a.t, http.StatusCreated, code)
	code, body := a.call(http.MethodPost, "/login", "", `{"email":"`+name+`@example.com","password":"pw"}`)
	require.Equal(a.t, http.StatusOK, code)
	return body["token"].(string)
}

func TestAuthFlow(t *testing.T) {
	a := newAPI(t)
	tok := a.login("ana")

	code, _ := a.call(http.MethodPost, "/signup", "", `{"username":"ana","email":"x@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusConflict, code)

	code, body := a.call(http.MethodPost, "/login", "", `{"email":"ana@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "invalid credentials", body["error"])

	code, body = a.call(http.MethodGet, "/validate", tok, "")
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["user_id"])

	code, _ = a.call(http.MethodGet, "/validate", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestTopicsArePublicToRead(t *testing.T) {
	a := newAPI(t)
	code, body := a.call(http.MethodGet, "/topics", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["topics"], len(repository.DefaultTopics))

	code, _ = a.call(http.MethodPost, "/topics", "", `{"title":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	code, _ = a.call(http.MethodGet, "/posts", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	code, _ = a.call(http.MethodGet, "/topics/99", "", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestPostLifecycle(t *testing.T) {
	a := newAPI(t)
	ana, bob := a.login("ana"), a.login("bob")

	code, body := a.call(http.MethodPost, "/topics", ana, `{"title":"Side Projects"}`)
	require.Equal(t, http.StatusCreated, code)
	topic := body["topic"].(map[string]any)
	assert.Equal(t, "side-projects", topic["Slug"])
	topicPath := "/topics/" + jsonID(topic)

	code, body = a.call(http.MethodPost, "/posts", ana, `{"title":"hi","body":"there","topicId":`+jsonID(topic)+`}`)
	require.Equal(t, http.StatusCreated, code)
	post := body["post"].(map[string]any)
	assert.Equal(t, "ana", post["User"].(map[string]any)["Username"])
	assert.Equal(t, "Side Projects", post["Topic"].(map[string]any)["Title"])
	postPath := "/posts/" + jsonID(post)

	code, _ = a.call(http.MethodDelete, topicPath, ana, "")
	assert.Equal(t, http.StatusConflict, code)

	code, _ = a.call(http.MethodPut, postPath, bob, `{"title":"mine","body":"now"}`)
	assert.Equal(t, http.StatusForbidden, code)

	code, body = a.call(http.MethodPost, postPath+"/comments", bob, `{"body":"welcome"}`)
	require.Equal(t, http.StatusCreated, code)
	comment := body["comment"].(map[string]any)
	code, _ = a.call(http.MethodDelete, "/comments/"+jsonID(comment), ana, "")
	assert.Equal(t, http.StatusForbidden, code)

	code, body = a.call(http.MethodGet, postPath+"/comments", ana, "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["comments"], 1)

	code, _ = a.call(http.MethodDelete, postPath, ana, "")
	assert.Equal(t, http.StatusOK, code)
	code, _ = a.call(http.MethodGet, postPath, ana, "")
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = a.call(http.MethodDelete, topicPath, ana, "")
	assert.Equal(t, http.StatusOK, code)
}

func TestSearch(t *testing.T) {
	a := newAPI(t)
	tok := a.login("ana")
	for _, title := range []string{"Go generics", "Lunch plans", "go modules"} {
		code, _ := a.call(http.MethodPost, "/posts", tok, `{"title":"`+title+`","body":"b","topicId":1}`)
		require.Equal(t, http.StatusCreated, code)
	}
	code, body := a.call(http.MethodGet, "/posts?search=GO", tok, "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["posts"], 2)
}

func jsonID(m map[string]any) string {
	return strconv.FormatInt(int64(m["ID"].(float64)), 10)
}
