package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"skillsphere/internal/models/db_models"
	"skillsphere/internal/repositories/memory"
	"skillsphere/internal/services"
	mem "skillsphere/pkg/memcache"
	"skillsphere/pkg/middleware"
	"skillsphere/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiFixture struct {
	router *gin.Engine
	store  *memory.Store
	tokens *utils.TokenService
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	log := zap.NewNop()
	store := memory.NewStore()

	tokens, err := utils.NewTokenService(utils.TokenConfig{
		Secret: []byte("0123456789abcdef0123456789abcdef"),
		Issuer: "skillsphere-test",
		TTL:    time.Hour,
	})
	require.NoError(t, err)

	identity := services.NewIdentityService(store.Users(), tokens, mem.NewRevokedTokens(), log)
	content := services.NewContentService(store, log)
	subs := services.NewSubscriptionService(store, log)

	account := NewAccountController(services.NewAccountService(store.Users(), tokens, log), identity)
	post := NewPostController(services.NewPostService(store, log), content, services.NewReactionService(store, log))
	subscription := NewSubscriptionController(subs, content)
	admin := NewAdminController(subs, content)
	user := NewUserController(services.NewFollowService(store, log))
	quiz := NewQuizController(services.NewQuizService(store.Quizzes(), log))

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware(), middleware.IdentityMiddleware(identity))
	auth := middleware.RequireAuth()

	api := r.Group("/api")
	api.POST("/auth/register", account.Register)
	api.POST("/auth/login", account.Login)
	api.GET("/auth/me", auth, account.Me)
	api.POST("/auth/logout", auth, account.Logout)
	api.GET("/posts/:id", post.GetPost)
	api.POST("/posts", auth, post.CreatePost)
	api.DELETE("/posts/:id", auth, post.DeletePost)
	api.POST("/posts/:id/reactions", auth, post.React)
	api.POST("/subscriptions", auth, subscription.CreateSubscription)
	api.GET("/subscriptions/user", auth, subscription.GetUserSubscriptions)
	api.GET("/subscriptions/user/active", auth, subscription.GetActiveSubscription)
	api.DELETE("/admin/subscription-plans/:id", middleware.RequireAdmin(), admin.DeletePlan)
	api.POST("/users/:id/follow", auth, user.Follow)
	api.POST("/users/:id/unfollow", auth, user.Unfollow)
	api.GET("/profile/:userId", user.GetProfile)
	api.POST("/quizzes", auth, quiz.CreateQuiz)
	api.GET("/quizzes", quiz.ListQuizzes)

	return &apiFixture{router: r, store: store, tokens: tokens}
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body any) (int, utils.APIResponse) {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func (f *apiFixture) register(t *testing.T, username string) string {
	t.Helper()
	code, resp := f.do(t, http.MethodPost, "/api/auth/register", "", gin.H{"username": username, "password": "secret1"})
	require.Equal(t, http.StatusOK, code, resp.Message)
	data := resp.Data.(map[string]any)
	return data["token"].(string)
}

func TestAuthFlow(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, "alice")

	code, resp := f.do(t, http.MethodPost, "/api/auth/register", "", gin.H{"username": "alice", "password": "secret1"})
	assert.Equal(t, http.StatusConflict, code)

	code, resp = f.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": "alice", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, resp = f.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": "alice", "password": "secret1"})
	require.Equal(t, http.StatusOK, code)
	token := resp.Data.(map[string]any)["token"].(string)

	code, resp = f.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice", resp.Data.(map[string]any)["username"])

	code, _ = f.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, code)

	code, resp = f.do(t, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Unauthorized", resp.Message)
}

func TestPostLifecycle(t *testing.T) {
	f := newAPIFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	code, resp := f.do(t, http.MethodPost, "/api/posts", alice, gin.H{"title": "Go", "content": "channels"})
	require.Equal(t, http.StatusOK, code, resp.Message)
	postPath := "/api/posts/" + strconv.Itoa(int(resp.Data.(map[string]any)["id"].(float64)))

	code, resp = f.do(t, http.MethodPost, postPath+"/reactions", bob, gin.H{"type": "like"})
	require.Equal(t, http.StatusOK, code, resp.Message)
	assert.Equal(t, "ADDED", resp.Data.(map[string]any)["outcome"])

	code, resp = f.do(t, http.MethodGet, postPath, bob, nil)
	require.Equal(t, http.StatusOK, code)
	detail := resp.Data.(map[string]any)
	assert.Equal(t, "LIKE", detail["my_reaction"])
	assert.EqualValues(t, 1, detail["reactions"].(map[string]any)["LIKE"])

	code, _ = f.do(t, http.MethodDelete, postPath, bob, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = f.do(t, http.MethodDelete, postPath, alice, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = f.do(t, http.MethodGet, postPath, "", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, resp = f.do(t, http.MethodDelete, "/api/posts/abc", alice, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSubscriptionRoutes(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")

	plan := &db_models.SubscriptionPlan{Name: "Pro", Features: []string{"all courses"}, Price: 20}
	require.NoError(t, f.store.Plans().Create(ctx, plan))
	admin := &db_models.Admin{Username: "root", PasswordHash: "x"}
	require.NoError(t, f.store.Users().CreateAdmin(ctx, admin))
	adminToken, err := f.tokens.Issue(strconv.Itoa(int(admin.ID)))
	require.NoError(t, err)

	code, resp := f.do(t, http.MethodGet, "/api/subscriptions/user/active", alice, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, resp.Data)

	code, resp = f.do(t, http.MethodPost, "/api/subscriptions", alice, gin.H{"plan": "Pro"})
	require.Equal(t, http.StatusOK, code, resp.Message)

	code, resp = f.do(t, http.MethodGet, "/api/subscriptions/user/active", alice, nil)
	require.Equal(t, http.StatusOK, code)
	active, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Pro", active["plan"])
	assert.Equal(t, true, active["active"])

	code, resp = f.do(t, http.MethodGet, "/api/subscriptions/user", alice, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, resp.Data.([]any), 1)

	code, _ = f.do(t, http.MethodPost, "/api/subscriptions", adminToken, gin.H{"plan": "Pro"})
	assert.Equal(t, http.StatusForbidden, code)

	planPath := "/api/admin/subscription-plans/" + strconv.Itoa(int(plan.ID))
	code, _ = f.do(t, http.MethodDelete, planPath, alice, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = f.do(t, http.MethodDelete, planPath, adminToken, nil)
	assert.Equal(t, http.StatusConflict, code)
}

func (f *apiFixture) userID(t *testing.T, token string) string {
	t.Helper()
	code, resp := f.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	return strconv.Itoa(int(resp.Data.(map[string]any)["user_id"].(float64)))
}

func TestFollowRoutes(t *testing.T) {
	f := newAPIFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	aliceID := f.userID(t, alice)

	code, resp := f.do(t, http.MethodPost, "/api/users/"+aliceID+"/follow", bob, nil)
	require.Equal(t, http.StatusOK, code, resp.Message)
	profile := resp.Data.(map[string]any)
	assert.Equal(t, "alice", profile["username"])
	require.Len(t, profile["followers"], 1)
	assert.Equal(t, "bob", profile["followers"].([]any)[0].(map[string]any)["username"])

	code, _ = f.do(t, http.MethodPost, "/api/users/"+aliceID+"/follow", alice, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = f.do(t, http.MethodPost, "/api/users/9999/follow", bob, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = f.do(t, http.MethodPost, "/api/users/"+aliceID+"/follow", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, resp = f.do(t, http.MethodPost, "/api/posts", alice, gin.H{"title": "Go", "content": "channels"})
	require.Equal(t, http.StatusOK, code, resp.Message)

	code, resp = f.do(t, http.MethodGet, "/api/profile/"+aliceID, "", nil)
	require.Equal(t, http.StatusOK, code)
	profile = resp.Data.(map[string]any)
	assert.Len(t, profile["posts"], 1)

	code, resp = f.do(t, http.MethodPost, "/api/users/"+aliceID+"/unfollow", bob, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp.Data.(map[string]any)["followers"])
}

func TestQuizRoutes(t *testing.T) {
	f := newAPIFixture(t)
	alice := f.register(t, "alice")

	quiz := gin.H{
		"title": "Go basics",
		"questions": []gin.H{
			{"text": "What does gofmt do?", "options": []string{"formats", "compiles"}, "answer": 0},
		},
	}
	code, _ := f.do(t, http.MethodPost, "/api/quizzes", "", quiz)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, resp := f.do(t, http.MethodPost, "/api/quizzes", alice, quiz)
	require.Equal(t, http.StatusOK, code, resp.Message)
	assert.Equal(t, "Go basics", resp.Data.(map[string]any)["title"])

	code, _ = f.do(t, http.MethodPost, "/api/quizzes", alice, gin.H{"title": "empty", "questions": []gin.H{}})
	assert.Equal(t, http.StatusBadRequest, code)

	code, resp = f.do(t, http.MethodGet, "/api/quizzes", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, resp.Data.([]any), 1)
}
