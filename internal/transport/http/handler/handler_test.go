package handler

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	appsvc "mural-api/internal/app"
	"mural-api/internal/model"
	"mural-api/internal/pkg/password"
	"mural-api/internal/repository"
)

// In-memory stores standing in for the repositories.

type stubUserStore struct {
	users  []*model.User
	nextID uint
}

func (s *stubUserStore) Create(user *model.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.users = append(s.users, user)
	return nil
}

func (s *stubUserStore) GetByEmail(email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserStore) List() ([]model.User, error) {
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

type stubMessageStore struct {
	msgs   map[uint]*model.Message
	nextID uint
}

func newStubMessageStore() *stubMessageStore {
	return &stubMessageStore{msgs: map[uint]*model.Message{}}
}

func (s *stubMessageStore) Create(msg *model.Message) error {
	s.nextID++
	msg.ID = s.nextID
	copied := *msg
	s.msgs[msg.ID] = &copied
	return nil
}

func (s *stubMessageStore) GetByID(id uint) (*model.Message, error) {
	msg, ok := s.msgs[id]
	if !ok {
		return nil, nil
	}
	copied := *msg
	return &copied, nil
}

func (s *stubMessageStore) Update(msg *model.Message) error {
	copied := *msg
	s.msgs[msg.ID] = &copied
	return nil
}

func (s *stubMessageStore) Delete(id uint) error {
	delete(s.msgs, id)
	return nil
}

func (s *stubMessageStore) ListDesc() ([]model.Message, error) {
	out := make([]model.Message, 0, len(s.msgs))
	for _, msg := range s.msgs {
		out = append(out, *msg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

const testSecret = "handler-test-secret"

type testEnv struct {
	router *gin.Engine
	msgs   *stubMessageStore
}

// newTestEnv wires the real services over in-memory stores under the
// production route table, minus the DB-backed health routes.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authService := appsvc.NewAuthService(&stubUserStore{}, password.Hasher{}, testSecret, 24*time.Hour)
	msgStore := newStubMessageStore()
	messageService := appsvc.NewMessageService(msgStore)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(authService)
	messageHandler := NewMessageHandler(messageService)

	router := gin.New()
	router.GET("/usuarios", userHandler.List)
	router.POST("/auth/cadastrar", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)
	router.GET("/mensagens", messageHandler.List)
	router.POST("/mensagens", messageHandler.Create)
	router.PUT("/mensagens/:id", messageHandler.Update)
	router.DELETE("/mensagens/:id", messageHandler.Delete)

	return &testEnv{router: router, msgs: msgStore}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
