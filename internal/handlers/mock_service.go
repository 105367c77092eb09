package handlers

import (
	"context"

	"blog_service/internal/models"
	"blog_service/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID  int
	signUpErr error
	loginID   int
	loginErr  error

	signUpCalls int
	loginCalls  int

	lastSignUpUsername string
	lastSignUpEmail    string
	lastSignUpPassword string
	lastLoginUsername  string
	lastLoginPassword  string
}

func (m *mockAuth) SignUp(ctx context.Context, username, email, password string) (int, error) {
	m.signUpCalls++
	m.lastSignUpUsername = username
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) Login(ctx context.Context, username, password string) (int, error) {
	m.loginCalls++
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginID, m.loginErr
}

type mockUsers struct {
	getUser   *models.User
	getErr    error
	listResp  []models.User
	listErr   error
	updateErr error
	deleteErr error

	lastGetID    int
	lastUpdateID int
	lastUpdate   service.UserUpdate
	lastDeleteID int
	deleteCalls  int
}

func (m *mockUsers) GetByID(ctx context.Context, id int) (*models.User, error) {
	m.lastGetID = id
	return m.getUser, m.getErr
}

func (m *mockUsers) List(ctx context.Context) ([]models.User, error) {
	return m.listResp, m.listErr
}

func (m *mockUsers) Update(ctx context.Context, id int, upd service.UserUpdate) error {
	m.lastUpdateID = id
	m.lastUpdate = upd
	return m.updateErr
}

func (m *mockUsers) Delete(ctx context.Context, id int) error {
	m.deleteCalls++
	m.lastDeleteID = id
	return m.deleteErr
}

type mockPosts struct {
	createID  int
	createErr error
	getPost   *models.Post
	getErr    error
	listResp  []models.Post
	listErr   error
	updateErr error
	deleteErr error

	createCalls int
	deleteCalls int

	lastCreateTitle   string
	lastCreateContent string
	lastGetID         int
	lastUpdateID      int
	lastUpdateTitle   string
	lastUpdateContent string
	lastDeleteID      int
}

func (m *mockPosts) Create(ctx context.Context, title, content string) (int, error) {
	m.createCalls++
	m.lastCreateTitle = title
	m.lastCreateContent = content
	return m.createID, m.createErr
}

func (m *mockPosts) GetByID(ctx context.Context, id int) (*models.Post, error) {
	m.lastGetID = id
	return m.getPost, m.getErr
}

func (m *mockPosts) List(ctx context.Context) ([]models.Post, error) {
	return m.listResp, m.listErr
}

func (m *mockPosts) Update(ctx context.Context, id int, title, content string) error {
	m.lastUpdateID = id
	m.lastUpdateTitle = title
	m.lastUpdateContent = content
	return m.updateErr
}

func (m *mockPosts) Delete(ctx context.Context, id int) error {
	m.deleteCalls++
	m.lastDeleteID = id
	return m.deleteErr
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
