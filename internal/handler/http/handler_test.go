package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"

	"todokeeper/internal/logger"
	"todokeeper/internal/service"
	"todokeeper/internal/utils"
	"todokeeper/models"
)

// ---- Mock: service.AuthService ----

type mockAuthService struct {
	signupFn      func(ctx context.Context, req models.SignupRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	getUserFn     func(ctx context.Context, userID string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	if m.signupFn != nil {
		return m.signupFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) GetUser(ctx context.Context, userID string) (models.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "stub-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: "user-1"}, nil
}

func (m *mockAuthService) TokenExpirySeconds() int64 {
	return 3600
}

// ---- Mock: service.TaskService ----

type mockTaskService struct {
	createTaskFn func(ctx context.Context, requesterID string, req models.CreateTaskRequest) (models.Task, error)
	listTasksFn  func(ctx context.Context, requesterID string, completed *bool) ([]models.Task, error)
	getTaskFn    func(ctx context.Context, requesterID string, taskID int64) (models.Task, error)
	updateTaskFn func(ctx context.Context, requesterID string, taskID int64, req models.UpdateTaskRequest) (models.Task, error)
	toggleFn     func(ctx context.Context, requesterID string, taskID int64) (models.Task, error)
	deleteTaskFn func(ctx context.Context, requesterID string, taskID int64) error
}

func (m *mockTaskService) CreateTask(ctx context.Context, requesterID string, req models.CreateTaskRequest) (models.Task, error) {
	if m.createTaskFn != nil {
		return m.createTaskFn(ctx, requesterID, req)
	}
	return models.Task{TaskID: 1, UserID: requesterID, Title: req.Title}, nil
}

func (m *mockTaskService) ListTasks(ctx context.Context, requesterID string, completed *bool) ([]models.Task, error) {
	if m.listTasksFn != nil {
		return m.listTasksFn(ctx, requesterID, completed)
	}
	return nil, nil
}

func (m *mockTaskService) GetTask(ctx context.Context, requesterID string, taskID int64) (models.Task, error) {
	if m.getTaskFn != nil {
		return m.getTaskFn(ctx, requesterID, taskID)
	}
	return models.Task{TaskID: taskID, UserID: requesterID}, nil
}

func (m *mockTaskService) UpdateTask(ctx context.Context, requesterID string, taskID int64, req models.UpdateTaskRequest) (models.Task, error) {
	if m.updateTaskFn != nil {
		return m.updateTaskFn(ctx, requesterID, taskID, req)
	}
	return models.Task{TaskID: taskID, UserID: requesterID}, nil
}

func (m *mockTaskService) ToggleTaskCompletion(ctx context.Context, requesterID string, taskID int64) (models.Task, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, requesterID, taskID)
	}
	return models.Task{TaskID: taskID, UserID: requesterID, Completed: true}, nil
}

func (m *mockTaskService) DeleteTask(ctx context.Context, requesterID string, taskID int64) error {
	if m.deleteTaskFn != nil {
		return m.deleteTaskFn(ctx, requesterID, taskID)
	}
	return nil
}

// ---- Mock: Pinger ----

type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(_ context.Context) error {
	return m.err
}

// ---- Helpers ----

var errBoom = errors.New("boom")

func newTestHandler(authSvc service.AuthService, taskSvc service.TaskService) *Handler {
	if authSvc == nil {
		authSvc = &mockAuthService{}
	}
	if taskSvc == nil {
		taskSvc = &mockTaskService{}
	}
	return NewHandler(&service.Services{
		AuthService: authSvc,
		TaskService: taskSvc,
	}, &mockPinger{}, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context so handlers
// called without the full middleware chain stay silent.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// serveVia routes the request through the full router built by Init, so URL
// parameters and middleware behave as in production.
func serveVia(h *Handler, method, target, authHeader string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// asUser returns the request with an authenticated identity and a nop logger
// in its context, mirroring what the middleware chain provides.
func asUser(r *http.Request, userID string) *http.Request {
	r = injectNopLogger(r)
	return r.WithContext(context.WithValue(r.Context(), utils.UserIDCtxKey, userID))
}
