package controllers_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jmcastillo/faculty-locator/internal/app/controllers"
	"github.com/jmcastillo/faculty-locator/internal/app/models"
	"github.com/jmcastillo/faculty-locator/internal/app/models/dto"
	"github.com/jmcastillo/faculty-locator/internal/app/routes"
	"github.com/jmcastillo/faculty-locator/internal/middleware"
	"github.com/jmcastillo/faculty-locator/internal/pkg/auth"
	"github.com/jmcastillo/faculty-locator/internal/pkg/flash"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Department), args.Error(1)
}

func (m *MockDirectoryService) DepartmentInstructors(ctx context.Context, departmentID int64) (*models.Department, []*models.Instructor, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Department), args.Get(1).([]*models.Instructor), args.Error(2)
}

type MockInstructorService struct {
	mock.Mock
}

func (m *MockInstructorService) Dashboard(ctx context.Context, userID int64) (*dto.DashboardResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardResponse), args.Error(1)
}

func (m *MockInstructorService) UpdateStatus(ctx context.Context, userID int64, status string) (models.Status, error) {
	args := m.Called(ctx, userID, status)
	return args.Get(0).(models.Status), args.Error(1)
}

func (m *MockInstructorService) AddSchedule(ctx context.Context, userID int64, req dto.ScheduleRequest) (models.ScheduleType, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(models.ScheduleType), args.Error(1)
}

type testDeps struct {
	router      *gin.Engine
	sessions    *auth.SessionService
	authSvc     *MockAuthService
	directory   *MockDirectoryService
	instructors *MockInstructorService
}

func setupRouter(t *testing.T) *testDeps {
	t.Helper()

	sessions := auth.NewSessionService(auth.SessionConfig{
		SecretKey:  "test-secret",
		Expiration: time.Hour,
		CookieName: "session",
		Issuer:     "faculty-locator-test",
	})

	authSvc := &MockAuthService{}
	directory := &MockDirectoryService{}
	instructors := &MockInstructorService{}

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewAuthController(authSvc, sessions, zerolog.Nop()),
		controllers.NewStudentController(directory),
		controllers.NewInstructorController(instructors),
		middleware.NewAuthMiddleware(sessions),
	)

	return &testDeps{
		router:      router,
		sessions:    sessions,
		authSvc:     authSvc,
		directory:   directory,
		instructors: instructors,
	}
}

// sessionCookie issues a valid session cookie for the given user
func sessionCookie(t *testing.T, sessions *auth.SessionService, user *models.User) *http.Cookie {
	t.Helper()
	token, err := sessions.Issue(user)
	require.NoError(t, err)
	return &http.Cookie{Name: sessions.CookieName(), Value: token}
}

func instructorUser() *models.User {
	return &models.User{ID: 7, Username: "jdoe", FullName: "John Doe", Role: models.RoleInstructor}
}

func studentUser() *models.User {
	return &models.User{ID: 11, Username: "student", FullName: "Juan Antonio", Role: models.RoleStudent}
}

// flashFrom decodes the flash cookie set on a response, if any
func flashFrom(t *testing.T, cookies []*http.Cookie) *flash.Message {
	t.Helper()
	for _, cookie := range cookies {
		if cookie.Name != "flash" || cookie.MaxAge < 0 {
			continue
		}
		payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
		require.NoError(t, err)
		var msg flash.Message
		require.NoError(t, json.Unmarshal(payload, &msg))
		return &msg
	}
	return nil
}
