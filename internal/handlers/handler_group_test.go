package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/weberkan/mevatur-backend/internal/apperrors"
	"github.com/weberkan/mevatur-backend/internal/core/domain"
	portssvc "github.com/weberkan/mevatur-backend/internal/core/ports/services"
	"github.com/weberkan/mevatur-backend/internal/dto"
	"github.com/weberkan/mevatur-backend/internal/middleware"
	"github.com/weberkan/mevatur-backend/internal/utils"
)

// --- Mock GroupService ---
type MockGroupService struct {
	mock.Mock
}

func (m *MockGroupService) CreateGroup(ctx context.Context, req dto.CreateGroupRequest, creatorUserID string) (*domain.Group, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockGroupService) GetGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockGroupService) ListGroups(ctx context.Context, includeArchived bool) ([]domain.Group, error) {
	args := m.Called(ctx, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}
func (m *MockGroupService) UpdateGroup(ctx context.Context, groupID string, req dto.UpdateGroupRequest, updaterUserID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockGroupService) ArchiveGroup(ctx context.Context, groupID string, updaterUserID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockGroupService) DeleteGroup(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

var _ portssvc.GroupSvcFacade = (*MockGroupService)(nil)

// --- Test Suite ---
type GroupHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockGroupService *MockGroupService
	jwtSecret        string
}

func (suite *GroupHandlerTestSuite) generateTestToken(userID, role string) string {
	token, err := utils.GenerateJWT(userID, role, suite.jwtSecret, time.Hour, "mevatur-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *GroupHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret, "auth-token"))

	suite.mockGroupService = new(MockGroupService)

	v1 := suite.router.Group("/api/v1")
	registerGroupRoutes(v1, &portssvc.ServiceContainer{Group: suite.mockGroupService})
}

func (suite *GroupHandlerTestSuite) TestCreateGroup_Success() {
	userID := uuid.NewString()
	req := dto.CreateGroupRequest{
		Name:      "Ramazan Umresi",
		Type:      "Umre",
		StartDate: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		Capacity:  40,
		Currency:  "USD",
	}

	created := &domain.Group{
		GroupID:   uuid.NewString(),
		Name:      req.Name,
		Type:      domain.GroupTypeUmre,
		StartDate: req.StartDate,
		Capacity:  req.Capacity,
		Currency:  req.Currency,
		Status:    domain.GroupStatusActive,
	}
	suite.mockGroupService.On("CreateGroup", mock.Anything, mock.AnythingOfType("dto.CreateGroupRequest"), userID).Return(created, nil)

	body, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/groups", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, "user"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.GroupResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.GroupID, resp.GroupID)
	suite.Equal("Umre", resp.Type)
	suite.mockGroupService.AssertExpectations(suite.T())
}

func (suite *GroupHandlerTestSuite) TestCreateGroup_InvalidType() {
	userID := uuid.NewString()
	body := []byte(`{"name":"Test","type":"Kamp","startDate":"2026-05-10T00:00:00Z","capacity":10,"currency":"USD"}`)

	httpReq, _ := http.NewRequest(http.MethodPost, "/api/v1/groups", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, "user"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockGroupService.AssertNotCalled(suite.T(), "CreateGroup")
}

func (suite *GroupHandlerTestSuite) TestGetGroup_NotFound() {
	groupID := uuid.NewString()
	suite.mockGroupService.On("GetGroupByID", mock.Anything, groupID).Return(nil, apperrors.ErrNotFound)

	httpReq, _ := http.NewRequest(http.MethodGet, "/api/v1/groups/"+groupID, nil)
	httpReq.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), "user"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *GroupHandlerTestSuite) TestListGroups_IncludeArchived() {
	suite.mockGroupService.On("ListGroups", mock.Anything, true).Return([]domain.Group{}, nil)

	httpReq, _ := http.NewRequest(http.MethodGet, "/api/v1/groups?includeArchived=true", nil)
	httpReq.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), "user"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockGroupService.AssertExpectations(suite.T())
}

func (suite *GroupHandlerTestSuite) TestRoutes_RequireAuth() {
	httpReq, _ := http.NewRequest(http.MethodGet, "/api/v1/groups", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockGroupService.AssertNotCalled(suite.T(), "ListGroups")
}

func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}
