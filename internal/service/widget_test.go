package service_test

import (
	"context"
	"errors"
	"testing"

	"espresso-backend/internal/database/models"
	apperrors "espresso-backend/internal/errors"
	"espresso-backend/internal/mocks"
	"espresso-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// WidgetServiceTestSuite defines the test suite for WidgetService
type WidgetServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	ctx             context.Context
	mockWidgetRepo  *mocks.MockWidgetRepositoryInterface
	mockCompanyRepo *mocks.MockCompanyRepositoryInterface
	widgetService   *service.WidgetService
	company         *models.Company
}

// SetupTest sets up the test suite
func (suite *WidgetServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.mockWidgetRepo = mocks.NewMockWidgetRepositoryInterface(suite.ctrl)
	suite.mockCompanyRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.widgetService = service.NewWidgetService(suite.mockWidgetRepo, suite.mockCompanyRepo, service.NewValidator())

	suite.company = &models.Company{CompanyName: "Acme"}
	suite.company.ID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *WidgetServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WidgetServiceTestSuite) expectCompany() {
	suite.mockCompanyRepo.EXPECT().
		GetByID(gomock.Any(), suite.company.ID).
		Return(suite.company, nil).
		Times(1)
}

func (suite *WidgetServiceTestSuite) TestCreateWidget() {
	generatedID := uuid.New()
	suite.expectCompany()

	suite.mockWidgetRepo.EXPECT().
		GetByName(gomock.Any(), suite.company.ID, "Widget A").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockWidgetRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, widget *models.Widget) error {
			assert.Equal(suite.T(), suite.company.ID, widget.CompanyID)
			assert.Equal(suite.T(), "Widget A", widget.WidgetName)
			widget.ID = generatedID
			return nil
		}).
		Times(1)

	response, err := suite.widgetService.Create(suite.ctx, &service.CreateWidgetRequest{
		CompanyID:  suite.company.ID.String(),
		WidgetName: "Widget A",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), generatedID.String(), response.WidgetID)
}

func (suite *WidgetServiceTestSuite) TestCreateWidgetCompanyNotFound() {
	missing := uuid.New()
	suite.mockCompanyRepo.EXPECT().
		GetByID(gomock.Any(), missing).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.widgetService.Create(suite.ctx, &service.CreateWidgetRequest{
		CompanyID:  missing.String(),
		WidgetName: "Widget A",
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyNotFound)
	assert.Equal(suite.T(), "Company not found", err.Error())
}

func (suite *WidgetServiceTestSuite) TestCreateWidgetMalformedCompanyID() {
	// No repository call is expected: the id cannot address any company
	response, err := suite.widgetService.Create(suite.ctx, &service.CreateWidgetRequest{
		CompanyID:  "not-a-uuid",
		WidgetName: "Widget A",
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyNotFound)
}

func (suite *WidgetServiceTestSuite) TestCreateWidgetDuplicateName() {
	existing := &models.Widget{CompanyID: suite.company.ID, WidgetName: "Widget A"}
	existing.ID = uuid.New()
	suite.expectCompany()

	suite.mockWidgetRepo.EXPECT().
		GetByName(gomock.Any(), suite.company.ID, "Widget A").
		Return(existing, nil).
		Times(1)

	response, err := suite.widgetService.Create(suite.ctx, &service.CreateWidgetRequest{
		CompanyID:  suite.company.ID.String(),
		WidgetName: "Widget A",
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWidgetExists)
	assert.Equal(suite.T(), "Widget name already exists", err.Error())
}

func (suite *WidgetServiceTestSuite) TestCreateWidgetLosesInsertRace() {
	suite.expectCompany()

	suite.mockWidgetRepo.EXPECT().
		GetByName(gomock.Any(), suite.company.ID, "Widget A").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockWidgetRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(gorm.ErrDuplicatedKey).
		Times(1)

	response, err := suite.widgetService.Create(suite.ctx, &service.CreateWidgetRequest{
		CompanyID:  suite.company.ID.String(),
		WidgetName: "Widget A",
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWidgetExists)
}

func (suite *WidgetServiceTestSuite) TestCreateWidgetValidationError() {
	response, err := suite.widgetService.Create(suite.ctx, &service.CreateWidgetRequest{
		CompanyID: suite.company.ID.String(),
	})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "widget_name")
}

func (suite *WidgetServiceTestSuite) TestCreateWidgetCompanyLookupFailure() {
	suite.mockCompanyRepo.EXPECT().
		GetByID(gomock.Any(), suite.company.ID).
		Return(nil, errors.New("deadline exceeded")).
		Times(1)

	response, err := suite.widgetService.Create(suite.ctx, &service.CreateWidgetRequest{
		CompanyID:  suite.company.ID.String(),
		WidgetName: "Widget A",
	})

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
	assert.False(suite.T(), apperrors.IsNotFound(err))
}

func (suite *WidgetServiceTestSuite) TestGetIDByName() {
	widget := &models.Widget{CompanyID: suite.company.ID, WidgetName: "Widget A"}
	widget.ID = uuid.New()
	suite.expectCompany()

	suite.mockWidgetRepo.EXPECT().
		GetByName(gomock.Any(), suite.company.ID, "Widget A").
		Return(widget, nil).
		Times(1)

	id, err := suite.widgetService.GetIDByName(suite.ctx, suite.company.ID.String(), "Widget A")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), widget.ID.String(), id)
}

func (suite *WidgetServiceTestSuite) TestGetIDByNameWidgetNotFound() {
	suite.expectCompany()

	suite.mockWidgetRepo.EXPECT().
		GetByName(gomock.Any(), suite.company.ID, "Missing").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	id, err := suite.widgetService.GetIDByName(suite.ctx, suite.company.ID.String(), "Missing")

	assert.Empty(suite.T(), id)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWidgetNotFound)
}

// TestWidgetServiceTestSuite runs the test suite
func TestWidgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WidgetServiceTestSuite))
}
