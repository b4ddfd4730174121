package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

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

// CompanyServiceTestSuite defines the test suite for CompanyService
type CompanyServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	ctx             context.Context
	mockCompanyRepo *mocks.MockCompanyRepositoryInterface
	companyService  *service.CompanyService
}

// SetupTest sets up the test suite
func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.mockCompanyRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.companyService = service.NewCompanyService(suite.mockCompanyRepo, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *CompanyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CompanyServiceTestSuite) TestCreateCompany() {
	req := &service.CreateCompanyRequest{CompanyName: "Acme"}
	generatedID := uuid.New()

	suite.mockCompanyRepo.EXPECT().
		GetByName(gomock.Any(), "Acme").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockCompanyRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, company *models.Company) error {
			assert.Equal(suite.T(), "Acme", company.CompanyName)
			assert.Nil(suite.T(), company.UpdatedAt)
			company.ID = generatedID
			return nil
		}).
		Times(1)

	response, err := suite.companyService.Create(suite.ctx, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), generatedID.String(), response.CompanyID)
}

func (suite *CompanyServiceTestSuite) TestCreateCompanyValidationError() {
	response, err := suite.companyService.Create(suite.ctx, &service.CreateCompanyRequest{})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "company_name")
}

func (suite *CompanyServiceTestSuite) TestCreateCompanyDuplicateName() {
	existing := &models.Company{CompanyName: "Acme"}
	existing.ID = uuid.New()

	suite.mockCompanyRepo.EXPECT().
		GetByName(gomock.Any(), "Acme").
		Return(existing, nil).
		Times(1)

	response, err := suite.companyService.Create(suite.ctx, &service.CreateCompanyRequest{CompanyName: "Acme"})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyExists)
	assert.Equal(suite.T(), "Company name already exists", err.Error())
}

func (suite *CompanyServiceTestSuite) TestCreateCompanyLosesInsertRace() {
	suite.mockCompanyRepo.EXPECT().
		GetByName(gomock.Any(), "Acme").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockCompanyRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(gorm.ErrDuplicatedKey).
		Times(1)

	response, err := suite.companyService.Create(suite.ctx, &service.CreateCompanyRequest{CompanyName: "Acme"})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyExists)
}

func (suite *CompanyServiceTestSuite) TestCreateCompanyLookupFailure() {
	suite.mockCompanyRepo.EXPECT().
		GetByName(gomock.Any(), "Acme").
		Return(nil, errors.New("connection reset")).
		Times(1)

	response, err := suite.companyService.Create(suite.ctx, &service.CreateCompanyRequest{CompanyName: "Acme"})

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
	assert.False(suite.T(), apperrors.IsAlreadyExists(err))
	assert.Contains(suite.T(), err.Error(), "connection reset")
}

func (suite *CompanyServiceTestSuite) TestGetIDByName() {
	company := &models.Company{CompanyName: "Acme"}
	company.ID = uuid.New()

	suite.mockCompanyRepo.EXPECT().
		GetByName(gomock.Any(), "Acme").
		Return(company, nil).
		Times(1)

	id, err := suite.companyService.GetIDByName(suite.ctx, "Acme")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), company.ID.String(), id)
}

func (suite *CompanyServiceTestSuite) TestGetIDByNameNotFound() {
	suite.mockCompanyRepo.EXPECT().
		GetByName(gomock.Any(), "Missing").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	id, err := suite.companyService.GetIDByName(suite.ctx, "Missing")

	assert.Empty(suite.T(), id)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyNotFound)
}

func (suite *CompanyServiceTestSuite) TestGetTree() {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	updated := created.Add(time.Hour)

	branch := models.Branch{BranchName: "main", DeploymentArtifactID: "art-1"}
	branch.ID = uuid.New()
	branch.CreatedAt = created
	branch.UpdatedAt = &updated

	withBranches := models.Widget{WidgetName: "Widget A", Branches: []models.Branch{branch}}
	withBranches.ID = uuid.New()
	withBranches.CreatedAt = created

	empty := models.Widget{WidgetName: "Widget B"}
	empty.ID = uuid.New()

	acme := models.Company{CompanyName: "Acme", Widgets: []models.Widget{withBranches, empty}}
	acme.ID = uuid.New()
	lonely := models.Company{CompanyName: "Lonely"}
	lonely.ID = uuid.New()

	suite.mockCompanyRepo.EXPECT().
		GetAllWithWidgets(gomock.Any()).
		Return([]models.Company{acme, lonely}, nil).
		Times(1)

	tree, err := suite.companyService.GetTree(suite.ctx)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), tree, 2)
	assert.Equal(suite.T(), "Acme", tree[0].CompanyName)
	require.Len(suite.T(), tree[0].Widgets, 2)
	assert.Equal(suite.T(), "Widget A", tree[0].Widgets[0].WidgetName)
	require.Len(suite.T(), tree[0].Widgets[0].Branches, 1)
	assert.Equal(suite.T(), "main", tree[0].Widgets[0].Branches[0].BranchName)
	assert.Equal(suite.T(), "art-1", tree[0].Widgets[0].Branches[0].DeploymentArtifactID)
	assert.Equal(suite.T(), &updated, tree[0].Widgets[0].Branches[0].UpdatedAt)

	// Empty levels are empty lists, not nulls
	assert.NotNil(suite.T(), tree[0].Widgets[1].Branches)
	assert.Empty(suite.T(), tree[0].Widgets[1].Branches)
	assert.NotNil(suite.T(), tree[1].Widgets)
	assert.Empty(suite.T(), tree[1].Widgets)
}

func (suite *CompanyServiceTestSuite) TestGetTreeEmptyStore() {
	suite.mockCompanyRepo.EXPECT().
		GetAllWithWidgets(gomock.Any()).
		Return(nil, nil).
		Times(1)

	tree, err := suite.companyService.GetTree(suite.ctx)

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), tree)
	assert.Empty(suite.T(), tree)
}

func (suite *CompanyServiceTestSuite) TestGetTreeRepositoryError() {
	suite.mockCompanyRepo.EXPECT().
		GetAllWithWidgets(gomock.Any()).
		Return(nil, errors.New("timeout")).
		Times(1)

	tree, err := suite.companyService.GetTree(suite.ctx)

	assert.Nil(suite.T(), tree)
	assert.Error(suite.T(), err)
}

// TestCompanyServiceTestSuite runs the test suite
func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
