//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"espresso-backend/internal/database/models"
	"espresso-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const otherArtifactID = "9c1d2f0e-5b7a-4c3e-8f21-6d4b0a9e7c13"

// BranchRepositoryTestSuite tests the BranchRepository
type BranchRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BranchRepository
	companies     *CompanyRepository
	widgets       *WidgetRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	widget        *models.Widget
}

// SetupSuite runs before all tests in the suite
func (suite *BranchRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewBranchRepository(suite.baseTestSuite.DB)
	suite.companies = NewCompanyRepository(suite.baseTestSuite.DB)
	suite.widgets = NewWidgetRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *BranchRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and creates the parent company and widget
func (suite *BranchRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	company := suite.factories.Company.Create()
	suite.Require().NoError(suite.companies.Create(suite.ctx, company))
	suite.widget = suite.factories.Widget.Create(company.ID)
	suite.Require().NoError(suite.widgets.Create(suite.ctx, suite.widget))
}

// TearDownTest runs after each test
func (suite *BranchRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a branch under a widget
func (suite *BranchRepositoryTestSuite) TestCreate() {
	branch := suite.factories.Branch.Create(suite.widget.ID)

	err := suite.repo.Create(suite.ctx, branch)

	suite.NoError(err)
	stored, err := suite.repo.GetByID(suite.ctx, suite.widget.ID, branch.ID)
	suite.Require().NoError(err)
	suite.Equal(branch.BranchName, stored.BranchName)
	suite.Equal(testutils.KnownArtifactID, stored.DeploymentArtifactID)
	suite.Nil(stored.UpdatedAt)
}

// TestCreateDuplicateName tests that a branch name is unique within a widget
func (suite *BranchRepositoryTestSuite) TestCreateDuplicateName() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Branch.WithName(suite.widget.ID, "main")))

	err := suite.repo.Create(suite.ctx, suite.factories.Branch.WithName(suite.widget.ID, "main"))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByName tests retrieving a branch by name within a widget
func (suite *BranchRepositoryTestSuite) TestGetByName() {
	branch := suite.factories.Branch.WithName(suite.widget.ID, "release")
	suite.Require().NoError(suite.repo.Create(suite.ctx, branch))

	found, err := suite.repo.GetByName(suite.ctx, suite.widget.ID, "release")
	suite.NoError(err)
	suite.Equal(branch.ID, found.ID)

	_, err = suite.repo.GetByName(suite.ctx, uuid.New(), "release")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdateDeploymentArtifact tests that only the artifact and updated_at change
func (suite *BranchRepositoryTestSuite) TestUpdateDeploymentArtifact() {
	branch := suite.factories.Branch.WithName(suite.widget.ID, "main")
	suite.Require().NoError(suite.repo.Create(suite.ctx, branch))
	now := time.Now().UTC().Truncate(time.Microsecond)

	err := suite.repo.UpdateDeploymentArtifact(suite.ctx, suite.widget.ID, branch.ID, otherArtifactID, now)

	suite.Require().NoError(err)
	stored, err := suite.repo.GetByID(suite.ctx, suite.widget.ID, branch.ID)
	suite.Require().NoError(err)
	suite.Equal(otherArtifactID, stored.DeploymentArtifactID)
	suite.Equal("main", stored.BranchName)
	suite.WithinDuration(branch.CreatedAt, stored.CreatedAt, time.Millisecond)
	suite.Require().NotNil(stored.UpdatedAt)
	suite.True(now.Equal(stored.UpdatedAt.UTC()))
}

// TestUpdateDeploymentArtifactNotFound tests updating a branch that does not exist
func (suite *BranchRepositoryTestSuite) TestUpdateDeploymentArtifactNotFound() {
	err := suite.repo.UpdateDeploymentArtifact(suite.ctx, suite.widget.ID, uuid.New(), otherArtifactID, time.Now())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdateDeploymentArtifactWrongWidget tests that the update is scoped to the parent widget
func (suite *BranchRepositoryTestSuite) TestUpdateDeploymentArtifactWrongWidget() {
	branch := suite.factories.Branch.Create(suite.widget.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, branch))

	err := suite.repo.UpdateDeploymentArtifact(suite.ctx, uuid.New(), branch.ID, otherArtifactID, time.Now())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	stored, err := suite.repo.GetByID(suite.ctx, suite.widget.ID, branch.ID)
	suite.Require().NoError(err)
	suite.Equal(testutils.KnownArtifactID, stored.DeploymentArtifactID)
}

// TestBranchRepositoryTestSuite runs the test suite
func TestBranchRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BranchRepositoryTestSuite))
}
