//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"espresso-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CompanyRepositoryTestSuite tests the CompanyRepository
type CompanyRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CompanyRepository
	widgets       *WidgetRepository
	branches      *BranchRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *CompanyRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewCompanyRepository(suite.baseTestSuite.DB)
	suite.widgets = NewWidgetRepository(suite.baseTestSuite.DB)
	suite.branches = NewBranchRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *CompanyRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CompanyRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CompanyRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new company
func (suite *CompanyRepositoryTestSuite) TestCreate() {
	company := suite.factories.Company.Create()

	err := suite.repo.Create(suite.ctx, company)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, company.ID)
	suite.NotZero(company.CreatedAt)

	stored, err := suite.repo.GetByID(suite.ctx, company.ID)
	suite.Require().NoError(err)
	suite.Equal(company.CompanyName, stored.CompanyName)
	suite.Nil(stored.UpdatedAt, "updated_at stays null until an explicit update")
}

// TestCreateDuplicateName tests that the unique index rejects a second company with the same name
func (suite *CompanyRepositoryTestSuite) TestCreateDuplicateName() {
	err := suite.repo.Create(suite.ctx, suite.factories.Company.WithName("Acme"))
	suite.Require().NoError(err)

	err = suite.repo.Create(suite.ctx, suite.factories.Company.WithName("Acme"))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByName tests retrieving a company by its name
func (suite *CompanyRepositoryTestSuite) TestGetByName() {
	company := suite.factories.Company.WithName("Globex")
	suite.Require().NoError(suite.repo.Create(suite.ctx, company))

	found, err := suite.repo.GetByName(suite.ctx, "Globex")

	suite.NoError(err)
	suite.Equal(company.ID, found.ID)
}

// TestGetByNameIsCaseSensitive tests that names match exactly
func (suite *CompanyRepositoryTestSuite) TestGetByNameIsCaseSensitive() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Company.WithName("Initech")))

	_, err := suite.repo.GetByName(suite.ctx, "initech")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByIDNotFound tests retrieving a non-existent company
func (suite *CompanyRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(suite.ctx, uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestGetAllWithWidgetsEmpty tests the tree of an empty store
func (suite *CompanyRepositoryTestSuite) TestGetAllWithWidgetsEmpty() {
	companies, err := suite.repo.GetAllWithWidgets(suite.ctx)

	suite.NoError(err)
	suite.Empty(companies)
}

// TestGetAllWithWidgets tests that widgets and branches are preloaded in creation order
func (suite *CompanyRepositoryTestSuite) TestGetAllWithWidgets() {
	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)

	first := suite.factories.Company.WithName("First")
	first.CreatedAt = base
	second := suite.factories.Company.WithName("Second")
	second.CreatedAt = base.Add(time.Minute)
	// Insert out of order to prove the ordering comes from created_at
	suite.Require().NoError(suite.repo.Create(suite.ctx, second))
	suite.Require().NoError(suite.repo.Create(suite.ctx, first))

	older := suite.factories.Widget.WithName(first.ID, "older")
	older.CreatedAt = base
	newer := suite.factories.Widget.WithName(first.ID, "newer")
	newer.CreatedAt = base.Add(time.Second)
	suite.Require().NoError(suite.widgets.Create(suite.ctx, newer))
	suite.Require().NoError(suite.widgets.Create(suite.ctx, older))

	branch := suite.factories.Branch.WithName(older.ID, "main")
	suite.Require().NoError(suite.branches.Create(suite.ctx, branch))

	companies, err := suite.repo.GetAllWithWidgets(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(companies, 2)
	suite.Equal("First", companies[0].CompanyName)
	suite.Equal("Second", companies[1].CompanyName)

	suite.Require().Len(companies[0].Widgets, 2)
	suite.Equal("older", companies[0].Widgets[0].WidgetName)
	suite.Equal("newer", companies[0].Widgets[1].WidgetName)
	suite.Require().Len(companies[0].Widgets[0].Branches, 1)
	suite.Equal("main", companies[0].Widgets[0].Branches[0].BranchName)
	suite.Empty(companies[0].Widgets[1].Branches)
	suite.Empty(companies[1].Widgets)
}

// TestCompanyRepositoryTestSuite runs the test suite
func TestCompanyRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyRepositoryTestSuite))
}
