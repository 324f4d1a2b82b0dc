package postgres_test

import (
	"database/sql"
	"testing"

	"github.com/go-testfixtures/testfixtures/v3"
	"github.com/humanface/humanface/pkg/kyc_server/auth"
	"github.com/humanface/humanface/pkg/kyc_server/storage"
	"github.com/humanface/humanface/pkg/kyc_server/storage/postgres"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/suite"
)

type EnterpriseStorageTestSuite struct {
	BaseTestSuite
	storage auth.EnterpriseStorage
}

func TestEnterpriseStorage(t *testing.T) {
	suite.Run(t, new(EnterpriseStorageTestSuite))
}

func (s *EnterpriseStorageTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.storage = postgres.NewStorageWithPool(s.pgPool)
}

func (s *EnterpriseStorageTestSuite) TearDownTest() {
	s.BaseTestSuite.TearDownTest()
}

func (s *EnterpriseStorageTestSuite) loadFixtures() {
	db := stdlib.OpenDBFromPool(s.pgPool)
	fixtures, err := testfixtures.New(
		testfixtures.Database(db),
		testfixtures.Dialect("postgres"),
		testfixtures.Directory("testdata/enterprise"),
	)
	s.Require().NoError(err)
	s.Require().NoError(fixtures.Load())
}

func (s *EnterpriseStorageTestSuite) TestStoreEnterprise() {
	query := `SELECT enterprise FROM enterprise WHERE id = $1 AND "version" = $2`
	historyQuery := `SELECT enterprise FROM enterprise_history WHERE id = $1 AND "version" = $2`
	enterpriseFromDB := auth.Enterprise{}

	enterprise := auth.Enterprise{
		ID:        "ent_store_test",
		Version:   1,
		Name:      "Acme Corp",
		LogoUrl:   "https://acme.example.com/logo.png",
		CreatedAt: 123,
		CreatedBy: "creator",
		UpdatedAt: 123,
		UpdatedBy: "creator",
	}
	newVersionEnterprise := enterprise
	newVersionEnterprise.Version += 1
	newVersionEnterprise.Name = "Acme Corp Renamed"
	newVersionEnterprise.UpdatedAt = 456
	newVersionEnterprise.UpdatedBy = "updater"

	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	s.Require().NoError(s.storage.StoreEnterprise(ctx, tx, enterprise))
	s.Require().NoError(tx.QueryRow(ctx, query, enterprise.ID, enterprise.Version).Scan(&enterpriseFromDB))
	s.Assert().Equal(enterprise, enterpriseFromDB)
	s.Require().NoError(tx.QueryRow(ctx, historyQuery, enterprise.ID, enterprise.Version).Scan(&enterpriseFromDB))
	s.Assert().Equal(enterprise, enterpriseFromDB)

	s.Require().NoError(s.storage.StoreEnterprise(ctx, tx, newVersionEnterprise))
	s.Require().NoError(tx.QueryRow(ctx, query, newVersionEnterprise.ID, newVersionEnterprise.Version).Scan(&enterpriseFromDB))
	s.Assert().Equal(newVersionEnterprise, enterpriseFromDB)
	s.Require().NoError(tx.QueryRow(ctx, historyQuery, newVersionEnterprise.ID, newVersionEnterprise.Version).Scan(&enterpriseFromDB))
	s.Assert().Equal(newVersionEnterprise, enterpriseFromDB)

	s.Require().NoError(tx.Commit(ctx))
}

func (s *EnterpriseStorageTestSuite) TestListEnterprise() {
	s.loadFixtures()

	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	// Offset and Limit.
	result, err := s.storage.ListEnterprise(ctx, tx, auth.ListEnterpriseRequest{Offset: 1, Limit: 1})
	s.Require().NoError(err)
	s.Assert().Equal(2, result.Total)
	s.Require().Len(result.Records, 1)
	s.Assert().Equal("ent_2", result.Records[0].ID)

	// Filter by ID.
	result, err = s.storage.ListEnterprise(ctx, tx, auth.ListEnterpriseRequest{Limit: 1, IDs: []string{"ent_1"}})
	s.Require().NoError(err)
	s.Assert().Equal(1, result.Total)
	s.Require().Len(result.Records, 1)
	s.Assert().Equal("ent_1", result.Records[0].ID)
	s.Assert().Equal("Acme Corp", result.Records[0].Name)
	s.Assert().Equal("https://acme.example.com/logo.png", result.Records[0].LogoUrl)

	result, err = s.storage.ListEnterprise(ctx, tx, auth.ListEnterpriseRequest{Limit: 1, IDs: []string{"ent_unknown"}})
	s.Require().NoError(err)
	s.Assert().Equal(0, result.Total)
	s.Assert().Empty(result.Records)
}
