package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *shipmentrepo.GormShipmentRepository
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.repository = shipmentrepo.NewGormShipmentRepository(database.DB)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAddGet_KeepsMemberOrder() {
	ctx := testContext(suite.T())
	members := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
	sh := suite.newShipment(members...)
	suite.Require().NoError(suite.repository.Add(ctx, sh))

	loaded, err := suite.repository.Get(ctx, sh.ID())

	suite.Require().NoError(err)
	suite.Equal(sh.Details(), loaded.Details())
	suite.Equal(shipment.Pending, loaded.Status())
	suite.Equal(members, loaded.OrderIDs())
	suite.WithinDuration(sh.CreatedAt(), loaded.CreatedAt(), time.Millisecond)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_OrderAlreadyInAnotherShipment() {
	ctx := testContext(suite.T())
	shared := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newShipment(shared)))

	err := suite.repository.Add(ctx, suite.newShipment(kernel.NewUUID(), shared))

	suite.Require().ErrorIs(err, errs.ErrNotShippable)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_StatusAndVersion() {
	ctx := testContext(suite.T())
	sh := suite.newShipment(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, sh))

	suite.Require().NoError(sh.Start())
	suite.Require().NoError(suite.repository.Update(ctx, sh))

	loaded, err := suite.repository.Get(ctx, sh.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.InTransit, loaded.Status())
	suite.Equal(1, loaded.Version())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_StaleCopy() {
	ctx := testContext(suite.T())
	sh := suite.newShipment(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, sh))

	stale, err := suite.repository.Get(ctx, sh.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(sh.Start())
	suite.Require().NoError(suite.repository.Update(ctx, sh))

	suite.Require().NoError(stale.Start())
	err = suite.repository.Update(ctx, stale)

	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_Unknown() {
	_, err := suite.repository.Get(testContext(suite.T()), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) newShipment(orderIDs ...kernel.UUID) *shipment.Shipment {
	sh, err := shipment.NewShipment(kernel.NewUUID(), shipment.Details{
		Name:        "North run 14",
		Origin:      "Main warehouse",
		Destination: "Portland hub",
		EmployeeID:  "emp-3",
		Type:        "Truck",
	}, orderIDs, time.Now())
	suite.Require().NoError(err)
	return sh
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
