package cmd

import (
	"context"
	"log/slog"

	"fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/metrics"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/palletrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	metrics    *metrics.Registry
	producer   *kafka.OrderChangedProducer
	uowFactory *postgres.GormUnitOfWorkFactory
	gate       *access.Gate
	allocator  services.PalletAllocator
	aggregator services.ShipmentAggregator
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (*CompositionRoot, error) {
	logger := logging.New(logging.Config{
		ServiceName: "fulfillment",
		Environment: config.Environment,
		Level:       config.LogLevel,
	})
	registry := metrics.NewRegistry()

	publishers := []ports.OrderEventPublisher{registry}
	var producer *kafka.OrderChangedProducer
	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		p, err := kafka.NewOrderChangedProducer(brokers, config.KafkaOrderChangedTopic)
		if err != nil {
			return nil, err
		}
		producer = p
		publishers = append(publishers, producer)
	} else {
		logger.Warn("KAFKA_HOST is not set, order status changes will not be published")
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		metrics:    registry,
		producer:   producer,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger, publishers...).
			WithPublishTimeout(config.EventPublishTimeout),
		gate:       access.NewGate(),
		allocator:  services.NewPalletAllocator(),
		aggregator: services.NewShipmentAggregator(),
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// Close releases the resources the root owns. The database is closed by the caller.
func (c *CompositionRoot) Close() error {
	if c.producer != nil {
		return c.producer.Close()
	}
	return nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) allocationUoWFactory() commands.AllocationUoWFactory {
	return FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateEditLineItemsCommandHandler() commands.EditLineItemsCommandHandler {
	return commands.NewEditLineItemsCommandHandler(c.orderUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.allocationUoWFactory(), c.gate, c.allocator)
}

func (c *CompositionRoot) CreateAllocateLineItemCommandHandler() commands.AllocateLineItemCommandHandler {
	return commands.NewAllocateLineItemCommandHandler(c.allocationUoWFactory(), c.gate, c.allocator)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.gate, c.aggregator)
}

func (c *CompositionRoot) CreateShipmentCommandHandler() commands.ShipmentCommandHandler {
	return commands.NewShipmentCommandHandler(c.shipmentUoWFactory(), c.gate, c.aggregator)
}

func (c *CompositionRoot) CreatePurgeAllocationMarkersCommandHandler() commands.PurgeAllocationMarkersCommandHandler {
	return commands.NewPurgeAllocationMarkersCommandHandler(c.allocationUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersByStatusQueryHandler() queries.ListOrdersByStatusQueryHandler {
	return queries.NewListOrdersByStatusQueryHandler(c.gormDB, c.gate)
}

func (c *CompositionRoot) CreateGetProductLocationsQueryHandler() queries.GetProductLocationsQueryHandler {
	return queries.NewGetProductLocationsQueryHandler(palletrepo.NewGormPalletRepository(c.gormDB), c.gate, c.allocator)
}

func (c *CompositionRoot) CreateListEmployeeShipmentsQueryHandler() queries.ListEmployeeShipmentsQueryHandler {
	return queries.NewListEmployeeShipmentsQueryHandler(c.gormDB, c.gate)
}

func (c *CompositionRoot) CreateEcho() *echo.Echo {
	server := http.NewServer(http.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		EditLineItems:     c.CreateEditLineItemsCommandHandler(),
		TransitionOrder:   c.CreateTransitionOrderCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		AllocateLineItem:  c.CreateAllocateLineItemCommandHandler(),
		CreateShipment:    c.CreateCreateShipmentCommandHandler(),
		Shipments:         c.CreateShipmentCommandHandler(),
		ListOrders:        c.CreateListOrdersByStatusQueryHandler(),
		ProductLocations:  c.CreateGetProductLocationsQueryHandler(),
		EmployeeShipments: c.CreateListEmployeeShipmentsQueryHandler(),
	})
	return http.NewEcho(server, c.logger, c.metrics, c.pingDatabase)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	purgeJob := jobs.NewMarkerPurgeJob(
		c.CreatePurgeAllocationMarkersCommandHandler(),
		c.metrics,
		c.config.MarkerPurgeSchedule,
		c.config.MarkerRetention,
		c.logger,
	)
	return jobs.NewJobManager(purgeJob)
}

func (c *CompositionRoot) pingDatabase(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
