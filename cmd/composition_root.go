package cmd

import (
	"log/slog"

	"kirana/internal/adapters/out/billing"
	"kirana/internal/adapters/out/csvstore"
	"kirana/internal/adapters/out/postgres"
	"kirana/internal/core/application/usecases/commands"
	"kirana/internal/core/application/usecases/queries"
	"kirana/internal/core/domain/services"
	"kirana/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	views      ports.OrderViews
	catalog    services.PriceCatalog
	renderer   ports.BillRenderer
	archive    ports.BillArchive
}

// NewCompositionRoot wires the storage driver selected by the configuration.
// gormDB may be nil when the flat-file driver is configured.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		config:  config,
		logger:  logger,
		catalog: services.NewPriceCatalog(config.ParseCatalog()),
		renderer: billing.NewTextBillRenderer(billing.StoreInfo{
			Name:       config.StoreName,
			Address:    config.StoreAddress,
			Phone:      config.StorePhone,
			Proprietor: config.StoreProprietor,
		}),
		archive: billing.NewDirBillArchive(config.BillsDir),
	}

	if config.StorageDriver == StorageDriverCSV {
		store := csvstore.NewStore(config.OrdersFile, config.OrderItemsFile, logger)
		root.uowFactory = store
		root.views = store
		return root
	}

	root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	root.views = postgres.NewGormOrderViews(gormDB)
	return root
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.orderUoWFactory(), c.catalog)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.renderer, c.archive, c.logger)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.views)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.views)
}

func (c *CompositionRoot) CreateGetBillQueryHandler() queries.GetBillQueryHandler {
	return queries.NewGetBillQueryHandler(c.views, c.renderer)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
