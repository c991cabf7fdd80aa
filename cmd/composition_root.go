package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateAddProductToCartCommandHandler() commands.AddProductToCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddProductToCartCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveProductFromCartCommandHandler() commands.RemoveProductFromCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveProductFromCartCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceContainerCommandHandler() commands.PlaceContainerCommandHandler {
	return commands.NewPlaceContainerCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeContainerQuantityCommandHandler() commands.ChangeContainerQuantityCommandHandler {
	return commands.NewChangeContainerQuantityCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteContainerCommandHandler() commands.DeleteContainerCommandHandler {
	return commands.NewDeleteContainerCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateBulkPlaceContainerCommandHandler() commands.BulkPlaceContainerCommandHandler {
	return commands.NewBulkPlaceContainerCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkItemPackedCommandHandler() commands.MarkItemPackedCommandHandler {
	return commands.NewMarkItemPackedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderPackedCommandHandler() commands.MarkOrderPackedCommandHandler {
	return commands.NewMarkOrderPackedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetPackerOrdersQueryHandler() queries.GetPackerOrdersQueryHandler {
	return queries.NewGetPackerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSorterOrdersQueryHandler() queries.GetSorterOrdersQueryHandler {
	return queries.NewGetSorterOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShopUserOrdersQueryHandler() queries.GetShopUserOrdersQueryHandler {
	return queries.NewGetShopUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
