//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/coupon"
	"github.com/ecodeclub/eshop/internal/favorite"
	"github.com/ecodeclub/eshop/internal/notification"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/review"
	"github.com/ecodeclub/eshop/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(
		BaseSet,
		InitSession,
		product.InitModule,
		cart.InitModule,
		coupon.InitModule,
		order.InitModule,
		favorite.InitModule,
		review.InitModule,
		user.InitModule,
		notification.InitModule,
		wire.FieldsOf(new(*product.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*cart.Module), "Hdl"),
		wire.FieldsOf(new(*coupon.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*favorite.Module), "Hdl"),
		wire.FieldsOf(new(*review.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*notification.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*user.Module), "Svc", "Hdl", "AdminHdl"),
		initCloseExpiredOrdersJob,
		initCronJobs,
		initMQConsumers,
		initGinxServer,
		InitAdminServer,
		wire.Struct(new(App), "*"),
	)
	return new(App), nil
}
