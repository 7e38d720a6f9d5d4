// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/coupon"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/event"
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUID int64 = 2793

type fakeCartService struct {
	cart.Service
	items    []cart.Item
	listErr  error
	cleared  bool
	clearErr error
}

func (f *fakeCartService) List(ctx context.Context, uid int64) ([]cart.Item, error) {
	return f.items, f.listErr
}

func (f *fakeCartService) Clear(ctx context.Context, uid int64) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.cleared = true
	return nil
}

type fakeProductService struct {
	product.Service
	// deducted 记录每个SKU的净扣减量,恢复库存时回减
	deducted map[string]int64
	failSN   string
	failErr  error
}

func newFakeProductService() *fakeProductService {
	return &fakeProductService{deducted: map[string]int64{}}
}

func (f *fakeProductService) DeductStock(ctx context.Context, sn string, quantity int64) error {
	if sn == f.failSN {
		return f.failErr
	}
	f.deducted[sn] += quantity
	return nil
}

func (f *fakeProductService) RestoreStock(ctx context.Context, sn string, quantity int64) error {
	f.deducted[sn] -= quantity
	return nil
}

type fakeCouponService struct {
	coupon.Service
	quote      coupon.Quote
	quoteErr   error
	commitErr  error
	committed  bool
	restored   bool
	restoreErr error
}

func (f *fakeCouponService) Quote(ctx context.Context, uid, userCouponID, orderValue int64) (coupon.Quote, error) {
	return f.quote, f.quoteErr
}

func (f *fakeCouponService) CommitUsage(ctx context.Context, uid, userCouponID, orderID, discount int64) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeCouponService) RestoreUsage(ctx context.Context, uid, userCouponID, orderID int64) error {
	if f.restoreErr != nil {
		return f.restoreErr
	}
	f.restored = true
	return nil
}

type fakeOrderRepository struct {
	repository.OrderRepository
	nextID    int64
	created   []domain.Order
	deleted   []int64
	cancelled []int64
	markErr   error
	order     domain.Order
	findErr   error
}

func (f *fakeOrderRepository) CreateOrder(ctx context.Context, order domain.Order) (int64, error) {
	f.nextID++
	order.ID = f.nextID
	f.created = append(f.created, order)
	return order.ID, nil
}

func (f *fakeOrderRepository) DeleteOrder(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeOrderRepository) FindByUIDAndID(ctx context.Context, uid, id int64) (domain.Order, error) {
	return f.order, f.findErr
}

func (f *fakeOrderRepository) MarkCancelled(ctx context.Context, id int64, from domain.Status) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

type fakeProducer struct {
	evts []event.OrderEvent
}

func (f *fakeProducer) Produce(ctx context.Context, evt event.OrderEvent) error {
	f.evts = append(f.evts, evt)
	return nil
}

func cartItem(sn string, price, quantity, stock int64) cart.Item {
	return cart.Item{
		UID:      testUID,
		Quantity: quantity,
		SKU: cart.SKU{
			SN:      sn,
			SPUID:   1,
			Name:    "Classic Tee",
			Size:    "M",
			Price:   price,
			Stock:   stock,
			OnShelf: true,
		},
	}
}

type orderTestDeps struct {
	repo       *fakeOrderRepository
	cartSvc    *fakeCartService
	productSvc *fakeProductService
	couponSvc  *fakeCouponService
	producer   *fakeProducer
}

func newTestService(deps orderTestDeps) Service {
	return NewService(deps.repo, deps.cartSvc, deps.productSvc,
		deps.couponSvc, sequencenumber.NewGenerator(), deps.producer)
}

func TestService_CreateOrder(t *testing.T) {
	t.Run("购物车为空", func(t *testing.T) {
		deps := orderTestDeps{
			repo:       &fakeOrderRepository{},
			cartSvc:    &fakeCartService{},
			productSvc: newFakeProductService(),
			couponSvc:  &fakeCouponService{},
			producer:   &fakeProducer{},
		}
		_, err := newTestService(deps).CreateOrder(context.Background(), testUID, domain.Shipping{}, 0)
		assert.ErrorIs(t, err, ErrEmptyCart)
		// 不产生任何副作用
		assert.Empty(t, deps.repo.created)
		assert.Empty(t, deps.productSvc.deducted)
		assert.False(t, deps.cartSvc.cleared)
	})

	t.Run("不使用优惠券下单成功", func(t *testing.T) {
		deps := orderTestDeps{
			repo: &fakeOrderRepository{},
			cartSvc: &fakeCartService{items: []cart.Item{
				cartItem("SKU001", 25900, 2, 10),
				cartItem("SKU002", 49900, 1, 5),
			}},
			productSvc: newFakeProductService(),
			couponSvc:  &fakeCouponService{},
			producer:   &fakeProducer{},
		}
		order, err := newTestService(deps).CreateOrder(context.Background(), testUID, domain.Shipping{
			Fullname: "张三",
			Phone:    "13800001234",
			Address:  "北京市朝阳区",
		}, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(101700), order.TotalPrice)
		assert.Equal(t, int64(101700), order.PaymentPrice)
		assert.Zero(t, order.Discount)
		assert.Equal(t, domain.StatusPending, order.Status)
		assert.Len(t, order.SN, 32)
		assert.Equal(t, int64(2), deps.productSvc.deducted["SKU001"])
		assert.Equal(t, int64(1), deps.productSvc.deducted["SKU002"])
		assert.True(t, deps.cartSvc.cleared)
		require.Len(t, deps.producer.evts, 1)
		assert.Equal(t, event.ActionCreated, deps.producer.evts[0].Action)
		assert.Equal(t, order.PaymentPrice, deps.producer.evts[0].PaymentPrice)
	})

	t.Run("使用优惠券下单成功", func(t *testing.T) {
		deps := orderTestDeps{
			repo: &fakeOrderRepository{},
			cartSvc: &fakeCartService{items: []cart.Item{
				cartItem("SKU001", 250000, 2, 10),
			}},
			productSvc: newFakeProductService(),
			couponSvc: &fakeCouponService{quote: coupon.Quote{
				UserCouponID: 101,
				Discount:     40000,
				Payable:      460000,
			}},
			producer: &fakeProducer{},
		}
		order, err := newTestService(deps).CreateOrder(context.Background(), testUID, domain.Shipping{}, 101)
		require.NoError(t, err)
		assert.Equal(t, int64(500000), order.TotalPrice)
		assert.Equal(t, int64(40000), order.Discount)
		assert.Equal(t, int64(460000), order.PaymentPrice)
		assert.True(t, deps.couponSvc.committed)
	})

	t.Run("商品已下架", func(t *testing.T) {
		item := cartItem("SKU001", 25900, 1, 10)
		item.SKU.OnShelf = false
		deps := orderTestDeps{
			repo:       &fakeOrderRepository{},
			cartSvc:    &fakeCartService{items: []cart.Item{item}},
			productSvc: newFakeProductService(),
			couponSvc:  &fakeCouponService{},
			producer:   &fakeProducer{},
		}
		_, err := newTestService(deps).CreateOrder(context.Background(), testUID, domain.Shipping{}, 0)
		assert.ErrorIs(t, err, ErrSKUNotFound)
		assert.Empty(t, deps.repo.created)
	})

	t.Run("扣库存失败_已扣的要恢复", func(t *testing.T) {
		productSvc := newFakeProductService()
		productSvc.failSN = "SKU002"
		productSvc.failErr = product.ErrInsufficientStock
		deps := orderTestDeps{
			repo: &fakeOrderRepository{},
			cartSvc: &fakeCartService{items: []cart.Item{
				cartItem("SKU001", 25900, 2, 10),
				cartItem("SKU002", 49900, 5, 5),
			}},
			productSvc: productSvc,
			couponSvc:  &fakeCouponService{},
			producer:   &fakeProducer{},
		}
		_, err := newTestService(deps).CreateOrder(context.Background(), testUID, domain.Shipping{}, 0)
		assert.ErrorIs(t, err, ErrInsufficientStock)
		// SKU001 已扣,补偿后净扣减归零
		assert.Zero(t, deps.productSvc.deducted["SKU001"])
		// 刚创建的订单要删掉
		assert.Equal(t, []int64{1}, deps.repo.deleted)
		assert.False(t, deps.cartSvc.cleared)
		assert.Empty(t, deps.producer.evts)
	})

	t.Run("扣券失败_库存与订单全部回滚", func(t *testing.T) {
		deps := orderTestDeps{
			repo: &fakeOrderRepository{},
			cartSvc: &fakeCartService{items: []cart.Item{
				cartItem("SKU001", 250000, 2, 10),
			}},
			productSvc: newFakeProductService(),
			couponSvc: &fakeCouponService{
				quote:     coupon.Quote{UserCouponID: 101, Discount: 40000, Payable: 460000},
				commitErr: coupon.ErrInvalidCoupon,
			},
			producer: &fakeProducer{},
		}
		_, err := newTestService(deps).CreateOrder(context.Background(), testUID, domain.Shipping{}, 101)
		assert.ErrorIs(t, err, ErrInvalidCoupon)
		assert.Zero(t, deps.productSvc.deducted["SKU001"])
		assert.Equal(t, []int64{1}, deps.repo.deleted)
		assert.Empty(t, deps.producer.evts)
	})

	t.Run("试算失败_不创建订单", func(t *testing.T) {
		deps := orderTestDeps{
			repo: &fakeOrderRepository{},
			cartSvc: &fakeCartService{items: []cart.Item{
				cartItem("SKU001", 25900, 1, 10),
			}},
			productSvc: newFakeProductService(),
			couponSvc:  &fakeCouponService{quoteErr: coupon.ErrMinOrderNotMet},
			producer:   &fakeProducer{},
		}
		_, err := newTestService(deps).CreateOrder(context.Background(), testUID, domain.Shipping{}, 101)
		assert.ErrorIs(t, err, ErrMinOrderNotMet)
		assert.Empty(t, deps.repo.created)
		assert.Empty(t, deps.productSvc.deducted)
	})

	t.Run("清空购物车失败_订单依然成立", func(t *testing.T) {
		deps := orderTestDeps{
			repo: &fakeOrderRepository{},
			cartSvc: &fakeCartService{
				items:    []cart.Item{cartItem("SKU001", 25900, 1, 10)},
				clearErr: errors.New("mock error"),
			},
			productSvc: newFakeProductService(),
			couponSvc:  &fakeCouponService{},
			producer:   &fakeProducer{},
		}
		order, err := newTestService(deps).CreateOrder(context.Background(), testUID, domain.Shipping{}, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(25900), order.PaymentPrice)
		require.Len(t, deps.producer.evts, 1)
	})
}

func TestService_CancelOrder(t *testing.T) {
	pendingOrder := domain.Order{
		ID:           1001,
		SN:           "sn-1001",
		UID:          testUID,
		Status:       domain.StatusPending,
		UserCouponID: 101,
		Items: []domain.Item{
			{SKUSN: "SKU001", Quantity: 2},
			{SKUSN: "SKU002", Quantity: 1},
		},
	}

	t.Run("取消成功_恢复库存与优惠券", func(t *testing.T) {
		deps := orderTestDeps{
			repo:       &fakeOrderRepository{order: pendingOrder},
			cartSvc:    &fakeCartService{},
			productSvc: newFakeProductService(),
			couponSvc:  &fakeCouponService{},
			producer:   &fakeProducer{},
		}
		err := newTestService(deps).CancelOrder(context.Background(), testUID, 1001)
		require.NoError(t, err)
		assert.Equal(t, []int64{1001}, deps.repo.cancelled)
		assert.Equal(t, int64(-2), deps.productSvc.deducted["SKU001"])
		assert.Equal(t, int64(-1), deps.productSvc.deducted["SKU002"])
		assert.True(t, deps.couponSvc.restored)
		require.Len(t, deps.producer.evts, 1)
		assert.Equal(t, event.ActionCancelled, deps.producer.evts[0].Action)
	})

	t.Run("已发货的订单不能取消", func(t *testing.T) {
		shipped := pendingOrder
		shipped.Status = domain.StatusShipped
		deps := orderTestDeps{
			repo:       &fakeOrderRepository{order: shipped},
			cartSvc:    &fakeCartService{},
			productSvc: newFakeProductService(),
			couponSvc:  &fakeCouponService{},
			producer:   &fakeProducer{},
		}
		err := newTestService(deps).CancelOrder(context.Background(), testUID, 1001)
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Empty(t, deps.repo.cancelled)
		assert.Empty(t, deps.productSvc.deducted)
	})

	t.Run("并发取消输掉的一方", func(t *testing.T) {
		deps := orderTestDeps{
			repo:       &fakeOrderRepository{order: pendingOrder, markErr: repository.ErrStatusConflict},
			cartSvc:    &fakeCartService{},
			productSvc: newFakeProductService(),
			couponSvc:  &fakeCouponService{},
			producer:   &fakeProducer{},
		}
		err := newTestService(deps).CancelOrder(context.Background(), testUID, 1001)
		assert.ErrorIs(t, err, ErrInvalidStatus)
		// 状态没占住就不能动库存
		assert.Empty(t, deps.productSvc.deducted)
		assert.False(t, deps.couponSvc.restored)
	})

	t.Run("订单不存在", func(t *testing.T) {
		deps := orderTestDeps{
			repo:       &fakeOrderRepository{findErr: repository.ErrOrderNotFound},
			cartSvc:    &fakeCartService{},
			productSvc: newFakeProductService(),
			couponSvc:  &fakeCouponService{},
			producer:   &fakeProducer{},
		}
		err := newTestService(deps).CancelOrder(context.Background(), testUID, 1001)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_CloseExpiredOrders(t *testing.T) {
	t.Run("已流转的订单跳过", func(t *testing.T) {
		deps := orderTestDeps{
			repo:       &fakeOrderRepository{},
			cartSvc:    &fakeCartService{},
			productSvc: newFakeProductService(),
			couponSvc:  &fakeCouponService{},
			producer:   &fakeProducer{},
		}
		err := newTestService(deps).CloseExpiredOrders(context.Background(), []domain.Order{
			{ID: 1, Status: domain.StatusPending, Items: []domain.Item{{SKUSN: "SKU001", Quantity: 1}}},
			{ID: 2, Status: domain.StatusDelivered},
			{ID: 3, Status: domain.StatusPending},
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3}, deps.repo.cancelled)
	})
}
