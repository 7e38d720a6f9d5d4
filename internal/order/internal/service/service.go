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
	"fmt"

	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/coupon"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/event"
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyCart         = errors.New("购物车为空")
	ErrOrderNotFound     = repository.ErrOrderNotFound
	ErrInsufficientStock = errors.New("商品库存不足")
	ErrSKUNotFound       = errors.New("商品不存在或已下架")
	ErrInvalidCoupon     = coupon.ErrInvalidCoupon
	ErrMinOrderNotMet    = coupon.ErrMinOrderNotMet
	ErrInvalidStatus     = errors.New("订单状态不允许该操作")
)

type Service interface {
	// CreateOrder 把购物车转换为一张已定价的订单:
	// 扣库存、扣券、清购物车按顺序执行,任何一步失败都会按相反顺序补偿,
	// 调用方观察不到半成品状态
	CreateOrder(ctx context.Context, uid int64, shipping domain.Shipping, userCouponID int64) (domain.Order, error)
	// CancelOrder 取消订单并恢复库存与优惠券用量
	CancelOrder(ctx context.Context, uid, orderID int64) error
	List(ctx context.Context, uid int64, offset, limit int, status domain.Status) ([]domain.Order, int64, error)
	Detail(ctx context.Context, uid, orderID int64) (domain.Order, error)
	// HasPurchased 判断用户是否有已确认及之后状态的订单包含该SPU
	HasPurchased(ctx context.Context, uid, spuID int64) (bool, error)

	FindExpiredPendingOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, int64, error)
	// CloseExpiredOrders 逐单走与用户取消完全相同的恢复路径
	CloseExpiredOrders(ctx context.Context, orders []domain.Order) error

	AdminList(ctx context.Context, offset, limit int, status domain.Status, keyword string) ([]domain.Order, int64, error)
	AdminDetail(ctx context.Context, orderID int64) (domain.Order, error)
	// AdminUpdateStatus 管理端状态变更,与用户取消共用同一状态机
	AdminUpdateStatus(ctx context.Context, orderID int64, target domain.Status) error
}

type service struct {
	repo        repository.OrderRepository
	cartSvc     cart.Service
	productSvc  product.Service
	couponSvc   coupon.Service
	snGenerator *sequencenumber.Generator
	producer    event.OrderEventProducer
	logger      *elog.Component
}

func NewService(repo repository.OrderRepository,
	cartSvc cart.Service,
	productSvc product.Service,
	couponSvc coupon.Service,
	snGenerator *sequencenumber.Generator,
	producer event.OrderEventProducer) Service {
	return &service{
		repo:        repo,
		cartSvc:     cartSvc,
		productSvc:  productSvc,
		couponSvc:   couponSvc,
		snGenerator: snGenerator,
		producer:    producer,
		logger:      elog.DefaultLogger,
	}
}

func (s *service) CreateOrder(ctx context.Context, uid int64, shipping domain.Shipping, userCouponID int64) (domain.Order, error) {
	cartItems, err := s.cartSvc.List(ctx, uid)
	if err != nil {
		return domain.Order{}, fmt.Errorf("读取购物车失败: %w", err)
	}
	if len(cartItems) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	items := make([]domain.Item, 0, len(cartItems))
	var totalPrice int64
	for _, ci := range cartItems {
		if !ci.SKU.OnShelf {
			return domain.Order{}, fmt.Errorf("%w: %s", ErrSKUNotFound, ci.SKU.SN)
		}
		if ci.Quantity > ci.SKU.Stock {
			return domain.Order{}, fmt.Errorf("%w: %s", ErrInsufficientStock, ci.SKU.SN)
		}
		items = append(items, domain.Item{
			SPUID:    ci.SKU.SPUID,
			SKUSN:    ci.SKU.SN,
			Name:     ci.SKU.Name,
			Size:     ci.SKU.Size,
			Image:    ci.SKU.Image,
			Price:    ci.SKU.Price,
			Quantity: ci.Quantity,
		})
		totalPrice += ci.SKU.Price * ci.Quantity
	}

	var discount int64
	paymentPrice := totalPrice
	if userCouponID > 0 {
		quote, er := s.couponSvc.Quote(ctx, uid, userCouponID, totalPrice)
		if er != nil {
			return domain.Order{}, er
		}
		discount, paymentPrice = quote.Discount, quote.Payable
	}

	sn, err := s.snGenerator.Generate(uid)
	if err != nil {
		return domain.Order{}, fmt.Errorf("生成订单序列号失败: %w", err)
	}
	order := domain.Order{
		SN:           sn,
		UID:          uid,
		Shipping:     shipping,
		TotalPrice:   totalPrice,
		PaymentPrice: paymentPrice,
		Discount:     discount,
		UserCouponID: userCouponID,
		Status:       domain.StatusPending,
		Items:        items,
	}
	order.ID, err = s.repo.CreateOrder(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("写入订单失败: %w", err)
	}

	// 订单已落库,进入副作用阶段:扣库存 → 扣券 → 清购物车。
	// 扣减本身是条件更新,并发下不会超卖,失败则按相反顺序补偿
	deducted := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if er := s.productSvc.DeductStock(ctx, it.SKUSN, it.Quantity); er != nil {
			s.compensate(ctx, order, deducted)
			switch {
			case errors.Is(er, product.ErrInsufficientStock):
				return domain.Order{}, fmt.Errorf("%w: %s", ErrInsufficientStock, it.SKUSN)
			case errors.Is(er, product.ErrSKUNotFound):
				return domain.Order{}, fmt.Errorf("%w: %s", ErrSKUNotFound, it.SKUSN)
			default:
				return domain.Order{}, er
			}
		}
		deducted = append(deducted, it)
	}

	if userCouponID > 0 {
		if er := s.couponSvc.CommitUsage(ctx, uid, userCouponID, order.ID, discount); er != nil {
			s.compensate(ctx, order, deducted)
			if errors.Is(er, coupon.ErrInvalidCoupon) {
				return domain.Order{}, ErrInvalidCoupon
			}
			return domain.Order{}, er
		}
	}

	if er := s.cartSvc.Clear(ctx, uid); er != nil {
		// 购物车未清空不影响订单成立,留给用户手动清理
		s.logger.Warn("清空购物车失败",
			elog.FieldErr(er),
			elog.Int64("uid", uid),
			elog.String("order_sn", sn))
	}

	s.produceEvent(ctx, order, event.ActionCreated)
	return order, nil
}

// compensate 撤销本次调用已产生的副作用并删除刚创建的订单,
// 失败的下单在任何查询中都不可见
func (s *service) compensate(ctx context.Context, order domain.Order, deducted []domain.Item) {
	for i := len(deducted) - 1; i >= 0; i-- {
		it := deducted[i]
		if err := s.productSvc.RestoreStock(ctx, it.SKUSN, it.Quantity); err != nil {
			s.logger.Error("补偿恢复库存失败",
				elog.FieldErr(err),
				elog.String("sku_sn", it.SKUSN),
				elog.Int64("quantity", it.Quantity))
		}
	}
	if err := s.repo.DeleteOrder(ctx, order.ID); err != nil {
		s.logger.Error("删除未完成订单失败",
			elog.FieldErr(err),
			elog.Int64("order_id", order.ID))
	}
}

func (s *service) CancelOrder(ctx context.Context, uid, orderID int64) error {
	order, err := s.repo.FindByUIDAndID(ctx, uid, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return s.cancel(ctx, order)
}

// cancel 先以条件更新占住状态流转,并发取消只有一方会成功,
// 然后恢复库存与优惠券用量
func (s *service) cancel(ctx context.Context, order domain.Order) error {
	if !order.Status.CanTransition(domain.StatusCancelled) {
		return ErrInvalidStatus
	}
	err := s.repo.MarkCancelled(ctx, order.ID, order.Status)
	if err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return ErrInvalidStatus
		}
		return err
	}
	for _, it := range order.Items {
		if er := s.productSvc.RestoreStock(ctx, it.SKUSN, it.Quantity); er != nil {
			s.logger.Error("取消订单恢复库存失败",
				elog.FieldErr(er),
				elog.String("sku_sn", it.SKUSN),
				elog.Int64("order_id", order.ID))
		}
	}
	if order.UserCouponID > 0 {
		if er := s.couponSvc.RestoreUsage(ctx, order.UID, order.UserCouponID, order.ID); er != nil {
			s.logger.Error("取消订单恢复优惠券用量失败",
				elog.FieldErr(er),
				elog.Int64("user_coupon_id", order.UserCouponID),
				elog.Int64("order_id", order.ID))
		}
	}
	s.produceEvent(ctx, order, event.ActionCancelled)
	return nil
}

func (s *service) produceEvent(ctx context.Context, order domain.Order, action string) {
	evt := event.OrderEvent{
		OrderID:      order.ID,
		SN:           order.SN,
		UID:          order.UID,
		Action:       action,
		PaymentPrice: order.PaymentPrice,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送订单事件失败",
			elog.FieldErr(err),
			elog.String("order_sn", order.SN),
			elog.String("action", action))
	}
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int, status domain.Status) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListByUID(ctx, uid, offset, limit, status)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUID(ctx, uid, status)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *service) Detail(ctx context.Context, uid, orderID int64) (domain.Order, error) {
	order, err := s.repo.FindByUIDAndID(ctx, uid, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	return order, nil
}

func (s *service) HasPurchased(ctx context.Context, uid, spuID int64) (bool, error) {
	return s.repo.HasPurchasedSPU(ctx, uid, spuID, []domain.Status{
		domain.StatusConfirmed,
		domain.StatusShipped,
		domain.StatusDelivered,
	})
}

func (s *service) FindExpiredPendingOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, int64, error) {
	return s.repo.FindExpiredPending(ctx, offset, limit, ctime)
}

func (s *service) CloseExpiredOrders(ctx context.Context, orders []domain.Order) error {
	for _, order := range orders {
		if err := s.cancel(ctx, order); err != nil {
			if errors.Is(err, ErrInvalidStatus) {
				continue
			}
			return err
		}
	}
	return nil
}
