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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/repository/dao"
)

var (
	ErrOrderNotFound  = dao.ErrOrderNotFound
	ErrStatusConflict = dao.ErrStatusConflict
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (int64, error)
	// FindByUIDAndID 只返回属于该用户的订单,跨用户访问表现为订单不存在
	FindByUIDAndID(ctx context.Context, uid, id int64) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int, status domain.Status) ([]domain.Order, error)
	CountByUID(ctx context.Context, uid int64, status domain.Status) (int64, error)
	List(ctx context.Context, offset, limit int, status domain.Status, keyword string) ([]domain.Order, error)
	Count(ctx context.Context, status domain.Status, keyword string) (int64, error)
	// DeleteOrder 仅供下单补偿路径使用
	DeleteOrder(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, from, to domain.Status) error
	MarkCancelled(ctx context.Context, id int64, from domain.Status) error
	FindExpiredPending(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, int64, error)
	HasPurchasedSPU(ctx context.Context, uid, spuID int64, statuses []domain.Status) (bool, error)
}

type orderRepository struct {
	dao dao.OrderDAO
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (int64, error) {
	items := slice.Map(order.Items, func(idx int, src domain.Item) dao.OrderItem {
		return r.toItemEntity(src)
	})
	return r.dao.CreateOrder(ctx, r.toEntity(order), items)
}

func (r *orderRepository) FindByUIDAndID(ctx context.Context, uid, id int64) (domain.Order, error) {
	o, err := r.dao.FindByUIDAndID(ctx, uid, id)
	if err != nil {
		return domain.Order{}, err
	}
	return r.assemble(ctx, o)
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return r.assemble(ctx, o)
}

func (r *orderRepository) assemble(ctx context.Context, o dao.Order) (domain.Order, error) {
	items, err := r.dao.FindItemsByOrderID(ctx, o.Id)
	if err != nil {
		return domain.Order{}, err
	}
	res := r.toDomain(o)
	res.Items = slice.Map(items, func(idx int, src dao.OrderItem) domain.Item {
		return r.toItemDomain(src)
	})
	return res, nil
}

func (r *orderRepository) ListByUID(ctx context.Context, uid int64, offset, limit int, status domain.Status) ([]domain.Order, error) {
	os, err := r.dao.ListByUID(ctx, uid, offset, limit, status.ToUint8())
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) CountByUID(ctx context.Context, uid int64, status domain.Status) (int64, error) {
	return r.dao.CountByUID(ctx, uid, status.ToUint8())
}

func (r *orderRepository) List(ctx context.Context, offset, limit int, status domain.Status, keyword string) ([]domain.Order, error) {
	os, err := r.dao.List(ctx, offset, limit, status.ToUint8(), keyword)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) Count(ctx context.Context, status domain.Status, keyword string) (int64, error) {
	return r.dao.Count(ctx, status.ToUint8(), keyword)
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id int64) error {
	return r.dao.DeleteOrder(ctx, id)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, from.ToUint8(), to.ToUint8())
}

func (r *orderRepository) MarkCancelled(ctx context.Context, id int64, from domain.Status) error {
	return r.dao.MarkCancelled(ctx, id, from.ToUint8())
}

func (r *orderRepository) FindExpiredPending(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, int64, error) {
	os, err := r.dao.FindExpiredPending(ctx, offset, limit, ctime)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.dao.CountExpiredPending(ctx, ctime)
	if err != nil {
		return nil, 0, err
	}
	res := make([]domain.Order, 0, len(os))
	for _, o := range os {
		order, er := r.assemble(ctx, o)
		if er != nil {
			return nil, 0, er
		}
		res = append(res, order)
	}
	return res, total, nil
}

func (r *orderRepository) HasPurchasedSPU(ctx context.Context, uid, spuID int64, statuses []domain.Status) (bool, error) {
	return r.dao.HasPurchasedSPU(ctx, uid, spuID, slice.Map(statuses, func(idx int, src domain.Status) uint8 {
		return src.ToUint8()
	}))
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:           o.ID,
		SN:           o.SN,
		Uid:          o.UID,
		Fullname:     o.Shipping.Fullname,
		Phone:        o.Shipping.Phone,
		Address:      o.Shipping.Address,
		TotalPrice:   o.TotalPrice,
		PaymentPrice: o.PaymentPrice,
		Discount:     o.Discount,
		UserCouponId: o.UserCouponID,
		Status:       o.Status.ToUint8(),
		CancelledAt:  o.CancelledAt,
	}
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:  o.Id,
		SN:  o.SN,
		UID: o.Uid,
		Shipping: domain.Shipping{
			Fullname: o.Fullname,
			Phone:    o.Phone,
			Address:  o.Address,
		},
		TotalPrice:   o.TotalPrice,
		PaymentPrice: o.PaymentPrice,
		Discount:     o.Discount,
		UserCouponID: o.UserCouponId,
		Status:       domain.Status(o.Status),
		Ctime:        o.Ctime,
		Utime:        o.Utime,
		CancelledAt:  o.CancelledAt,
	}
}

func (r *orderRepository) toItemEntity(i domain.Item) dao.OrderItem {
	return dao.OrderItem{
		OrderId:  i.OrderID,
		SPUId:    i.SPUID,
		SKUSN:    i.SKUSN,
		Name:     i.Name,
		Size:     i.Size,
		Image:    i.Image,
		Price:    i.Price,
		Quantity: i.Quantity,
	}
}

func (r *orderRepository) toItemDomain(i dao.OrderItem) domain.Item {
	return domain.Item{
		ID:       i.Id,
		OrderID:  i.OrderId,
		SPUID:    i.SPUId,
		SKUSN:    i.SKUSN,
		Name:     i.Name,
		Size:     i.Size,
		Image:    i.Image,
		Price:    i.Price,
		Quantity: i.Quantity,
	}
}
