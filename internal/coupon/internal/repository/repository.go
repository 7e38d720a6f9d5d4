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
	"github.com/ecodeclub/eshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/eshop/internal/coupon/internal/repository/dao"
)

var (
	ErrCouponNotFound     = dao.ErrCouponNotFound
	ErrUserCouponNotFound = dao.ErrUserCouponNotFound
	ErrDuplicateCode      = dao.ErrDuplicateCode
	ErrDuplicateGrant     = dao.ErrDuplicateGrant
	ErrCouponInUse        = dao.ErrCouponInUse
	ErrUsageExhausted     = dao.ErrUsageExhausted
	ErrUserCouponUsed     = dao.ErrUserCouponUsed
)

type CouponRepository interface {
	CreateCoupon(ctx context.Context, c domain.Coupon) (int64, error)
	UpdateCoupon(ctx context.Context, c domain.Coupon) error
	DeleteCoupon(ctx context.Context, id int64) error
	FindCouponByID(ctx context.Context, id int64) (domain.Coupon, error)
	FindCouponByCode(ctx context.Context, code string) (domain.Coupon, error)
	ListCoupons(ctx context.Context, offset, limit int, keyword string) ([]domain.Coupon, error)
	CountCoupons(ctx context.Context, keyword string) (int64, error)

	GrantUserCoupon(ctx context.Context, uc domain.UserCoupon) (int64, error)
	CancelUserCoupon(ctx context.Context, id int64) error
	UpdateUserCoupon(ctx context.Context, uc domain.UserCoupon) error
	// FindUserCoupon 返回的用户优惠券携带完整的优惠券定义
	FindUserCoupon(ctx context.Context, id int64) (domain.UserCoupon, error)
	FindUserCouponByUIDAndCouponID(ctx context.Context, uid, couponID int64) (domain.UserCoupon, error)
	FindUserCouponsByUID(ctx context.Context, uid int64) ([]domain.UserCoupon, error)

	CommitUsage(ctx context.Context, userCouponID, uid, orderID, discount int64) error
	RestoreUsage(ctx context.Context, userCouponID, uid, orderID int64) error
	FindUsageRecordsByUID(ctx context.Context, uid int64) ([]domain.UsageRecord, error)
}

type couponRepository struct {
	dao dao.CouponDAO
}

func NewCouponRepository(d dao.CouponDAO) CouponRepository {
	return &couponRepository{dao: d}
}

func (r *couponRepository) CreateCoupon(ctx context.Context, c domain.Coupon) (int64, error) {
	return r.dao.CreateCoupon(ctx, r.toEntity(c))
}

func (r *couponRepository) UpdateCoupon(ctx context.Context, c domain.Coupon) error {
	return r.dao.UpdateCoupon(ctx, r.toEntity(c))
}

func (r *couponRepository) DeleteCoupon(ctx context.Context, id int64) error {
	return r.dao.DeleteCoupon(ctx, id)
}

func (r *couponRepository) FindCouponByID(ctx context.Context, id int64) (domain.Coupon, error) {
	c, err := r.dao.FindCouponByID(ctx, id)
	if err != nil {
		return domain.Coupon{}, err
	}
	return r.toDomain(c), nil
}

func (r *couponRepository) FindCouponByCode(ctx context.Context, code string) (domain.Coupon, error) {
	c, err := r.dao.FindCouponByCode(ctx, code)
	if err != nil {
		return domain.Coupon{}, err
	}
	return r.toDomain(c), nil
}

func (r *couponRepository) ListCoupons(ctx context.Context, offset, limit int, keyword string) ([]domain.Coupon, error) {
	cs, err := r.dao.ListCoupons(ctx, offset, limit, keyword)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Coupon) domain.Coupon {
		return r.toDomain(src)
	}), nil
}

func (r *couponRepository) CountCoupons(ctx context.Context, keyword string) (int64, error) {
	return r.dao.CountCoupons(ctx, keyword)
}

func (r *couponRepository) GrantUserCoupon(ctx context.Context, uc domain.UserCoupon) (int64, error) {
	return r.dao.GrantUserCoupon(ctx, dao.UserCoupon{
		Uid:       uc.UID,
		CouponId:  uc.CouponID,
		UsageLeft: uc.UsageLeft,
		Status:    uc.Status.ToUint8(),
		ExpireAt:  uc.ExpireAt,
	})
}

func (r *couponRepository) CancelUserCoupon(ctx context.Context, id int64) error {
	return r.dao.CancelUserCoupon(ctx, id)
}

func (r *couponRepository) UpdateUserCoupon(ctx context.Context, uc domain.UserCoupon) error {
	return r.dao.UpdateUserCoupon(ctx, dao.UserCoupon{
		Id:        uc.ID,
		UsageLeft: uc.UsageLeft,
		Status:    uc.Status.ToUint8(),
		ExpireAt:  uc.ExpireAt,
	})
}

func (r *couponRepository) FindUserCoupon(ctx context.Context, id int64) (domain.UserCoupon, error) {
	uc, err := r.dao.FindUserCouponByID(ctx, id)
	if err != nil {
		return domain.UserCoupon{}, err
	}
	return r.assemble(ctx, uc)
}

func (r *couponRepository) FindUserCouponByUIDAndCouponID(ctx context.Context, uid, couponID int64) (domain.UserCoupon, error) {
	uc, err := r.dao.FindUserCouponByUIDAndCouponID(ctx, uid, couponID)
	if err != nil {
		return domain.UserCoupon{}, err
	}
	return r.assemble(ctx, uc)
}

func (r *couponRepository) FindUserCouponsByUID(ctx context.Context, uid int64) ([]domain.UserCoupon, error) {
	ucs, err := r.dao.FindUserCouponsByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	res := make([]domain.UserCoupon, 0, len(ucs))
	for _, uc := range ucs {
		duc, err := r.assemble(ctx, uc)
		if err != nil {
			return nil, err
		}
		res = append(res, duc)
	}
	return res, nil
}

func (r *couponRepository) CommitUsage(ctx context.Context, userCouponID, uid, orderID, discount int64) error {
	return r.dao.CommitUsage(ctx, userCouponID, uid, orderID, discount)
}

func (r *couponRepository) RestoreUsage(ctx context.Context, userCouponID, uid, orderID int64) error {
	return r.dao.RestoreUsage(ctx, userCouponID, uid, orderID)
}

func (r *couponRepository) FindUsageRecordsByUID(ctx context.Context, uid int64) ([]domain.UsageRecord, error) {
	logs, err := r.dao.FindUsageLogsByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(logs, func(idx int, src dao.CouponUsageLog) domain.UsageRecord {
		return domain.UsageRecord{
			ID:           src.Id,
			UserCouponID: src.UserCouponId,
			UID:          src.Uid,
			OrderID:      src.OrderId,
			Discount:     src.Discount,
			Action:       domain.UsageAction(src.Action),
			Ctime:        src.Ctime,
		}
	}), nil
}

func (r *couponRepository) assemble(ctx context.Context, uc dao.UserCoupon) (domain.UserCoupon, error) {
	c, err := r.dao.FindCouponByID(ctx, uc.CouponId)
	if err != nil {
		return domain.UserCoupon{}, err
	}
	res := r.toUserCouponDomain(uc)
	res.Coupon = r.toDomain(c)
	return res, nil
}

func (r *couponRepository) toEntity(c domain.Coupon) dao.Coupon {
	return dao.Coupon{
		Id:              c.ID,
		Code:            c.Code,
		Name:            c.Name,
		Type:            c.Type.ToUint8(),
		Value:           c.Value,
		MinOrderValue:   c.MinOrderValue,
		MaxDiscount:     c.MaxDiscount,
		StartAt:         c.StartAt,
		EndAt:           c.EndAt,
		MaxUsage:        c.MaxUsage,
		MaxUsagePerUser: c.MaxUsagePerUser,
		Status:          c.Status.ToUint8(),
	}
}

func (r *couponRepository) toDomain(c dao.Coupon) domain.Coupon {
	return domain.Coupon{
		ID:              c.Id,
		Code:            c.Code,
		Name:            c.Name,
		Type:            domain.Type(c.Type),
		Value:           c.Value,
		MinOrderValue:   c.MinOrderValue,
		MaxDiscount:     c.MaxDiscount,
		StartAt:         c.StartAt,
		EndAt:           c.EndAt,
		MaxUsage:        c.MaxUsage,
		MaxUsagePerUser: c.MaxUsagePerUser,
		UsedCount:       c.UsedCount,
		Status:          domain.CouponStatus(c.Status),
		Ctime:           c.Ctime,
		Utime:           c.Utime,
	}
}

func (r *couponRepository) toUserCouponDomain(uc dao.UserCoupon) domain.UserCoupon {
	return domain.UserCoupon{
		ID:        uc.Id,
		UID:       uc.Uid,
		CouponID:  uc.CouponId,
		UsageLeft: uc.UsageLeft,
		Status:    domain.UserCouponStatus(uc.Status),
		ExpireAt:  uc.ExpireAt,
		Ctime:     uc.Ctime,
		Utime:     uc.Utime,
	}
}
