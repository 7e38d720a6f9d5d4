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
	"strings"

	"github.com/ecodeclub/eshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/eshop/internal/coupon/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDuplicateCode      = repository.ErrDuplicateCode
	ErrCouponInUse        = repository.ErrCouponInUse
	ErrDuplicateGrant     = repository.ErrDuplicateGrant
	ErrUserCouponUsed     = repository.ErrUserCouponUsed
	ErrUserCouponNotFound = repository.ErrUserCouponNotFound
	ErrInvalidUpdate      = errors.New("非法的用户优惠券更新")
)

type AdminService interface {
	// SaveCoupon ID 为 0 时新建,否则更新。已被领取的优惠券不可更新
	SaveCoupon(ctx context.Context, c domain.Coupon) (int64, error)
	// DeleteCoupon 已被领取的优惠券不可删除
	DeleteCoupon(ctx context.Context, id int64) error
	ListCoupons(ctx context.Context, offset, limit int, keyword string) ([]domain.Coupon, int64, error)
	DetailCoupon(ctx context.Context, id int64) (domain.Coupon, error)
	// GrantToUser 给用户发券,初始剩余次数为每用户上限
	GrantToUser(ctx context.Context, uid, couponID int64) (int64, error)
	// CancelUserCoupon 已产生使用记录的用户优惠券不可取消
	CancelUserCoupon(ctx context.Context, id int64) error
	// UpdateUserCoupon 部分更新剩余次数、过期时间与状态,nil 字段保持原值
	UpdateUserCoupon(ctx context.Context, update domain.UserCouponUpdate) error
	ListUserCoupons(ctx context.Context, uid int64) ([]domain.UserCoupon, error)
}

type adminService struct {
	repo repository.CouponRepository
}

func NewAdminService(repo repository.CouponRepository) AdminService {
	return &adminService{repo: repo}
}

func (s *adminService) SaveCoupon(ctx context.Context, c domain.Coupon) (int64, error) {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if c.MaxUsagePerUser <= 0 {
		c.MaxUsagePerUser = 1
	}
	if c.Status == 0 {
		c.Status = domain.CouponStatusActive
	}
	if c.ID > 0 {
		return c.ID, s.repo.UpdateCoupon(ctx, c)
	}
	return s.repo.CreateCoupon(ctx, c)
}

func (s *adminService) DeleteCoupon(ctx context.Context, id int64) error {
	return s.repo.DeleteCoupon(ctx, id)
}

func (s *adminService) ListCoupons(ctx context.Context, offset, limit int, keyword string) ([]domain.Coupon, int64, error) {
	var (
		eg    errgroup.Group
		cs    []domain.Coupon
		total int64
	)
	eg.Go(func() error {
		var err error
		cs, err = s.repo.ListCoupons(ctx, offset, limit, keyword)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountCoupons(ctx, keyword)
		return err
	})
	return cs, total, eg.Wait()
}

func (s *adminService) DetailCoupon(ctx context.Context, id int64) (domain.Coupon, error) {
	c, err := s.repo.FindCouponByID(ctx, id)
	if errors.Is(err, repository.ErrCouponNotFound) {
		return domain.Coupon{}, ErrCouponNotFound
	}
	return c, err
}

func (s *adminService) GrantToUser(ctx context.Context, uid, couponID int64) (int64, error) {
	c, err := s.repo.FindCouponByID(ctx, couponID)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return 0, ErrCouponNotFound
		}
		return 0, err
	}
	return s.repo.GrantUserCoupon(ctx, domain.UserCoupon{
		UID:       uid,
		CouponID:  c.ID,
		UsageLeft: c.MaxUsagePerUser,
		Status:    domain.UserCouponStatusActive,
		ExpireAt:  c.EndAt,
	})
}

func (s *adminService) CancelUserCoupon(ctx context.Context, id int64) error {
	return s.repo.CancelUserCoupon(ctx, id)
}

func (s *adminService) UpdateUserCoupon(ctx context.Context, update domain.UserCouponUpdate) error {
	uc, err := s.repo.FindUserCoupon(ctx, update.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserCouponNotFound) {
			return ErrUserCouponNotFound
		}
		return err
	}
	if update.UsageLeft != nil {
		if *update.UsageLeft < 0 {
			return ErrInvalidUpdate
		}
		uc.UsageLeft = *update.UsageLeft
	}
	if update.ExpireAt != nil {
		uc.ExpireAt = *update.ExpireAt
	}
	if update.Status != nil {
		switch *update.Status {
		case domain.UserCouponStatusActive, domain.UserCouponStatusUsed, domain.UserCouponStatusCancelled:
			uc.Status = *update.Status
		default:
			return ErrInvalidUpdate
		}
	}
	return s.repo.UpdateUserCoupon(ctx, uc)
}

func (s *adminService) ListUserCoupons(ctx context.Context, uid int64) ([]domain.UserCoupon, error) {
	return s.repo.FindUserCouponsByUID(ctx, uid)
}
