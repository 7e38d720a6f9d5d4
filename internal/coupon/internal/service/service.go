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
	"time"

	"github.com/ecodeclub/eshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/eshop/internal/coupon/internal/repository"
)

var (
	ErrCouponNotFound = repository.ErrCouponNotFound
	ErrInvalidCoupon  = errors.New("优惠券不可用")
	ErrMinOrderNotMet = errors.New("未达到优惠券使用门槛")
)

type Service interface {
	// QuoteByCode 按券码试算折扣,纯读操作,不产生任何用量变更
	QuoteByCode(ctx context.Context, uid int64, code string, orderValue int64) (domain.Quote, error)
	// Quote 按用户优惠券ID试算折扣,下单流程使用
	Quote(ctx context.Context, uid, userCouponID, orderValue int64) (domain.Quote, error)
	// CommitUsage 唯一的用量扣减入口,只在下单流程中调用
	CommitUsage(ctx context.Context, uid, userCouponID, orderID, discount int64) error
	// RestoreUsage 取消订单时恢复一次用量
	RestoreUsage(ctx context.Context, uid, userCouponID, orderID int64) error
	ListAvailable(ctx context.Context, uid, orderValue int64) ([]domain.UserCoupon, error)
	// Mine 返回用户持有的全部优惠券,含已用完与已取消的
	Mine(ctx context.Context, uid int64) ([]domain.UserCoupon, error)
	History(ctx context.Context, uid int64) ([]domain.UsageRecord, error)
}

type service struct {
	repo repository.CouponRepository
}

func NewService(repo repository.CouponRepository) Service {
	return &service{repo: repo}
}

func (s *service) QuoteByCode(ctx context.Context, uid int64, code string, orderValue int64) (domain.Quote, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	c, err := s.repo.FindCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return domain.Quote{}, ErrCouponNotFound
		}
		return domain.Quote{}, err
	}
	uc, err := s.repo.FindUserCouponByUIDAndCouponID(ctx, uid, c.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserCouponNotFound) {
			return domain.Quote{}, ErrInvalidCoupon
		}
		return domain.Quote{}, err
	}
	return s.quote(uc, orderValue)
}

func (s *service) Quote(ctx context.Context, uid, userCouponID, orderValue int64) (domain.Quote, error) {
	uc, err := s.repo.FindUserCoupon(ctx, userCouponID)
	if err != nil {
		if errors.Is(err, repository.ErrUserCouponNotFound) {
			return domain.Quote{}, ErrInvalidCoupon
		}
		return domain.Quote{}, err
	}
	if uc.UID != uid {
		return domain.Quote{}, ErrInvalidCoupon
	}
	return s.quote(uc, orderValue)
}

func (s *service) quote(uc domain.UserCoupon, orderValue int64) (domain.Quote, error) {
	if err := s.redeemable(uc, time.Now().UnixMilli()); err != nil {
		return domain.Quote{}, err
	}
	if orderValue < uc.Coupon.MinOrderValue {
		return domain.Quote{}, ErrMinOrderNotMet
	}
	discount := uc.Coupon.Discount(orderValue)
	payable := orderValue - discount
	if payable < 0 {
		payable = 0
	}
	return domain.Quote{
		UserCouponID: uc.ID,
		CouponID:     uc.CouponID,
		Code:         uc.Coupon.Code,
		Discount:     discount,
		Payable:      payable,
	}, nil
}

func (s *service) redeemable(uc domain.UserCoupon, now int64) error {
	if uc.Status != domain.UserCouponStatusActive || uc.UsageLeft <= 0 {
		return ErrInvalidCoupon
	}
	if uc.Expired(now) {
		return ErrInvalidCoupon
	}
	c := uc.Coupon
	if c.Status != domain.CouponStatusActive || !c.InWindow(now) || c.GloballyExhausted() {
		return ErrInvalidCoupon
	}
	return nil
}

func (s *service) CommitUsage(ctx context.Context, uid, userCouponID, orderID, discount int64) error {
	err := s.repo.CommitUsage(ctx, userCouponID, uid, orderID, discount)
	if errors.Is(err, repository.ErrUsageExhausted) ||
		errors.Is(err, repository.ErrUserCouponNotFound) {
		return ErrInvalidCoupon
	}
	return err
}

func (s *service) RestoreUsage(ctx context.Context, uid, userCouponID, orderID int64) error {
	return s.repo.RestoreUsage(ctx, userCouponID, uid, orderID)
}

func (s *service) ListAvailable(ctx context.Context, uid, orderValue int64) ([]domain.UserCoupon, error) {
	ucs, err := s.repo.FindUserCouponsByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	now := time.Now().UnixMilli()
	res := make([]domain.UserCoupon, 0, len(ucs))
	for _, uc := range ucs {
		if s.redeemable(uc, now) != nil {
			continue
		}
		if orderValue > 0 && orderValue < uc.Coupon.MinOrderValue {
			continue
		}
		res = append(res, uc)
	}
	return res, nil
}

func (s *service) Mine(ctx context.Context, uid int64) ([]domain.UserCoupon, error) {
	return s.repo.FindUserCouponsByUID(ctx, uid)
}

func (s *service) History(ctx context.Context, uid int64) ([]domain.UsageRecord, error) {
	return s.repo.FindUsageRecordsByUID(ctx, uid)
}
