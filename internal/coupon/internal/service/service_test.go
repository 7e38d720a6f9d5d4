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
	"testing"
	"time"

	"github.com/ecodeclub/eshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/eshop/internal/coupon/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCouponRepository struct {
	repository.CouponRepository
	uc        domain.UserCoupon
	ucErr     error
	coupon    domain.Coupon
	couponErr error
	// gotCode 记录 FindCouponByCode 收到的券码
	gotCode   string
	commitErr error
	updated   domain.UserCoupon
	updateErr error
}

func (f *fakeCouponRepository) UpdateUserCoupon(ctx context.Context, uc domain.UserCoupon) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = uc
	return nil
}

func (f *fakeCouponRepository) FindCouponByCode(ctx context.Context, code string) (domain.Coupon, error) {
	f.gotCode = code
	return f.coupon, f.couponErr
}

func (f *fakeCouponRepository) FindUserCoupon(ctx context.Context, id int64) (domain.UserCoupon, error) {
	return f.uc, f.ucErr
}

func (f *fakeCouponRepository) FindUserCouponByUIDAndCouponID(ctx context.Context, uid, couponID int64) (domain.UserCoupon, error) {
	return f.uc, f.ucErr
}

func (f *fakeCouponRepository) CommitUsage(ctx context.Context, userCouponID, uid, orderID, discount int64) error {
	return f.commitErr
}

func activeUserCoupon(c domain.Coupon) domain.UserCoupon {
	return domain.UserCoupon{
		ID:        101,
		UID:       2793,
		CouponID:  c.ID,
		Coupon:    c,
		UsageLeft: 1,
		Status:    domain.UserCouponStatusActive,
	}
}

func activeCoupon() domain.Coupon {
	return domain.Coupon{
		ID:            11,
		Code:          "SAVE10",
		Type:          domain.TypePercentage,
		Value:         10,
		MinOrderValue: 10000,
		StartAt:       time.Now().Add(-time.Hour).UnixMilli(),
		Status:        domain.CouponStatusActive,
	}
}

func TestService_Quote(t *testing.T) {
	testCases := []struct {
		name       string
		uc         func() domain.UserCoupon
		uid        int64
		orderValue int64
		wantErr    error
		wantQuote  domain.Quote
	}{
		{
			name: "试算成功",
			uc: func() domain.UserCoupon {
				return activeUserCoupon(activeCoupon())
			},
			uid:        2793,
			orderValue: 500000,
			wantQuote: domain.Quote{
				UserCouponID: 101,
				CouponID:     11,
				Code:         "SAVE10",
				Discount:     50000,
				Payable:      450000,
			},
		},
		{
			name: "折扣超过订单金额_应付为零",
			uc: func() domain.UserCoupon {
				c := activeCoupon()
				c.Type = domain.TypeFixed
				c.Value = 100000
				return activeUserCoupon(c)
			},
			uid:        2793,
			orderValue: 60000,
			wantQuote: domain.Quote{
				UserCouponID: 101,
				CouponID:     11,
				Code:         "SAVE10",
				Discount:     100000,
				Payable:      0,
			},
		},
		{
			name: "不是持有人",
			uc: func() domain.UserCoupon {
				return activeUserCoupon(activeCoupon())
			},
			uid:        2794,
			orderValue: 500000,
			wantErr:    ErrInvalidCoupon,
		},
		{
			name: "未达到使用门槛",
			uc: func() domain.UserCoupon {
				return activeUserCoupon(activeCoupon())
			},
			uid:        2793,
			orderValue: 9999,
			wantErr:    ErrMinOrderNotMet,
		},
		{
			name: "用量已用完",
			uc: func() domain.UserCoupon {
				uc := activeUserCoupon(activeCoupon())
				uc.UsageLeft = 0
				return uc
			},
			uid:        2793,
			orderValue: 500000,
			wantErr:    ErrInvalidCoupon,
		},
		{
			name: "优惠券已停用",
			uc: func() domain.UserCoupon {
				c := activeCoupon()
				c.Status = domain.CouponStatusDisabled
				return activeUserCoupon(c)
			},
			uid:        2793,
			orderValue: 500000,
			wantErr:    ErrInvalidCoupon,
		},
		{
			name: "优惠券未到生效时间",
			uc: func() domain.UserCoupon {
				c := activeCoupon()
				c.StartAt = time.Now().Add(time.Hour).UnixMilli()
				return activeUserCoupon(c)
			},
			uid:        2793,
			orderValue: 500000,
			wantErr:    ErrInvalidCoupon,
		},
		{
			name: "全局用量已用完",
			uc: func() domain.UserCoupon {
				c := activeCoupon()
				c.MaxUsage = 100
				c.UsedCount = 100
				return activeUserCoupon(c)
			},
			uid:        2793,
			orderValue: 500000,
			wantErr:    ErrInvalidCoupon,
		},
		{
			name: "用户优惠券已过期",
			uc: func() domain.UserCoupon {
				uc := activeUserCoupon(activeCoupon())
				uc.ExpireAt = time.Now().Add(-time.Minute).UnixMilli()
				return uc
			},
			uid:        2793,
			orderValue: 500000,
			wantErr:    ErrInvalidCoupon,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeCouponRepository{uc: tc.uc()}
			svc := NewService(repo)
			quote, err := svc.Quote(context.Background(), tc.uid, 101, tc.orderValue)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantQuote, quote)
		})
	}
}

func TestService_QuoteByCode(t *testing.T) {
	t.Run("券码大小写不敏感", func(t *testing.T) {
		c := activeCoupon()
		repo := &fakeCouponRepository{coupon: c, uc: activeUserCoupon(c)}
		svc := NewService(repo)
		quote, err := svc.QuoteByCode(context.Background(), 2793, "  save10 ", 500000)
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", repo.gotCode)
		assert.Equal(t, int64(50000), quote.Discount)
	})

	t.Run("券码不存在", func(t *testing.T) {
		repo := &fakeCouponRepository{couponErr: repository.ErrCouponNotFound}
		svc := NewService(repo)
		_, err := svc.QuoteByCode(context.Background(), 2793, "NOPE", 500000)
		assert.ErrorIs(t, err, ErrCouponNotFound)
	})

	t.Run("用户未持有该券", func(t *testing.T) {
		repo := &fakeCouponRepository{coupon: activeCoupon(), ucErr: repository.ErrUserCouponNotFound}
		svc := NewService(repo)
		_, err := svc.QuoteByCode(context.Background(), 2793, "SAVE10", 500000)
		assert.ErrorIs(t, err, ErrInvalidCoupon)
	})
}

func TestService_CommitUsage(t *testing.T) {
	testCases := []struct {
		name      string
		commitErr error
		wantErr   error
	}{
		{
			name: "扣减成功",
		},
		{
			name:      "用量不足",
			commitErr: repository.ErrUsageExhausted,
			wantErr:   ErrInvalidCoupon,
		},
		{
			name:      "用户优惠券不存在",
			commitErr: repository.ErrUserCouponNotFound,
			wantErr:   ErrInvalidCoupon,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(&fakeCouponRepository{commitErr: tc.commitErr})
			err := svc.CommitUsage(context.Background(), 2793, 101, 1001, 50000)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
