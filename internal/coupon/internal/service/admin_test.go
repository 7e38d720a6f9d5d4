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

	"github.com/ecodeclub/eshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/eshop/internal/coupon/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_UpdateUserCoupon(t *testing.T) {
	ptr := func(v int64) *int64 { return &v }
	statusPtr := func(s domain.UserCouponStatus) *domain.UserCouponStatus { return &s }

	testCases := []struct {
		name    string
		repo    *fakeCouponRepository
		update  domain.UserCouponUpdate
		wantErr error
		want    func(t *testing.T, repo *fakeCouponRepository)
	}{
		{
			name: "只改剩余次数_其余保持原值",
			repo: &fakeCouponRepository{uc: activeUserCoupon(activeCoupon())},
			update: domain.UserCouponUpdate{
				ID:        101,
				UsageLeft: ptr(3),
			},
			want: func(t *testing.T, repo *fakeCouponRepository) {
				assert.Equal(t, int64(3), repo.updated.UsageLeft)
				assert.Equal(t, domain.UserCouponStatusActive, repo.updated.Status)
			},
		},
		{
			name: "改过期时间和状态",
			repo: &fakeCouponRepository{uc: activeUserCoupon(activeCoupon())},
			update: domain.UserCouponUpdate{
				ID:       101,
				ExpireAt: ptr(1893456000000),
				Status:   statusPtr(domain.UserCouponStatusCancelled),
			},
			want: func(t *testing.T, repo *fakeCouponRepository) {
				assert.Equal(t, int64(1893456000000), repo.updated.ExpireAt)
				assert.Equal(t, domain.UserCouponStatusCancelled, repo.updated.Status)
				// 未传的剩余次数保持原值
				assert.Equal(t, int64(1), repo.updated.UsageLeft)
			},
		},
		{
			name: "剩余次数为负",
			repo: &fakeCouponRepository{uc: activeUserCoupon(activeCoupon())},
			update: domain.UserCouponUpdate{
				ID:        101,
				UsageLeft: ptr(-1),
			},
			wantErr: ErrInvalidUpdate,
			want: func(t *testing.T, repo *fakeCouponRepository) {
				assert.Zero(t, repo.updated.ID)
			},
		},
		{
			name: "非法状态",
			repo: &fakeCouponRepository{uc: activeUserCoupon(activeCoupon())},
			update: domain.UserCouponUpdate{
				ID:     101,
				Status: statusPtr(domain.UserCouponStatus(9)),
			},
			wantErr: ErrInvalidUpdate,
			want: func(t *testing.T, repo *fakeCouponRepository) {
				assert.Zero(t, repo.updated.ID)
			},
		},
		{
			name: "用户优惠券不存在",
			repo: &fakeCouponRepository{ucErr: repository.ErrUserCouponNotFound},
			update: domain.UserCouponUpdate{
				ID:        999,
				UsageLeft: ptr(1),
			},
			wantErr: ErrUserCouponNotFound,
			want:    func(t *testing.T, repo *fakeCouponRepository) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewAdminService(tc.repo)
			err := svc.UpdateUserCoupon(context.Background(), tc.update)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			tc.want(t, tc.repo)
		})
	}
}
