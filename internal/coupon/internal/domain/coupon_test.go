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

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoupon_Discount(t *testing.T) {
	testCases := []struct {
		name       string
		coupon     Coupon
		orderValue int64
		wantRes    int64
	}{
		{
			name: "百分比券",
			coupon: Coupon{
				Type:  TypePercentage,
				Value: 10,
			},
			orderValue: 500000,
			wantRes:    50000,
		},
		{
			name: "百分比券_触达上限",
			coupon: Coupon{
				Type:        TypePercentage,
				Value:       10,
				MaxDiscount: 40000,
			},
			orderValue: 500000,
			wantRes:    40000,
		},
		{
			name: "百分比券_未触达上限",
			coupon: Coupon{
				Type:        TypePercentage,
				Value:       10,
				MaxDiscount: 40000,
			},
			orderValue: 300000,
			wantRes:    30000,
		},
		{
			name: "固定金额券",
			coupon: Coupon{
				Type:  TypeFixed,
				Value: 100000,
			},
			orderValue: 500000,
			wantRes:    100000,
		},
		{
			name: "固定金额券_触达上限",
			coupon: Coupon{
				Type:        TypeFixed,
				Value:       100000,
				MaxDiscount: 80000,
			},
			orderValue: 500000,
			wantRes:    80000,
		},
		{
			// 固定金额不随订单金额变化,封顶逻辑在调用方
			name: "固定金额券_超过订单金额",
			coupon: Coupon{
				Type:  TypeFixed,
				Value: 100000,
			},
			orderValue: 60000,
			wantRes:    100000,
		},
		{
			name: "百分比券_零订单金额",
			coupon: Coupon{
				Type:  TypePercentage,
				Value: 10,
			},
			orderValue: 0,
			wantRes:    0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.coupon.Discount(tc.orderValue))
		})
	}
}

func TestCoupon_InWindow(t *testing.T) {
	now := time.Now().UnixMilli()
	testCases := []struct {
		name    string
		coupon  Coupon
		wantRes bool
	}{
		{
			name:    "生效中",
			coupon:  Coupon{StartAt: now - 1000, EndAt: now + 1000},
			wantRes: true,
		},
		{
			name:    "未开始",
			coupon:  Coupon{StartAt: now + 1000, EndAt: now + 2000},
			wantRes: false,
		},
		{
			name:    "已过期",
			coupon:  Coupon{StartAt: now - 2000, EndAt: now - 1000},
			wantRes: false,
		},
		{
			name:    "长期有效",
			coupon:  Coupon{StartAt: now - 1000, EndAt: 0},
			wantRes: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.coupon.InWindow(now))
		})
	}
}

func TestCoupon_GloballyExhausted(t *testing.T) {
	testCases := []struct {
		name    string
		coupon  Coupon
		wantRes bool
	}{
		{
			name:    "不限次数",
			coupon:  Coupon{MaxUsage: 0, UsedCount: 10000},
			wantRes: false,
		},
		{
			name:    "未用完",
			coupon:  Coupon{MaxUsage: 100, UsedCount: 99},
			wantRes: false,
		},
		{
			name:    "刚好用完",
			coupon:  Coupon{MaxUsage: 100, UsedCount: 100},
			wantRes: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.coupon.GloballyExhausted())
		})
	}
}
