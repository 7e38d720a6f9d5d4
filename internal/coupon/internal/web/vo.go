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

package web

type Page struct {
	// Page 从 1 开始
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (p Page) OffsetLimit() (offset, limit int) {
	limit = p.Limit
	if limit <= 0 {
		limit = 10
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit, limit
}

func totalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

type ApplyCouponReq struct {
	Code string `json:"code"`
	// OrderValue 待结算金额,单位为分
	OrderValue int64 `json:"orderValue"`
}

type Quote struct {
	UserCouponID int64  `json:"userCouponId"`
	CouponID     int64  `json:"couponId"`
	Code         string `json:"code"`
	Discount     int64  `json:"discount"`
	Payable      int64  `json:"payable"`
}

type AvailableCouponsReq struct {
	OrderValue int64 `json:"orderValue"`
}

type UserCoupon struct {
	ID            int64  `json:"id"`
	CouponID      int64  `json:"couponId"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Type          uint8  `json:"type"`
	Value         int64  `json:"value"`
	MinOrderValue int64  `json:"minOrderValue"`
	MaxDiscount   int64  `json:"maxDiscount"`
	UsageLeft     int64  `json:"usageLeft"`
	Status        uint8  `json:"status"`
	ExpireAt      int64  `json:"expireAt"`
}

type UserCouponsResp struct {
	Coupons []UserCoupon `json:"coupons"`
}

type UsageRecord struct {
	UserCouponID int64 `json:"userCouponId"`
	OrderID      int64 `json:"orderId"`
	Discount     int64 `json:"discount"`
	Action       uint8 `json:"action"`
	Ctime        int64 `json:"ctime"`
}

type HistoryResp struct {
	Records []UsageRecord `json:"records"`
}

type Coupon struct {
	ID              int64  `json:"id"`
	Code            string `json:"code"`
	Name            string `json:"name"`
	Type            uint8  `json:"type"`
	Value           int64  `json:"value"`
	MinOrderValue   int64  `json:"minOrderValue"`
	MaxDiscount     int64  `json:"maxDiscount"`
	StartAt         int64  `json:"startAt"`
	EndAt           int64  `json:"endAt"`
	MaxUsage        int64  `json:"maxUsage"`
	MaxUsagePerUser int64  `json:"maxUsagePerUser"`
	UsedCount       int64  `json:"usedCount"`
	Status          uint8  `json:"status"`
	Utime           int64  `json:"utime"`
}

type SaveCouponReq struct {
	Coupon Coupon `json:"coupon"`
}

type SaveCouponResp struct {
	ID int64 `json:"id"`
}

type ListCouponsReq struct {
	Page
	Keyword string `json:"keyword"`
}

type ListCouponsResp struct {
	Total       int64    `json:"total"`
	TotalPages  int64    `json:"totalPages"`
	CurrentPage int      `json:"currentPage"`
	Coupons     []Coupon `json:"coupons"`
}

type CouponIDReq struct {
	ID int64 `json:"id"`
}

type GrantCouponReq struct {
	UID      int64 `json:"uid"`
	CouponID int64 `json:"couponId"`
}

type GrantCouponResp struct {
	UserCouponID int64 `json:"userCouponId"`
}

type UserCouponIDReq struct {
	ID int64 `json:"id"`
}

// UpdateUserCouponReq 未传的字段保持原值
type UpdateUserCouponReq struct {
	ID        int64  `json:"id"`
	UsageLeft *int64 `json:"usageLeft"`
	ExpireAt  *int64 `json:"expireAt"`
	Status    *uint8 `json:"status"`
}

type ListUserCouponsReq struct {
	UID int64 `json:"uid"`
}
