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

type Type uint8

const (
	// TypePercentage 按订单金额的百分比折扣
	TypePercentage Type = 1
	// TypeFixed 固定金额折扣
	TypeFixed Type = 2
)

func (t Type) ToUint8() uint8 {
	return uint8(t)
}

type CouponStatus uint8

const (
	CouponStatusDisabled CouponStatus = 1
	CouponStatusActive   CouponStatus = 2
)

func (s CouponStatus) ToUint8() uint8 {
	return uint8(s)
}

type UserCouponStatus uint8

const (
	UserCouponStatusActive    UserCouponStatus = 1
	UserCouponStatusUsed      UserCouponStatus = 2
	UserCouponStatusCancelled UserCouponStatus = 3
)

func (s UserCouponStatus) ToUint8() uint8 {
	return uint8(s)
}

type Coupon struct {
	ID   int64
	Code string
	Name string
	Type Type
	// Value 百分比券为折扣百分数,固定金额券为金额(分)
	Value int64
	// MinOrderValue 使用门槛,单位为分
	MinOrderValue int64
	// MaxDiscount 单次折扣上限,单位为分,0 表示不设上限
	MaxDiscount int64
	// StartAt EndAt 有效窗口,UnixMilli,EndAt 为 0 表示长期有效
	StartAt int64
	EndAt   int64
	// MaxUsage 全局可用次数,0 表示不限
	MaxUsage int64
	// MaxUsagePerUser 每个用户可用次数
	MaxUsagePerUser int64
	UsedCount       int64
	Status          CouponStatus
	Ctime           int64
	Utime           int64
}

// Discount 计算订单金额对应的折扣,单位为分。
// 百分比券为 min(orderValue × Value / 100, MaxDiscount),
// 固定金额券为 min(Value, MaxDiscount),不随订单金额变化。
func (c Coupon) Discount(orderValue int64) int64 {
	var d int64
	switch c.Type {
	case TypePercentage:
		d = orderValue * c.Value / 100
	case TypeFixed:
		d = c.Value
	}
	if c.MaxDiscount > 0 && d > c.MaxDiscount {
		d = c.MaxDiscount
	}
	return d
}

func (c Coupon) InWindow(now int64) bool {
	if now < c.StartAt {
		return false
	}
	return c.EndAt == 0 || now <= c.EndAt
}

func (c Coupon) GloballyExhausted() bool {
	return c.MaxUsage > 0 && c.UsedCount >= c.MaxUsage
}

type UserCoupon struct {
	ID       int64
	UID      int64
	CouponID int64
	Coupon   Coupon
	// UsageLeft 初始为 Coupon.MaxUsagePerUser,永不为负
	UsageLeft int64
	Status    UserCouponStatus
	// ExpireAt UnixMilli,0 表示跟随优惠券有效期
	ExpireAt int64
	Ctime    int64
	Utime    int64
}

func (uc UserCoupon) Expired(now int64) bool {
	return uc.ExpireAt > 0 && now > uc.ExpireAt
}

// UserCouponUpdate 管理端对用户优惠券的部分更新,nil 字段保持原值
type UserCouponUpdate struct {
	ID        int64
	UsageLeft *int64
	ExpireAt  *int64
	Status    *UserCouponStatus
}

// Quote 一次试算结果,只读,不产生任何用量变更
type Quote struct {
	UserCouponID int64
	CouponID     int64
	Code         string
	Discount     int64
	// Payable 折后应付金额,最低为 0
	Payable int64
}

type UsageAction uint8

const (
	UsageActionUsed     UsageAction = 1
	UsageActionRestored UsageAction = 2
)

type UsageRecord struct {
	ID           int64
	UserCouponID int64
	UID          int64
	OrderID      int64
	Discount     int64
	Action       UsageAction
	Ctime        int64
}
