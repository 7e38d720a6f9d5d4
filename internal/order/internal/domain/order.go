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

type Status uint8

const (
	StatusPending   Status = 1
	StatusConfirmed Status = 2
	StatusShipped   Status = 3
	StatusDelivered Status = 4
	StatusCancelled Status = 5
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

// CanTransition 订单状态机,所有状态变更包括管理端都必须经过它。
// 允许的流转: pending→confirmed→shipped→delivered,
// pending/confirmed→cancelled。delivered 与 cancelled 为终态。
func (s Status) CanTransition(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusShipped || target == StatusCancelled
	case StatusShipped:
		return target == StatusDelivered
	default:
		return false
	}
}

type Order struct {
	ID       int64
	SN       string
	UID      int64
	Shipping Shipping
	// TotalPrice 折前总价,PaymentPrice 折后应付,单位为分
	TotalPrice   int64
	PaymentPrice int64
	Discount     int64
	// UserCouponID 为 0 表示未使用优惠券
	UserCouponID int64
	Status       Status
	Items        []Item
	Ctime        int64
	Utime        int64
	CancelledAt  int64
}

type Shipping struct {
	Fullname string
	Phone    string
	Address  string
}

// Item 下单时的商品快照,价格与名称不随商品后续变更而变化
type Item struct {
	ID       int64
	OrderID  int64
	SPUID    int64
	SKUSN    string
	Name     string
	Size     string
	Image    string
	Price    int64
	Quantity int64
}

func (i Item) Subtotal() int64 {
	return i.Price * i.Quantity
}
