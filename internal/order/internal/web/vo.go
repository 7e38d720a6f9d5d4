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

type CreateOrderReq struct {
	// RequestID 幂等键,重复提交会被拒绝
	RequestID string `json:"requestId"`
	Fullname  string `json:"fullname"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	// UserCouponID 为 0 表示不使用优惠券
	UserCouponID int64 `json:"userCouponId"`
}

type CreateOrderResp struct {
	OrderID      int64  `json:"orderId"`
	SN           string `json:"sn"`
	TotalPrice   int64  `json:"totalPrice"`
	Discount     int64  `json:"discount"`
	PaymentPrice int64  `json:"paymentPrice"`
}

type CancelOrderReq struct {
	OrderID int64 `json:"orderId"`
}

type ListOrdersReq struct {
	Page
	// Status 为 0 表示不过滤
	Status uint8 `json:"status"`
}

type ListOrdersResp struct {
	Total       int64   `json:"total"`
	TotalPages  int64   `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
	Orders      []Order `json:"orders"`
}

type OrderDetailReq struct {
	OrderID int64 `json:"orderId"`
}

type Order struct {
	ID           int64       `json:"id"`
	SN           string      `json:"sn"`
	UID          int64       `json:"uid"`
	Fullname     string      `json:"fullname"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	TotalPrice   int64       `json:"totalPrice"`
	PaymentPrice int64       `json:"paymentPrice"`
	Discount     int64       `json:"discount"`
	UserCouponID int64       `json:"userCouponId"`
	Status       uint8       `json:"status"`
	Items        []OrderItem `json:"items,omitempty"`
	Ctime        int64       `json:"ctime"`
	CancelledAt  int64       `json:"cancelledAt"`
}

type OrderItem struct {
	SPUID    int64  `json:"spuId"`
	SN       string `json:"sn"`
	Name     string `json:"name"`
	Size     string `json:"size"`
	Image    string `json:"image"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
	Subtotal int64  `json:"subtotal"`
}

type AdminListOrdersReq struct {
	Page
	Status  uint8  `json:"status"`
	Keyword string `json:"keyword"`
}

type AdminOrderDetailReq struct {
	OrderID int64 `json:"orderId"`
}

type UpdateOrderStatusReq struct {
	OrderID int64 `json:"orderId"`
	Status  uint8 `json:"status"`
}
