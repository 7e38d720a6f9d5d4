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

package errs

type ErrorCode struct {
	Code int
	Msg  string
}

var (
	SystemError       = ErrorCode{Code: 503001, Msg: "系统错误"}
	EmptyCart         = ErrorCode{Code: 503002, Msg: "购物车为空"}
	OrderNotFound     = ErrorCode{Code: 503003, Msg: "订单不存在"}
	InsufficientStock = ErrorCode{Code: 503004, Msg: "商品库存不足"}
	InvalidCoupon     = ErrorCode{Code: 503005, Msg: "优惠券不可用"}
	MinOrderNotMet    = ErrorCode{Code: 503006, Msg: "未达到优惠券使用门槛"}
	InvalidStatus     = ErrorCode{Code: 503007, Msg: "订单状态不允许该操作"}
	SKUNotFound       = ErrorCode{Code: 503008, Msg: "商品不存在或已下架"}
	DuplicateRequest  = ErrorCode{Code: 503009, Msg: "重复请求"}
)
