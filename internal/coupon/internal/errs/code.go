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
	SystemError    = ErrorCode{Code: 504001, Msg: "系统错误"}
	CouponNotFound = ErrorCode{Code: 504002, Msg: "优惠券不存在"}
	InvalidCoupon  = ErrorCode{Code: 504003, Msg: "优惠券不可用"}
	MinOrderNotMet = ErrorCode{Code: 504004, Msg: "未达到优惠券使用门槛"}
	DuplicateCode  = ErrorCode{Code: 504005, Msg: "优惠券码已存在"}
	CouponInUse    = ErrorCode{Code: 504006, Msg: "优惠券已被领取,不可修改或删除"}
	UserCouponUsed = ErrorCode{Code: 504007, Msg: "优惠券已被使用,不可取消"}
	DuplicateGrant = ErrorCode{Code: 504008, Msg: "该用户已持有此优惠券"}
	InvalidUpdate  = ErrorCode{Code: 504009, Msg: "非法的用户优惠券更新"}
)
