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

import (
	"github.com/ecodeclub/eshop/internal/coupon/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	couponNotFoundResult = ginx.Result{
		Code: errs.CouponNotFound.Code,
		Msg:  errs.CouponNotFound.Msg,
	}
	invalidCouponResult = ginx.Result{
		Code: errs.InvalidCoupon.Code,
		Msg:  errs.InvalidCoupon.Msg,
	}
	minOrderNotMetResult = ginx.Result{
		Code: errs.MinOrderNotMet.Code,
		Msg:  errs.MinOrderNotMet.Msg,
	}
	duplicateCodeResult = ginx.Result{
		Code: errs.DuplicateCode.Code,
		Msg:  errs.DuplicateCode.Msg,
	}
	couponInUseResult = ginx.Result{
		Code: errs.CouponInUse.Code,
		Msg:  errs.CouponInUse.Msg,
	}
	userCouponUsedResult = ginx.Result{
		Code: errs.UserCouponUsed.Code,
		Msg:  errs.UserCouponUsed.Msg,
	}
	duplicateGrantResult = ginx.Result{
		Code: errs.DuplicateGrant.Code,
		Msg:  errs.DuplicateGrant.Msg,
	}
	invalidUpdateResult = ginx.Result{
		Code: errs.InvalidUpdate.Code,
		Msg:  errs.InvalidUpdate.Msg,
	}
)
