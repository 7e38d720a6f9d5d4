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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/eshop/internal/coupon/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/coupon")
	g.POST("/apply", ginx.BS[ApplyCouponReq](h.Apply))
	g.POST("/available", ginx.BS[AvailableCouponsReq](h.Available))
	g.POST("/history", ginx.S(h.History))
	g.POST("/mine", ginx.S(h.Mine))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// Apply 只做试算,不产生任何用量变更
func (h *Handler) Apply(ctx *ginx.Context, req ApplyCouponReq, sess session.Session) (ginx.Result, error) {
	quote, err := h.svc.QuoteByCode(ctx, sess.Claims().Uid, req.Code, req.OrderValue)
	switch {
	case err == nil:
		return ginx.Result{Data: Quote{
			UserCouponID: quote.UserCouponID,
			CouponID:     quote.CouponID,
			Code:         quote.Code,
			Discount:     quote.Discount,
			Payable:      quote.Payable,
		}}, nil
	case errors.Is(err, service.ErrCouponNotFound):
		return couponNotFoundResult, err
	case errors.Is(err, service.ErrInvalidCoupon):
		return invalidCouponResult, err
	case errors.Is(err, service.ErrMinOrderNotMet):
		return minOrderNotMetResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Available(ctx *ginx.Context, req AvailableCouponsReq, sess session.Session) (ginx.Result, error) {
	ucs, err := h.svc.ListAvailable(ctx, sess.Claims().Uid, req.OrderValue)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: UserCouponsResp{
		Coupons: slice.Map(ucs, func(idx int, src domain.UserCoupon) UserCoupon {
			return toUserCouponVO(src)
		}),
	}}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	ucs, err := h.svc.Mine(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: UserCouponsResp{
		Coupons: slice.Map(ucs, func(idx int, src domain.UserCoupon) UserCoupon {
			return toUserCouponVO(src)
		}),
	}}, nil
}

func (h *Handler) History(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	records, err := h.svc.History(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: HistoryResp{
		Records: slice.Map(records, func(idx int, src domain.UsageRecord) UsageRecord {
			return UsageRecord{
				UserCouponID: src.UserCouponID,
				OrderID:      src.OrderID,
				Discount:     src.Discount,
				Action:       uint8(src.Action),
				Ctime:        src.Ctime,
			}
		}),
	}}, nil
}

func toUserCouponVO(uc domain.UserCoupon) UserCoupon {
	return UserCoupon{
		ID:            uc.ID,
		CouponID:      uc.CouponID,
		Code:          uc.Coupon.Code,
		Name:          uc.Coupon.Name,
		Type:          uc.Coupon.Type.ToUint8(),
		Value:         uc.Coupon.Value,
		MinOrderValue: uc.Coupon.MinOrderValue,
		MaxDiscount:   uc.Coupon.MaxDiscount,
		UsageLeft:     uc.UsageLeft,
		Status:        uc.Status.ToUint8(),
		ExpireAt:      uc.ExpireAt,
	}
}
