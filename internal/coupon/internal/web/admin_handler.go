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
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/coupon")
	g.POST("/save", ginx.B[SaveCouponReq](h.Save))
	g.POST("/list", ginx.B[ListCouponsReq](h.List))
	g.POST("/detail", ginx.B[CouponIDReq](h.Detail))
	g.POST("/delete", ginx.B[CouponIDReq](h.Delete))

	ug := server.Group("/user-coupon")
	ug.POST("/grant", ginx.B[GrantCouponReq](h.Grant))
	ug.POST("/update", ginx.B[UpdateUserCouponReq](h.Update))
	ug.POST("/cancel", ginx.B[UserCouponIDReq](h.Cancel))
	ug.POST("/list", ginx.B[ListUserCouponsReq](h.ListUserCoupons))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveCouponReq) (ginx.Result, error) {
	id, err := h.svc.SaveCoupon(ctx, toCouponDomain(req.Coupon))
	switch {
	case err == nil:
		return ginx.Result{Data: SaveCouponResp{ID: id}}, nil
	case errors.Is(err, service.ErrDuplicateCode):
		return duplicateCodeResult, err
	case errors.Is(err, service.ErrCouponInUse):
		return couponInUseResult, err
	case errors.Is(err, service.ErrCouponNotFound):
		return couponNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListCouponsReq) (ginx.Result, error) {
	offset, limit := req.OffsetLimit()
	cs, total, err := h.svc.ListCoupons(ctx, offset, limit, req.Keyword)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ListCouponsResp{
		Total:       total,
		TotalPages:  totalPages(total, limit),
		CurrentPage: offset/limit + 1,
		Coupons: slice.Map(cs, func(idx int, src domain.Coupon) Coupon {
			return toCouponVO(src)
		}),
	}}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req CouponIDReq) (ginx.Result, error) {
	c, err := h.svc.DetailCoupon(ctx, req.ID)
	switch {
	case err == nil:
		return ginx.Result{Data: toCouponVO(c)}, nil
	case errors.Is(err, service.ErrCouponNotFound):
		return couponNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req CouponIDReq) (ginx.Result, error) {
	err := h.svc.DeleteCoupon(ctx, req.ID)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrCouponInUse):
		return couponInUseResult, err
	case errors.Is(err, service.ErrCouponNotFound):
		return couponNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) Grant(ctx *ginx.Context, req GrantCouponReq) (ginx.Result, error) {
	id, err := h.svc.GrantToUser(ctx, req.UID, req.CouponID)
	switch {
	case err == nil:
		return ginx.Result{Data: GrantCouponResp{UserCouponID: id}}, nil
	case errors.Is(err, service.ErrCouponNotFound):
		return couponNotFoundResult, err
	case errors.Is(err, service.ErrDuplicateGrant):
		return duplicateGrantResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) Update(ctx *ginx.Context, req UpdateUserCouponReq) (ginx.Result, error) {
	update := domain.UserCouponUpdate{
		ID:        req.ID,
		UsageLeft: req.UsageLeft,
		ExpireAt:  req.ExpireAt,
	}
	if req.Status != nil {
		status := domain.UserCouponStatus(*req.Status)
		update.Status = &status
	}
	err := h.svc.UpdateUserCoupon(ctx, update)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrUserCouponNotFound):
		return couponNotFoundResult, err
	case errors.Is(err, service.ErrInvalidUpdate):
		return invalidUpdateResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) Cancel(ctx *ginx.Context, req UserCouponIDReq) (ginx.Result, error) {
	err := h.svc.CancelUserCoupon(ctx, req.ID)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrUserCouponUsed):
		return userCouponUsedResult, err
	case errors.Is(err, service.ErrUserCouponNotFound):
		return couponNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) ListUserCoupons(ctx *ginx.Context, req ListUserCouponsReq) (ginx.Result, error) {
	ucs, err := h.svc.ListUserCoupons(ctx, req.UID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: UserCouponsResp{
		Coupons: slice.Map(ucs, func(idx int, src domain.UserCoupon) UserCoupon {
			return toUserCouponVO(src)
		}),
	}}, nil
}

func toCouponDomain(c Coupon) domain.Coupon {
	return domain.Coupon{
		ID:              c.ID,
		Code:            c.Code,
		Name:            c.Name,
		Type:            domain.Type(c.Type),
		Value:           c.Value,
		MinOrderValue:   c.MinOrderValue,
		MaxDiscount:     c.MaxDiscount,
		StartAt:         c.StartAt,
		EndAt:           c.EndAt,
		MaxUsage:        c.MaxUsage,
		MaxUsagePerUser: c.MaxUsagePerUser,
		Status:          domain.CouponStatus(c.Status),
	}
}

func toCouponVO(c domain.Coupon) Coupon {
	return Coupon{
		ID:              c.ID,
		Code:            c.Code,
		Name:            c.Name,
		Type:            c.Type.ToUint8(),
		Value:           c.Value,
		MinOrderValue:   c.MinOrderValue,
		MaxDiscount:     c.MaxDiscount,
		StartAt:         c.StartAt,
		EndAt:           c.EndAt,
		MaxUsage:        c.MaxUsage,
		MaxUsagePerUser: c.MaxUsagePerUser,
		UsedCount:       c.UsedCount,
		Status:          c.Status.ToUint8(),
		Utime:           c.Utime,
	}
}
