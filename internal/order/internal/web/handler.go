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
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc   service.Service
	cache ecache.Cache
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.Create))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.Cancel))
	g.POST("/list", ginx.BS[ListOrdersReq](h.List))
	g.POST("/detail", ginx.BS[OrderDetailReq](h.Detail))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Create(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return duplicateRequestResult, fmt.Errorf("请求ID错误: %w", err)
	}
	order, err := h.svc.CreateOrder(ctx, sess.Claims().Uid, domain.Shipping{
		Fullname: req.Fullname,
		Phone:    req.Phone,
		Address:  req.Address,
	}, req.UserCouponID)
	switch {
	case err == nil:
		return ginx.Result{Data: CreateOrderResp{
			OrderID:      order.ID,
			SN:           order.SN,
			TotalPrice:   order.TotalPrice,
			Discount:     order.Discount,
			PaymentPrice: order.PaymentPrice,
		}}, nil
	case errors.Is(err, service.ErrEmptyCart):
		return emptyCartResult, err
	case errors.Is(err, service.ErrInsufficientStock):
		return insufficientStockResult, err
	case errors.Is(err, service.ErrSKUNotFound):
		return skuNotFoundResult, err
	case errors.Is(err, service.ErrInvalidCoupon):
		return invalidCouponResult, err
	case errors.Is(err, service.ErrMinOrderNotMet):
		return minOrderNotMetResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := h.createOrderRequestKey(requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) createOrderRequestKey(requestID string) string {
	return fmt.Sprintf("order:create:%s", requestID)
}

func (h *Handler) Cancel(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelOrder(ctx, sess.Claims().Uid, req.OrderID)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, err
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidStatusResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) List(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	offset, limit := req.OffsetLimit()
	orders, total, err := h.svc.List(ctx, sess.Claims().Uid, offset, limit, domain.Status(req.Status))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ListOrdersResp{
		Total:       total,
		TotalPages:  totalPages(total, limit),
		CurrentPage: offset/limit + 1,
		Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
			return toOrderVO(src)
		}),
	}}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req OrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.Detail(ctx, sess.Claims().Uid, req.OrderID)
	switch {
	case err == nil:
		return ginx.Result{Data: toOrderVO(order)}, nil
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func toOrderVO(o domain.Order) Order {
	return Order{
		ID:           o.ID,
		SN:           o.SN,
		UID:          o.UID,
		Fullname:     o.Shipping.Fullname,
		Phone:        o.Shipping.Phone,
		Address:      o.Shipping.Address,
		TotalPrice:   o.TotalPrice,
		PaymentPrice: o.PaymentPrice,
		Discount:     o.Discount,
		UserCouponID: o.UserCouponID,
		Status:       o.Status.ToUint8(),
		Items: slice.Map(o.Items, func(idx int, src domain.Item) OrderItem {
			return OrderItem{
				SPUID:    src.SPUID,
				SN:       src.SKUSN,
				Name:     src.Name,
				Size:     src.Size,
				Image:    src.Image,
				Price:    src.Price,
				Quantity: src.Quantity,
				Subtotal: src.Subtotal(),
			}
		}),
		Ctime:       o.Ctime,
		CancelledAt: o.CancelledAt,
	}
}
