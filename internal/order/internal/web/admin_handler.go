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
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[AdminListOrdersReq](h.List))
	g.POST("/detail", ginx.B[AdminOrderDetailReq](h.Detail))
	g.POST("/status", ginx.B[UpdateOrderStatusReq](h.UpdateStatus))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) List(ctx *ginx.Context, req AdminListOrdersReq) (ginx.Result, error) {
	offset, limit := req.OffsetLimit()
	orders, total, err := h.svc.AdminList(ctx, offset, limit, domain.Status(req.Status), req.Keyword)
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

func (h *AdminHandler) Detail(ctx *ginx.Context, req AdminOrderDetailReq) (ginx.Result, error) {
	order, err := h.svc.AdminDetail(ctx, req.OrderID)
	switch {
	case err == nil:
		return ginx.Result{Data: toOrderVO(order)}, nil
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateOrderStatusReq) (ginx.Result, error) {
	err := h.svc.AdminUpdateStatus(ctx, req.OrderID, domain.Status(req.Status))
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
