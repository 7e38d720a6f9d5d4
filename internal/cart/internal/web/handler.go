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

	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/service"
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
	g := server.Group("/cart")
	g.POST("/add", ginx.BS[AddCartItemReq](h.AddItem))
	g.POST("/update", ginx.BS[UpdateCartItemReq](h.UpdateQuantity))
	g.POST("/delete", ginx.BS[DeleteCartItemReq](h.RemoveItem))
	g.POST("/clear", ginx.S(h.Clear))
	g.POST("/list", ginx.S(h.List))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) AddItem(ctx *ginx.Context, req AddCartItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.AddItem(ctx, sess.Claims().Uid, req.SN, req.Quantity)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrInvalidQuantity):
		return invalidQuantityResult, err
	case errors.Is(err, service.ErrSKUNotFound):
		return skuNotFoundResult, err
	case errors.Is(err, service.ErrInsufficientStock):
		return insufficientStockResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) UpdateQuantity(ctx *ginx.Context, req UpdateCartItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateQuantity(ctx, sess.Claims().Uid, req.SN, req.Quantity)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrInvalidQuantity):
		return invalidQuantityResult, err
	case errors.Is(err, service.ErrItemNotFound):
		return itemNotFoundResult, err
	case errors.Is(err, service.ErrSKUNotFound):
		return skuNotFoundResult, err
	case errors.Is(err, service.ErrInsufficientStock):
		return insufficientStockResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) RemoveItem(ctx *ginx.Context, req DeleteCartItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RemoveItem(ctx, sess.Claims().Uid, req.SN)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrItemNotFound):
		return itemNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Clear(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.Clear(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	items, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	resp := CartResp{Items: make([]CartItem, 0, len(items))}
	for _, item := range items {
		vo := toCartItemVO(item)
		if vo.Available {
			resp.TotalAmount += vo.Subtotal
		}
		resp.Items = append(resp.Items, vo)
	}
	return ginx.Result{Data: resp}, nil
}

func toCartItemVO(item domain.Item) CartItem {
	return CartItem{
		SN:        item.SKU.SN,
		SPUID:     item.SKU.SPUID,
		Name:      item.SKU.Name,
		Size:      item.SKU.Size,
		Image:     item.SKU.Image,
		Price:     item.SKU.Price,
		Quantity:  item.Quantity,
		Stock:     item.SKU.Stock,
		Available: item.SKU.OnShelf,
		Subtotal:  item.Subtotal(),
	}
}
