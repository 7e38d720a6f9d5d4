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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/list", ginx.B[ListProductsReq](h.List))
	g.POST("/detail", ginx.B[ProductDetailReq](h.Detail))
	g.POST("/stock", ginx.B[StockBySNReq](h.StockBySN))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, req ListProductsReq) (ginx.Result, error) {
	offset, limit := req.OffsetLimit()
	spus, total, err := h.svc.List(ctx.Request.Context(), offset, limit, domain.SPUFilter{
		Category:  req.Category,
		Target:    req.Target,
		Keyword:   req.Keyword,
		PriceAsc:  req.Sort == "price_asc",
		PriceDesc: req.Sort == "price_desc",
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询商品列表失败: %w", err)
	}
	return ginx.Result{
		Data: ListProductsResp{
			Total:       total,
			TotalPages:  totalPages(total, limit),
			CurrentPage: req.Page.Page,
			Products: slice.Map(spus, func(idx int, src domain.SPU) Product {
				return toProductVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req ProductDetailReq) (ginx.Result, error) {
	spu, err := h.svc.Detail(ctx.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return productNotFoundResult, nil
		}
		return systemErrorResult, fmt.Errorf("查询商品详情失败: %w", err)
	}
	if spu.Status != domain.StatusOnShelf {
		return productNotFoundResult, nil
	}
	return ginx.Result{
		Data: ProductDetailResp{Product: toProductVO(spu)},
	}, nil
}

func (h *Handler) StockBySN(ctx *ginx.Context, req StockBySNReq) (ginx.Result, error) {
	sku, err := h.svc.FindSKUBySN(ctx.Request.Context(), req.SN)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return skuNotFoundResult, nil
		}
		return systemErrorResult, fmt.Errorf("查询库存失败: %w", err)
	}
	return ginx.Result{
		Data: StockBySNResp{SKU: toSKUVO(sku)},
	}, nil
}

func toProductVO(spu domain.SPU) Product {
	return Product{
		ID:        spu.ID,
		Name:      spu.Name,
		Desc:      spu.Desc,
		Category:  spu.Category,
		Target:    spu.Target,
		Price:     spu.Price,
		Thumbnail: spu.Thumbnail,
		Status:    spu.Status.ToUint8(),
		Colors: slice.Map(spu.Colors, func(idx int, src domain.Color) Color {
			return Color{
				ID:     src.ID,
				Name:   src.Name,
				Images: src.Images,
				SKUs: slice.Map(src.SKUs, func(idx int, sku domain.SKU) SKU {
					return toSKUVO(sku)
				}),
			}
		}),
	}
}

func toSKUVO(sku domain.SKU) SKU {
	return SKU{
		SN:    sku.SN,
		Size:  sku.Size,
		Price: sku.Price,
		Stock: sku.Stock,
	}
}
