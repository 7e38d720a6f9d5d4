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

type AdminHandler struct {
	svc        service.AdminService
	productSvc service.Service
}

func NewAdminHandler(svc service.AdminService, productSvc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc, productSvc: productSvc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/save", ginx.B[SaveProductReq](h.Save))
	g.POST("/list", ginx.B[ListProductsReq](h.List))
	g.POST("/detail", ginx.B[ProductIDReq](h.Detail))
	g.POST("/off-shelf", ginx.B[ProductIDReq](h.OffShelf))
	g.POST("/on-shelf", ginx.B[ProductIDReq](h.OnShelf))
	g.POST("/stock/save", ginx.B[SetStockReq](h.SetStock))
	g.POST("/sku/add", ginx.B[AddSKUReq](h.AddSKU))
	g.POST("/stock/check", ginx.B[CheckStockReq](h.CheckStock))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveProductReq) (ginx.Result, error) {
	id, err := h.svc.SaveSPU(ctx.Request.Context(), domain.SPU{
		ID:        req.Product.ID,
		Name:      req.Product.Name,
		Desc:      req.Product.Desc,
		Category:  req.Product.Category,
		Target:    req.Product.Target,
		Price:     req.Product.Price,
		Thumbnail: req.Product.Thumbnail,
		Colors: slice.Map(req.Product.Colors, func(idx int, src Color) domain.Color {
			return domain.Color{
				ID:     src.ID,
				Name:   src.Name,
				Images: src.Images,
			}
		}),
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("保存商品失败: %w", err)
	}
	return ginx.Result{Data: SaveProductResp{ID: id}}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListProductsReq) (ginx.Result, error) {
	offset, limit := req.OffsetLimit()
	spus, total, err := h.svc.List(ctx.Request.Context(), offset, limit, domain.SPUFilter{
		Category: req.Category,
		Target:   req.Target,
		Keyword:  req.Keyword,
	})
	if err != nil {
		return systemErrorResult, err
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

func (h *AdminHandler) Detail(ctx *ginx.Context, req ProductIDReq) (ginx.Result, error) {
	spu, err := h.svc.Detail(ctx.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return productNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Data: ProductDetailResp{Product: toProductVO(spu)}}, nil
}

func (h *AdminHandler) OffShelf(ctx *ginx.Context, req ProductIDReq) (ginx.Result, error) {
	err := h.svc.OffShelf(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("下架商品失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) OnShelf(ctx *ginx.Context, req ProductIDReq) (ginx.Result, error) {
	err := h.svc.OnShelf(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("上架商品失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) SetStock(ctx *ginx.Context, req SetStockReq) (ginx.Result, error) {
	err := h.svc.SetStock(ctx.Request.Context(), req.SN, req.Stock)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return skuNotFoundResult, nil
		}
		return systemErrorResult, fmt.Errorf("更新库存失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) AddSKU(ctx *ginx.Context, req AddSKUReq) (ginx.Result, error) {
	sku, err := h.svc.AddSKU(ctx.Request.Context(), req.ColorID, req.Size, req.Stock)
	if err != nil {
		return systemErrorResult, fmt.Errorf("新增SKU失败: %w", err)
	}
	return ginx.Result{Data: AddSKUResp{SKU: toSKUVO(sku)}}, nil
}

func (h *AdminHandler) CheckStock(ctx *ginx.Context, req CheckStockReq) (ginx.Result, error) {
	queries := slice.Map(req.Items, func(idx int, src CheckStockItem) domain.StockQuery {
		return domain.StockQuery{SN: src.SN, Quantity: src.Quantity}
	})
	results, err := h.productSvc.BatchCheckStock(ctx.Request.Context(), queries)
	if err != nil {
		return systemErrorResult, fmt.Errorf("批量校验库存失败: %w", err)
	}
	return ginx.Result{
		Data: CheckStockResp{
			Results: slice.Map(results, func(idx int, src domain.StockCheckResult) StockCheckResult {
				return StockCheckResult{
					SN:        src.SN,
					Name:      src.Name,
					Size:      src.Size,
					Requested: src.Requested,
					Available: src.Available,
					Enough:    src.Enough,
				}
			}),
		},
	}, nil
}
