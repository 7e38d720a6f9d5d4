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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/dao"
)

func sqlxJSON(images []string) sqlx.JsonColumn[[]string] {
	return sqlx.JsonColumn[[]string]{Val: images, Valid: len(images) > 0}
}

type ProductRepository interface {
	CreateSPU(ctx context.Context, spu domain.SPU) (int64, error)
	UpdateSPU(ctx context.Context, spu domain.SPU) error
	UpdateSPUStatus(ctx context.Context, id int64, status domain.Status) error
	FindSPUByID(ctx context.Context, id int64) (domain.SPU, error)
	// FindSPUDetail 返回SPU及其全部颜色与尺码库存
	FindSPUDetail(ctx context.Context, id int64) (domain.SPU, error)
	ListSPUs(ctx context.Context, offset, limit int, f domain.SPUFilter) ([]domain.SPU, error)
	CountSPUs(ctx context.Context, f domain.SPUFilter) (int64, error)

	FindColorByID(ctx context.Context, id int64) (domain.Color, error)
	CreateSKU(ctx context.Context, sku domain.SKU) (int64, error)
	// FindSKUBySN 返回的SKU冗余了所属SPU的价格与名称
	FindSKUBySN(ctx context.Context, sn string) (domain.SKU, error)
	SetStock(ctx context.Context, sn string, stock int64) error
	AdjustStock(ctx context.Context, sn string, delta int64) error
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{dao: d}
}

type productRepository struct {
	dao dao.ProductDAO
}

func (p *productRepository) CreateSPU(ctx context.Context, spu domain.SPU) (int64, error) {
	colors := slice.Map(spu.Colors, func(idx int, src domain.Color) dao.ProductColor {
		return p.toColorEntity(src)
	})
	return p.dao.CreateSPU(ctx, p.toSPUEntity(spu), colors)
}

func (p *productRepository) UpdateSPU(ctx context.Context, spu domain.SPU) error {
	return p.dao.UpdateSPU(ctx, p.toSPUEntity(spu))
}

func (p *productRepository) UpdateSPUStatus(ctx context.Context, id int64, status domain.Status) error {
	return p.dao.UpdateSPUStatus(ctx, id, status.ToUint8())
}

func (p *productRepository) FindSPUByID(ctx context.Context, id int64) (domain.SPU, error) {
	spu, err := p.dao.FindSPUByID(ctx, id)
	if err != nil {
		return domain.SPU{}, err
	}
	return p.toSPUDomain(spu), nil
}

func (p *productRepository) FindSPUDetail(ctx context.Context, id int64) (domain.SPU, error) {
	spu, err := p.dao.FindSPUByID(ctx, id)
	if err != nil {
		return domain.SPU{}, err
	}
	res := p.toSPUDomain(spu)
	colors, err := p.dao.FindColorsBySPUID(ctx, id)
	if err != nil {
		return domain.SPU{}, err
	}
	res.Colors = make([]domain.Color, 0, len(colors))
	for _, c := range colors {
		color := p.toColorDomain(c)
		skus, er := p.dao.FindSKUsByColorID(ctx, c.Id)
		if er != nil {
			return domain.SPU{}, er
		}
		color.SKUs = slice.Map(skus, func(idx int, src dao.ProductSKU) domain.SKU {
			return p.toSKUDomain(src, spu)
		})
		res.Colors = append(res.Colors, color)
	}
	return res, nil
}

func (p *productRepository) ListSPUs(ctx context.Context, offset, limit int, f domain.SPUFilter) ([]domain.SPU, error) {
	spus, err := p.dao.ListSPUs(ctx, offset, limit, f)
	if err != nil {
		return nil, err
	}
	return slice.Map(spus, func(idx int, src dao.SPU) domain.SPU {
		return p.toSPUDomain(src)
	}), nil
}

func (p *productRepository) CountSPUs(ctx context.Context, f domain.SPUFilter) (int64, error) {
	return p.dao.CountSPUs(ctx, f)
}

func (p *productRepository) FindColorByID(ctx context.Context, id int64) (domain.Color, error) {
	c, err := p.dao.FindColorByID(ctx, id)
	if err != nil {
		return domain.Color{}, err
	}
	return p.toColorDomain(c), nil
}

func (p *productRepository) CreateSKU(ctx context.Context, sku domain.SKU) (int64, error) {
	return p.dao.CreateSKU(ctx, dao.ProductSKU{
		SN:      sku.SN,
		SPUId:   sku.SPUID,
		ColorId: sku.ColorID,
		Size:    sku.Size,
		Version: sku.Version,
		Stock:   sku.Stock,
		Status:  domain.StatusOnShelf.ToUint8(),
	})
}

func (p *productRepository) FindSKUBySN(ctx context.Context, sn string) (domain.SKU, error) {
	sku, err := p.dao.FindSKUBySN(ctx, sn)
	if err != nil {
		return domain.SKU{}, err
	}
	spu, err := p.dao.FindSPUByID(ctx, sku.SPUId)
	if err != nil {
		return domain.SKU{}, err
	}
	return p.toSKUDomain(sku, spu), nil
}

func (p *productRepository) SetStock(ctx context.Context, sn string, stock int64) error {
	return p.dao.SetStock(ctx, sn, stock)
}

func (p *productRepository) AdjustStock(ctx context.Context, sn string, delta int64) error {
	return p.dao.AdjustStock(ctx, sn, delta)
}

func (p *productRepository) toSPUEntity(spu domain.SPU) dao.SPU {
	return dao.SPU{
		Id:          spu.ID,
		Name:        spu.Name,
		Description: spu.Desc,
		Category:    spu.Category,
		Target:      spu.Target,
		Price:       spu.Price,
		Thumbnail:   spu.Thumbnail,
		Status:      spu.Status.ToUint8(),
	}
}

func (p *productRepository) toSPUDomain(spu dao.SPU) domain.SPU {
	return domain.SPU{
		ID:        spu.Id,
		Name:      spu.Name,
		Desc:      spu.Description,
		Category:  spu.Category,
		Target:    spu.Target,
		Price:     spu.Price,
		Thumbnail: spu.Thumbnail,
		Status:    domain.Status(spu.Status),
		Ctime:     spu.Ctime,
		Utime:     spu.Utime,
	}
}

func (p *productRepository) toColorEntity(c domain.Color) dao.ProductColor {
	images := sqlxJSON(c.Images)
	return dao.ProductColor{
		Id:     c.ID,
		SPUId:  c.SPUID,
		Name:   c.Name,
		Images: images,
	}
}

func (p *productRepository) toColorDomain(c dao.ProductColor) domain.Color {
	return domain.Color{
		ID:     c.Id,
		SPUID:  c.SPUId,
		Name:   c.Name,
		Images: c.Images.Val,
	}
}

func (p *productRepository) toSKUDomain(sku dao.ProductSKU, spu dao.SPU) domain.SKU {
	// SPU 下架时其下 SKU 也视为下架
	status := domain.Status(sku.Status)
	if domain.Status(spu.Status) == domain.StatusOffShelf {
		status = domain.StatusOffShelf
	}
	return domain.SKU{
		ID:      sku.Id,
		SN:      sku.SN,
		SPUID:   sku.SPUId,
		ColorID: sku.ColorId,
		Size:    sku.Size,
		Version: sku.Version,
		Price:   spu.Price,
		Name:    spu.Name,
		Image:   spu.Thumbnail,
		Stock:   sku.Stock,
		Status:  status,
	}
}
