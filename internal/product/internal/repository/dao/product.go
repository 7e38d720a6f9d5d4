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

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrSPUNotFound = gorm.ErrRecordNotFound
	ErrSKUNotFound = gorm.ErrRecordNotFound
	// ErrInsufficientStock 扣减库存时余量不足
	ErrInsufficientStock = errors.New("库存不足")
	// ErrDuplicateSKU 同一颜色下尺码已存在
	ErrDuplicateSKU = errors.New("SKU已存在")
)

type ProductDAO interface {
	CreateSPU(ctx context.Context, spu SPU, colors []ProductColor) (int64, error)
	UpdateSPU(ctx context.Context, spu SPU) error
	UpdateSPUStatus(ctx context.Context, id int64, status uint8) error
	FindSPUByID(ctx context.Context, id int64) (SPU, error)
	ListSPUs(ctx context.Context, offset, limit int, f domain.SPUFilter) ([]SPU, error)
	CountSPUs(ctx context.Context, f domain.SPUFilter) (int64, error)

	FindColorsBySPUID(ctx context.Context, spuId int64) ([]ProductColor, error)
	FindColorByID(ctx context.Context, id int64) (ProductColor, error)

	CreateSKU(ctx context.Context, sku ProductSKU) (int64, error)
	FindSKUBySN(ctx context.Context, sn string) (ProductSKU, error)
	FindSKUsByColorID(ctx context.Context, colorId int64) ([]ProductSKU, error)
	SetStock(ctx context.Context, sn string, stock int64) error
	// AdjustStock 以单条条件UPDATE的方式应用 stock += delta,
	// 结果为负时拒绝并返回 ErrInsufficientStock。
	// 这是工作流引擎扣减/回补库存的唯一合法入口。
	AdjustStock(ctx context.Context, sn string, delta int64) error
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) CreateSPU(ctx context.Context, spu SPU, colors []ProductColor) (int64, error) {
	now := time.Now().UnixMilli()
	spu.Ctime, spu.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&spu).Error; err != nil {
			return err
		}
		for i := range colors {
			colors[i].SPUId = spu.Id
			colors[i].Ctime, colors[i].Utime = now, now
		}
		if len(colors) == 0 {
			return nil
		}
		return tx.Create(&colors).Error
	})
	return spu.Id, err
}

func (d *ProductGORMDAO) UpdateSPU(ctx context.Context, spu SPU) error {
	spu.Utime = time.Now().UnixMilli()
	return d.db.WithContext(ctx).Model(&SPU{}).Where("id = ?", spu.Id).
		Updates(map[string]any{
			"Name":      spu.Name,
			"Description": spu.Description,
			"Category":  spu.Category,
			"Target":    spu.Target,
			"Price":     spu.Price,
			"Thumbnail": spu.Thumbnail,
			"Utime":     spu.Utime,
		}).Error
}

// UpdateSPUStatus 上架/下架,下架即软删除,商品被订单引用后永不物理删除
func (d *ProductGORMDAO) UpdateSPUStatus(ctx context.Context, id int64, status uint8) error {
	return d.db.WithContext(ctx).Model(&SPU{}).Where("id = ?", id).
		Updates(map[string]any{
			"Status": status,
			"Utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *ProductGORMDAO) FindSPUByID(ctx context.Context, id int64) (SPU, error) {
	var res SPU
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) ListSPUs(ctx context.Context, offset, limit int, f domain.SPUFilter) ([]SPU, error) {
	var res []SPU
	err := d.buildSPUQuery(ctx, f).Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) CountSPUs(ctx context.Context, f domain.SPUFilter) (int64, error) {
	var count int64
	err := d.buildSPUQuery(ctx, f).Count(&count).Error
	return count, err
}

func (d *ProductGORMDAO) buildSPUQuery(ctx context.Context, f domain.SPUFilter) *gorm.DB {
	query := d.db.WithContext(ctx).Model(&SPU{})
	if !f.IncludeOffShelf {
		query = query.Where("status = ?", domain.StatusOnShelf.ToUint8())
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Target != "" {
		query = query.Where("target = ?", f.Target)
	}
	if f.Keyword != "" {
		query = query.Where("name LIKE ?", "%"+f.Keyword+"%")
	}
	switch {
	case f.PriceAsc:
		query = query.Order("price ASC")
	case f.PriceDesc:
		query = query.Order("price DESC")
	default:
		query = query.Order("ctime DESC")
	}
	return query
}

func (d *ProductGORMDAO) FindColorsBySPUID(ctx context.Context, spuId int64) ([]ProductColor, error) {
	var res []ProductColor
	err := d.db.WithContext(ctx).Where("spu_id = ?", spuId).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindColorByID(ctx context.Context, id int64) (ProductColor, error) {
	var res ProductColor
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) CreateSKU(ctx context.Context, sku ProductSKU) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&ProductSKU{}).
		Where("color_id = ? AND size = ?", sku.ColorId, sku.Size).Count(&count).Error
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, fmt.Errorf("%w: colorID=%d, size=%s", ErrDuplicateSKU, sku.ColorId, sku.Size)
	}
	now := time.Now().UnixMilli()
	sku.Ctime, sku.Utime = now, now
	err = d.db.WithContext(ctx).Create(&sku).Error
	return sku.Id, err
}

func (d *ProductGORMDAO) FindSKUBySN(ctx context.Context, sn string) (ProductSKU, error) {
	var res ProductSKU
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindSKUsByColorID(ctx context.Context, colorId int64) ([]ProductSKU, error) {
	var res []ProductSKU
	err := d.db.WithContext(ctx).Where("color_id = ?", colorId).Order("size ASC").Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) SetStock(ctx context.Context, sn string, stock int64) error {
	result := d.db.WithContext(ctx).Model(&ProductSKU{}).Where("sn = ?", sn).
		Updates(map[string]any{
			"Stock": stock,
			"Utime": time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrSKUNotFound, sn)
	}
	return nil
}

func (d *ProductGORMDAO) AdjustStock(ctx context.Context, sn string, delta int64) error {
	// stock >= -delta 的条件保证并发扣减不会把库存扣成负数,
	// 两个并发请求合计超卖时只有一个UPDATE能命中
	result := d.db.WithContext(ctx).Model(&ProductSKU{}).
		Where("sn = ? AND stock + ? >= 0", sn, delta).
		Updates(map[string]any{
			"Stock": gorm.Expr("stock + ?", delta),
			"Utime": time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		_, err := d.FindSKUBySN(ctx, sn)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrSKUNotFound, sn)
		}
		return fmt.Errorf("%w: %s", ErrInsufficientStock, sn)
	}
	return nil
}

type SPU struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:商品SPU自增ID"`
	Name        string `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description string `gorm:"not null;comment:商品描述"`
	Category    string `gorm:"type:varchar(255);not null;index:idx_category;comment:商品分类"`
	Target      string `gorm:"type:varchar(255);not null;index:idx_target;comment:目标人群"`
	Price       int64  `gorm:"not null;comment:商品单价;单位为最小货币单位"`
	Thumbnail   string `gorm:"type:varchar(512);not null;comment:商品缩略图,CDN绝对路径"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:2;comment:状态 1=下架 2=上架"`
	Ctime       int64
	Utime       int64
}

type ProductColor struct {
	Id     int64                       `gorm:"primaryKey;autoIncrement;comment:商品颜色自增ID"`
	SPUId  int64                       `gorm:"column:spu_id;not null;index:idx_spu_id;comment:商品SPU自增ID"`
	Name   string                      `gorm:"type:varchar(255);not null;comment:颜色名称"`
	Images sqlx.JsonColumn[[]string]   `gorm:"type:varchar(2048);comment:颜色图片列表,JSON格式"`
	Ctime  int64
	Utime  int64
}

type ProductSKU struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:商品SKU自增ID"`
	SN      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_sku_sn;comment:SKU序列号,格式为productID_colorID_size_version"`
	SPUId   int64  `gorm:"column:spu_id;not null;index:idx_spu_id;comment:商品SPU自增ID"`
	ColorId int64  `gorm:"not null;index:idx_color_id;comment:商品颜色自增ID"`
	Size    string `gorm:"type:varchar(64);not null;comment:尺码"`
	Version int64  `gorm:"not null;default:1;comment:SKU版本号"`
	Stock   int64  `gorm:"not null;comment:库存数量,恒不为负"`
	Status  uint8  `gorm:"type:tinyint unsigned;not null;default:2;comment:状态 1=下架 2=上架"`
	Ctime   int64
	Utime   int64
}
