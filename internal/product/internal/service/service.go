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

package service

import (
	"context"
	"fmt"

	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/repository"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSPUNotFound       = dao.ErrSPUNotFound
	ErrSKUNotFound       = dao.ErrSKUNotFound
	ErrInsufficientStock = dao.ErrInsufficientStock
)

type Service interface {
	List(ctx context.Context, offset, limit int, f domain.SPUFilter) ([]domain.SPU, int64, error)
	Detail(ctx context.Context, id int64) (domain.SPU, error)
	// FindSPUByID 只返回SPU本身,不加载颜色与库存
	FindSPUByID(ctx context.Context, id int64) (domain.SPU, error)
	FindSKUBySN(ctx context.Context, sn string) (domain.SKU, error)
	// DeductStock 原子扣减库存,库存不足时返回 ErrInsufficientStock
	DeductStock(ctx context.Context, sn string, quantity int64) error
	// RestoreStock 原子回补库存,是 DeductStock 的逆操作
	RestoreStock(ctx context.Context, sn string, quantity int64) error
	BatchCheckStock(ctx context.Context, queries []domain.StockQuery) ([]domain.StockCheckResult, error)
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) List(ctx context.Context, offset, limit int, f domain.SPUFilter) ([]domain.SPU, int64, error) {
	var (
		eg    errgroup.Group
		spus  []domain.SPU
		total int64
	)
	eg.Go(func() error {
		var err error
		spus, err = s.repo.ListSPUs(ctx, offset, limit, f)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountSPUs(ctx, f)
		return err
	})
	return spus, total, eg.Wait()
}

func (s *service) Detail(ctx context.Context, id int64) (domain.SPU, error) {
	return s.repo.FindSPUDetail(ctx, id)
}

func (s *service) FindSPUByID(ctx context.Context, id int64) (domain.SPU, error) {
	return s.repo.FindSPUByID(ctx, id)
}

func (s *service) FindSKUBySN(ctx context.Context, sn string) (domain.SKU, error) {
	return s.repo.FindSKUBySN(ctx, sn)
}

func (s *service) DeductStock(ctx context.Context, sn string, quantity int64) error {
	if quantity < 1 {
		return fmt.Errorf("扣减数量非法: %d", quantity)
	}
	return s.repo.AdjustStock(ctx, sn, -quantity)
}

func (s *service) RestoreStock(ctx context.Context, sn string, quantity int64) error {
	if quantity < 1 {
		return fmt.Errorf("回补数量非法: %d", quantity)
	}
	return s.repo.AdjustStock(ctx, sn, quantity)
}

func (s *service) BatchCheckStock(ctx context.Context, queries []domain.StockQuery) ([]domain.StockCheckResult, error) {
	res := make([]domain.StockCheckResult, 0, len(queries))
	for _, q := range queries {
		sku, err := s.repo.FindSKUBySN(ctx, q.SN)
		if err != nil {
			res = append(res, domain.StockCheckResult{
				SN:        q.SN,
				Requested: q.Quantity,
				Enough:    false,
			})
			continue
		}
		res = append(res, domain.StockCheckResult{
			SN:        sku.SN,
			Name:      sku.Name,
			Size:      sku.Size,
			Requested: q.Quantity,
			Available: sku.Stock,
			Enough:    sku.Stock >= q.Quantity,
		})
	}
	return res, nil
}
