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
	"errors"

	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	"golang.org/x/sync/errgroup"
)

func (s *service) AdminList(ctx context.Context, offset, limit int, status domain.Status, keyword string) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.List(ctx, offset, limit, status, keyword)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, status, keyword)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *service) AdminDetail(ctx context.Context, orderID int64) (domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	return order, nil
}

// AdminUpdateStatus 管理端状态变更与用户取消共用同一状态机:
// 流转到已取消时执行完整的库存与优惠券恢复,不存在绕过路径
func (s *service) AdminUpdateStatus(ctx context.Context, orderID int64, target domain.Status) error {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if target == domain.StatusCancelled {
		return s.cancel(ctx, order)
	}
	if !order.Status.CanTransition(target) {
		return ErrInvalidStatus
	}
	err = s.repo.UpdateStatus(ctx, order.ID, order.Status, target)
	if errors.Is(err, repository.ErrStatusConflict) {
		return ErrInvalidStatus
	}
	return err
}
