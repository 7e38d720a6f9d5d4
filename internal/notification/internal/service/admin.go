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
	"time"

	"github.com/ecodeclub/eshop/internal/notification/internal/domain"
	"github.com/ecodeclub/eshop/internal/notification/internal/repository"
	"github.com/ecodeclub/eshop/internal/user"
	"golang.org/x/sync/errgroup"
)

// ErrAlreadyPublished 已对用户可见的通知不允许再修改或删除
var ErrAlreadyPublished = errors.New("通知已发布,不能修改或删除")

type AdminService interface {
	// Save ID为0时新建,uids为空则推送给全部未禁用用户;
	// 更新只允许发生在生效时间之前
	Save(ctx context.Context, n domain.Notification, uids []int64) (int64, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int, typ string) ([]domain.Notification, int64, error)
}

type adminService struct {
	repo    repository.NotificationRepository
	userSvc user.Service
}

func NewAdminService(repo repository.NotificationRepository, userSvc user.Service) AdminService {
	return &adminService{repo: repo, userSvc: userSvc}
}

func (s *adminService) Save(ctx context.Context, n domain.Notification, uids []int64) (int64, error) {
	if n.StartAt == 0 {
		n.StartAt = time.Now().UnixMilli()
	}
	if n.ID > 0 {
		return n.ID, s.update(ctx, n)
	}
	n.Global = len(uids) == 0
	if n.Global {
		var err error
		uids, err = s.userSvc.ActiveIDs(ctx)
		if err != nil {
			return 0, err
		}
	}
	return s.repo.Create(ctx, n, uids)
}

func (s *adminService) update(ctx context.Context, n domain.Notification) error {
	existing, err := s.repo.FindByID(ctx, n.ID)
	if err != nil {
		return err
	}
	if existing.Published(time.Now().UnixMilli()) {
		return ErrAlreadyPublished
	}
	return s.repo.Update(ctx, n)
}

func (s *adminService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Published(time.Now().UnixMilli()) {
		return ErrAlreadyPublished
	}
	return s.repo.Delete(ctx, id)
}

func (s *adminService) List(ctx context.Context, offset, limit int, typ string) ([]domain.Notification, int64, error) {
	var eg errgroup.Group
	var ns []domain.Notification
	var total int64
	eg.Go(func() error {
		var err error
		ns, err = s.repo.List(ctx, offset, limit, typ)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, typ)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return ns, total, nil
}
