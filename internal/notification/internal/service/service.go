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
	"golang.org/x/sync/errgroup"
)

var ErrNotificationNotFound = repository.ErrNotificationNotFound

type Service interface {
	// List 返回用户可见的通知,合并已读状态
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.UserNotification, int64, error)
	MarkRead(ctx context.Context, uid, id int64) error
	MarkAllRead(ctx context.Context, uid int64) error
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	// SendToUser 面向单个用户投递一条立即生效的通知
	SendToUser(ctx context.Context, uid int64, typ, title, message string) error
}

type service struct {
	repo repository.NotificationRepository
}

func NewService(repo repository.NotificationRepository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.UserNotification, int64, error) {
	now := time.Now().UnixMilli()
	var eg errgroup.Group
	var uns []domain.UserNotification
	var total int64
	eg.Go(func() error {
		var err error
		uns, err = s.repo.ListByUID(ctx, uid, offset, limit, now)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUID(ctx, uid, now)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return uns, total, nil
}

func (s *service) MarkRead(ctx context.Context, uid, id int64) error {
	err := s.repo.MarkRead(ctx, uid, id)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return ErrNotificationNotFound
	}
	return err
}

func (s *service) MarkAllRead(ctx context.Context, uid int64) error {
	return s.repo.MarkAllRead(ctx, uid)
}

func (s *service) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return s.repo.UnreadCount(ctx, uid, time.Now().UnixMilli())
}

func (s *service) SendToUser(ctx context.Context, uid int64, typ, title, message string) error {
	_, err := s.repo.Create(ctx, domain.Notification{
		Title:   title,
		Type:    typ,
		Message: message,
		StartAt: time.Now().UnixMilli(),
	}, []int64{uid})
	return err
}
