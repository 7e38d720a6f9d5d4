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
	"github.com/ecodeclub/eshop/internal/notification/internal/domain"
	"github.com/ecodeclub/eshop/internal/notification/internal/repository/dao"
)

var ErrNotificationNotFound = dao.ErrNotificationNotFound

type NotificationRepository interface {
	Create(ctx context.Context, n domain.Notification, uids []int64) (int64, error)
	Update(ctx context.Context, n domain.Notification) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (domain.Notification, error)
	List(ctx context.Context, offset, limit int, typ string) ([]domain.Notification, error)
	Count(ctx context.Context, typ string) (int64, error)

	ListByUID(ctx context.Context, uid int64, offset, limit int, now int64) ([]domain.UserNotification, error)
	CountByUID(ctx context.Context, uid int64, now int64) (int64, error)
	MarkRead(ctx context.Context, uid, id int64) error
	MarkAllRead(ctx context.Context, uid int64) error
	UnreadCount(ctx context.Context, uid int64, now int64) (int64, error)
}

type notificationRepository struct {
	dao dao.NotificationDAO
}

func NewNotificationRepository(d dao.NotificationDAO) NotificationRepository {
	return &notificationRepository{dao: d}
}

func (r *notificationRepository) Create(ctx context.Context, n domain.Notification, uids []int64) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(n), uids)
}

func (r *notificationRepository) Update(ctx context.Context, n domain.Notification) error {
	return r.dao.Update(ctx, r.toEntity(n))
}

func (r *notificationRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *notificationRepository) FindByID(ctx context.Context, id int64) (domain.Notification, error) {
	n, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Notification{}, err
	}
	return r.toDomain(n), nil
}

func (r *notificationRepository) List(ctx context.Context, offset, limit int, typ string) ([]domain.Notification, error) {
	ns, err := r.dao.List(ctx, offset, limit, typ)
	if err != nil {
		return nil, err
	}
	return slice.Map(ns, func(idx int, src dao.Notification) domain.Notification {
		return r.toDomain(src)
	}), nil
}

func (r *notificationRepository) Count(ctx context.Context, typ string) (int64, error) {
	return r.dao.Count(ctx, typ)
}

func (r *notificationRepository) ListByUID(ctx context.Context, uid int64, offset, limit int, now int64) ([]domain.UserNotification, error) {
	uns, err := r.dao.ListByUID(ctx, uid, offset, limit, now)
	if err != nil {
		return nil, err
	}
	return slice.Map(uns, func(idx int, src dao.UserNotificationDetail) domain.UserNotification {
		return domain.UserNotification{
			ID:  src.Id,
			UID: src.Uid,
			Notification: domain.Notification{
				ID:      src.NotificationId,
				Title:   src.Title,
				Type:    src.Type,
				Message: src.Message,
				StartAt: src.StartAt,
				EndAt:   src.EndAt,
			},
			Read:   src.IsRead,
			ReadAt: src.ReadAt,
			Ctime:  src.Ctime,
		}
	}), nil
}

func (r *notificationRepository) CountByUID(ctx context.Context, uid int64, now int64) (int64, error) {
	return r.dao.CountByUID(ctx, uid, now)
}

func (r *notificationRepository) MarkRead(ctx context.Context, uid, id int64) error {
	return r.dao.MarkRead(ctx, uid, id)
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, uid int64) error {
	return r.dao.MarkAllRead(ctx, uid)
}

func (r *notificationRepository) UnreadCount(ctx context.Context, uid int64, now int64) (int64, error) {
	return r.dao.UnreadCount(ctx, uid, now)
}

func (r *notificationRepository) toEntity(n domain.Notification) dao.Notification {
	return dao.Notification{
		Id:        n.ID,
		Title:     n.Title,
		Type:      n.Type,
		Message:   n.Message,
		StartAt:   n.StartAt,
		EndAt:     n.EndAt,
		Global:    n.Global,
		CreatedBy: n.CreatedBy,
	}
}

func (r *notificationRepository) toDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		ID:        n.Id,
		Title:     n.Title,
		Type:      n.Type,
		Message:   n.Message,
		StartAt:   n.StartAt,
		EndAt:     n.EndAt,
		Global:    n.Global,
		CreatedBy: n.CreatedBy,
		Ctime:     n.Ctime,
		Utime:     n.Utime,
	}
}
