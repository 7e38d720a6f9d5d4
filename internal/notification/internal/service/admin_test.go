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
	"testing"
	"time"

	"github.com/ecodeclub/eshop/internal/notification/internal/domain"
	"github.com/ecodeclub/eshop/internal/notification/internal/repository"
	"github.com/ecodeclub/eshop/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepository struct {
	repository.NotificationRepository
	existing    domain.Notification
	created     domain.Notification
	createdUIDs []int64
	updated     bool
	deleted     bool
}

func (f *fakeNotificationRepository) Create(ctx context.Context, n domain.Notification, uids []int64) (int64, error) {
	f.created = n
	f.createdUIDs = uids
	return 1, nil
}

func (f *fakeNotificationRepository) Update(ctx context.Context, n domain.Notification) error {
	f.updated = true
	return nil
}

func (f *fakeNotificationRepository) Delete(ctx context.Context, id int64) error {
	f.deleted = true
	return nil
}

func (f *fakeNotificationRepository) FindByID(ctx context.Context, id int64) (domain.Notification, error) {
	return f.existing, nil
}

type fakeUserService struct {
	user.Service
	activeIDs []int64
}

func (f *fakeUserService) ActiveIDs(ctx context.Context) ([]int64, error) {
	return f.activeIDs, nil
}

func TestAdminService_Save(t *testing.T) {
	t.Run("指定用户推送", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		svc := NewAdminService(repo, &fakeUserService{activeIDs: []int64{1, 2, 3}})
		id, err := svc.Save(context.Background(), domain.Notification{
			Title: "发货延迟公告",
			Type:  domain.TypeSystem,
		}, []int64{7, 8})
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
		assert.False(t, repo.created.Global)
		assert.Equal(t, []int64{7, 8}, repo.createdUIDs)
		// 生效时间缺省为当前时间
		assert.NotZero(t, repo.created.StartAt)
	})

	t.Run("全员推送只发给未禁用用户", func(t *testing.T) {
		repo := &fakeNotificationRepository{}
		svc := NewAdminService(repo, &fakeUserService{activeIDs: []int64{1, 2, 3}})
		_, err := svc.Save(context.Background(), domain.Notification{Title: "周年庆"}, nil)
		require.NoError(t, err)
		assert.True(t, repo.created.Global)
		assert.Equal(t, []int64{1, 2, 3}, repo.createdUIDs)
	})

	t.Run("未发布的通知可以修改", func(t *testing.T) {
		repo := &fakeNotificationRepository{existing: domain.Notification{
			ID:      5,
			StartAt: time.Now().Add(time.Hour).UnixMilli(),
		}}
		svc := NewAdminService(repo, &fakeUserService{})
		_, err := svc.Save(context.Background(), domain.Notification{ID: 5, Title: "改标题"}, nil)
		require.NoError(t, err)
		assert.True(t, repo.updated)
	})

	t.Run("已发布的通知不能修改", func(t *testing.T) {
		repo := &fakeNotificationRepository{existing: domain.Notification{
			ID:      5,
			StartAt: time.Now().Add(-time.Hour).UnixMilli(),
		}}
		svc := NewAdminService(repo, &fakeUserService{})
		_, err := svc.Save(context.Background(), domain.Notification{ID: 5, Title: "改标题"}, nil)
		assert.ErrorIs(t, err, ErrAlreadyPublished)
		assert.False(t, repo.updated)
	})
}

func TestAdminService_Delete(t *testing.T) {
	t.Run("已发布的通知不能删除", func(t *testing.T) {
		repo := &fakeNotificationRepository{existing: domain.Notification{
			ID:      5,
			StartAt: time.Now().Add(-time.Hour).UnixMilli(),
		}}
		svc := NewAdminService(repo, &fakeUserService{})
		err := svc.Delete(context.Background(), 5)
		assert.ErrorIs(t, err, ErrAlreadyPublished)
		assert.False(t, repo.deleted)
	})

	t.Run("未发布的通知可以删除", func(t *testing.T) {
		repo := &fakeNotificationRepository{existing: domain.Notification{
			ID:      5,
			StartAt: time.Now().Add(time.Hour).UnixMilli(),
		}}
		svc := NewAdminService(repo, &fakeUserService{})
		err := svc.Delete(context.Background(), 5)
		require.NoError(t, err)
		assert.True(t, repo.deleted)
	})
}
