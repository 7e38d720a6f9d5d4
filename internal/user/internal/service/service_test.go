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

	"github.com/ecodeclub/eshop/internal/user/internal/domain"
	"github.com/ecodeclub/eshop/internal/user/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	repository.UserRepository
	user        domain.User
	findErr     error
	newPassword string
	updated     domain.User
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	return f.user, f.findErr
}

func (f *fakeUserRepository) UpdatePassword(ctx context.Context, id int64, password string) error {
	f.newPassword = password
	return nil
}

func (f *fakeUserRepository) UpdateNonZeroFields(ctx context.Context, user domain.User) error {
	f.updated = user
	return nil
}

func TestService_Profile(t *testing.T) {
	repo := &fakeUserRepository{user: domain.User{
		ID:       2793,
		Email:    "tom@example.com",
		Password: "$2a$10$hash",
		Role:     domain.RoleCustomer,
	}}
	u, err := NewService(repo).Profile(context.Background(), 2793)
	require.NoError(t, err)
	assert.Equal(t, "tom@example.com", u.Email)
	// 密码散列不能泄露给调用方
	assert.Empty(t, u.Password)
}

func TestService_ChangePassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	t.Run("修改成功", func(t *testing.T) {
		repo := &fakeUserRepository{user: domain.User{ID: 2793, Password: string(hash)}}
		err := NewService(repo).ChangePassword(context.Background(), 2793, "old-password", "new-password")
		require.NoError(t, err)
		require.NotEmpty(t, repo.newPassword)
		// 存的是新密码的散列
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.newPassword), []byte("new-password")))
	})

	t.Run("当前密码不对", func(t *testing.T) {
		repo := &fakeUserRepository{user: domain.User{ID: 2793, Password: string(hash)}}
		err := NewService(repo).ChangePassword(context.Background(), 2793, "wrong-password", "new-password")
		assert.ErrorIs(t, err, ErrWrongPassword)
		assert.Empty(t, repo.newPassword)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	repo := &fakeUserRepository{}
	err := NewService(repo).UpdateProfile(context.Background(), domain.User{
		ID:       2793,
		Fullname: "张三",
		Gender:   "male",
		// 这些字段不属于个人资料,不该被带进更新
		Email:    "hack@example.com",
		Role:     domain.RoleAdmin,
		Password: "plaintext",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: 2793, Fullname: "张三", Gender: "male"}, repo.updated)
}
