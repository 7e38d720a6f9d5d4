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

package job

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderService struct {
	service.Service
	// batches 每次 FindExpiredPendingOrders 返回的一批订单
	batches [][]domain.Order
	total   int64
	calls   int
	closed  []domain.Order
}

func (f *fakeOrderService) FindExpiredPendingOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, int64, error) {
	batch := f.batches[f.calls]
	f.calls++
	return batch, f.total, nil
}

func (f *fakeOrderService) CloseExpiredOrders(ctx context.Context, orders []domain.Order) error {
	f.closed = append(f.closed, orders...)
	return nil
}

func TestCloseExpiredOrdersJob_Run(t *testing.T) {
	t.Run("不足一批直接结束", func(t *testing.T) {
		svc := &fakeOrderService{
			batches: [][]domain.Order{{{ID: 1}, {ID: 2}}},
			total:   2,
		}
		j := NewCloseExpiredOrdersJob(svc, 10, 30, time.Minute)
		require.NoError(t, j.Run(context.Background()))
		assert.Equal(t, 1, svc.calls)
		assert.Len(t, svc.closed, 2)
	})

	t.Run("超过一批继续拉取", func(t *testing.T) {
		svc := &fakeOrderService{
			batches: [][]domain.Order{
				{{ID: 1}, {ID: 2}},
				{{ID: 3}},
			},
			total: 3,
		}
		j := NewCloseExpiredOrdersJob(svc, 2, 30, time.Minute)
		require.NoError(t, j.Run(context.Background()))
		assert.Equal(t, 2, svc.calls)
		assert.Len(t, svc.closed, 3)
	})
}
