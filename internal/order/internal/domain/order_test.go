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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    Status
		to      Status
		wantRes bool
	}{
		{
			name:    "待支付到已确认",
			from:    StatusPending,
			to:      StatusConfirmed,
			wantRes: true,
		},
		{
			name:    "待支付到已取消",
			from:    StatusPending,
			to:      StatusCancelled,
			wantRes: true,
		},
		{
			name:    "待支付不能直接发货",
			from:    StatusPending,
			to:      StatusShipped,
			wantRes: false,
		},
		{
			name:    "待支付不能直接送达",
			from:    StatusPending,
			to:      StatusDelivered,
			wantRes: false,
		},
		{
			name:    "已确认到已发货",
			from:    StatusConfirmed,
			to:      StatusShipped,
			wantRes: true,
		},
		{
			name:    "已确认到已取消",
			from:    StatusConfirmed,
			to:      StatusCancelled,
			wantRes: true,
		},
		{
			name:    "已确认不能退回待支付",
			from:    StatusConfirmed,
			to:      StatusPending,
			wantRes: false,
		},
		{
			name:    "已发货到已送达",
			from:    StatusShipped,
			to:      StatusDelivered,
			wantRes: true,
		},
		{
			name:    "已发货不能取消",
			from:    StatusShipped,
			to:      StatusCancelled,
			wantRes: false,
		},
		{
			name:    "已送达是终态",
			from:    StatusDelivered,
			to:      StatusCancelled,
			wantRes: false,
		},
		{
			name:    "已取消是终态",
			from:    StatusCancelled,
			to:      StatusPending,
			wantRes: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.from.CanTransition(tc.to))
		})
	}
}

func TestItem_Subtotal(t *testing.T) {
	item := Item{Price: 25900, Quantity: 3}
	assert.Equal(t, int64(77700), item.Subtotal())
}
