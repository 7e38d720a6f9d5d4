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

package ioc

import (
	"bytes"
	"os"
	"testing"

	"github.com/gotomicro/ego/core/econf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// web 和 admin 两个 egin 组件按顶层 key 加载配置,
// 这里校验 local.yaml 提供了这些 key 且两个服务端口不同
func TestLocalConfig_ServerKeys(t *testing.T) {
	content, err := os.ReadFile("../config/local.yaml")
	require.NoError(t, err)
	require.NoError(t, econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal))

	webPort := econf.GetInt("web.port")
	adminPort := econf.GetInt("admin.port")
	assert.Equal(t, 8080, webPort)
	assert.Equal(t, 8888, adminPort)
	assert.NotEqual(t, webPort, adminPort)
	assert.NotZero(t, econf.GetInt("server.governor.port"))
}
