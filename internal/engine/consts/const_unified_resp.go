// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package consts

/**
 * @file: const_unified_resp.go
 * @description: 统一响应常量
 */

const (
	// DETAIL 用于设置响应数据，例如查询，分页等，需要返回数据
	// e.g: c.Locals(DETAIL, value)
	DETAIL = "detail"

	// OPERATION 用于新增，修改，删除等不需要返回数据的操作
	// e.g: c.Locals(OPERATION, id)
	OPERATION = "operation"

	// CLAIMS 认证中间件写入的 *jwt.AuthClaims
	CLAIMS = "claims"
)
