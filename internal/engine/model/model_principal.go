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

package model

type Role string

const (
	RoleStartup Role = "startup"
	RoleMentor  Role = "mentor"
)

func (r Role) Valid() bool {
	return r == RoleStartup || r == RoleMentor
}

// Principal is the caller identity, resolved once per request
type Principal struct {
	UserId      string
	Role        Role
	DisplayName string
}

func (p Principal) IsMentor() bool {
	return p.Role == RoleMentor && p.UserId != ""
}

func (p Principal) IsStartup() bool {
	return p.Role == RoleStartup && p.UserId != ""
}
