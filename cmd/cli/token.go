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

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/saeelmomin786/TrackMyStartup-sub006/internal/engine/model"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/http/jwt"
	"github.com/spf13/cobra"
)

// newTokenCmd issues a signed access token for local testing against the api
func newTokenCmd() *cobra.Command {
	var (
		userId string
		role   string
		name   string
		secret string
		expire int
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userId == "" || secret == "" {
				return errors.New("--user and --secret are required")
			}
			if !model.Role(role).Valid() {
				return fmt.Errorf("--role must be %s or %s", model.RoleMentor, model.RoleStartup)
			}
			identity := jwt.Identity{UserId: userId, Role: role, DisplayName: name}
			aToken, _, err := jwt.GenToken(identity, []byte(secret), time.Duration(expire), time.Duration(expire))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), aToken)
			return nil
		},
	}
	cmd.Flags().StringVar(&userId, "user", "", "user id carried in the token")
	cmd.Flags().StringVar(&role, "role", string(model.RoleStartup), "mentor or startup")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret, Http.Auth.SecretKey")
	cmd.Flags().IntVar(&expire, "expire", 120, "expiry in minutes")
	return cmd
}
