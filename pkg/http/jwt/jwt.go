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

package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/http"
	"github.com/saeelmomin786/TrackMyStartup-sub006/pkg/log"
)

// AuthClaims carries the caller identity
type AuthClaims struct {
	UserId      string `json:"userId"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the subject of a token
type Identity struct {
	UserId      string
	Role        string
	DisplayName string
}

var (
	issUser = "mentorship"
)

// GenToken 生成 access_token 和 refresh_token, 过期时间单位为分钟
func GenToken(identity Identity, secretKey []byte, accessExpired, refreshExpired time.Duration) (aToken, rToken string, err error) {
	now := time.Now()

	aClaims := &AuthClaims{
		UserId:      identity.UserId,
		Role:        identity.Role,
		DisplayName: identity.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issUser,
			Subject:   identity.UserId,
			ExpiresAt: jwt.NewNumericDate(now.Add(accessExpired * time.Minute)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	aToken, aErr := jwt.NewWithClaims(jwt.SigningMethodHS256, aClaims).SignedString(secretKey)
	if aErr != nil {
		log.Errorw("jwt.NewWithClaims err", "error", aErr)
		return "", "", aErr
	}

	rClaims := jwt.RegisteredClaims{
		Issuer:    issUser,
		Subject:   identity.UserId,
		ExpiresAt: jwt.NewNumericDate(now.Add(refreshExpired * time.Minute)),
	}
	rToken, rErr := jwt.NewWithClaims(jwt.SigningMethodHS256, rClaims).SignedString(secretKey)
	if rErr != nil {
		log.Errorw("jwt.NewWithClaims err", "error", rErr)
		return "", "", rErr
	}

	return aToken, rToken, nil
}

// ParseToken 校验 access_token
func ParseToken(aToken, secretKey string) (*AuthClaims, error) {
	claims := new(AuthClaims)
	token, err := jwt.ParseWithClaims(aToken, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, jwt.ErrTokenExpired
		}
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserId == "" {
		return nil, errors.New("invalid token: missing user id")
	}
	return claims, nil
}

// RefreshToken 使用 refresh_token 换取新的令牌对
func RefreshToken(auth *http.Auth, identity Identity, rToken string) (map[string]string, error) {
	newToken := make(map[string]string)

	var refreshClaims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(rToken, &refreshClaims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(auth.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return newToken, errors.New(http.InvalidToken.Msg)
	}
	if refreshClaims.Subject != identity.UserId {
		return newToken, errors.New(http.InvalidToken.Msg)
	}

	newAToken, newRToken, err := GenToken(identity, []byte(auth.SecretKey), auth.AccessExpire, auth.RefreshExpire)
	if err != nil {
		return newToken, err
	}

	newToken["accessToken"] = newAToken
	newToken["refreshToken"] = newRToken
	return newToken, nil
}
