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

type FeeType string

const (
	FeeTypeFree         FeeType = "free"
	FeeTypeFees         FeeType = "fees"
	FeeTypeEquity       FeeType = "equity"
	FeeTypeHybrid       FeeType = "hybrid"
	FeeTypeStockOptions FeeType = "stock_options"
)

func (f FeeType) Valid() bool {
	switch f {
	case FeeTypeFree, FeeTypeFees, FeeTypeEquity, FeeTypeHybrid, FeeTypeStockOptions:
		return true
	}
	return false
}

// Terms are the commercial terms proposed by a startup or recorded by a mentor
type Terms struct {
	FeeType        FeeType `json:"feeType"`
	FeeAmount      float64 `json:"feeAmount"`
	EquityAmount   float64 `json:"equityAmount"`
	EsopPercentage float64 `json:"esopPercentage"`
	Currency       string  `json:"currency"`
	AgreementUrl   string  `json:"agreementUrl,omitempty"`
	Message        string  `json:"message,omitempty"`
}

// Gates are the preconditions an assignment must clear before activation
type Gates struct {
	Payment   bool `json:"payment"`
	Agreement bool `json:"agreement"`
}

// None reports whether no gate applies
func (g Gates) None() bool {
	return !g.Payment && !g.Agreement
}

// GatesFor derives the gates implied by a fee type and fee amount
func GatesFor(feeType FeeType, feeAmount float64) Gates {
	var g Gates
	switch feeType {
	case FeeTypeFees:
		g.Payment = feeAmount > 0
	case FeeTypeHybrid:
		g.Payment = feeAmount > 0
		g.Agreement = true
	case FeeTypeEquity, FeeTypeStockOptions:
		g.Agreement = true
	}
	return g
}
