package openexchangerates

import "github.com/shopspring/decimal"

// currenciesResponse is the body of /currencies.json, e.g.
//
//	{"AED": "United Arab Emirates Dirham", "AFN": "Afghan Afghani"}
type currenciesResponse map[string]string

// currenciesRules validates a currenciesResponse with validator.Var.
const currenciesRules = "required,min=1,dive,keys,required,len=3,uppercase,endkeys,required"

// codeRules validates a single currency code taken from a rates map key.
const codeRules = "required,len=3,uppercase"

// latestResponse is the body of /latest.json, e.g.
//
//	{
//	  "disclaimer": "Usage subject to terms: https://openexchangerates.org/terms",
//	  "license": "https://openexchangerates.org/license",
//	  "timestamp": 1744822816,
//	  "base": "USD",
//	  "rates": {"AED": 3.673005, "AFN": 72.495777}
//	}
//
// Rates decode straight into decimal.Decimal so no precision is lost to float64.
type latestResponse struct {
	Disclaimer string                     `json:"disclaimer"`
	License    string                     `json:"license"`
	Timestamp  int64                      `json:"timestamp"`
	Base       string                     `json:"base" validate:"required,len=3,uppercase"`
	Rates      map[string]decimal.Decimal `json:"rates" validate:"required,min=1"`
}
