package merchant

import "time"

type ConfigDB struct {
	MerID               int64
	FeeEnabled          bool
	MinDeliveryAmount   string
	FreeShippingAmount  string
	BaseShippingFee     string
	PremiumEnabled      bool
	DistancePremium     []byte
	WeightPremium       []byte
	CourierClaimEnabled bool
	UpdatedAt           time.Time
}

// tieredRuleDB is the jsonb layout of a premium rule. Amounts are kept as
// strings so the column round-trips without float conversion.
type tieredRuleDB struct {
	First  string    `json:"first,omitempty"`
	Stairs []stairDB `json:"stairs,omitempty"`
	Last   *tailDB   `json:"last,omitempty"`
}

type stairDB struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Step   string `json:"step"`
	Amount string `json:"amount"`
}

type tailDB struct {
	Threshold string `json:"threshold"`
	Step      string `json:"step"`
	Amount    string `json:"amount"`
}
