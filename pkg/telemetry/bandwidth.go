package telemetry

import (
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mfreeman451/networkhub/pkg/models"
	"github.com/mfreeman451/networkhub/pkg/rng"
)

const (
	DefaultUsers          = 10
	DefaultAppType        = "web"
	DefaultPerUserMbps    = 1.0
	BufferMultiplier      = 1.25
	CostPerMbps           = 2.5
	CostCurrency          = "CHF"
	peakFactorLow         = 1.2
	peakFactorHigh        = 1.8
	maxCalculatorUsers    = 1000000
	maxAppTypeLabelLength = 32
)

// perUserMbps is the sustained per-user demand of each application type.
var perUserMbps = map[string]float64{
	"basic":              0.5,
	"web":                1,
	"email":              0.5,
	"voip":               0.1,
	"video_conferencing": 2.5,
	"gaming":             3,
	"cloud":              5,
	"streaming":          8,
}

// AppTypes returns the recognized application labels, sorted.
func AppTypes() []string {
	return slices.Sorted(maps.Keys(perUserMbps))
}

// PerUserRate returns the per-user rate for appType and whether the label
// was recognized. Unknown labels get DefaultPerUserMbps.
func PerUserRate(appType string) (float64, bool) {
	rate, ok := perUserMbps[strings.ToLower(appType)]
	if !ok {
		return DefaultPerUserMbps, false
	}

	return rate, true
}

// BandwidthQuery is the coerced input of the bandwidth calculator.
type BandwidthQuery struct {
	Users   int    `validate:"min=1,max=1000000"`
	AppType string `validate:"required,max=32,printascii"`
}

var validate = validator.New()

// ParseBandwidthQuery reads users and app_type from query values. Each field
// is checked against the BandwidthQuery tags on its own, so a bad users value
// does not discard a good app_type. Anything missing or malformed falls back
// to the defaults; it never fails.
func ParseBandwidthQuery(values url.Values) BandwidthQuery {
	q := BandwidthQuery{Users: DefaultUsers, AppType: DefaultAppType}

	if raw := strings.TrimSpace(values.Get("users")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && validate.StructPartial(BandwidthQuery{Users: n}, "Users") == nil {
			q.Users = n
		}
	}

	if raw := strings.TrimSpace(values.Get("app_type")); raw != "" {
		if validate.StructPartial(BandwidthQuery{AppType: raw}, "AppType") == nil {
			q.AppType = strings.ToLower(raw)
		}
	}

	return q
}

// BandwidthEstimate sizes a link for users of appType. The base requirement
// is users times the per-user rate; the recommendation scales it by a sampled
// peak factor and the fixed buffer multiplier.
func (g *Generator) BandwidthEstimate(users int, appType string) models.BandwidthEstimate {
	if users < 1 || users > maxCalculatorUsers {
		users = DefaultUsers
	}

	if appType == "" || len(appType) > maxAppTypeLabelLength {
		appType = DefaultAppType
	}

	rate, recognized := PerUserRate(appType)
	base := float64(users) * rate
	peak := rng.Round(rng.Uniform(g.src, peakFactorLow, peakFactorHigh), 2)
	recommended := rng.Round(base*peak*BufferMultiplier, 1)

	return models.BandwidthEstimate{
		Users:                users,
		AppType:              appType,
		Recognized:           recognized,
		PerUserRateMbps:      rate,
		BaseRequirementMbps:  rng.Round(base, 2),
		PeakFactor:           peak,
		BufferMultiplier:     BufferMultiplier,
		RecommendedMbps:      recommended,
		EstimatedMonthlyCost: rng.Round(recommended*CostPerMbps, 2),
		Currency:             CostCurrency,
	}
}
