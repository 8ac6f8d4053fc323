// Package pricing is the pure quoting engine for Tessara Systems.
// Calculate takes an intake form and returns a full tiered quote.
// No I/O, no shared state — same input always gives the same output.
package pricing

import (
	"fmt"
	"math"
)

type Tier string

const (
	TierStarter    Tier = "Starter"
	TierGrowth     Tier = "Growth"
	TierEnterprise Tier = "Enterprise"
)

type Channel string

const (
	ChannelVoice Channel = "voice"
	ChannelChat  Channel = "chat"
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
)

type Integration string

const (
	IntegrationCRM       Integration = "crm"
	IntegrationCalendar  Integration = "calendar"
	IntegrationPayment   Integration = "payment"
	IntegrationCustomAPI Integration = "custom_api"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Input is one intake form submission. Unknown enum strings (industry,
// employeeCount, monthlyLeads) price as the neutral case rather than erroring.
type Input struct {
	CompanyName   string `json:"companyName"`
	Industry      string `json:"industry"`
	EmployeeCount string `json:"employeeCount"` // 1-5, 6-20, 21-50, 51-200, 200+

	Channels        []Channel     `json:"channels"`
	Integrations    []Integration `json:"integrations"`
	CustomWorkflows int           `json:"customWorkflows"`
	AIPersonality   bool          `json:"aiPersonality"`
	MultiLanguage   bool          `json:"multiLanguage"`

	MonthlyLeads    string `json:"monthlyLeads"`    // <50, 50-200, 200-500, 500+
	AvgCallDuration string `json:"avgCallDuration"` // informational only

	DedicatedSupport bool `json:"dedicatedSupport"`
	AnalyticsPackage bool `json:"analyticsPackage"`
	WhiteLabel       bool `json:"whiteLabel"`
	SLAGuarantee     bool `json:"slaGuarantee"`
}

// LineItem is one priced component. Slice order is display order.
type LineItem struct {
	Category    string  `json:"category"`
	Item        string  `json:"item"`
	MonthlyCost float64 `json:"monthlyCost"`
	OneTimeCost float64 `json:"oneTimeCost"`
}

type Output struct {
	RecommendedTier Tier   `json:"recommendedTier"`
	TierReason      string `json:"tierReason"`

	BaseMonthlyCost float64 `json:"baseMonthlyCost"`
	ChannelCost     float64 `json:"channelCost"`
	IntegrationCost float64 `json:"integrationCost"`
	WorkflowCost    float64 `json:"workflowCost"`
	VolumeCost      float64 `json:"volumeCost"`
	AddonCost       float64 `json:"addonCost"`

	MonthlyTotal   float64 `json:"monthlyTotal"`
	SetupFee       float64 `json:"setupFee"`
	AnnualTotal    float64 `json:"annualTotal"`
	AnnualDiscount float64 `json:"annualDiscount"` // 10% for annual

	LineItems []LineItem `json:"lineItems"`

	Confidence Confidence `json:"confidence"`
	Notes      []string   `json:"notes"`
}

// Rate tables. Constant for the life of the process — there is no
// per-tenant or hot-reloaded pricing.

const floorMonthly = 497

var basePrices = map[Tier]float64{
	TierStarter:    497,
	TierGrowth:     1497,
	TierEnterprise: 2997,
}

var setupFees = map[Tier]float64{
	TierStarter:    500,
	TierGrowth:     1500,
	TierEnterprise: 3500,
}

var channelPrices = map[Channel]float64{
	ChannelVoice: 200,
	ChannelChat:  100,
	ChannelSMS:   150,
	ChannelEmail: 75,
}

var integrationPrices = map[Integration]float64{
	IntegrationCRM:       100,
	IntegrationCalendar:  50,
	IntegrationPayment:   150,
	IntegrationCustomAPI: 300,
}

var volumeMultipliers = map[string]float64{
	"<50":     1.0,
	"50-200":  1.15,
	"200-500": 1.35,
	"500+":    1.6,
}

const workflowPricePer = 75

const (
	addonDedicatedSupport = 300
	addonAnalyticsPackage = 200
	addonWhiteLabel       = 500
	addonSLAGuarantee     = 250
)

var industryModifiers = map[string]float64{
	"Real Estate":        1.0,
	"Insurance":          1.1,
	"Home Services":      0.95,
	"Healthcare":         1.15,
	"Legal":              1.2,
	"Childcare":          0.9,
	"Financial Services": 1.15,
	"Technology":         1.05,
	"Other":              1.0,
}

// IndustryModifier returns the pricing multiplier for an industry,
// falling back to 1.0 for anything unrecognized.
func IndustryModifier(industry string) float64 {
	if m, ok := industryModifiers[industry]; ok {
		return m
	}
	return 1.0
}

// Calculate prices one intake form. Total over its input domain: malformed
// enum values fall back to neutral pricing, negative workflow counts clamp
// to zero.
func Calculate(in Input) Output {
	workflows := in.CustomWorkflows
	if workflows < 0 {
		workflows = 0
	}

	var lineItems []LineItem
	var notes []string

	// 1. Determine tier
	tier, tierReason := determineTier(in, workflows)

	// 2. Base cost
	baseMonthlyCost := basePrices[tier]
	lineItems = append(lineItems, LineItem{
		Category:    "Base",
		Item:        fmt.Sprintf("%s Plan", tier),
		MonthlyCost: baseMonthlyCost,
	})

	// 3. Channel costs
	var channelCost float64
	for _, channel := range in.Channels {
		cost := channelPrices[channel]
		channelCost += cost
		if cost > 0 {
			lineItems = append(lineItems, LineItem{
				Category:    "Channels",
				Item:        ChannelName(channel),
				MonthlyCost: cost,
			})
		}
	}

	// 4. Integration costs
	var integrationCost float64
	for _, integration := range in.Integrations {
		cost := integrationPrices[integration]
		integrationCost += cost
		if cost > 0 {
			var oneTime float64
			if integration == IntegrationCustomAPI {
				oneTime = 500
			}
			lineItems = append(lineItems, LineItem{
				Category:    "Integrations",
				Item:        IntegrationName(integration),
				MonthlyCost: cost,
				OneTimeCost: oneTime,
			})
		}
	}

	// 5. Workflow costs
	workflowCost := float64(workflows * workflowPricePer)
	if workflows > 0 {
		plural := ""
		if workflows > 1 {
			plural = "s"
		}
		lineItems = append(lineItems, LineItem{
			Category:    "Workflows",
			Item:        fmt.Sprintf("%d Custom Workflow%s", workflows, plural),
			MonthlyCost: workflowCost,
		})
	}

	// 6. AI personality
	if in.AIPersonality {
		lineItems = append(lineItems, LineItem{
			Category:    "Customization",
			Item:        "Custom AI Personality / Script",
			MonthlyCost: 100,
			OneTimeCost: 250,
		})
	}

	// 7. Multi-language
	if in.MultiLanguage {
		lineItems = append(lineItems, LineItem{
			Category:    "Customization",
			Item:        "Multi-Language Support",
			MonthlyCost: 200,
		})
	}

	// 8. Volume multiplier — applies to everything priced so far, not add-ons
	volumeMultiplier, ok := volumeMultipliers[in.MonthlyLeads]
	if !ok {
		volumeMultiplier = 1.0
	}
	subtotalBeforeVolume := baseMonthlyCost + channelCost + integrationCost + workflowCost
	if in.AIPersonality {
		subtotalBeforeVolume += 100
	}
	if in.MultiLanguage {
		subtotalBeforeVolume += 200
	}
	volumeCost := math.Round(subtotalBeforeVolume*volumeMultiplier - subtotalBeforeVolume)

	if volumeCost > 0 {
		lineItems = append(lineItems, LineItem{
			Category:    "Volume",
			Item:        fmt.Sprintf("Volume Adjustment (%s leads/mo)", in.MonthlyLeads),
			MonthlyCost: volumeCost,
		})
	}

	// 9. Add-ons, fixed order regardless of anything else
	var addonCost float64
	if in.DedicatedSupport {
		addonCost += addonDedicatedSupport
		lineItems = append(lineItems, LineItem{Category: "Add-ons", Item: "Dedicated Support", MonthlyCost: addonDedicatedSupport})
	}
	if in.AnalyticsPackage {
		addonCost += addonAnalyticsPackage
		lineItems = append(lineItems, LineItem{Category: "Add-ons", Item: "Analytics Package", MonthlyCost: addonAnalyticsPackage})
	}
	if in.WhiteLabel {
		addonCost += addonWhiteLabel
		lineItems = append(lineItems, LineItem{Category: "Add-ons", Item: "White Label", MonthlyCost: addonWhiteLabel, OneTimeCost: 1000})
	}
	if in.SLAGuarantee {
		addonCost += addonSLAGuarantee
		lineItems = append(lineItems, LineItem{Category: "Add-ons", Item: "SLA Guarantee", MonthlyCost: addonSLAGuarantee})
	}

	// 10. Industry modifier
	industryMod := IndustryModifier(in.Industry)

	// 11. Totals
	rawMonthly := subtotalBeforeVolume + volumeCost + addonCost
	monthlyTotal := math.Round(rawMonthly * industryMod)

	// Setup fee: tier base plus every one-time cost accumulated above.
	// The setup line item itself goes first in the breakdown.
	baseSetup := setupFees[tier]
	setupFee := baseSetup
	for _, li := range lineItems {
		setupFee += li.OneTimeCost
	}
	lineItems = append([]LineItem{{
		Category:    "Setup",
		Item:        fmt.Sprintf("%s Setup Fee", tier),
		OneTimeCost: baseSetup,
	}}, lineItems...)

	// Annual
	annualRaw := monthlyTotal * 12
	annualDiscount := math.Round(annualRaw * 0.10)
	annualTotal := annualRaw - annualDiscount

	// Industry note
	if industryMod != 1.0 {
		pct := int(math.Round((industryMod - 1) * 100))
		if pct > 0 {
			notes = append(notes, fmt.Sprintf("%s industry modifier: +%d%% applied", in.Industry, pct))
		} else {
			notes = append(notes, fmt.Sprintf("%s industry modifier: %d%% applied", in.Industry, pct))
		}
	}

	confidence := determineConfidence(in, workflows)

	// Guardrails
	if monthlyTotal < floorMonthly {
		notes = append(notes, "Floor price: $497/mo minimum applies")
	}
	if monthlyTotal > 10000 {
		notes = append(notes, "High-value quote — recommend custom enterprise proposal")
	}

	return Output{
		RecommendedTier: tier,
		TierReason:      tierReason,
		BaseMonthlyCost: baseMonthlyCost,
		ChannelCost:     channelCost,
		IntegrationCost: integrationCost,
		WorkflowCost:    workflowCost,
		VolumeCost:      volumeCost,
		AddonCost:       addonCost,
		MonthlyTotal:    math.Max(monthlyTotal, floorMonthly),
		SetupFee:        setupFee,
		AnnualTotal:     annualTotal,
		AnnualDiscount:  annualDiscount,
		LineItems:       lineItems,
		Confidence:      confidence,
		Notes:           notes,
	}
}

// determineTier scores intake complexity additively; every applicable rule
// fires. Thresholds are inclusive: >=10 Enterprise, >=5 Growth.
func determineTier(in Input, workflows int) (Tier, string) {
	score := 0

	// Channel count
	if len(in.Channels) >= 3 {
		score += 3
	} else if len(in.Channels) >= 2 {
		score += 1
	}

	// Integration count; custom API stacks on top of the count rule
	if len(in.Integrations) >= 3 {
		score += 3
	} else if len(in.Integrations) >= 2 {
		score += 1
	}
	if hasIntegration(in.Integrations, IntegrationCustomAPI) {
		score += 2
	}

	// Workflows
	if workflows >= 5 {
		score += 3
	} else if workflows >= 2 {
		score += 1
	}

	// Volume
	switch in.MonthlyLeads {
	case "500+":
		score += 3
	case "200-500":
		score += 2
	case "50-200":
		score += 1
	}

	// Customization
	if in.AIPersonality {
		score += 1
	}
	if in.MultiLanguage {
		score += 1
	}

	// Employee count
	switch in.EmployeeCount {
	case "200+":
		score += 2
	case "51-200":
		score += 1
	}

	// Add-ons
	if in.WhiteLabel {
		score += 2
	}
	if in.SLAGuarantee {
		score += 1
	}

	if score >= 10 {
		return TierEnterprise, fmt.Sprintf("Complexity score %d/20 — multi-channel, high-volume, or advanced integrations detected", score)
	}
	if score >= 5 {
		return TierGrowth, fmt.Sprintf("Complexity score %d/20 — moderate channel/integration needs", score)
	}
	return TierStarter, fmt.Sprintf("Complexity score %d/20 — straightforward setup with limited channels", score)
}

// determineConfidence: low-triggering conditions win over medium ones.
func determineConfidence(in Input, workflows int) Confidence {
	if hasIntegration(in.Integrations, IntegrationCustomAPI) || workflows > 5 {
		return ConfidenceLow
	}
	if len(in.Channels) >= 3 || in.MonthlyLeads == "500+" {
		return ConfidenceMedium
	}
	return ConfidenceHigh
}

func hasIntegration(list []Integration, want Integration) bool {
	for _, i := range list {
		if i == want {
			return true
		}
	}
	return false
}

// ChannelName is the customer-facing label for a channel.
func ChannelName(c Channel) string {
	switch c {
	case ChannelVoice:
		return "Voice (AI Phone)"
	case ChannelChat:
		return "Web Chat"
	case ChannelSMS:
		return "SMS / Text"
	case ChannelEmail:
		return "Email"
	}
	return string(c)
}

// IntegrationName is the customer-facing label for an integration.
func IntegrationName(i Integration) string {
	switch i {
	case IntegrationCRM:
		return "CRM Integration"
	case IntegrationCalendar:
		return "Calendar Sync"
	case IntegrationPayment:
		return "Payment Processing"
	case IntegrationCustomAPI:
		return "Custom API Integration"
	}
	return string(i)
}
