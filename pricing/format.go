package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// Copy-ready renderings of a quote for the four channels staff actually
// send quotes through. All pure string building over (Input, Output).

// SMSQuote is the short text-message version of a quote.
func SMSQuote(in Input, out Output) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s — here's your Tessara quote:\n\n", in.CompanyName)
	fmt.Fprintf(&b, "Plan: %s\n", out.RecommendedTier)
	fmt.Fprintf(&b, "Monthly: $%s/mo\n", dollars(out.MonthlyTotal))
	fmt.Fprintf(&b, "Setup: $%s one-time\n", dollars(out.SetupFee))
	fmt.Fprintf(&b, "Annual (10%% off): $%s/yr\n\n", dollars(out.AnnualTotal))
	b.WriteString("Ready to move forward? Reply YES or call us.")
	return b.String()
}

// EmailQuote is the full itemized email, subject line included.
func EmailQuote(in Input, out Output) string {
	var monthly []string
	for _, li := range out.LineItems {
		if li.MonthlyCost > 0 {
			monthly = append(monthly, fmt.Sprintf("  • %s: $%.0f/mo", li.Item, li.MonthlyCost))
		}
	}
	var setup []string
	for _, li := range out.LineItems {
		if li.OneTimeCost > 0 {
			setup = append(setup, fmt.Sprintf("  • %s: $%.0f", li.Item, li.OneTimeCost))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Subject: Your Tessara Systems Quote — %s Plan\n\n", out.RecommendedTier)
	fmt.Fprintf(&b, "Hi %s,\n\n", in.CompanyName)
	b.WriteString("Thank you for your interest in Tessara. Based on our discovery call, here's what we recommend:\n\n")
	fmt.Fprintf(&b, "RECOMMENDED PLAN: %s\n", out.RecommendedTier)
	fmt.Fprintf(&b, "%s\n\n", out.TierReason)
	fmt.Fprintf(&b, "MONTHLY BREAKDOWN:\n%s\n\n", strings.Join(monthly, "\n"))
	fmt.Fprintf(&b, "MONTHLY TOTAL: $%s/mo\n\n", dollars(out.MonthlyTotal))
	if len(setup) > 0 {
		fmt.Fprintf(&b, "ONE-TIME SETUP:\n%s\n", strings.Join(setup, "\n"))
		fmt.Fprintf(&b, "SETUP TOTAL: $%s\n\n", dollars(out.SetupFee))
	}
	b.WriteString("ANNUAL OPTION (10% discount):\n")
	fmt.Fprintf(&b, "  $%s/yr (save $%s)\n\n", dollars(out.AnnualTotal), dollars(out.AnnualDiscount))
	b.WriteString("Next step: Schedule your onboarding call and we'll have your system live within 2 weeks.\n\n")
	b.WriteString("— The Tessara Systems Team")
	return b.String()
}

// ProposalSummary is the client-facing one-pager.
func ProposalSummary(in Input, out Output) string {
	channels := make([]string, len(in.Channels))
	for i, c := range in.Channels {
		channels[i] = ChannelName(c)
	}
	integrations := make([]string, len(in.Integrations))
	for i, ig := range in.Integrations {
		integrations[i] = IntegrationName(ig)
	}

	var b strings.Builder
	b.WriteString("CHATMAN INC — PROPOSAL SUMMARY\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")
	fmt.Fprintf(&b, "Client: %s\n", in.CompanyName)
	fmt.Fprintf(&b, "Industry: %s\n", in.Industry)
	fmt.Fprintf(&b, "Team Size: %s\n", in.EmployeeCount)
	fmt.Fprintf(&b, "Monthly Lead Volume: %s\n\n", in.MonthlyLeads)
	fmt.Fprintf(&b, "RECOMMENDED: %s Plan\n", out.RecommendedTier)
	fmt.Fprintf(&b, "%s\n\n", out.TierReason)
	b.WriteString("PRICING:\n")
	fmt.Fprintf(&b, "  Monthly: $%s\n", dollars(out.MonthlyTotal))
	fmt.Fprintf(&b, "  Setup: $%s\n", dollars(out.SetupFee))
	fmt.Fprintf(&b, "  Annual: $%s (save $%s)\n\n", dollars(out.AnnualTotal), dollars(out.AnnualDiscount))
	fmt.Fprintf(&b, "CHANNELS: %s\n", joinOrNone(channels))
	fmt.Fprintf(&b, "INTEGRATIONS: %s\n", joinOrNone(integrations))
	fmt.Fprintf(&b, "WORKFLOWS: %d\n\n", in.CustomWorkflows)
	if len(out.Notes) > 0 {
		b.WriteString("NOTES:\n")
		for _, n := range out.Notes {
			fmt.Fprintf(&b, "  • %s\n", n)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Confidence: %s", strings.ToUpper(string(out.Confidence)))
	return b.String()
}

// InternalNotes is the staff-only rendering: raw modifier, full line-item
// breakdown and every flag.
func InternalNotes(in Input, out Output) string {
	var b strings.Builder
	b.WriteString("INTERNAL QUOTE NOTES\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")
	fmt.Fprintf(&b, "Company: %s\n", in.CompanyName)
	fmt.Fprintf(&b, "Industry: %s (modifier: %sx)\n", in.Industry, strconv.FormatFloat(IndustryModifier(in.Industry), 'f', -1, 64))
	fmt.Fprintf(&b, "Size: %s employees\n", in.EmployeeCount)
	fmt.Fprintf(&b, "Volume: %s leads/mo\n", in.MonthlyLeads)
	fmt.Fprintf(&b, "Avg Call: %s\n\n", in.AvgCallDuration)
	fmt.Fprintf(&b, "Tier: %s (%s)\n", out.RecommendedTier, out.TierReason)
	fmt.Fprintf(&b, "Confidence: %s\n\n", out.Confidence)
	fmt.Fprintf(&b, "Monthly: $%s\n", dollars(out.MonthlyTotal))
	fmt.Fprintf(&b, "Setup: $%s\n", dollars(out.SetupFee))
	fmt.Fprintf(&b, "Annual: $%s\n\n", dollars(out.AnnualTotal))
	b.WriteString("LINE ITEMS:\n")
	for i, li := range out.LineItems {
		if i > 0 {
			b.WriteString("\n")
		}
		var parts []string
		if li.MonthlyCost > 0 {
			parts = append(parts, fmt.Sprintf("$%.0f/mo", li.MonthlyCost))
		}
		if li.OneTimeCost > 0 {
			parts = append(parts, fmt.Sprintf("$%.0f setup", li.OneTimeCost))
		}
		fmt.Fprintf(&b, "  [%s] %s: %s", li.Category, li.Item, strings.Join(parts, " + "))
	}
	b.WriteString("\n\n")
	if len(out.Notes) > 0 {
		b.WriteString("FLAGS:\n")
		for i, n := range out.Notes {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "  ⚠ %s", n)
		}
	} else {
		b.WriteString("No flags.")
	}
	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None selected"
	}
	return strings.Join(items, ", ")
}

// dollars renders a whole-dollar amount with thousands separators.
func dollars(v float64) string {
	s := strconv.FormatInt(int64(v), 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
