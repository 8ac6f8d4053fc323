package pricing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMSQuote(t *testing.T) {
	in := baseInput()
	in.Channels = []Channel{ChannelChat}
	out := Calculate(in)

	sms := SMSQuote(in, out)
	assert.Contains(t, sms, "Test Corp")
	assert.Contains(t, sms, "$")
	assert.Contains(t, sms, "Plan: Starter")
	assert.Contains(t, sms, "$597/mo")
}

func TestEmailQuote(t *testing.T) {
	in := baseInput()
	in.Channels = []Channel{ChannelVoice, ChannelChat}
	out := Calculate(in)

	email := EmailQuote(in, out)
	assert.True(t, strings.HasPrefix(email, "Subject:"))
	assert.Contains(t, email, "MONTHLY BREAKDOWN:")
	assert.Contains(t, email, "• Voice (AI Phone): $200/mo")
	assert.Contains(t, email, "• Web Chat: $100/mo")
	// The tier setup fee is always a one-time item, so the setup section
	// is always present.
	assert.Contains(t, email, "ONE-TIME SETUP:")
	assert.Contains(t, email, "ANNUAL OPTION (10% discount):")
	// Setup item carries no monthly cost and must not appear in the
	// monthly breakdown.
	assert.NotContains(t, email, "Setup Fee: $0/mo")
}

func TestEmailQuoteUsesThousandsSeparators(t *testing.T) {
	in := baseInput()
	in.Channels = []Channel{ChannelVoice, ChannelChat, ChannelSMS}
	in.Integrations = []Integration{IntegrationCRM, IntegrationCalendar}
	in.CustomWorkflows = 3
	in.MonthlyLeads = "200-500"
	out := Calculate(in)

	email := EmailQuote(in, out)
	// 1497 base + 450 channels + 150 integrations + 225 workflows + 813 volume.
	assert.Contains(t, email, "MONTHLY TOTAL: $3,135/mo")
}

func TestProposalSummary(t *testing.T) {
	in := baseInput()
	in.Channels = []Channel{ChannelVoice}
	in.Integrations = []Integration{IntegrationCRM}
	out := Calculate(in)

	prop := ProposalSummary(in, out)
	assert.Contains(t, prop, "Client: Test Corp")
	assert.Contains(t, prop, "Industry: Real Estate")
	assert.Contains(t, prop, "CHANNELS: Voice (AI Phone)")
	assert.Contains(t, prop, "INTEGRATIONS: CRM Integration")
	assert.Contains(t, prop, "Confidence: HIGH")
}

func TestProposalSummaryEmptySelections(t *testing.T) {
	in := baseInput()
	out := Calculate(in)

	prop := ProposalSummary(in, out)
	assert.Contains(t, prop, "CHANNELS: None selected")
	assert.Contains(t, prop, "INTEGRATIONS: None selected")
	// Real Estate + no triggers means no notes block at all.
	assert.NotContains(t, prop, "NOTES:")
}

func TestInternalNotes(t *testing.T) {
	in := baseInput()
	in.Industry = "Healthcare"
	in.Channels = []Channel{ChannelChat}
	in.Integrations = []Integration{IntegrationCustomAPI}
	out := Calculate(in)

	notes := InternalNotes(in, out)
	assert.Contains(t, notes, "Industry: Healthcare (modifier: 1.15x)")
	assert.Contains(t, notes, "LINE ITEMS:")
	assert.Contains(t, notes, "[Integrations] Custom API Integration: $300/mo + $500 setup")
	assert.Contains(t, notes, "FLAGS:")
	assert.Contains(t, notes, "Healthcare industry modifier")
}

func TestInternalNotesNoFlags(t *testing.T) {
	in := baseInput()
	in.Channels = []Channel{ChannelChat}
	out := Calculate(in)

	notes := InternalNotes(in, out)
	assert.Contains(t, notes, "No flags.")
	assert.NotContains(t, notes, "FLAGS:")
}

func TestDollarFormatting(t *testing.T) {
	assert.Equal(t, "0", dollars(0))
	assert.Equal(t, "497", dollars(497))
	assert.Equal(t, "1,497", dollars(1497))
	assert.Equal(t, "35,964", dollars(35964))
	assert.Equal(t, "1,234,567", dollars(1234567))
}
