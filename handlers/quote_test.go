package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/howardchatman/chatmaninc/pricing"
	"github.com/howardchatman/chatmaninc/types"
)

func starterInput() pricing.Input {
	return pricing.Input{
		CompanyName:     "Acme Realty",
		Industry:        "Real Estate",
		EmployeeCount:   "6-20",
		Channels:        []pricing.Channel{pricing.ChannelChat},
		MonthlyLeads:    "<50",
		AvgCallDuration: "2-5min",
	}
}

func TestCalculateEndpoint(t *testing.T) {
	r := setupRouter(t)
	cookies := login(t, r)

	rec := doJSON(t, r, http.MethodPost, "/calculate", starterInput(), cookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp types.CalcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, pricing.TierStarter, resp.Output.RecommendedTier)
	assert.Equal(t, float64(597), resp.Output.MonthlyTotal)
	assert.Contains(t, resp.SMS, "Acme Realty")
	assert.Contains(t, resp.Email, "Subject:")
	assert.Contains(t, resp.Proposal, "PROPOSAL SUMMARY")
	assert.Contains(t, resp.InternalNotes, "INTERNAL QUOTE NOTES")
}

func TestCalculateRejectsMalformedJSON(t *testing.T) {
	r := setupRouter(t)
	cookies := login(t, r)

	rec := doJSON(t, r, http.MethodPost, "/calculate", "not an object", cookies)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuoteSaveListLoad(t *testing.T) {
	r := setupRouter(t)
	cookies := login(t, r)

	input := starterInput()
	output := pricing.Calculate(input)

	rec := doJSON(t, r, http.MethodPost, "/quotes/save", types.QuoteSubmission{Input: input, Output: output}, cookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var saved struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	require.NotEmpty(t, saved.ID)

	// List shows it, newest first, with the original input attached.
	rec = doJSON(t, r, http.MethodGet, "/quotes", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Quotes []types.QuoteSummary `json:"quotes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Quotes, 1)
	got := list.Quotes[0]
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Acme Realty", got.CompanyName)
	assert.Equal(t, "Starter", got.RecommendedTier)
	assert.Equal(t, output.MonthlyTotal, got.MonthlyTotal)
	assert.Equal(t, testAdminUser, got.CreatedBy)
	assert.Equal(t, input, got.Input)

	// Load returns input and output verbatim.
	rec = doJSON(t, r, http.MethodGet, "/quotes/"+saved.ID, nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	var loaded struct {
		Input  pricing.Input  `json:"input"`
		Output pricing.Output `json:"output"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loaded))
	assert.Equal(t, input, loaded.Input)
	assert.Equal(t, output, loaded.Output)
}

func TestLoadQuoteNotFound(t *testing.T) {
	r := setupRouter(t)
	cookies := login(t, r)

	rec := doJSON(t, r, http.MethodGet, "/quotes/no-such-id", nil, cookies)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
