package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/howardchatman/chatmaninc/pricing"
	"github.com/howardchatman/chatmaninc/types"
)

// Calculate runs the pricing engine over one intake form and returns the
// full quote with all four rendered texts. The engine is total, so the
// only rejectable request is malformed JSON.
func Calculate(c *gin.Context) {
	var input pricing.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output := pricing.Calculate(input)

	c.JSON(http.StatusOK, types.CalcResponse{
		Output:        output,
		SMS:           pricing.SMSQuote(input, output),
		Email:         pricing.EmailQuote(input, output),
		Proposal:      pricing.ProposalSummary(input, output),
		InternalNotes: pricing.InternalNotes(input, output),
	})
}
