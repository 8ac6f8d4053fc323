package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/howardchatman/chatmaninc/database"
	"github.com/howardchatman/chatmaninc/logging"
)

// WebhookSecret verifies the voice agent's webhook signatures when set.
var WebhookSecret string

type callAnalysis struct {
	CallerName      string `json:"caller_name"`
	CallerEmail     string `json:"caller_email"`
	CallerPhone     string `json:"caller_phone"`
	CompanyName     string `json:"company_name"`
	ProjectInterest string `json:"project_interest"`
	BudgetRange     string `json:"budget_range"`
	Timeline        string `json:"timeline"`
	LeadQuality     string `json:"lead_quality"`
	KeyNotes        string `json:"key_notes"`
}

type callPayload struct {
	Event string `json:"event"`
	Call  struct {
		CallID     string        `json:"call_id"`
		Transcript string        `json:"transcript"`
		Analysis   *callAnalysis `json:"call_analysis"`
	} `json:"call"`
}

var transcriptEmail = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w{2,}`)

// Conversation phrases that mark a caller as ready to buy.
var hotSignals = []string{
	"schedule a call", "book a meeting", "ready to start", "when can we begin",
	"send me a proposal", "what are next steps", "budget is", "timeline is",
	"let's do it", "sign me up",
}

// VoiceWebhook ingests post-call events from the AI voice agent and turns
// them into leads. Calls with no captured email are acknowledged and
// dropped.
func VoiceWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	if WebhookSecret != "" {
		sig := c.GetHeader("X-Voice-Signature")
		if !verifySignature(body, sig, WebhookSecret) {
			logging.Log.Warnw("webhook signature rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
	}

	var payload callPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if payload.Event != "call_ended" && payload.Event != "call_analyzed" {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "event type ignored"})
		return
	}

	lead := parseCallLead(payload.Call.Analysis, payload.Call.Transcript)
	if lead.email == "" {
		logging.Log.Infow("call produced no lead", "call_id", payload.Call.CallID)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "no lead captured"})
		return
	}

	status := callLeadStatus(lead, payload.Call.Transcript)
	score := callLeadScore(lead, payload.Call.Transcript)

	if err := upsertCallLead(lead, status, score); err != nil {
		logging.Log.Errorw("lead upsert failed", "call_id", payload.Call.CallID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func verifySignature(payload []byte, signature, secret string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}

type callLead struct {
	name, email, phone, company, interest string
	budget, timeline, quality, notes      string
}

func parseCallLead(analysis *callAnalysis, transcript string) callLead {
	var lead callLead
	if analysis != nil {
		lead.name = analysis.CallerName
		lead.email = analysis.CallerEmail
		lead.phone = analysis.CallerPhone
		lead.company = analysis.CompanyName
		lead.interest = analysis.ProjectInterest
		if analysis.BudgetRange != "" && analysis.BudgetRange != "not discussed" {
			lead.budget = analysis.BudgetRange
		}
		if analysis.Timeline != "" && analysis.Timeline != "not discussed" {
			lead.timeline = analysis.Timeline
		}
		lead.quality = analysis.LeadQuality
		lead.notes = analysis.KeyNotes
	}

	// Last resort: pull an email straight out of the transcript.
	if lead.email == "" {
		lead.email = transcriptEmail.FindString(transcript)
	}
	lead.email = strings.ToLower(strings.TrimSpace(lead.email))
	return lead
}

func callLeadStatus(lead callLead, transcript string) string {
	switch strings.ToLower(lead.quality) {
	case "hot":
		return "hot"
	case "warm":
		return "warm"
	case "cold":
		return "cold"
	}

	lower := strings.ToLower(transcript)
	for _, signal := range hotSignals {
		if strings.Contains(lower, signal) {
			return "hot"
		}
	}
	if lead.budget != "" || lead.timeline != "" {
		return "warm"
	}
	if lead.email != "" {
		return "warm"
	}
	return "cold"
}

func callLeadScore(lead callLead, transcript string) int {
	score := 0
	if lead.name != "" {
		score += 10
	}
	if lead.email != "" {
		score += 20
	}
	if lead.phone != "" {
		score += 10
	}
	if lead.company != "" {
		score += 15
	}
	if lead.interest != "" {
		score += 15
	}
	if lead.budget != "" {
		score += 15
	}
	if lead.timeline != "" {
		score += 15
	}

	lower := strings.ToLower(transcript)
	if strings.Contains(lower, "schedule") || strings.Contains(lower, "book") {
		score += 20
	}
	if strings.Contains(lower, "budget") {
		score += 10
	}
	if strings.Contains(lower, "timeline") || strings.Contains(lower, "urgent") {
		score += 10
	}
	if strings.Contains(lower, "decision maker") || strings.Contains(lower, "ceo") || strings.Contains(lower, "owner") {
		score += 15
	}

	if score > 100 {
		score = 100
	}
	return score
}

func upsertCallLead(lead callLead, status string, score int) error {
	notes := lead.notes
	if lead.budget != "" {
		notes += "\nBudget: " + lead.budget
	}
	if lead.timeline != "" {
		notes += "\nTimeline: " + lead.timeline
	}
	notes = strings.TrimSpace(notes)

	var id int64
	var existingScore int
	err := database.DB.QueryRow("SELECT id, score FROM leads WHERE email = ?", lead.email).Scan(&id, &existingScore)
	if errors.Is(err, sql.ErrNoRows) {
		_, err = database.DB.Exec(`INSERT INTO leads (name, email, phone, company, status, source, interest, notes, score)
			VALUES (?, ?, ?, ?, ?, 'voice_agent', ?, ?, ?)`,
			lead.name, lead.email, lead.phone, lead.company, status, lead.interest, notes, score)
		return err
	}
	if err != nil {
		return err
	}

	// Re-engaged lead: keep the higher score, refresh contact details.
	if existingScore > score {
		score = existingScore
	}
	_, err = database.DB.Exec(`UPDATE leads SET name = COALESCE(NULLIF(?, ''), name),
		phone = COALESCE(NULLIF(?, ''), phone), company = COALESCE(NULLIF(?, ''), company),
		status = ?, notes = ?, score = ? WHERE id = ?`,
		lead.name, lead.phone, lead.company, status, notes, score, id)
	return err
}
