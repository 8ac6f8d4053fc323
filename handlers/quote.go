package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/howardchatman/chatmaninc/database"
	"github.com/howardchatman/chatmaninc/logging"
	"github.com/howardchatman/chatmaninc/pricing"
	"github.com/howardchatman/chatmaninc/types"
)

// SaveQuote records one calculated quote. The engine output is stored
// verbatim alongside the input so the form can be reloaded later.
func SaveQuote(c *gin.Context) {
	var req types.QuoteSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := sessions.Default(c)
	createdBy, _ := session.Get("username").(string)

	inputJSON, err := json.Marshal(req.Input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input payload"})
		return
	}
	outputJSON, err := json.Marshal(req.Output)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid output payload"})
		return
	}

	id := uuid.NewString()
	var leadID any
	if req.LeadID > 0 {
		leadID = req.LeadID
	}

	_, err = database.DB.Exec(`INSERT INTO quotes
		(id, company_name, industry, employee_count, recommended_tier, monthly_total, setup_fee, annual_total, input_json, output_json, lead_id, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, req.Input.CompanyName, req.Input.Industry, req.Input.EmployeeCount,
		string(req.Output.RecommendedTier), req.Output.MonthlyTotal, req.Output.SetupFee, req.Output.AnnualTotal,
		string(inputJSON), string(outputJSON), leadID, createdBy)
	if err != nil {
		logging.Log.Errorw("quote insert failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListQuotes returns the 50 most recent saved quotes, newest first, with
// the full original input so the calculator form can be repopulated.
func ListQuotes(c *gin.Context) {
	rows, err := database.DB.Query(`SELECT id, company_name, industry, employee_count, recommended_tier,
		monthly_total, setup_fee, annual_total, input_json, created_by, created_at
		FROM quotes ORDER BY created_at DESC LIMIT 50`)
	if err != nil {
		logging.Log.Errorw("quote list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	defer rows.Close()

	quotes := []types.QuoteSummary{}
	for rows.Next() {
		var q types.QuoteSummary
		var inputJSON string
		var createdAt time.Time
		if err := rows.Scan(&q.ID, &q.CompanyName, &q.Industry, &q.EmployeeCount, &q.RecommendedTier,
			&q.MonthlyTotal, &q.SetupFee, &q.AnnualTotal, &inputJSON, &q.CreatedBy, &createdAt); err != nil {
			logging.Log.Errorw("quote scan failed", "error", err)
			continue
		}
		q.CreatedAt = createdAt
		if err := json.Unmarshal([]byte(inputJSON), &q.Input); err != nil {
			logging.Log.Warnw("stored quote input unreadable", "id", q.ID, "error", err)
		}
		quotes = append(quotes, q)
	}

	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}

// LoadQuote returns one saved quote with both the stored input and output.
func LoadQuote(c *gin.Context) {
	id := c.Param("id")

	var inputJSON, outputJSON, createdBy string
	var createdAt time.Time
	err := database.DB.QueryRow(`SELECT input_json, output_json, created_by, created_at FROM quotes WHERE id=?`, id).
		Scan(&inputJSON, &outputJSON, &createdBy, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		return
	}
	if err != nil {
		logging.Log.Errorw("quote load failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	var input pricing.Input
	var output pricing.Output
	if err := json.Unmarshal([]byte(inputJSON), &input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stored quote unreadable"})
		return
	}
	if err := json.Unmarshal([]byte(outputJSON), &output); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stored quote unreadable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        id,
		"input":     input,
		"output":    output,
		"createdBy": createdBy,
		"createdAt": createdAt,
	})
}
