package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/howardchatman/chatmaninc/database"
	"github.com/howardchatman/chatmaninc/logging"
	"github.com/howardchatman/chatmaninc/types"
)

// Dashboard aggregates the console landing-page stats: lead pipeline,
// revenue from paid invoices, pending invoices, upcoming bookings and the
// five newest leads.
func Dashboard(c *gin.Context) {
	stats := gin.H{}

	var total, hot, warm, cold int
	rows, err := database.DB.Query("SELECT status, count(*) FROM leads GROUP BY status")
	if err != nil {
		logging.Log.Errorw("dashboard lead stats failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			continue
		}
		total += n
		switch status {
		case "hot":
			hot = n
		case "warm":
			warm = n
		case "cold":
			cold = n
		}
	}
	rows.Close()
	stats["leads"] = gin.H{"total": total, "hot": hot, "warm": warm, "cold": cold}

	var revenue float64
	_ = database.DB.QueryRow("SELECT COALESCE(SUM(total), 0) FROM invoices WHERE status = 'paid'").Scan(&revenue)
	var pendingInvoices int
	_ = database.DB.QueryRow("SELECT count(*) FROM invoices WHERE status = 'pending'").Scan(&pendingInvoices)
	stats["revenue"] = revenue
	stats["pendingInvoices"] = pendingInvoices

	var upcomingMeetings int
	_ = database.DB.QueryRow("SELECT count(*) FROM bookings WHERE status = 'confirmed' AND start_time >= ?",
		time.Now().UTC()).Scan(&upcomingMeetings)
	stats["upcomingMeetings"] = upcomingMeetings

	var quoteCount int
	_ = database.DB.QueryRow("SELECT count(*) FROM quotes").Scan(&quoteCount)
	stats["savedQuotes"] = quoteCount

	recent := []types.Lead{}
	leadRows, err := database.DB.Query(`SELECT id, name, email, company, status, source, created_at
		FROM leads ORDER BY created_at DESC LIMIT 5`)
	if err == nil {
		for leadRows.Next() {
			var l types.Lead
			if err := leadRows.Scan(&l.ID, &l.Name, &l.Email, &l.Company, &l.Status, &l.Source, &l.CreatedAt); err == nil {
				recent = append(recent, l)
			}
		}
		leadRows.Close()
	}
	stats["recentLeads"] = recent

	c.JSON(http.StatusOK, stats)
}
