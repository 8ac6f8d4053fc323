package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/howardchatman/chatmaninc/database"
	"github.com/howardchatman/chatmaninc/logging"
	"github.com/howardchatman/chatmaninc/types"
)

func ListBookings(c *gin.Context) {
	rows, err := database.DB.Query(`SELECT id, COALESCE(lead_id, 0), name, email, start_time, end_time, status, created_at
		FROM bookings ORDER BY start_time ASC`)
	if err != nil {
		logging.Log.Errorw("booking list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	defer rows.Close()

	bookings := []types.Booking{}
	for rows.Next() {
		var b types.Booking
		if err := rows.Scan(&b.ID, &b.LeadID, &b.Name, &b.Email, &b.StartTime, &b.EndTime, &b.Status, &b.CreatedAt); err != nil {
			logging.Log.Errorw("booking scan failed", "error", err)
			continue
		}
		bookings = append(bookings, b)
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func CreateBooking(c *gin.Context) {
	var b types.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if b.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	if b.StartTime.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startTime is required"})
		return
	}
	if b.EndTime.IsZero() {
		// Default slot length comes from the business settings.
		minutes := 30
		_ = database.DB.QueryRow("SELECT booking_duration_min FROM settings WHERE id=1").Scan(&minutes)
		b.EndTime = b.StartTime.Add(time.Duration(minutes) * time.Minute)
	}
	if !b.EndTime.After(b.StartTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endTime must be after startTime"})
		return
	}
	if b.Status == "" {
		b.Status = "confirmed"
	}

	var leadID any
	if b.LeadID > 0 {
		leadID = b.LeadID
	}
	res, err := database.DB.Exec(`INSERT INTO bookings (lead_id, name, email, start_time, end_time, status)
		VALUES (?, ?, ?, ?, ?, ?)`, leadID, b.Name, b.Email, b.StartTime, b.EndTime, b.Status)
	if err != nil {
		logging.Log.Errorw("booking create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	b.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"booking": b})
}
