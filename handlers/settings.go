package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/howardchatman/chatmaninc/database"
	"github.com/howardchatman/chatmaninc/logging"
	"github.com/howardchatman/chatmaninc/types"
)

func ShowSettings(c *gin.Context) {
	var s types.Settings
	err := database.DB.QueryRow(`SELECT company_name, contact_email, timezone, booking_duration_min
		FROM settings WHERE id=1`).Scan(&s.CompanyName, &s.ContactEmail, &s.Timezone, &s.BookingDurationMin)
	if err != nil {
		logging.Log.Errorw("settings read failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": s})
}

func UpdateSettings(c *gin.Context) {
	var s types.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := database.DB.Exec(`UPDATE settings SET company_name=?, contact_email=?, timezone=?, booking_duration_min=?
		WHERE id=1`, s.CompanyName, s.ContactEmail, s.Timezone, s.BookingDurationMin)
	if err != nil {
		logging.Log.Errorw("settings update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": s})
}
