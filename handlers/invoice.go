package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/howardchatman/chatmaninc/database"
	"github.com/howardchatman/chatmaninc/logging"
	"github.com/howardchatman/chatmaninc/types"
)

func ListInvoices(c *gin.Context) {
	status := c.Query("status")

	query := `SELECT id, COALESCE(lead_id, 0), number, total, status, due_date, created_at FROM invoices`
	var args []any
	if status != "" && status != "all" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := database.DB.Query(query, args...)
	if err != nil {
		logging.Log.Errorw("invoice list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	defer rows.Close()

	invoices := []types.Invoice{}
	for rows.Next() {
		var inv types.Invoice
		if err := rows.Scan(&inv.ID, &inv.LeadID, &inv.Number, &inv.Total, &inv.Status, &inv.DueDate, &inv.CreatedAt); err != nil {
			logging.Log.Errorw("invoice scan failed", "error", err)
			continue
		}
		invoices = append(invoices, inv)
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func CreateInvoice(c *gin.Context) {
	var inv types.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if inv.Total < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total must not be negative"})
		return
	}
	if inv.Status == "" {
		inv.Status = "pending"
	}
	if inv.Number == "" {
		// INV-<year>-<seq>, seq scoped to the current year
		var seq int
		_ = database.DB.QueryRow("SELECT count(*) + 1 FROM invoices WHERE number LIKE ?",
			fmt.Sprintf("INV-%d-%%", time.Now().Year())).Scan(&seq)
		inv.Number = fmt.Sprintf("INV-%d-%04d", time.Now().Year(), seq)
	}

	var leadID any
	if inv.LeadID > 0 {
		leadID = inv.LeadID
	}
	res, err := database.DB.Exec(`INSERT INTO invoices (lead_id, number, total, status, due_date)
		VALUES (?, ?, ?, ?, ?)`, leadID, inv.Number, inv.Total, inv.Status, inv.DueDate)
	if err != nil {
		logging.Log.Errorw("invoice create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	inv.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"invoice": inv})
}

func UpdateInvoice(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status  *string `json:"status"`
		DueDate *string `json:"dueDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var sets []string
	var args []any
	if req.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *req.Status)
	}
	if req.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, *req.DueDate)
	}
	if len(sets) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}
	args = append(args, id)

	res, err := database.DB.Exec("UPDATE invoices SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		logging.Log.Errorw("invoice update failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
