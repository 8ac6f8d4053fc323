package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/howardchatman/chatmaninc/database"
	"github.com/howardchatman/chatmaninc/logging"
	"github.com/howardchatman/chatmaninc/types"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SubmitLead is the public website lead form. This is where required-field
// validation lives; the pricing engine itself accepts anything.
func SubmitLead(c *gin.Context) {
	var form types.LeadForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.ToLower(strings.TrimSpace(form.Email))
	form.Goal = strings.TrimSpace(form.Goal)

	if form.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	if form.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}
	if !emailPattern.MatchString(form.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid email address"})
		return
	}
	if form.Goal == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please describe your challenge or goal"})
		return
	}

	res, err := database.DB.Exec(`INSERT INTO leads (name, email, company, industry, interest, source)
		VALUES (?, ?, ?, ?, ?, 'website_modal')`,
		form.Name, form.Email, strings.TrimSpace(form.Company), strings.TrimSpace(form.Industry), form.Goal)
	if err != nil {
		logging.Log.Errorw("lead insert failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit. Please try again."})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"id": id, "success": true})
}

// ListLeads returns leads for the console, newest first, with optional
// status and free-text filters.
func ListLeads(c *gin.Context) {
	status := c.Query("status")
	search := c.Query("search")

	query := `SELECT id, name, email, phone, company, industry, status, source, interest, notes, score, created_at
		FROM leads`
	var where []string
	var args []any
	if status != "" && status != "all" {
		where = append(where, "status = ?")
		args = append(args, status)
	}
	if search != "" {
		where = append(where, "(name LIKE ? OR email LIKE ? OR company LIKE ?)")
		needle := "%" + search + "%"
		args = append(args, needle, needle, needle)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := database.DB.Query(query, args...)
	if err != nil {
		logging.Log.Errorw("lead list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	defer rows.Close()

	leads := []types.Lead{}
	for rows.Next() {
		var l types.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Company, &l.Industry,
			&l.Status, &l.Source, &l.Interest, &l.Notes, &l.Score, &l.CreatedAt); err != nil {
			logging.Log.Errorw("lead scan failed", "error", err)
			continue
		}
		leads = append(leads, l)
	}

	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

// CreateLead adds a lead manually from the console.
func CreateLead(c *gin.Context) {
	var lead types.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if lead.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	if lead.Status == "" {
		lead.Status = "warm"
	}
	if lead.Source == "" {
		lead.Source = "manual"
	}
	if lead.Score == 0 {
		lead.Score = 50
	}

	res, err := database.DB.Exec(`INSERT INTO leads (name, email, phone, company, industry, status, source, interest, notes, score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		lead.Name, lead.Email, lead.Phone, lead.Company, lead.Industry, lead.Status, lead.Source, lead.Interest, lead.Notes, lead.Score)
	if err != nil {
		logging.Log.Errorw("lead create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	lead.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"lead": lead})
}

// UpdateLead patches status/notes/score on an existing lead.
func UpdateLead(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status *string `json:"status"`
		Notes  *string `json:"notes"`
		Score  *int    `json:"score"`
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
	if req.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *req.Notes)
	}
	if req.Score != nil {
		sets = append(sets, "score = ?")
		args = append(args, *req.Score)
	}
	if len(sets) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}
	args = append(args, id)

	res, err := database.DB.Exec("UPDATE leads SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		logging.Log.Errorw("lead update failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
