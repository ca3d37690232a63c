package diary

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func usernameFromContext(c *gin.Context) (string, bool) {
	usernameVal, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	username, ok := usernameVal.(string)
	if !ok || username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user context"})
		return "", false
	}
	return username, true
}

func dateParam(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use YYYY-MM-DD"})
		return "", false
	}
	return date, true
}

// --------------------------------------------------
// POST /diary/:date/meals
// --------------------------------------------------
func (h *Handler) LogMeals(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	username, ok := usernameFromContext(c)
	if !ok {
		return
	}
	date, ok := dateParam(c)
	if !ok {
		return
	}

	entries, total, err := h.service.LogMeals(username, date, req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save entries"})
		return
	}

	if len(entries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no food items found in input"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"added":      len(entries),
		"entries":    entries,
		"added_kcal": total,
		"date":       date,
	})
}

// --------------------------------------------------
// GET /diary/:date?target=2000
// --------------------------------------------------
func (h *Handler) Day(c *gin.Context) {
	username, ok := usernameFromContext(c)
	if !ok {
		return
	}
	date, ok := dateParam(c)
	if !ok {
		return
	}

	target := 0
	if raw := c.Query("target"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target"})
			return
		}
		target = parsed
	}

	summary, err := h.service.Day(username, date, target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch entries"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// --------------------------------------------------
// DELETE /diary/:date
// --------------------------------------------------
func (h *Handler) ClearDay(c *gin.Context) {
	username, ok := usernameFromContext(c)
	if !ok {
		return
	}
	date, ok := dateParam(c)
	if !ok {
		return
	}

	if err := h.service.ClearDay(username, date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear day"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "day cleared",
		"date":    date,
	})
}

// --------------------------------------------------
// DELETE /diary
// --------------------------------------------------
func (h *Handler) ResetAll(c *gin.Context) {
	username, ok := usernameFromContext(c)
	if !ok {
		return
	}

	if err := h.service.ResetAll(username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "account data reset",
	})
}
