package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Dadssi/Calendrier-Editoriel/internal/models"
	"github.com/Dadssi/Calendrier-Editoriel/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContentHandler serves the calendar entry CRUD endpoints.
type ContentHandler struct {
	DB *gorm.DB
}

func NewContentHandler(db *gorm.DB) *ContentHandler {
	return &ContentHandler{DB: db}
}

// ---------- request/response shapes ----------

// contentBody is used for both create and partial update. Every field is a
// pointer so an omitted key can be told apart from one set to an empty
// value; only non-nil fields participate in an update.
type contentBody struct {
	Date        *string   `json:"date"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Platforms   *[]string `json:"platforms"`
	Format      *string   `json:"format"`
	Genre       *string   `json:"genre"`
	SubGenre    *string   `json:"subGenre"`
	Time        *string   `json:"time"`
	Status      *string   `json:"status"`
}

type contentResp struct {
	ID          uint     `json:"id"`
	Date        string   `json:"date"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Platforms   []string `json:"platforms"`
	Format      string   `json:"format"`
	Genre       string   `json:"genre"`
	SubGenre    string   `json:"subGenre"`
	Time        string   `json:"time"`
	Status      string   `json:"status"`
}

// ---------- normalization ----------

// normalizeTime truncates a stored time to HH:mm. Idempotent: a value that
// is already five characters comes back unchanged.
func normalizeTime(s string) string {
	if len(s) >= 5 {
		return s[:5]
	}
	return s
}

// encodePlatforms serializes the ordered platform list for storage.
func encodePlatforms(platforms []string) (string, error) {
	b, err := json.Marshal(platforms)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodePlatforms restores the platform list from its storage form. The
// result is never nil; unreadable data decodes to an empty list.
func decodePlatforms(stored string) []string {
	var platforms []string
	if err := json.Unmarshal([]byte(stored), &platforms); err != nil || platforms == nil {
		return []string{}
	}
	return platforms
}

func toContentResp(ct *models.Content) contentResp {
	return contentResp{
		ID:          ct.ID,
		Date:        ct.Date,
		Title:       ct.Title,
		Description: ct.Description,
		Platforms:   decodePlatforms(ct.Platforms),
		Format:      ct.Format,
		Genre:       ct.Genre,
		SubGenre:    ct.SubGenre,
		Time:        normalizeTime(ct.Time),
		Status:      ct.Status,
	}
}

// validateContentFields rejects values the data model declares malformed.
// Nil fields are skipped so the same check serves create and update.
func validateContentFields(c *gin.Context, b *contentBody) bool {
	if b.Title != nil && strings.TrimSpace(*b.Title) == "" {
		util.Error(c, http.StatusUnprocessableEntity, "Title must not be empty")
		return false
	}
	if b.Date != nil {
		if err := util.ValidateDate(*b.Date); err != nil {
			util.Error(c, http.StatusUnprocessableEntity, "Invalid date, expected YYYY-MM-DD")
			return false
		}
	}
	if b.Time != nil {
		if err := util.ValidateTime(*b.Time); err != nil {
			util.Error(c, http.StatusUnprocessableEntity, "Invalid time, expected HH:mm")
			return false
		}
	}
	if b.Status != nil && !models.IsValidStatus(*b.Status) {
		util.Error(c, http.StatusUnprocessableEntity, "Invalid status")
		return false
	}
	return true
}

// ---------- list ----------

// List returns entries for one exact date (ordered by time) or the whole
// calendar (ordered by date, then time).
func (h *ContentHandler) List(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))

	q := h.DB.Model(&models.Content{})
	if date != "" {
		q = q.Where("date = ?", date).Order("time ASC")
	} else {
		q = q.Order("date ASC, time ASC")
	}

	var rows []models.Content
	if err := q.Find(&rows).Error; err != nil {
		util.ServerError(c)
		return
	}

	items := make([]contentResp, 0, len(rows))
	for i := range rows {
		items = append(items, toContentResp(&rows[i]))
	}

	util.JSON(c, http.StatusOK, items)
}

// ---------- create ----------

// Create inserts a new entry. All nine fields must be present; the row is
// re-fetched by its new id so the response reflects exactly what was stored.
func (h *ContentHandler) Create(c *gin.Context) {
	var body contentBody
	if !bindJSON(c, &body) {
		return
	}

	required := []struct {
		name    string
		present bool
	}{
		{"date", body.Date != nil},
		{"title", body.Title != nil},
		{"description", body.Description != nil},
		{"platforms", body.Platforms != nil},
		{"format", body.Format != nil},
		{"genre", body.Genre != nil},
		{"subGenre", body.SubGenre != nil},
		{"time", body.Time != nil},
		{"status", body.Status != nil},
	}
	for _, f := range required {
		if !f.present {
			util.Error(c, http.StatusUnprocessableEntity, "Missing field: "+f.name)
			return
		}
	}

	if !validateContentFields(c, &body) {
		return
	}

	platforms, err := encodePlatforms(*body.Platforms)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	content := models.Content{
		Date:        *body.Date,
		Title:       *body.Title,
		Description: *body.Description,
		Platforms:   platforms,
		Format:      *body.Format,
		Genre:       *body.Genre,
		SubGenre:    *body.SubGenre,
		Time:        *body.Time,
		Status:      *body.Status,
	}
	if err := h.DB.Create(&content).Error; err != nil {
		util.ServerError(c)
		return
	}

	var fresh models.Content
	if err := h.DB.First(&fresh, content.ID).Error; err != nil {
		util.ServerError(c)
		return
	}

	util.JSON(c, http.StatusCreated, toContentResp(&fresh))
}

// ---------- partial update ----------

// Update changes only the fields present in the body. The row is re-fetched
// afterwards; an id that no longer exists is reported as not found.
func (h *ContentHandler) Update(c *gin.Context) {
	// anything but a plain unsigned integer falls to the route catch-all;
	// id 0 is a well-formed id that simply never exists
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		util.Error(c, http.StatusNotFound, "Not found")
		return
	}

	var body contentBody
	if !bindJSON(c, &body) {
		return
	}

	if !validateContentFields(c, &body) {
		return
	}

	updates := map[string]interface{}{}
	if body.Date != nil {
		updates["date"] = *body.Date
	}
	if body.Title != nil {
		updates["title"] = *body.Title
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.Platforms != nil {
		platforms, err := encodePlatforms(*body.Platforms)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		updates["platforms"] = platforms
	}
	if body.Format != nil {
		updates["format"] = *body.Format
	}
	if body.Genre != nil {
		updates["genre"] = *body.Genre
	}
	if body.SubGenre != nil {
		updates["sub_genre"] = *body.SubGenre
	}
	if body.Time != nil {
		updates["time"] = *body.Time
	}
	if body.Status != nil {
		updates["status"] = *body.Status
	}

	if len(updates) == 0 {
		util.Error(c, http.StatusUnprocessableEntity, "No fields to update")
		return
	}

	if err := h.DB.Model(&models.Content{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		util.ServerError(c)
		return
	}

	var fresh models.Content
	if err := h.DB.First(&fresh, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Content not found")
		} else {
			util.ServerError(c)
		}
		return
	}

	util.JSON(c, http.StatusOK, toContentResp(&fresh))
}

// ---------- delete ----------

// Delete removes an entry by id. Deleting an id that does not exist is not
// an error; the acknowledgment is the same either way.
func (h *ContentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		util.Error(c, http.StatusNotFound, "Not found")
		return
	}

	if err := h.DB.Delete(&models.Content{}, id).Error; err != nil {
		util.ServerError(c)
		return
	}

	util.JSON(c, http.StatusOK, gin.H{"deleted": true})
}
