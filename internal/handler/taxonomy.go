package handler

import (
	"net/http"

	"github.com/Dadssi/Calendrier-Editoriel/internal/models"
	"github.com/Dadssi/Calendrier-Editoriel/internal/util"

	"github.com/gin-gonic/gin"
)

type genreResp struct {
	Value     string   `json:"value"`
	SubGenres []string `json:"subGenres"`
}

// GetTaxonomies returns the platform/format/genre/status values the content
// form offers, so clients do not hard-code them.
func GetTaxonomies(c *gin.Context) {
	genres := make([]genreResp, 0, len(models.Genres))
	for _, g := range models.Genres {
		genres = append(genres, genreResp{Value: g, SubGenres: models.SubGenres[g]})
	}

	util.JSON(c, http.StatusOK, gin.H{
		"platforms": models.Platforms,
		"formats":   models.Formats,
		"genres":    genres,
		"statuses":  models.Statuses,
	})
}
