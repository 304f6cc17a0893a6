package models

// Editorial taxonomy served to clients and used for input validation.
// Values mirror what the calendar frontend offers in its pickers.

var Platforms = []string{"linkedin", "facebook", "instagram", "tiktok", "youtube"}

var Formats = []string{"reel", "carrousel", "post", "story", "video_longue", "live"}

var Statuses = []string{"todo", "prepared", "published"}

// Genres lists genre values in display order.
var Genres = []string{"educatif", "behind", "humour", "business", "portfolio", "inspiration", "interactif"}

// SubGenres maps each genre to its conventional sub-genre values. subGenre
// stays free-form on the content row; this table is advisory.
var SubGenres = map[string][]string{
	"educatif":    {"tutoriels", "demo", "comparaisons", "faq", "analyses"},
	"behind":      {"processus", "setup", "evolution", "journee", "organisation"},
	"humour":      {"situations", "avantapres", "parodies", "memes", "fails"},
	"business":    {"tarification", "tendances", "interviews", "retours", "reflexions"},
	"portfolio":   {"etudes", "avantapres", "projets", "collaborations"},
	"inspiration": {"parcours", "echecs", "motivation", "communaute"},
	"interactif":  {"qa", "sondages", "challenges", "feedback"},
}

// IsValidStatus reports whether s is one of the known workflow statuses.
func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}
