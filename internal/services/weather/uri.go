package weather

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/Nazarious-ucu/weather-informer/internal/models"
)

const (
	MinLimit = 1
	MaxLimit = 7
)

// BuildRequestURI appends the location, language and, for a horizon in
// [MinLimit, MaxLimit], the limit parameter to baseURL.
func BuildRequestURI(baseURL string, loc models.Location, lang string, limit int) string {
	uri := fmt.Sprintf("%s?lat=%s&lon=%s&lang=%s",
		baseURL,
		strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
		url.QueryEscape(lang),
	)
	if limit >= MinLimit && limit <= MaxLimit {
		uri += fmt.Sprintf("&limit=%d", limit)
	}
	return uri
}
