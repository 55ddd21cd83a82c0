// Package loader turns a harvested file into the input of the analysis pipeline.
package loader

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/qepting91/complaint-harvester/internal/domain"
	"github.com/qepting91/complaint-harvester/internal/storage"
)

var turkishMonths = map[string]string{
	"Ocak":    "01",
	"Şubat":   "02",
	"Mart":    "03",
	"Nisan":   "04",
	"Mayıs":   "05",
	"Haziran": "06",
	"Temmuz":  "07",
	"Ağustos": "08",
	"Eylül":   "09",
	"Ekim":    "10",
	"Kasım":   "11",
	"Aralık":  "12",
}

// Comment is one harvested complaint with a sequential id and a calendar date.
type Comment struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Platform string `json:"platform"`
	Date     string `json:"date"`
}

// Dataset is what the analysis pipeline consumes.
type Dataset struct {
	Brand    string    `json:"brand,omitempty"`
	Comments []Comment `json:"comments"`
}

// ParseTurkishDate turns feed timestamps such as "16 Ocak 10:23" into YYYY-MM-DD.
// The feed omits the year, so now's year is used. Unparseable input maps to now's date.
func ParseTurkishDate(raw string, now time.Time) string {
	today := now.Format("2006-01-02")
	parts := strings.Fields(raw)
	if len(parts) < 2 {
		return today
	}

	day := parts[0]
	if len(day) < 2 {
		day = "0" + day
	}
	month, ok := turkishMonths[parts[1]]
	if !ok {
		month = "01"
	}
	return fmt.Sprintf("%d-%s-%s", now.Year(), month, day)
}

// Transform reassigns ids 1..n in file order and normalizes dates.
func Transform(records []domain.Record, now time.Time) Dataset {
	ds := Dataset{Comments: make([]Comment, 0, len(records))}
	for i, r := range records {
		var date string
		if r.Date != nil {
			date = *r.Date
		}
		ds.Comments = append(ds.Comments, Comment{
			ID:       i + 1,
			Text:     r.Text,
			Platform: domain.SourceSite,
			Date:     ParseTurkishDate(date, now),
		})
	}
	if len(records) > 0 {
		ds.Brand = records[0].Company
	}
	return ds
}

// LoadScraped reads a harvested file and transforms it.
func LoadScraped(path string, now time.Time) (Dataset, error) {
	slog.Info("Loading scraped data", "path", path)
	records, err := storage.ReadRecords(path)
	if err != nil {
		return Dataset{}, err
	}
	return Transform(records, now), nil
}
