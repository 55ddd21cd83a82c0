package dashboard

import (
	"io"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/qepting91/complaint-harvester/internal/domain"
	"github.com/qepting91/complaint-harvester/internal/loader"
	"github.com/qepting91/complaint-harvester/internal/storage"
)

const topUsers = 10

// Handler renders charts for the harvested file, re-reading it on every request.
func Handler(dataFile string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		records, err := storage.ReadRecords(dataFile)
		if err != nil {
			slog.Warn("Dashboard could not read data", "path", dataFile, "err", err)
			http.Error(w, "no harvested data yet", http.StatusServiceUnavailable)
			return
		}
		if err := Render(w, records, time.Now()); err != nil {
			slog.Error("Dashboard render failed", "err", err)
		}
	})
}

// StartServer serves the dashboard until the listener fails.
func StartServer(dataFile string, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/", Handler(dataFile))
	return http.ListenAndServe(":"+port, mux)
}

// Render writes both charts to w.
func Render(w io.Writer, records []domain.Record, now time.Time) error {
	// 1. Complaints per day
	days, perDay := countByDay(records, now)
	var dayItems []opts.BarData
	for _, d := range days {
		dayItems = append(dayItems, opts.BarData{Value: perDay[d]})
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Complaints per Day"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)
	bar.SetXAxis(days).AddSeries("Complaints", dayItems)

	// 2. Most active users
	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Most Active Users"}))
	var pieItems []opts.PieData
	for _, u := range countUsers(records) {
		pieItems = append(pieItems, opts.PieData{Name: u.name, Value: u.count})
	}
	pie.AddSeries("Complaints", pieItems)

	if err := bar.Render(w); err != nil {
		return err
	}
	return pie.Render(w)
}

func countByDay(records []domain.Record, now time.Time) ([]string, map[string]int) {
	counts := make(map[string]int)
	for _, r := range records {
		var raw string
		if r.Date != nil {
			raw = *r.Date
		}
		counts[loader.ParseTurkishDate(raw, now)]++
	}
	days := make([]string, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Strings(days)
	return days, counts
}

type userCount struct {
	name  string
	count int
}

func countUsers(records []domain.Record) []userCount {
	counts := make(map[string]int)
	for _, r := range records {
		if r.User == nil || *r.User == "" {
			continue
		}
		counts[*r.User]++
	}
	out := make([]userCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, userCount{name: name, count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	if len(out) > topUsers {
		out = out[:topUsers]
	}
	return out
}
