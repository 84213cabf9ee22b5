// Command verify-metrics checks that the calendar view and the lead-source
// report agree on the number of no-shows for a day.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/sales-calendar/internal/config"
	dbpkg "github.com/BruksfildServices01/sales-calendar/internal/db"
	"github.com/BruksfildServices01/sales-calendar/internal/infra/repository"
	"github.com/BruksfildServices01/sales-calendar/internal/logging"
	"github.com/BruksfildServices01/sales-calendar/internal/stats"
	"github.com/BruksfildServices01/sales-calendar/internal/timezone"
)

func main() {
	date := flag.String("date", "", "day to verify (YYYY-MM-DD, default today)")
	flag.Parse()

	cfg := config.Load()
	logger, err := logging.New("warn", cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	loc := timezone.Location(cfg.Timezone)
	day, err := timezone.DayOrToday(*date, loc)
	if err != nil {
		logger.Fatal("invalid -date", zap.String("date", *date), zap.Error(err))
	}

	sales, err := config.LoadSales(cfg.SalesConfigPath)
	if err != nil {
		logger.Fatal("load sales config", zap.Error(err))
	}

	db, err := dbpkg.NewDB(cfg, logger)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	repo := repository.NewAppointmentGormRepository(db, loc)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apps, err := repo.ListAppointmentsForDay(ctx, day)
	if err != nil {
		logger.Fatal("load appointments", zap.Error(err))
	}

	audit := stats.AuditNoShows(apps, sales.Config, day)
	printAudit(audit)

	if !audit.Match() {
		fmt.Printf("\nMISMATCH: calendar view counts %d no-shows, lead-source report %d (difference %d)\n",
			audit.CalendarNoShows, audit.LeadSourceNoShows, audit.Difference())
		os.Exit(1)
	}
	fmt.Println("\nOK: both views agree")
}

func printAudit(a stats.NoShowAudit) {
	fmt.Printf("Date: %s\n", a.Date)
	fmt.Printf("Appointments on the day: %d\n\n", a.Total)

	fmt.Printf("Calendar view no-shows: %d\n", a.CalendarNoShows)
	for _, k := range sortedKeys(a.ByStatus) {
		fmt.Printf("  %-16s %d\n", k, a.ByStatus[k])
	}
	fmt.Println("  by lead source:")
	for _, k := range sortedKeys(a.BySource) {
		fmt.Printf("    %-14s %d\n", k, a.BySource[k])
	}

	fmt.Printf("\nLead-source report no-shows: %d\n", a.LeadSourceNoShows)
	for _, k := range sortedKeys(a.Sources) {
		v := a.Sources[k]
		fmt.Printf("  %-16s 10K %d  20K %d\n", k, v[0], v[1])
	}
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
