// Command generate runs the schedule report pipeline against local files,
// without the HTTP server.
package main

import (
	"flag"
	"os"

	"github.com/timegridapp/timegrid-backend/internal/config"
	"github.com/timegridapp/timegrid-backend/internal/logger"
	"github.com/timegridapp/timegrid-backend/internal/service"
	"github.com/timegridapp/timegrid-backend/internal/timetable"
)

func main() {
	var (
		in       = flag.String("in", "", "input timetable workbook (.xlsx)")
		out      = flag.String("out", "", "output report path (default per view)")
		viewName = flag.String("view", "room", "report view: room or teacher")
	)
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if *in == "" {
		flag.Usage()
		log.Fatal().Msg("-in is required")
	}

	view := timetable.View(*viewName)
	if view != timetable.ViewRoom && view != timetable.ViewTeacher {
		log.Fatal().Str("view", *viewName).Msg("View must be room or teacher")
	}

	scheduleService, err := service.NewScheduleService(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid slot axis configuration")
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open input workbook")
	}
	defer f.Close()

	buf, err := scheduleService.GenerateWorkbook(f, view)
	if err != nil {
		log.Fatal().Err(err).Msg("Report generation failed")
	}

	outPath := service.OutputFilename(*out, view)
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		log.Fatal().Err(err).Msg("Failed to write report")
	}

	log.Info().Str("in", *in).Str("out", outPath).Str("view", *viewName).Msg("Report generated")
}
