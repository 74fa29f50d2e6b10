// Command sendtocal extracts an event from free text or an image file and
// prints calendar export output.
//
// Usage:
//
//	sendtocal -text "lunch with Sam next Friday at noon"
//	sendtocal -image poster.png -out event.ics
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"sendtocal/internal/infra/extractor"
	"sendtocal/internal/observability/logging"
	eventUC "sendtocal/internal/usecase/event"
)

func main() {
	text := flag.String("text", "", "free text describing the event")
	image := flag.String("image", "", "path to an image file (png, jpeg, gif, webp)")
	out := flag.String("out", "", "write the ICS payload to this file instead of stdout")
	flag.Parse()

	logger := logging.NewTextLogger()
	slog.SetDefault(logger)

	if *text == "" && *image == "" {
		fmt.Fprintln(os.Stderr, "usage: sendtocal -text <description> [-image <file>] [-out <file.ics>]")
		os.Exit(2)
	}

	dataURL := ""
	if *image != "" {
		url, err := imageToDataURL(*image)
		if err != nil {
			logger.Error("failed to read image", slog.String("path", *image), slog.Any("error", err))
			os.Exit(1)
		}
		dataURL = url
	}

	ex, err := extractor.NewFromEnv()
	if err != nil {
		logger.Error("failed to initialize extractor", slog.Any("error", err))
		os.Exit(1)
	}
	svc := eventUC.NewService(ex)

	ev, err := svc.Extract(context.Background(), *text, dataURL)
	if err != nil {
		logger.Error("extraction failed", slog.Any("error", err))
		os.Exit(1)
	}

	encoded, err := json.MarshalIndent(ev, "", "  ")
	if err != nil {
		logger.Error("failed to encode event", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(string(encoded))
	fmt.Println()
	fmt.Println("Google Calendar:", svc.GoogleCalendarURL(ev))

	ics := svc.ICalendar(ev)
	if *out != "" {
		if err := os.WriteFile(*out, []byte(ics), 0o644); err != nil {
			logger.Error("failed to write ICS file", slog.String("path", *out), slog.Any("error", err))
			os.Exit(1)
		}
		fmt.Println("ICS written to:", *out)
		return
	}

	fmt.Println()
	fmt.Println(ics)
}

// imageToDataURL reads a file and encodes it as a base64 data URL.
// The MIME type is derived from the file extension.
func imageToDataURL(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "image/png"
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(raw)), nil
}
