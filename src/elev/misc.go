package elev

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"liftscan/src/config"
	"liftscan/src/types"
)

// InitLogger installs the default logger: compact timestamps, file:line source
// and the car id on every record. If logFile is set, records go there as well.
func InitLogger(carID string, level slog.Level, logFile string) error {
	var out io.Writer = os.Stderr
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stderr, file)
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})

	slog.SetDefault(slog.New(handler).With("car", carID))
	return nil
}

// FloorName is what the floor indicator shows. The ground floor has a name.
func FloorName(floor types.Floor) string {
	if floor == config.GroundFloor {
		return "Ground"
	}
	return strconv.Itoa(int(floor))
}

func FormatStatus(status types.Status) string {
	return fmt.Sprintf("Floor %s | dir %s | %s | queue %v | pressed %v",
		FloorName(status.Car.Floor),
		status.Car.Dir,
		status.Car.Behaviour(),
		status.Queue,
		status.Pressed)
}
