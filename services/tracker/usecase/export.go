package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/mototrack/mototrack/internal/pkg/models"
	"github.com/mototrack/mototrack/internal/utils"
	"github.com/mototrack/mototrack/services/tracker"
)

// csvHeader is the column layout of a history export
var csvHeader = []string{"Timestamp", "Latitude", "Longitude", "Speed", "Altitude", "Satellites"}

// ExportService renders the current day's archived samples as a CSV download
// and as the route polyline shown on the history view.
type ExportService struct {
	repo tracker.DeviceStateRepo

	// now is the clock; replaced in tests
	now func() time.Time
}

// NewExportService creates an export service reading from the repository
func NewExportService(repo tracker.DeviceStateRepo) *ExportService {
	return &ExportService{
		repo: repo,
		now:  time.Now,
	}
}

// ExportToday returns the suggested filename and CSV body for today's samples.
// Timestamps are rendered RFC3339; ambiguous device epochs are normalized
// before formatting.
func (s *ExportService) ExportToday(ctx context.Context) (string, []byte, error) {
	day := utils.StartOfDay(s.now())

	records, err := s.repo.HistorySince(ctx, day)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read history: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return "", nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			utils.NormalizeEpoch(rec.Timestamp, s.now()).Format(time.RFC3339),
			strconv.FormatFloat(rec.Latitude, 'f', 6, 64),
			strconv.FormatFloat(rec.Longitude, 'f', 6, 64),
			strconv.FormatFloat(rec.Speed, 'f', 1, 64),
			strconv.FormatFloat(rec.Altitude, 'f', 1, 64),
			strconv.Itoa(rec.Satellites),
		}
		if err := w.Write(row); err != nil {
			return "", nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	filename := "vehicle_data_" + day.Format("2006-01-02") + ".csv"
	return filename, buf.Bytes(), nil
}

// RouteToday returns today's samples as route points, skipping no-fix
// sentinels, with a geohash tag per point.
func (s *ExportService) RouteToday(ctx context.Context) ([]models.RoutePoint, error) {
	records, err := s.repo.HistorySince(ctx, utils.StartOfDay(s.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	points := make([]models.RoutePoint, 0, len(records))
	for _, rec := range records {
		if rec.Latitude == 0 && rec.Longitude == 0 {
			continue
		}
		c := models.Coordinates{Latitude: rec.Latitude, Longitude: rec.Longitude}
		points = append(points, models.RoutePoint{
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
			Geohash:   utils.EncodeCoordinates(c, utils.RouteGeohashPrecision),
		})
	}
	return points, nil
}
