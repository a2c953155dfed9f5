package service

import (
	"alcyxob/gym-coach/internal/report"
	"alcyxob/gym-coach/internal/storage"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReportResult is a rendered client workbook. ObjectKey and DownloadURL are set only
// when the report was uploaded.
type ReportResult struct {
	FileName    string `json:"fileName"`
	Content     []byte `json:"-"`
	ObjectKey   string `json:"objectKey,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// ReportService exports a client's history as a spreadsheet.
type ReportService interface {
	Export(ctx context.Context, clientID string) (*ReportResult, error)
	// Uploads reports whether exported workbooks are pushed to object storage.
	Uploads() bool
}

type reportService struct {
	coach     CoachService
	storage   storage.ReportStorage // nil disables uploads
	urlExpiry time.Duration
	now       func() time.Time
}

// NewReportService creates a new instance of reportService. storage may be nil.
func NewReportService(coach CoachService, store storage.ReportStorage, urlExpiry time.Duration) ReportService {
	return &reportService{
		coach:     coach,
		storage:   store,
		urlExpiry: urlExpiry,
		now:       time.Now,
	}
}

func (s *reportService) Uploads() bool {
	return s.storage != nil
}

// Export renders the workbook and, when storage is configured, uploads it under
// reports/<clientID>/<uuid>.xlsx and presigns a download URL.
func (s *reportService) Export(ctx context.Context, clientID string) (*ReportResult, error) {
	history, err := s.coach.ClientHistory(ctx, clientID)
	if err != nil {
		return nil, err
	}
	generatedAt := s.now().UTC()
	summary := summarize(history, generatedAt)

	content, err := report.Render(report.ClientReport{
		Client:        history.Client,
		TrainerName:   summary.TrainerName,
		Routines:      history.Routines,
		Plans:         history.Plans,
		Progress:      history.Progress,
		FirstActivity: summary.FirstActivity,
		DaysTraining:  summary.DaysTraining,
		WeightChange:  summary.WeightChange,
		GeneratedAt:   generatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	result := &ReportResult{
		FileName: report.FileName(history.Client, generatedAt),
		Content:  content,
	}
	if s.storage == nil {
		return result, nil
	}

	key := fmt.Sprintf("reports/%s/%s.xlsx", history.Client.ID, uuid.NewString())
	if err := s.storage.Upload(ctx, key, report.ContentType, content); err != nil {
		return nil, err
	}
	url, err := s.storage.GeneratePresignedDownloadURL(ctx, key, s.urlExpiry)
	if err != nil {
		// An unreachable object is useless; drop it.
		_ = s.storage.DeleteObject(ctx, key)
		return nil, err
	}
	result.ObjectKey = key
	result.DownloadURL = url
	return result, nil
}
