package service

import (
	"context"
	"io"
	"time"

	"golang.org/x/oauth2"

	"github.com/daily-yolk/yolk-app-sheets/config"
	"github.com/daily-yolk/yolk-app-sheets/entries"
	"github.com/daily-yolk/yolk-app-sheets/google"
	"github.com/daily-yolk/yolk-app-sheets/log"
)

// Credentials issues a short-lived bearer token for the requested OAuth2 scope.
type Credentials interface {
	Token(ctx context.Context, scope string) (*oauth2.Token, error)
}

// Sheets is the subset of the Google Sheets API used by the service.
type Sheets interface {
	Append(ctx context.Context, token *oauth2.Token, spreadsheet, area string, rows ...entries.Row) error
	Read(ctx context.Context, token *oauth2.Token, spreadsheet, area string) ([][]string, error)
}

// EnvReport summarises the service account configuration without disclosing any
// of the values.
type EnvReport struct {
	Variables        map[string]string `json:"environmentVariables"`
	PrivateKeyFormat string            `json:"privateKeyFormat"`
	SheetID          string            `json:"sheetId"`
}

// Service implements the diary operations against a single worksheet. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	config      *config.Config
	credentials Credentials
	sheets      Sheets
	now         func() time.Time
}

func New(cfg *config.Config, credentials Credentials, sheets Sheets) *Service {
	return &Service{
		config:      cfg,
		credentials: credentials,
		sheets:      sheets,
		now:         time.Now,
	}
}

// Submit appends an entry to the worksheet as a new row.
func (s *Service) Submit(ctx context.Context, entry entries.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	if err := s.check(); err != nil {
		return err
	}

	row := entries.NewRow(entry, s.now())
	area := google.Range(s.config.Sheet.Name, "")

	ctx = context.WithoutCancel(ctx)
	token, err := s.credentials.Token(ctx, google.SHEETS)
	if err != nil {
		return err
	}

	log.Debugf("appending %v to %v", row, area)

	if err := s.sheets.Append(ctx, token, s.config.Sheet.ID, area, row); err != nil {
		return err
	}

	log.Infof("submitted entry for %v (%v x %v)", entry.DateEaten, entry.Quantity, entry.Preparation)

	return nil
}

// Import appends a list of entries to the worksheet in a single request. All the
// entries are validated before anything is written.
func (s *Service) Import(ctx context.Context, list []entries.Entry) (int, error) {
	for _, entry := range list {
		if err := entry.Validate(); err != nil {
			return 0, err
		}
	}

	if len(list) == 0 {
		return 0, nil
	}

	if err := s.check(); err != nil {
		return 0, err
	}

	now := s.now()
	rows := make([]entries.Row, 0, len(list))
	for _, entry := range list {
		rows = append(rows, entries.NewRow(entry, now))
	}

	area := google.Range(s.config.Sheet.Name, "")

	token, err := s.credentials.Token(ctx, google.SHEETS)
	if err != nil {
		return 0, err
	}

	if err := s.sheets.Append(ctx, token, s.config.Sheet.ID, area, rows...); err != nil {
		return 0, err
	}

	log.Infof("imported %v entries", len(rows))

	return len(rows), nil
}

// Recent returns the presence calendar for the last 7 days, oldest first.
func (s *Service) Recent(ctx context.Context) ([]entries.DayPresence, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	area := google.Range(s.config.Sheet.Name, "B:B")

	ctx = context.WithoutCancel(ctx)
	token, err := s.credentials.Token(ctx, google.SHEETS_READONLY)
	if err != nil {
		return nil, err
	}

	grid, err := s.sheets.Read(ctx, token, s.config.Sheet.ID, area)
	if err != nil {
		return nil, err
	}

	log.Debugf("retrieved %v rows from %v", len(grid), area)

	return entries.Week(s.now(), entries.Column(grid)), nil
}

// Export writes the entries worksheet to 'w' as TSV.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	if err := s.check(); err != nil {
		return err
	}

	area := google.Range(s.config.Sheet.Name, "A:E")

	token, err := s.credentials.Token(ctx, google.SHEETS_READONLY)
	if err != nil {
		return err
	}

	grid, err := s.sheets.Read(ctx, token, s.config.Sheet.ID, area)
	if err != nil {
		return err
	}

	return entries.MakeTSV(w, grid)
}

// CheckEnv reports which of the service account environment variables are set.
func (s *Service) CheckEnv() EnvReport {
	report := EnvReport{
		Variables:        s.config.Report(),
		PrivateKeyFormat: s.config.PrivateKeyFormat(),
		SheetID:          "missing",
	}

	if s.config.Sheet.ID != "" {
		report.SheetID = "set"
	}

	return report
}

func (s *Service) check() error {
	if missing := s.config.Missing(); len(missing) > 0 {
		log.Warnf("missing environment variables %v", missing)
		return &entries.ConfigurationError{Missing: missing}
	}

	return nil
}
