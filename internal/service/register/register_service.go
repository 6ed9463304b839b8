package register

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/agence/internal/domain/models"
	"github.com/mamadbah2/agence/internal/legaltext"
	repo "github.com/mamadbah2/agence/internal/repository/sheets"
)

// MandateLister lists stored mandates.
type MandateLister interface {
	List(ctx context.Context) ([]models.Mandate, error)
}

// Header is the first row of the register sheet.
var Header = []interface{}{
	"Numéro", "Date", "Type", "Mandants", "Adresse du bien",
	"Prix net vendeur", "Honoraires TTC", "Honoraires à la charge de", "Négociateur", "Avenants",
}

// Service keeps the mandate register sheet in step with the mandate store.
type Service struct {
	sheet      repo.Repository
	mandates   MandateLister
	sheetRange string
	logger     *zap.Logger
}

// NewService wires a new register service instance.
func NewService(sheet repo.Repository, mandates MandateLister, sheetRange string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{sheet: sheet, mandates: mandates, sheetRange: sheetRange, logger: logger}
}

// SyncResult reports what a synchronisation did.
type SyncResult struct {
	Registered int `json:"registered"`
	Appended   int `json:"appended"`
	Skipped    int `json:"skipped"`
}

// Sync appends one row per stored mandate whose number is not yet in the register.
// Existing rows are never rewritten: the register is append-only.
func (s *Service) Sync(ctx context.Context) (SyncResult, error) {
	numbers, err := s.sheet.KeyColumn(ctx, s.sheetRange)
	if err != nil {
		return SyncResult{}, fmt.Errorf("load register: %w", err)
	}

	known := make(map[string]struct{}, len(numbers))
	for _, number := range numbers {
		if number != "" && number != Header[0] {
			known[number] = struct{}{}
		}
	}

	mandates, err := s.mandates.List(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("list mandates: %w", err)
	}

	var pending [][]interface{}
	if len(numbers) == 0 {
		pending = append(pending, Header)
	}

	result := SyncResult{Registered: len(known)}
	for _, m := range mandates {
		number := strings.TrimSpace(m.Number)
		if number == "" {
			s.logger.Debug("skip mandate without number", zap.String("id", m.ID))
			result.Skipped++
			continue
		}
		if _, ok := known[number]; ok {
			continue
		}
		known[number] = struct{}{}
		pending = append(pending, Row(m))
		result.Appended++
	}

	if result.Appended == 0 {
		return result, nil
	}

	if err := s.sheet.AppendRows(ctx, s.sheetRange, pending); err != nil {
		return SyncResult{}, fmt.Errorf("append register rows: %w", err)
	}

	result.Registered += result.Appended
	s.logger.Info("mandate register synchronised", zap.Int("appended", result.Appended), zap.Int("registered", result.Registered))
	return result, nil
}

// Row renders one mandate as a register row.
func Row(m models.Mandate) []interface{} {
	payer := "Vendeur"
	if m.FeePayer == models.FeesPaidByBuyer {
		payer = "Acquéreur"
	}
	return []interface{}{
		m.Number,
		legaltext.FormatDate(m.Date),
		legaltext.MandateTypeLabel(m.Type),
		legaltext.PartyNames(m.Sellers),
		m.PropertyAddress,
		m.NetPrice.Int(),
		m.Fees.TTC.Int(),
		payer,
		m.CommercialAgent,
		len(m.Amendments),
	}
}
