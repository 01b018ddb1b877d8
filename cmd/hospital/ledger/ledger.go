package ledger

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/rs/zerolog"

	"github.com/SanteonNL/occupancy/models/hospital"
)

// CheckIn is one entry of the check-in ledger
type CheckIn struct {
	ID           uint      `gorm:"primary_key" json:"id"`
	Hospital     string    `gorm:"index;not null" json:"hospital"`
	OccupantType string    `gorm:"not null" json:"occupant_type"`
	Info         string    `json:"info"`
	CreatedAt    time.Time `json:"created_at"`
}

func (CheckIn) TableName() string {
	return "check_ins"
}

// NewCheckIn builds the ledger entry for o checking in to the named hospital
func NewCheckIn(hospitalName string, o hospital.Occupant) CheckIn {
	return CheckIn{
		Hospital:     hospitalName,
		OccupantType: o.Type(),
		Info:         o.Info(),
	}
}

// LedgerService records check-ins using gorm
type LedgerService struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open connects to Postgres and migrates the check_ins table
func Open(databaseURL string, log zerolog.Logger) (*LedgerService, error) {
	db, err := gorm.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	svc := NewLedgerService(db, log)
	if err := svc.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return svc, nil
}

func NewLedgerService(db *gorm.DB, log zerolog.Logger) *LedgerService {
	return &LedgerService{
		db:  db,
		log: log.With().Str("component", "ledger").Logger(),
	}
}

func (svc *LedgerService) Migrate() error {
	if err := svc.db.AutoMigrate(&CheckIn{}).Error; err != nil {
		return fmt.Errorf("failed to migrate check_ins: %w", err)
	}
	return nil
}

// Record appends a check-in of o to the ledger
func (svc *LedgerService) Record(hospitalName string, o hospital.Occupant) (CheckIn, error) {
	entry := NewCheckIn(hospitalName, o)
	if err := svc.db.Create(&entry).Error; err != nil {
		return CheckIn{}, fmt.Errorf("failed to record check-in: %w", err)
	}

	svc.log.Info().
		Uint("id", entry.ID).
		Str("hospital", hospitalName).
		Str("type", entry.OccupantType).
		Msg("Recorded check-in")

	return entry, nil
}

// History returns the check-ins of the named hospital, oldest first
func (svc *LedgerService) History(hospitalName string) ([]CheckIn, error) {
	var entries []CheckIn
	err := svc.db.Where("hospital = ?", hospitalName).Order("id").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read check-ins: %w", err)
	}
	return entries, nil
}

func (svc *LedgerService) Close() error {
	return svc.db.Close()
}
