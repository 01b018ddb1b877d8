package ledger

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanteonNL/occupancy/models/hospital"
)

func TestNewCheckIn(t *testing.T) {
	entry := NewCheckIn("Saint Anna", hospital.NewPatient("Maria", "Dennis", 27, hospital.ConditionStable))

	assert.Equal(t, "Saint Anna", entry.Hospital)
	assert.Equal(t, "Patient", entry.OccupantType)
	assert.Equal(t, "Name: Dennis, Maria - age: 27 - condition: Stable", entry.Info)
	assert.Zero(t, entry.ID)
	assert.Equal(t, "check_ins", entry.TableName())
}

func TestLedgerServicePostgres(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	svc, err := Open(url, zerolog.Nop())
	require.NoError(t, err)
	defer svc.Close()

	name := "test-" + uuid.NewString()
	first, err := svc.Record(name, hospital.NewHospitalStaff("Jackie", "Robinson", 28, hospital.PositionNurse))
	require.NoError(t, err)
	second, err := svc.Record(name, hospital.NewPatient("Maria", "Dennis", 27, hospital.ConditionStable))
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	history, err := svc.History(name)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "HospitalStaff", history[0].OccupantType)
	assert.Equal(t, "Patient", history[1].OccupantType)

	require.NoError(t, svc.db.Where("hospital = ?", name).Delete(&CheckIn{}).Error)
}
