package cmd

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanteonNL/occupancy/cmd/hospital/api"
	"github.com/SanteonNL/occupancy/models/hospital"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	require.NoError(t, RootCmd.Execute())
	return out.String()
}

func TestCommands(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	h := hospital.New("Saint Anna", []hospital.Occupant{
		hospital.NewPatient("May", "Susie", 54, hospital.ConditionUnstable),
	})
	srv := httptest.NewServer(api.NewHospitalRouter(h, nil, nil, zerolog.Nop()).SetupRoutes())
	defer srv.Close()

	common := []string{"--env", "", "--url", srv.URL, "--retries", "0"}

	out := run(t, append(common, "summary")...)
	assert.Equal(t, "Name: Saint Anna, Current Occupants: 1\n", out)

	out = run(t, append(common, "checkin", "staff", "--last", "Robinson", "--first", "Jackie", "--age", "28", "--position", "1")...)
	assert.Equal(t, "Checked in HospitalStaff: Name: Robinson, Jackie - Position: Nurse - Age: 28\n", out)

	out = run(t, append(common, "occupants", "--sort")...)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"Name: Robinson, Jackie - Position: Nurse - Age: 28",
		"Name: Susie, May - age: 54 - condition: Unstable",
	}, lines)
}
