package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SanteonNL/occupancy/models/hospital"
)

var (
	lastName  string
	firstName string
	age       uint8
	code      uint8
)

var checkInCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Check in a patient or staff member",
}

var checkInPatientCmd = &cobra.Command{
	Use:   "patient",
	Short: "Check in a patient",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkIn(cmd, hospital.NewPatient(firstName, lastName, age, hospital.Condition(code)))
	},
}

var checkInStaffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Check in a staff member",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkIn(cmd, hospital.NewHospitalStaff(firstName, lastName, age, hospital.Position(code)))
	},
}

func init() {
	for _, c := range []*cobra.Command{checkInPatientCmd, checkInStaffCmd} {
		c.Flags().StringVar(&lastName, "last", "", "last name")
		c.Flags().StringVar(&firstName, "first", "", "first name")
		c.Flags().Uint8Var(&age, "age", 0, "age in years")
		c.MarkFlagRequired("last")
	}
	checkInPatientCmd.Flags().Uint8Var(&code, "condition", 1, "1 stable, 2 unstable, 3 critical")
	checkInStaffCmd.Flags().Uint8Var(&code, "position", 1, "1 nurse, 2 doctor, 3 office staff")

	checkInCmd.AddCommand(checkInPatientCmd, checkInStaffCmd)
}

func checkIn(cmd *cobra.Command, o hospital.Occupant) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(cmd)
	defer cancel()

	created, err := c.CheckIn(ctx, o)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Checked in %s: %s\n", created.Type, created.Info)
	return err
}

func withTimeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}
