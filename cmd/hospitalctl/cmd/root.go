package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/SanteonNL/occupancy/cmd/hospital/client"
	"github.com/SanteonNL/occupancy/cmd/hospital/config"
	"github.com/SanteonNL/occupancy/models/hospital"
)

var (
	envFile  string
	apiURL   string
	retryMax int
	timeout  time.Duration
)

var RootCmd = &cobra.Command{
	Use:          "hospitalctl",
	Short:        "Talk to the hospital API",
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "path to the .env file")
	RootCmd.PersistentFlags().StringVar(&apiURL, "url", "", "API base URL, overrides HOSPITAL_API_URL")
	RootCmd.PersistentFlags().IntVar(&retryMax, "retries", 3, "maximum number of retries per request")
	RootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "timeout per command")

	RootCmd.AddCommand(summaryCmd, occupantsCmd, checkInCmd)
}

// newClient builds an API client from the .env file and flags
func newClient() (*client.HospitalApiClient, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	return client.NewHospitalApiClient(cfg.APIURL, retryMax, cfg.Logger()), nil
}

func printOccupants(w io.Writer, occupants []hospital.Occupant) error {
	// Reuse the hospital printer so the output matches the server side.
	return hospital.New("", occupants).PrintOccupants(w)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the hospital name and occupant count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := withTimeout(cmd)
		defer cancel()

		s, err := c.Summary(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), s.Summary)
		return err
	},
}

var sortByCode bool

var occupantsCmd = &cobra.Command{
	Use:   "occupants",
	Short: "Print every occupant",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := withTimeout(cmd)
		defer cancel()

		occupants, err := c.Occupants(ctx, sortByCode)
		if err != nil {
			return err
		}
		return printOccupants(cmd.OutOrStdout(), occupants)
	},
}

func init() {
	occupantsCmd.Flags().BoolVar(&sortByCode, "sort", false, "list staff before patients")
}
