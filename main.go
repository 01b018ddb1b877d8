package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"

	"github.com/SanteonNL/occupancy/models/hospital"
	"github.com/SanteonNL/occupancy/util"
)

func main() {
	log := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) { w.Out = os.Stderr })).
		Level(zerolog.InfoLevel).With().Timestamp().Caller().Logger()

	if err := run(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Hospital demo failed")
	}
}

func run(w io.Writer) error {
	for _, s := range [][]int{{1, 5, 3}, {5, 3, 2}} {
		if err := printLargest(w, s); err != nil {
			return err
		}
	}

	np, ns := hospital.NewPatient, hospital.NewHospitalStaff

	patients := []hospital.Patient{
		np("May", "Susie", 54, hospital.ConditionUnstable),
		np("Porsche", "Megan", 22, hospital.ConditionStable),
		np("Mars", "Tommy", 65, hospital.ConditionCritical),
	}
	staff := []hospital.HospitalStaff{
		ns("Jackie", "Robinson", 28, hospital.PositionNurse),
		ns("House", "McCabin", 45, hospital.PositionDoctor),
		ns("Martha", "Stewart", 40, hospital.PositionOfficeStaff),
		ns("Morgan", "Williams", 30, hospital.PositionDoctor),
	}
	// Occupants copies the records, sorting the slices below leaves the
	// hospital in check-in order.
	h := hospital.New("Saint Anna", hospital.Occupants(patients, staff))

	if err := printLargest(w, []float64{5.8, 6.4, 4.5}); err != nil {
		return err
	}
	if err := printLargest(w, []string{"Hello", "World", "Elmo", "Wand"}); err != nil {
		return err
	}
	sickest, err := util.LargestFunc(patients, hospital.ComparePatients)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, sickest)

	printAll(w, util.SortDescFunc(patients, hospital.ComparePatients))
	printAll(w, util.SortAscFunc(staff, hospital.CompareStaff))

	fmt.Fprintln(w, h)
	fmt.Fprintln(w, "Checking in new patient.")
	if err := h.CheckIn(np("Maria", "Dennis", 27, hospital.ConditionStable)); err != nil {
		return err
	}
	fmt.Fprintln(w, h)

	h.Sort()
	return h.PrintOccupants(w)
}

func printAll[T fmt.Stringer](w io.Writer, s []T) {
	for _, v := range s {
		fmt.Fprintln(w, v)
	}
}

func printLargest[T constraints.Ordered](w io.Writer, s []T) error {
	big, err := util.Largest(s)
	if err != nil {
		return fmt.Errorf("largest of %v: %w", s, err)
	}
	_, err = fmt.Fprintln(w, big)
	return err
}
