package datasource

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/SanteonNL/occupancy/models/hospital"
)

const schema = `
CREATE TABLE IF NOT EXISTS occupants (
	id         uuid PRIMARY KEY,
	hospital   text     NOT NULL,
	kind       smallint NOT NULL,
	last_name  text     NOT NULL,
	first_name text     NOT NULL,
	age        smallint NOT NULL,
	code       smallint NOT NULL,
	seq        bigserial
)`

// OccupantRow is a single row of the occupants table. Kind holds the occupant
// code, Code holds the condition or position depending on Kind.
type OccupantRow struct {
	ID        uuid.UUID `db:"id"`
	Hospital  string    `db:"hospital"`
	Kind      uint8     `db:"kind"`
	LastName  string    `db:"last_name"`
	FirstName string    `db:"first_name"`
	Age       uint8     `db:"age"`
	Code      uint8     `db:"code"`
}

// DataSourceService persists hospital occupants in Postgres
type DataSourceService struct {
	db  *sqlx.DB
	log zerolog.Logger
}

// NewDataSourceService creates a new DataSourceService
func NewDataSourceService(db *sqlx.DB, log zerolog.Logger) *DataSourceService {
	return &DataSourceService{
		db:  db,
		log: log.With().Str("component", "datasource").Logger(),
	}
}

// Connect opens a Postgres connection for the given URL
func Connect(ctx context.Context, databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}
	return db, nil
}

// Migrate creates the occupants table if it does not exist yet
func (svc *DataSourceService) Migrate(ctx context.Context) error {
	if _, err := svc.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create occupants table: %w", err)
	}
	return nil
}

// SaveOccupant stores o for the named hospital and returns the new row id
func (svc *DataSourceService) SaveOccupant(ctx context.Context, hospitalName string, o hospital.Occupant) (uuid.UUID, error) {
	row, err := ToRow(hospitalName, o)
	if err != nil {
		return uuid.Nil, err
	}

	_, err = svc.db.NamedExecContext(ctx, `
		INSERT INTO occupants (id, hospital, kind, last_name, first_name, age, code)
		VALUES (:id, :hospital, :kind, :last_name, :first_name, :age, :code)`, row)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error inserting occupant: %w", err)
	}

	svc.log.Debug().
		Str("id", row.ID.String()).
		Str("hospital", hospitalName).
		Str("type", o.Type()).
		Msg("Saved occupant")

	return row.ID, nil
}

// ReadOccupants returns the occupants of the named hospital in check-in order
func (svc *DataSourceService) ReadOccupants(ctx context.Context, hospitalName string) ([]hospital.Occupant, error) {
	var rows []OccupantRow
	err := svc.db.SelectContext(ctx, &rows, `
		SELECT id, hospital, kind, last_name, first_name, age, code
		FROM occupants
		WHERE hospital = $1
		ORDER BY seq`, hospitalName)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	occupants := make([]hospital.Occupant, 0, len(rows))
	for _, row := range rows {
		o, err := row.Occupant()
		if err != nil {
			svc.log.Error().Err(err).Str("id", row.ID.String()).Msg("Skipping occupant row")
			continue
		}
		occupants = append(occupants, o)
	}

	svc.log.Debug().
		Str("hospital", hospitalName).
		Int("rows", len(rows)).
		Int("occupants", len(occupants)).
		Msg("Read occupants")

	return occupants, nil
}

// ToRow converts an occupant into a row with a fresh id
func ToRow(hospitalName string, o hospital.Occupant) (OccupantRow, error) {
	row := OccupantRow{
		ID:       uuid.New(),
		Hospital: hospitalName,
		Kind:     uint8(o.Code()),
	}

	switch v := o.(type) {
	case hospital.Patient:
		row.LastName, row.FirstName, row.Age, row.Code = v.LastName, v.FirstName, v.Age, uint8(v.Condition)
	case hospital.HospitalStaff:
		row.LastName, row.FirstName, row.Age, row.Code = v.LastName, v.FirstName, v.Age, uint8(v.Position)
	default:
		return OccupantRow{}, fmt.Errorf("unsupported occupant type %T", o)
	}
	return row, nil
}

// Occupant converts the row back into a Patient or HospitalStaff
func (r OccupantRow) Occupant() (hospital.Occupant, error) {
	switch hospital.Code(r.Kind) {
	case hospital.CodePatient:
		return hospital.NewPatient(r.FirstName, r.LastName, r.Age, hospital.Condition(r.Code)), nil
	case hospital.CodeStaff:
		return hospital.NewHospitalStaff(r.FirstName, r.LastName, r.Age, hospital.Position(r.Code)), nil
	default:
		return nil, fmt.Errorf("unknown occupant kind %d", r.Kind)
	}
}
