package helper

//nolint:revive
import (
	"errors"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	MigrateActionUp     = "up"
	MigrateActionDown   = "down"
	MigrateActionStepUp = "step-up"
	MigrateActionDrop   = "drop"

	migrationSource = "file://migrations/postgres"
)

var ErrUnknownMigrateAction = errors.New("unknown migrate action")

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func connectionString(config *config.Config) string {
	dsn := postgres.DSN(
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		config.DB.Postgres.Write.Host,
		config.DB.Postgres.Write.Port,
		getDBName(config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
	)

	if config.DB.Postgres.MigrationTable != "" {
		dsn += "&x-migrations-table=" + config.DB.Postgres.MigrationTable
	}

	return dsn
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationSource, connectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func apply(mig *migrate.Migrate, action string) error {
	var err error

	switch action {
	case MigrateActionUp:
		err = mig.Up()
	case MigrateActionDown:
		err = mig.Steps(-1)
	case MigrateActionStepUp:
		err = mig.Steps(1)
	case MigrateActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMigrateAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	return nil
}

func Runner(config *config.Config, action string) error {
	switch action {
	case MigrateActionUp, MigrateActionDown, MigrateActionStepUp, MigrateActionDrop:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMigrateAction, action)
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := apply(mig, action); err != nil {
		return err
	}

	log.Info().Str("action", action).Msg("Database migration finished")

	return nil
}

// Up applies every pending migration.
func Up(config *config.Config) error {
	return Runner(config, MigrateActionUp)
}
