package cmd

import (
	"errors"
	"fmt"

	"loadboard/internal/pkg/errs"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	HTTPPort              string
	StorageDriver         string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	AuthJWTSecret         string
	BoardSnapshotSchedule string
}

// Validate checks that every value the chosen storage driver needs is present.
func (c Config) Validate() error {
	var problems []error
	if c.HTTPPort == "" {
		problems = append(problems, errs.NewValueIsRequiredError("HTTP_PORT"))
	}
	if c.AuthJWTSecret == "" {
		problems = append(problems, errs.NewValueIsRequiredError("AUTH_JWT_SECRET"))
	}

	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		for name, value := range map[string]string{
			"DB_HOST": c.DBHost,
			"DB_PORT": c.DBPort,
			"DB_USER": c.DBUser,
			"DB_NAME": c.DBName,
		} {
			if value == "" {
				problems = append(problems, errs.NewValueIsRequiredError(name))
			}
		}
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"STORAGE_DRIVER",
			fmt.Errorf("%q is not one of %s, %s", c.StorageDriver, StorageDriverPostgres, StorageDriverMemory),
		))
	}

	return errors.Join(problems...)
}

// DSN renders the postgres connection string. An empty DB_SSLMODE means disable.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}
