package loadrepo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	// activeAssigneeIndex lets a trucker hold at most one load in an active-job status.
	activeAssigneeIndex = "idx_loads_active_assignee"

	uniqueViolation = "23505"
)

// Migrate creates or updates the loads table and its partial unique index.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&LoadDTO{}); err != nil {
		return err
	}

	active := make([]string, 0, len(load.ActiveJobStatuses()))
	for _, s := range load.ActiveJobStatuses() {
		active = append(active, strconv.Itoa(int(s)))
	}

	return db.Exec(fmt.Sprintf(
		`CREATE UNIQUE INDEX IF NOT EXISTS %s ON loads (assigned_to) WHERE status IN (%s)`,
		activeAssigneeIndex, strings.Join(active, ", "),
	)).Error
}

// translate maps a violation of the active assignee index to
// errs.ErrAssigneeHasActiveJob and returns every other error unchanged.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == activeAssigneeIndex {
		return errs.ErrAssigneeHasActiveJob
	}
	return err
}
