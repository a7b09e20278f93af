package migrator

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUp_ClosedDatabase(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	_ = db.Close()

	err = Up(db, "../../migrations", "ledger")
	assert.ErrorContains(t, err, "failed to create postgres driver instance")
}
