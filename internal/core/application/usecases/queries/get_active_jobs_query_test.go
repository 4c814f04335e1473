package queries_test

import (
	"testing"

	"fixmarket/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActiveJobsQuery_Valid(t *testing.T) {
	query := queries.NewGetActiveJobsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetActiveJobsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetActiveJobsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetActiveJobsQueryIsNotConstructed)
}
