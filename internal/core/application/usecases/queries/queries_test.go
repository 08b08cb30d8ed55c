package queries_test

import (
	"testing"

	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_RoleGuards(t *testing.T) {
	business := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleBusiness)
	trucker := kernel.MustNewActor(kernel.NewUUID(), kernel.RoleTrucker)

	tests := []struct {
		name    string
		build   func(kernel.Actor) error
		allowed kernel.Actor
		denied  kernel.Actor
	}{
		{
			name: "list posted loads",
			build: func(a kernel.Actor) error {
				_, err := queries.NewListPostedLoadsQuery(a)
				return err
			},
			allowed: business,
			denied:  trucker,
		},
		{
			name: "poster summary",
			build: func(a kernel.Actor) error {
				_, err := queries.NewGetPosterSummaryQuery(a)
				return err
			},
			allowed: business,
			denied:  trucker,
		},
		{
			name: "list available loads",
			build: func(a kernel.Actor) error {
				_, err := queries.NewListAvailableLoadsQuery(a, load.AnyCapability())
				return err
			},
			allowed: trucker,
			denied:  business,
		},
		{
			name: "list assigned loads",
			build: func(a kernel.Actor) error {
				_, err := queries.NewListAssignedLoadsQuery(a)
				return err
			},
			allowed: trucker,
			denied:  business,
		},
		{
			name: "trucker earnings",
			build: func(a kernel.Actor) error {
				_, err := queries.NewGetTruckerEarningsQuery(a)
				return err
			},
			allowed: trucker,
			denied:  business,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.build(tt.allowed))
			require.ErrorIs(t, tt.build(tt.denied), errs.ErrActorIsNotAuthorized)
			require.ErrorIs(t, tt.build(kernel.Actor{}), kernel.ErrActorIsNotConstructed)
		})
	}
}

func TestNewGetLoadQuery(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetLoadQuery(id)
	require.NoError(t, err)
	assert.True(t, query.LoadID().IsEqual(id))
	require.NoError(t, query.Validate())

	_, err = queries.NewGetLoadQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestQueries_ZeroValuesAreNotConstructed(t *testing.T) {
	assert.ErrorIs(t, queries.GetLoadQuery{}.Validate(), queries.ErrGetLoadQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListPostedLoadsQuery{}.Validate(), queries.ErrListPostedLoadsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListAvailableLoadsQuery{}.Validate(), queries.ErrListAvailableLoadsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListAssignedLoadsQuery{}.Validate(), queries.ErrListAssignedLoadsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetTruckerEarningsQuery{}.Validate(), queries.ErrGetTruckerEarningsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetPosterSummaryQuery{}.Validate(), queries.ErrGetPosterSummaryQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetBoardSnapshotQuery{}.Validate(), queries.ErrGetBoardSnapshotQueryIsNotConstructed)
	require.NoError(t, queries.NewGetBoardSnapshotQuery().Validate())
}
