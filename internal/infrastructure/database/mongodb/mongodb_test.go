package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates the name and category index", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, EnsureIndexes(context.Background(), mt.DB))

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "createIndexes", started.CommandName)
		assert.Equal(mt, ToyCollection, started.Command.Lookup("createIndexes").StringValue())
		assert.Equal(mt, NameAndCategoryIndex, started.Command.Lookup("indexes", "0", "name").StringValue())
		assert.Equal(mt, int64(1), started.Command.Lookup("indexes", "0", "key", "name").AsInt64())
		assert.Equal(mt, int64(1), started.Command.Lookup("indexes", "0", "key", "category").AsInt64())
	})

	mt.Run("reports server failures", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		assert.Error(mt, EnsureIndexes(context.Background(), mt.DB))
	})
}
