package repo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-grid/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newTestMongoRepo connects to MONGO_TEST_URI and skips the test when no
// server is reachable. Each call uses its own database, dropped on cleanup.
func newTestMongoRepo(t *testing.T) *MongoSubmissionRepo {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerSelectionTimeout(2*time.Second))
	if err != nil {
		t.Skipf("mongo not reachable: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("mongo not reachable: %v", err)
	}

	dbName := fmt.Sprintf("grid_test_%d", time.Now().UnixNano())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = client.Database(dbName).Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return NewMongoSubmissionRepo(client, dbName, "results")
}

func TestMongoSubmissionRepo(t *testing.T) {
	ctx := context.Background()
	r := newTestMongoRepo(t)

	t.Run("empty store", func(t *testing.T) {
		n, err := r.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		recent, err := r.Recent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, recent)
	})

	t.Run("save count and list newest first", func(t *testing.T) {
		first := dmn.NewRecord(dmn.Submission{X: 1, Y: 2, Steps: 1, Email: "a@b.com"}, "a win #1")
		second := dmn.NewRecord(dmn.Submission{X: 3, Y: 3, Steps: 4, Email: "c@d.com"}, "c win #2")
		second.CreatedAt = first.CreatedAt.Add(time.Second)

		require.NoError(t, r.Save(ctx, first))
		require.NoError(t, r.Save(ctx, second))

		n, err := r.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		recent, err := r.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, second.ID, recent[0].ID)
		assert.Equal(t, "c win #2", recent[0].Message)
		assert.Equal(t, first.ID, recent[1].ID)
		assert.Equal(t, "a@b.com", recent[1].Email)
		assert.Equal(t, 1, recent[1].Steps)

		limited, err := r.Recent(ctx, 1)
		require.NoError(t, err)
		require.Len(t, limited, 1)
		assert.Equal(t, second.ID, limited[0].ID)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		rec := dmn.NewRecord(dmn.Submission{X: 2, Y: 2, Email: "e@f.com"}, "e win #3")
		require.NoError(t, r.Save(ctx, rec))
		assert.EqualError(t, r.Save(ctx, rec), "result id conflict")
	})
}
