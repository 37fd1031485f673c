package memstore_test

import (
	"context"
	"testing"

	"github.com/phrazzld/qna-api/internal/domain"
	"github.com/phrazzld/qna-api/internal/platform/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyStore(t *testing.T) {
	ctx := context.Background()
	replies := memstore.NewReplyStore()

	t.Run("empty lookup yields empty slice", func(t *testing.T) {
		rs, err := replies.FindByQuestionID(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, rs)
		assert.NotNil(t, rs)
	})

	t.Run("filters by question", func(t *testing.T) {
		_, err := replies.Save(ctx, 1, "writer", "to question one")
		require.NoError(t, err)
		_, err = replies.Save(ctx, 2, "writer", "to question two")
		require.NoError(t, err)

		rs, err := replies.FindByQuestionID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, rs, 1)
		assert.Equal(t, "to question one", rs[0].Content)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := replies.Save(ctx, 0, "writer", "content")
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})

	t.Run("delete all", func(t *testing.T) {
		require.NoError(t, replies.DeleteAll(ctx))
		rs, err := replies.FindByQuestionID(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, rs)
	})
}
