package notification

import (
	"context"
	"testing"
	"time"

	notifymocks "github.com/amirhossein-jamali/credora-ledger/mocks/port/notify"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWithTimeout(t *testing.T) {
	next := notifymocks.NewMockPublisher(t)
	userID := uuid.New()

	next.EXPECT().
		Publish(mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		}), userID, sampleEvent()).
		Return(nil).
		Once()

	publisher := WithTimeout(next, 50*time.Millisecond)

	assert.NoError(t, publisher.Publish(context.Background(), userID, sampleEvent()))
	assert.Same(t, next, WithTimeout(next, 0))
}
