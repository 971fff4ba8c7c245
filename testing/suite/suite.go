package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/morris-backend/internal/entity"
	"github.com/rocketscienceinc/morris-backend/internal/morris"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Play applies every intent in order and fails the test on the first rejection.
func Play(t testing.TB, manager *morris.Manager, intents ...entity.Intent) {
	t.Helper()

	for _, intent := range intents {
		_, err := manager.Apply(intent)
		require.NoError(t, err, "applying %s", intent)
	}
}

// Placements builds alternating placement intents, white first.
func Placements(positions ...entity.Position) []entity.Intent {
	intents := make([]entity.Intent, 0, len(positions))

	colour := entity.White
	for _, p := range positions {
		intents = append(intents, entity.PlaceIntent(colour, p))
		colour = colour.Opponent()
	}

	return intents
}

// MillInOpening is an opening in which white closes the top outer side with its
// third placement while black holds c5 and d5.
func MillInOpening() []entity.Intent {
	return Placements(entity.A7, entity.C5, entity.D7, entity.D5, entity.G7)
}
