package tour

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pandusatria/wisata-tour/internal/app/models"
)

func sessionFixture(t *testing.T) (*Session, *Graph) {
	t.Helper()
	panoramas := makePanoramas(3)
	pois := []models.PointOfInterest{
		{ID: uuid.New(), Title: "Gapura", PanoramaID: panoramas[0].ID},
		{ID: uuid.New(), Title: "Alun-alun", PanoramaID: panoramas[0].ID},
		{ID: uuid.New(), Title: "Makam", PanoramaID: panoramas[2].ID},
	}
	graph := Assemble(panoramas, pois, LinkRing)
	return NewSession(graph), graph
}

func TestEnterHandsOutHotspotsExactlyOnce(t *testing.T) {
	sess, graph := sessionFixture(t)
	key := graph.Scenes[0].Key

	first, err := sess.Enter(key)
	require.NoError(t, err)
	assert.Len(t, first.Hotspots, 2)

	again, err := sess.Enter(key)
	require.NoError(t, err)
	assert.Empty(t, again.Hotspots, "re-entering must not attach markers twice")

	// Other scenes keep their own first-entry state.
	other, err := sess.Enter(graph.Scenes[2].Key)
	require.NoError(t, err)
	assert.Len(t, other.Hotspots, 1)
}

func TestEnterUnknownScene(t *testing.T) {
	sess, _ := sessionFixture(t)

	_, err := sess.Enter(uuid.NewString())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPromptShowsOncePerSession(t *testing.T) {
	sess, graph := sessionFixture(t)
	lastKey := graph.Scenes[2].Key

	res, err := sess.Enter(lastKey)
	require.NoError(t, err)
	assert.True(t, res.ShowPrompt)

	// Walking away and coming back must not prompt again.
	_, err = sess.Enter(graph.Scenes[0].Key)
	require.NoError(t, err)
	res, err = sess.Enter(lastKey)
	require.NoError(t, err)
	assert.False(t, res.ShowPrompt)
}

func TestPromptNotShownOnEarlierScenes(t *testing.T) {
	sess, graph := sessionFixture(t)

	res, err := sess.Enter(graph.Scenes[0].Key)
	require.NoError(t, err)
	assert.False(t, res.ShowPrompt)
}

func TestOpenOverlayReplacesPrevious(t *testing.T) {
	sess, graph := sessionFixture(t)
	scene := graph.Scenes[0]

	first, err := sess.OpenOverlay(scene.Key, scene.Hotspots[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Gapura", first.Title)

	second, err := sess.OpenOverlay(scene.Key, scene.Hotspots[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Alun-alun", second.Title)
	assert.Equal(t, second, sess.Overlay())

	sess.CloseOverlay()
	assert.Nil(t, sess.Overlay())
}

func TestOpenOverlayUnknownHotspot(t *testing.T) {
	sess, graph := sessionFixture(t)

	_, err := sess.OpenOverlay(graph.Scenes[0].Key, uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}
