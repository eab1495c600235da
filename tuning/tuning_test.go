package tuning

import (
	"math"
	"sync"
	"testing"

	"github.com/oomph-ac/aimpreview/oerror"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	tbl := New()
	require.Equal(t, []string{"bow", "crossbow", "trident", "throwable", "wind"}, tbl.Names())
	require.Equal(t, Offset{Forward: 0.45, Side: -0.35, Up: -0.08}, tbl.Get(GroupBow))
	require.Equal(t, Offset{Forward: 0.10, Side: -0.10, Up: 0.025}, tbl.Get(GroupTrident))
}

func TestSetIsCaseInsensitive(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.Set("CrossBow", Offset{Forward: 1, Side: 0.5, Up: -1}))
	require.Equal(t, Offset{Forward: 1, Side: 0.5, Up: -1}, tbl.Get(GroupCrossbow))
}

func TestSetUnknownProfileIsUsageError(t *testing.T) {
	tbl := New()
	before := tbl.Get(GroupBow)

	err := tbl.Set("bwo", Offset{Forward: 9})
	require.Error(t, err)
	require.ErrorIs(t, err, oerror.ErrUsage)
	require.Contains(t, err.Error(), "bwo")

	for _, g := range tbl.Groups() {
		require.NotEqual(t, 9.0, tbl.Get(g).Forward)
	}
	require.Equal(t, before, tbl.Get(GroupBow))
}

func TestDecodeKeepsOmittedFields(t *testing.T) {
	tbl := New()
	err := tbl.Decode([]byte("[wind]\nforward = 0.3\n\n[bow]\nup = 0\n"))
	require.NoError(t, err)

	require.Equal(t, Offset{Forward: 0.3, Side: -0.20, Up: -0.10}, tbl.Get(GroupWind))
	require.Equal(t, Offset{Forward: 0.45, Side: -0.35, Up: 0}, tbl.Get(GroupBow))
}

func TestDecodeRejectsUnknownGroupAtomically(t *testing.T) {
	tbl := New()
	err := tbl.Decode([]byte("[bow]\nforward = 2.0\n\n[slingshot]\nforward = 1.0\n"))
	require.ErrorIs(t, err, oerror.ErrUsage)
	require.Equal(t, 0.45, tbl.Get(GroupBow).Forward)
}

func TestDecodeRejectsNonNumbers(t *testing.T) {
	tbl := New()
	err := tbl.Decode([]byte("[bow]\nforward = \"far\"\n"))
	require.ErrorIs(t, err, oerror.ErrUsage)
}

func TestSetRejectsOutOfBoundsOffsets(t *testing.T) {
	tbl := New()
	for _, o := range []Offset{
		{Forward: MaxOffset + 0.01},
		{Side: -3},
		{Up: math.NaN()},
		{Forward: math.Inf(1)},
	} {
		require.ErrorIs(t, tbl.Set("bow", o), oerror.ErrUsage, "offset %+v", o)
	}
	require.Equal(t, New().Get(GroupBow), tbl.Get(GroupBow))

	require.NoError(t, tbl.Set("bow", Offset{Forward: MaxOffset, Side: -MaxOffset}))
}

func TestDecodeRejectsOutOfBoundsValues(t *testing.T) {
	tbl := New()
	err := tbl.Decode([]byte("[crossbow]\nforward = 0.5\n\n[bow]\nforward = 5.0\n"))
	require.ErrorIs(t, err, oerror.ErrUsage)
	require.Contains(t, err.Error(), "bow")
	require.Equal(t, New().Get(GroupCrossbow), tbl.Get(GroupCrossbow))

	for _, doc := range []string{"[bow]\nside = inf\n", "[bow]\nup = nan\n", "[bow]\nup = -300\n"} {
		require.Error(t, tbl.Decode([]byte(doc)), "document %q", doc)
	}
	require.Equal(t, New().Get(GroupBow), tbl.Get(GroupBow))
}

func TestConcurrentAccess(t *testing.T) {
	tbl := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = tbl.Set("throwable", Offset{Forward: float64(i) / 4})
		}(i)
		go func() {
			defer wg.Done()
			_ = tbl.Get(GroupThrowable)
		}()
	}
	wg.Wait()
}
