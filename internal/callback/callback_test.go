package callback

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	id := uuid.New().String()
	d, err := Decode(Encode(Accept, id))
	require.NoError(t, err)
	require.Equal(t, Data{Action: Accept, Arg: id}, d)

	d, err = Decode(Encode(Next))
	require.NoError(t, err)
	require.Equal(t, Data{Action: Next}, d)

	require.Equal(t, "done", Encode(Done, ""))
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", ":x", strings.Repeat("a", MaxLen+1)} {
		_, err := Decode(in)
		require.ErrorIs(t, err, ErrMalformed, in)
	}
}

func TestEncode_TooLongPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { Encode(strings.Repeat("x", 40), strings.Repeat("y", 40)) })
}
