package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwire/memscan/internal/value"
)

func Test_Scan_Finds_Every_Occurrence_In_Native_Order(t *testing.T) {
	t.Parallel()

	needle := value.NewU32(0xDEADBEEF)
	buf := needle.Encode(value.Native)
	buf = append(buf, []byte{0, 0, 0, 0}...)
	buf = append(buf, needle.Encode(value.Native)...)

	it := needle.Scan(buf, value.Native)

	first, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 0, first)

	second, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 8, second)

	_, ok = it.Next()
	assert.False(t, ok)
}

func Test_Scan_Byte_Swaps_Non_Native_Needle_Before_Scanning(t *testing.T) {
	t.Parallel()

	needle := value.NewU16(0x1234)

	buf := needle.Encode(value.Big)

	it := needle.Scan(buf, value.Big)

	off, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 0, off)
}

func Test_Scan_Single_Pass_Never_Resets(t *testing.T) {
	t.Parallel()

	needle := value.NewU8(0x42)
	buf := []byte{0x42, 0x42}

	it := needle.Scan(buf, value.Native)

	_, ok := it.Next()
	require.True(t, ok)

	_, ok = it.Next()
	require.True(t, ok)

	_, ok = it.Next()
	assert.False(t, ok)

	_, ok = it.Next()
	assert.False(t, ok, "iterator must stay exhausted rather than restart")
}
