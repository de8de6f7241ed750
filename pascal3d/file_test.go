package pascal3d

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, m Memory) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pascal3d.h5")
	require.NoError(t, WriteFile(path, m))
	return path
}

func TestOpenFileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.h5")

	f, err := OpenFile(path)
	assert.Nil(t, f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))

	var nf *FileNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, path, nf.Path)
	assert.True(t, strings.Contains(err.Error(), DownloadURL), "message should name the download source")

	// Load reports the same error and does not create the file.
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrFileNotFound)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestOpenFileNotHDF5(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.h5")
	require.NoError(t, os.WriteFile(path, []byte("This is not an HDF5 file"), 0o644))

	_, err := OpenFile(path)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrFileNotFound))
}

func TestFileMembers(t *testing.T) {
	f, err := OpenFile(writeTestFile(t, twoClassMemory(t)))
	require.NoError(t, err)
	defer f.Close()

	members, err := f.Members(PartitionTrain)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Class{Aeroplane, Car}, members)

	_, err = f.Members("validation")
	assert.ErrorIs(t, err, ErrPartitionNotFound)
}

func TestFileRecordRoundTrip(t *testing.T) {
	m := twoClassMemory(t)
	f, err := OpenFile(writeTestFile(t, m))
	require.NoError(t, err)
	defer f.Close()

	rec, err := f.Record(PartitionTest, Car)
	require.NoError(t, err)

	want := m[PartitionTest][Car]
	assert.Equal(t, want.Images.Shape, rec.Images.Shape)
	assert.Equal(t, want.Images.Pix, rec.Images.Pix)
	r, c := rec.Labels.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, LabelColumns, c)
	for i := 0; i < r; i++ {
		assert.InDeltaSlice(t, want.Labels.RawRowView(i), rec.Labels.RawRowView(i), 1e-12)
	}
}

func TestFileRecordMissingClass(t *testing.T) {
	f, err := OpenFile(writeTestFile(t, twoClassMemory(t)))
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Record(PartitionTrain, Bottle)
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestFileClosed(t *testing.T) {
	f, err := OpenFile(writeTestFile(t, twoClassMemory(t)))
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())

	_, err = f.Members(PartitionTrain)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestLoad(t *testing.T) {
	path := writeTestFile(t, twoClassMemory(t))

	ds, err := Load(path)
	require.NoError(t, err)

	// int(0.8 * 12) == 9
	assert.Equal(t, 9, ds.Train.Len())
	assert.Equal(t, 3, ds.Val.Len())
	assert.Equal(t, []int{1000, 1001, 1100, 1101, 1102}, sampleIDs(ds.Test))

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sampleIDs(ds.Train), sampleIDs(again.Train))
	assert.Equal(t, sampleIDs(ds.Val), sampleIDs(again.Val))
}

func TestLoadSingleClassFromFile(t *testing.T) {
	path := writeTestFile(t, twoClassMemory(t))

	ds, err := Load(path, WithClass(Aeroplane))
	require.NoError(t, err)
	assert.Equal(t, 5, ds.Train.Len()+ds.Val.Len())
	assert.Equal(t, []int{1000, 1001}, sampleIDs(ds.Test))

	_, err = Load(path, WithClass("spaceship"))
	assert.ErrorIs(t, err, ErrClassNotFound)
}
