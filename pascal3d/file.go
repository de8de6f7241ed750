package pascal3d

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/hdf5"
)

// Array names inside a class group.
const (
	ArrayImages    = "images"
	ArrayAzimuth   = "azimuth_bit"
	ArrayElevation = "elevation_bit"
	ArrayTilt      = "tilt_bit"
)

// File is an HDF5 dataset container opened read-only.
type File struct {
	path   string
	h5     *hdf5.File
	closed bool
}

// OpenFile opens the HDF5 container at path for reading. If path does not
// exist, the returned error is a *FileNotFoundError and no open is attempted.
func OpenFile(path string) (*File, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("checking file: %w", err)
	}

	h5, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	return &File{path: path, h5: h5}, nil
}

// Close closes the underlying HDF5 file.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.h5.Close()
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Members implements Container. Classes are returned in container order.
func (f *File) Members(partition string) ([]Class, error) {
	g, err := f.openPartition(partition)
	if err != nil {
		return nil, err
	}
	defer g.Close()

	n, err := g.NumObjects()
	if err != nil {
		return nil, fmt.Errorf("counting members of %q: %w", partition, err)
	}

	members := make([]Class, 0, n)
	for i := uint(0); i < n; i++ {
		name, err := g.ObjectNameByIndex(i)
		if err != nil {
			return nil, fmt.Errorf("reading member %d of %q: %w", i, partition, err)
		}
		members = append(members, Class(name))
	}
	return members, nil
}

// Record implements Container.
func (f *File) Record(partition string, class Class) (*Record, error) {
	pg, err := f.openPartition(partition)
	if err != nil {
		return nil, err
	}
	defer pg.Close()

	if !pg.LinkExists(string(class)) {
		return nil, fmt.Errorf("%s/%s: %w", partition, class, ErrClassNotFound)
	}
	cg, err := pg.OpenGroup(string(class))
	if err != nil {
		return nil, fmt.Errorf("opening %s/%s: %w", partition, class, err)
	}
	defer cg.Close()

	prefix := path.Join("/", partition, string(class))
	images, err := readImages(cg, prefix)
	if err != nil {
		return nil, err
	}

	var angles [3]*mat.Dense
	for i, name := range []string{ArrayAzimuth, ArrayElevation, ArrayTilt} {
		angles[i], err = readAngles(cg, prefix, name)
		if err != nil {
			return nil, err
		}
	}

	rec, err := NewRecord(images, angles[0], angles[1], angles[2])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", prefix, err)
	}
	return rec, nil
}

func (f *File) openPartition(partition string) (*hdf5.Group, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if !f.h5.LinkExists(partition) {
		return nil, fmt.Errorf("%q: %w", partition, ErrPartitionNotFound)
	}
	g, err := f.h5.OpenGroup(partition)
	if err != nil {
		return nil, fmt.Errorf("opening partition %q: %w", partition, err)
	}
	return g, nil
}

// openArray opens a dataset in g and returns it with its dimensions.
func openArray(g *hdf5.Group, prefix, name string) (*hdf5.Dataset, []uint, error) {
	full := path.Join(prefix, name)
	if !g.LinkExists(name) {
		return nil, nil, fmt.Errorf("%s: %w", full, ErrArrayNotFound)
	}
	ds, err := g.OpenDataset(name)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", full, err)
	}

	space := ds.Space()
	defer space.Close()
	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		ds.Close()
		return nil, nil, fmt.Errorf("reading shape of %s: %w", full, err)
	}
	return ds, dims, nil
}

func readImages(g *hdf5.Group, prefix string) (*Images, error) {
	ds, dims, err := openArray(g, prefix, ArrayImages)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	full := path.Join(prefix, ArrayImages)
	if len(dims) != 4 {
		return nil, fmt.Errorf("%s has rank %d, want 4: %w", full, len(dims), ErrShapeMismatch)
	}
	shape := ImageShape{Height: int(dims[1]), Width: int(dims[2]), Channels: int(dims[3])}
	n := int(dims[0]) * shape.Size()

	pix, err := readFloat32(ds, n)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", full, err)
	}
	return NewImages(shape, pix)
}

func readAngles(g *hdf5.Group, prefix, name string) (*mat.Dense, error) {
	ds, dims, err := openArray(g, prefix, name)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	full := path.Join(prefix, name)
	if len(dims) != 2 || dims[1] != BiternionColumns {
		return nil, fmt.Errorf("%s has shape %v, want [N %d]: %w", full, dims, BiternionColumns, ErrShapeMismatch)
	}
	rows := int(dims[0])
	if rows == 0 {
		return &mat.Dense{}, nil
	}

	data, err := readFloat64(ds, rows*BiternionColumns)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", full, err)
	}
	return mat.NewDense(rows, BiternionColumns, data), nil
}

// readFloat32 reads n image elements as float32. Dataset.Read fills the
// buffer in the dataset's own element type, so float64, uint8 and int8
// datasets are read into a buffer of that type and converted.
func readFloat32(ds *hdf5.Dataset, n int) ([]float32, error) {
	if n == 0 {
		return nil, nil
	}
	dt, err := ds.Datatype()
	if err != nil {
		return nil, err
	}
	defer dt.Close()

	switch {
	case dt.Equal(hdf5.T_NATIVE_FLOAT):
		return readAs[float32, float32](ds, n)
	case dt.Equal(hdf5.T_NATIVE_DOUBLE):
		return readAs[float64, float32](ds, n)
	case dt.Equal(hdf5.T_NATIVE_UINT8):
		return readAs[uint8, float32](ds, n)
	case dt.Equal(hdf5.T_NATIVE_INT8):
		return readAs[int8, float32](ds, n)
	}
	return nil, unsupported(dt)
}

// readFloat64 reads n angle elements of a float32 or float64 dataset as float64.
func readFloat64(ds *hdf5.Dataset, n int) ([]float64, error) {
	dt, err := ds.Datatype()
	if err != nil {
		return nil, err
	}
	defer dt.Close()

	switch {
	case dt.Equal(hdf5.T_NATIVE_DOUBLE):
		return readAs[float64, float64](ds, n)
	case dt.Equal(hdf5.T_NATIVE_FLOAT):
		return readAs[float32, float64](ds, n)
	}
	return nil, unsupported(dt)
}

// readAs reads n elements stored as From and returns them as To. When the
// types match the read buffer is returned as is.
func readAs[From, To float32 | float64 | uint8 | int8](ds *hdf5.Dataset, n int) ([]To, error) {
	raw := make([]From, n)
	if err := ds.Read(&raw); err != nil {
		return nil, err
	}
	if out, ok := any(raw).([]To); ok {
		return out, nil
	}
	out := make([]To, n)
	for i, v := range raw {
		out[i] = To(v)
	}
	return out, nil
}

func unsupported(dt *hdf5.Datatype) error {
	return fmt.Errorf("class %v size %d: %w", dt.Class(), dt.Size(), ErrUnsupported)
}
