package pascal3d

import (
	"fmt"
	"path"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/hdf5"
)

// WriteFile writes m to a new HDF5 file at path, truncating any existing
// file, in the layout OpenFile reads. Images are stored as float32 and
// angles as float64.
func WriteFile(path string, m Memory) error {
	h5, err := hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	partitions := make([]string, 0, len(m))
	for p := range m {
		partitions = append(partitions, p)
	}
	sort.Strings(partitions)

	for _, p := range partitions {
		if err := writePartition(h5, p, m[p]); err != nil {
			h5.Close()
			return err
		}
	}
	return h5.Close()
}

func writePartition(h5 *hdf5.File, partition string, set Set) error {
	g, err := h5.CreateGroup(partition)
	if err != nil {
		return fmt.Errorf("creating partition %q: %w", partition, err)
	}
	defer g.Close()

	members := make([]Class, 0, len(set))
	for c := range set {
		members = append(members, c)
	}
	for _, c := range orderClasses(members) {
		if err := writeRecord(g, path.Join("/", partition, string(c)), c, set[c]); err != nil {
			return err
		}
	}
	return nil
}

func writeRecord(parent *hdf5.Group, prefix string, class Class, rec *Record) error {
	g, err := parent.CreateGroup(string(class))
	if err != nil {
		return fmt.Errorf("creating %s: %w", prefix, err)
	}
	defer g.Close()

	n := uint(rec.Len())
	shape := rec.Images.Shape
	dims := []uint{n, uint(shape.Height), uint(shape.Width), uint(shape.Channels)}
	if err := writeArray(g, prefix, ArrayImages, hdf5.T_NATIVE_FLOAT, dims, rec.Images.Pix); err != nil {
		return err
	}

	for i, name := range []string{ArrayAzimuth, ArrayElevation, ArrayTilt} {
		col := biternionColumn(rec.Labels, i)
		if err := writeArray(g, prefix, name, hdf5.T_NATIVE_DOUBLE, []uint{n, BiternionColumns}, col); err != nil {
			return err
		}
	}
	return nil
}

// biternionColumn extracts the k-th biternion (pan, tilt, roll) of every
// label row as a flat N×2 slice.
func biternionColumn(labels *mat.Dense, k int) []float64 {
	rows := labelRows(labels)
	out := make([]float64, 0, rows*BiternionColumns)
	for i := 0; i < rows; i++ {
		row := labels.RawRowView(i)
		out = append(out, row[k*BiternionColumns:(k+1)*BiternionColumns]...)
	}
	return out
}

func writeArray[T float32 | float64](g *hdf5.Group, prefix, name string, dtype *hdf5.Datatype, dims []uint, data []T) error {
	full := path.Join(prefix, name)
	space, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return fmt.Errorf("creating dataspace for %s: %w", full, err)
	}
	defer space.Close()

	ds, err := g.CreateDataset(name, dtype, space)
	if err != nil {
		return fmt.Errorf("creating %s: %w", full, err)
	}
	defer ds.Close()

	if len(data) == 0 {
		return nil
	}
	if err := ds.Write(&data); err != nil {
		return fmt.Errorf("writing %s: %w", full, err)
	}
	return nil
}
