package pascal3d

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var testShape = ImageShape{Height: 2, Width: 2, Channels: 3}

// makeRecord builds n samples whose pixels all equal id and whose pan angle
// is id/1000 radians, for ids base..base+n-1.
func makeRecord(t *testing.T, base, n int) *Record {
	t.Helper()

	pix := make([]float32, 0, n*testShape.Size())
	az := make([]float64, 0, n*2)
	el := make([]float64, 0, n*2)
	tl := make([]float64, 0, n*2)
	for i := 0; i < n; i++ {
		id := base + i
		for k := 0; k < testShape.Size(); k++ {
			pix = append(pix, float32(id))
		}
		row := EncodePose(poseFor(id))
		az = append(az, row[0:2]...)
		el = append(el, row[2:4]...)
		tl = append(tl, row[4:6]...)
	}

	images, err := NewImages(testShape, pix)
	require.NoError(t, err)
	if n == 0 {
		rec, err := NewRecord(images, &mat.Dense{}, &mat.Dense{}, &mat.Dense{})
		require.NoError(t, err)
		return rec
	}
	rec, err := NewRecord(images,
		mat.NewDense(n, 2, az),
		mat.NewDense(n, 2, el),
		mat.NewDense(n, 2, tl))
	require.NoError(t, err)
	return rec
}

func poseFor(id int) Pose {
	return Pose{Pan: float64(id) / 1000, Tilt: 0.5, Roll: -0.25}
}

// sampleIDs recovers the id of every sample in p from its pixels.
func sampleIDs(p Partition) []int {
	ids := make([]int, p.Len())
	for i := range ids {
		ids[i] = int(p.Images.At(i)[0])
	}
	return ids
}

// makePartition returns a partition with ids 0..n-1.
func makePartition(t *testing.T, n int) Partition {
	t.Helper()
	rec := makeRecord(t, 0, n)
	return Partition{Images: rec.Images, Labels: rec.Labels}
}

// twoClassMemory holds car (ids 100..) and aeroplane (ids 0..) in both partitions.
func twoClassMemory(t *testing.T) Memory {
	t.Helper()
	return Memory{
		PartitionTrain: Set{
			Car:       makeRecord(t, 100, 7),
			Aeroplane: makeRecord(t, 0, 5),
		},
		PartitionTest: Set{
			Car:       makeRecord(t, 1100, 3),
			Aeroplane: makeRecord(t, 1000, 2),
		},
	}
}
