package pascal3d

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Partition names in the container.
const (
	PartitionTrain = "train"
	PartitionTest  = "test"
)

// Record is the data of one class within one partition.
type Record struct {
	Images *Images
	Labels *mat.Dense
}

// NewRecord assembles a record from an image array and the three biternion
// arrays. Labels are laid out pan, tilt, roll.
func NewRecord(images *Images, azimuth, elevation, tilt *mat.Dense) (*Record, error) {
	labels, err := NewLabels(azimuth, elevation, tilt)
	if err != nil {
		return nil, err
	}
	if images.Len() != labelRows(labels) {
		return nil, fmt.Errorf("%d images but %d labels: %w", images.Len(), labelRows(labels), ErrShapeMismatch)
	}
	return &Record{Images: images, Labels: labels}, nil
}

// Len returns the number of samples in the record.
func (r *Record) Len() int {
	return r.Images.Len()
}

// Set maps classes to their records for one partition.
type Set map[Class]*Record

// Partition holds aligned images and labels.
type Partition struct {
	Images *Images
	Labels *mat.Dense
}

// Len returns the number of samples.
func (p Partition) Len() int {
	return p.Images.Len()
}

// Take returns the samples at idx, in idx order.
func (p Partition) Take(idx []int) Partition {
	return Partition{
		Images: p.Images.Take(idx),
		Labels: takeRows(p.Labels, idx),
	}
}

func (p Partition) validate() error {
	if p.Images == nil {
		return fmt.Errorf("partition has no images: %w", ErrShapeMismatch)
	}
	if p.Images.Len() != labelRows(p.Labels) {
		return fmt.Errorf("%d images but %d labels: %w", p.Images.Len(), labelRows(p.Labels), ErrShapeMismatch)
	}
	return nil
}

// concatRecords stacks records in order into a single partition.
func concatRecords(records []*Record) (Partition, error) {
	images := make([]*Images, 0, len(records))
	labels := make([]*mat.Dense, 0, len(records))
	for i, r := range records {
		if r == nil || r.Images == nil {
			return Partition{}, fmt.Errorf("record %d has no images: %w", i, ErrShapeMismatch)
		}
		if r.Images.Len() != labelRows(r.Labels) {
			return Partition{}, fmt.Errorf("record %d has %d images but %d labels: %w", i, r.Images.Len(), labelRows(r.Labels), ErrShapeMismatch)
		}
		images = append(images, r.Images)
		labels = append(labels, r.Labels)
	}

	im, err := concatImages(images)
	if err != nil {
		return Partition{}, err
	}
	lb, err := stackLabels(labels)
	if err != nil {
		return Partition{}, err
	}
	return Partition{Images: im, Labels: lb}, nil
}

// Dataset is the result of Load.
type Dataset struct {
	Train Partition
	Val   Partition
	Test  Partition
}
