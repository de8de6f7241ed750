package pascal3d

import (
	"fmt"

	"go.uber.org/zap"
)

// Load opens the HDF5 container at path and returns its train, validation
// and test partitions. A missing file yields a *FileNotFoundError that
// names the download location.
//
// Example:
//
//	ds, err := pascal3d.Load("pascal3d.h5", pascal3d.WithClass(pascal3d.Car))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(ds.Train.Len(), ds.Val.Len(), ds.Test.Len())
func Load(path string, opts ...Option) (*Dataset, error) {
	f, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFrom(f, opts...)
}

// LoadFrom is like Load for an already opened container.
func LoadFrom(c Container, opts ...Option) (*Dataset, error) {
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(o)
	}
	if !o.canonical {
		if err := validateFraction(o.valSplit); err != nil {
			return nil, err
		}
	}

	log := o.logger
	if o.class != "" && !o.class.Known() {
		log.Debug("loading class outside the declared list", zap.String("class", o.class.String()))
	}

	train, trainClasses, err := readPartition(c, PartitionTrain, o.class)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", PartitionTrain, err)
	}
	log.Debug("loaded partition",
		zap.String("partition", PartitionTrain),
		zap.Stringers("classes", trainClasses),
		zap.Int("samples", train.Len()))

	test, testClasses, err := readPartition(c, PartitionTest, o.class)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", PartitionTest, err)
	}
	log.Debug("loaded partition",
		zap.String("partition", PartitionTest),
		zap.Stringers("classes", testClasses),
		zap.Int("samples", test.Len()))

	var tr, val Partition
	switch {
	case o.canonical:
		tr, val, err = Split(train, o.valSplit, true)
	case o.seed != nil:
		tr, val, err = SplitSeeded(train, o.valSplit, *o.seed)
	default:
		tr, val, err = Split(train, o.valSplit, false)
	}
	if err != nil {
		return nil, fmt.Errorf("splitting %s: %w", PartitionTrain, err)
	}
	log.Debug("split training partition",
		zap.Bool("canonical", o.canonical),
		zap.Int("train", tr.Len()),
		zap.Int("val", val.Len()))

	return &Dataset{Train: tr, Val: val, Test: test}, nil
}
