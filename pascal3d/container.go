package pascal3d

import "fmt"

// Container is a partitioned store of per-class records, laid out as
// /<partition>/<class>/{images,azimuth_bit,elevation_bit,tilt_bit}.
type Container interface {
	// Members lists the classes stored in partition, in container order.
	Members(partition string) ([]Class, error)

	// Record reads the record of class in partition.
	Record(partition string, class Class) (*Record, error)
}

// Memory is an in-memory Container keyed by partition name.
type Memory map[string]Set

// Members implements Container. Classes are returned in declared order.
func (m Memory) Members(partition string) ([]Class, error) {
	set, ok := m[partition]
	if !ok {
		return nil, fmt.Errorf("%q: %w", partition, ErrPartitionNotFound)
	}
	members := make([]Class, 0, len(set))
	for c := range set {
		members = append(members, c)
	}
	return orderClasses(members), nil
}

// Record implements Container.
func (m Memory) Record(partition string, class Class) (*Record, error) {
	set, ok := m[partition]
	if !ok {
		return nil, fmt.Errorf("%q: %w", partition, ErrPartitionNotFound)
	}
	rec, ok := set[class]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", partition, class, ErrClassNotFound)
	}
	return rec, nil
}

// readPartition reads one class, or every member when class is empty, and
// stacks the records in loading order.
func readPartition(c Container, partition string, class Class) (Partition, []Class, error) {
	var classes []Class
	if class != "" {
		classes = []Class{class}
	} else {
		members, err := c.Members(partition)
		if err != nil {
			return Partition{}, nil, err
		}
		classes = orderClasses(members)
	}

	records := make([]*Record, 0, len(classes))
	for _, cls := range classes {
		rec, err := c.Record(partition, cls)
		if err != nil {
			return Partition{}, nil, err
		}
		records = append(records, rec)
	}

	p, err := concatRecords(records)
	if err != nil {
		return Partition{}, nil, fmt.Errorf("stacking %s: %w", partition, err)
	}
	return p, classes, nil
}
