package pascal3d

// WalkFunc is called for each class record during traversal.
// err is any error encountered reading the record; rec is nil in that case.
// Return nil to continue walking, or an error to stop.
type WalkFunc func(partition string, class Class, rec *Record, err error) error

// Walk visits every class of the train and test partitions, in loading order.
//
// Example:
//
//	pascal3d.Walk(f, func(part string, c pascal3d.Class, rec *pascal3d.Record, err error) error {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(part, c, rec.Len())
//	    return nil
//	})
func Walk(c Container, fn WalkFunc) error {
	for _, partition := range []string{PartitionTrain, PartitionTest} {
		members, err := c.Members(partition)
		if err != nil {
			if err := fn(partition, "", nil, err); err != nil {
				return stopped(err)
			}
			continue
		}

		for _, class := range orderClasses(members) {
			rec, err := c.Record(partition, class)
			if err := fn(partition, class, rec, err); err != nil {
				return stopped(err)
			}
		}
	}
	return nil
}

func stopped(err error) error {
	if IsStopWalk(err) {
		return nil
	}
	return err
}

// ErrStopWalk can be returned from a WalkFunc to stop walking without an error.
var ErrStopWalk = &walkStopError{}

type walkStopError struct{}

func (e *walkStopError) Error() string { return "walk stopped" }

// IsStopWalk returns true if the error is ErrStopWalk.
func IsStopWalk(err error) bool {
	_, ok := err.(*walkStopError)
	return ok
}
