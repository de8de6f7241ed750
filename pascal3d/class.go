package pascal3d

import "slices"

// Class is a PASCAL3D+ object category.
type Class string

// Object categories of the PASCAL3D+ dataset.
const (
	Aeroplane   Class = "aeroplane"
	Bicycle     Class = "bicycle"
	Boat        Class = "boat"
	Bottle      Class = "bottle"
	Bus         Class = "bus"
	Car         Class = "car"
	Chair       Class = "chair"
	DiningTable Class = "diningtable"
	Motorbike   Class = "motorbike"
	Sofa        Class = "sofa"
	Train       Class = "train"
	TVMonitor   Class = "tvmonitor"
)

// Classes lists every category in declaration order. Loading all classes
// concatenates them in this order.
var Classes = []Class{
	Aeroplane, Bicycle, Boat, Bottle, Bus, Car,
	Chair, DiningTable, Motorbike, Sofa, Train, TVMonitor,
}

// Known reports whether c is one of the declared categories.
func (c Class) Known() bool {
	return slices.Contains(Classes, c)
}

func (c Class) String() string {
	return string(c)
}

// orderClasses returns members with declared classes first, in Classes order,
// followed by any other members sorted lexically.
func orderClasses(members []Class) []Class {
	present := make(map[Class]bool, len(members))
	for _, m := range members {
		present[m] = true
	}

	ordered := make([]Class, 0, len(members))
	for _, c := range Classes {
		if present[c] {
			ordered = append(ordered, c)
			delete(present, c)
		}
	}

	var extra []Class
	for c := range present {
		extra = append(extra, c)
	}
	slices.Sort(extra)

	return append(ordered, extra...)
}
