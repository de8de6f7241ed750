// Package pascal3d loads the preprocessed PASCAL3D+ pose estimation dataset
// and splits it into train, validation and test partitions.
package pascal3d

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrFileNotFound      = errors.New("dataset file not found")
	ErrPartitionNotFound = errors.New("partition not found")
	ErrClassNotFound     = errors.New("class not found")
	ErrArrayNotFound     = errors.New("array not found")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrInvalidSplit      = errors.New("invalid validation split")
	ErrUnsupported       = errors.New("unsupported element type")
	ErrClosed            = errors.New("file is closed")
)

// DownloadURL is where the preprocessed container can be fetched from.
const DownloadURL = "https://drive.google.com/open?id=1bDcISYXmCcTqZhhCX-bhTuUCmEH1Q8YF"

// FileNotFoundError is returned when the dataset container does not exist.
// Its message tells the user where to download the container from.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("File %s not found! Download the preprocessed PASCAL3D+ dataset first: %s", e.Path, DownloadURL)
}

// Is makes errors.Is(err, ErrFileNotFound) report true.
func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}
