package benchlib

import "bytes"

// NameSize is the size of the DataPoint name buffer, terminator included.
const NameSize = 32

// DataPoint is a fixed-layout record. Its memory layout matches the C struct
// {int id; double value; char name[32];} so a []DataPoint can be handed to C
// code unchanged.
type DataPoint struct {
	ID    int32
	Value float64
	Name  [NameSize]byte
}

// NewDataPoint builds a DataPoint, rejecting names longer than NameSize-1
// bytes.
func NewDataPoint(id int32, value float64, name string) (DataPoint, error) {
	dp := DataPoint{ID: id, Value: value}
	if err := dp.SetName(name); err != nil {
		return DataPoint{}, err
	}
	return dp, nil
}

// SetName stores name followed by a NUL terminator.
func (dp *DataPoint) SetName(name string) error {
	if len(name) > NameSize-1 {
		return ErrNameTooLong
	}
	dp.Name = [NameSize]byte{}
	copy(dp.Name[:], name)
	return nil
}

// NameString returns the name up to its terminator.
func (dp *DataPoint) NameString() string {
	if i := bytes.IndexByte(dp.Name[:], 0); i >= 0 {
		return string(dp.Name[:i])
	}
	return string(dp.Name[:])
}

// ProcessDataPoint returns float64(dp.ID) * dp.Value.
func ProcessDataPoint(dp *DataPoint) (float64, error) {
	if dp == nil {
		return 0, ErrNilPointer
	}
	return float64(dp.ID) * dp.Value, nil
}

// SumDataPoints returns the sum of ProcessDataPoint over points.
func SumDataPoints(points []DataPoint) float64 {
	var sum float64
	for i := range points {
		sum += float64(points[i].ID) * points[i].Value
	}
	return sum
}
