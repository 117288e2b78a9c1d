package bindings

import "github.com/hsiuhsiu/ffibench-go/pkg/benchlib"

// compiled calls the library directly and shares Go slices with it without
// copying.
type compiled struct {
	closed bool
}

func newCompiled() *compiled { return &compiled{} }

func (c *compiled) Name() string { return AdapterCompiled }

func (c *compiled) check() error {
	if c.closed {
		return ErrClosed
	}
	return nil
}

func (c *compiled) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true
	return nil
}

func (c *compiled) Noop(x int32) (int32, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return benchlib.Noop(x), nil
}

func (c *compiled) AddNumbers(a, b int32) (int32, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return benchlib.AddNumbers(a, b), nil
}

func (c *compiled) CalculateSimple(a int32, b float64, cc int32, d float64) (float64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return benchlib.CalculateSimple(a, b, cc, d), nil
}

func (c *compiled) FibonacciRecursive(n int32) (int64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return benchlib.FibonacciRecursive(n)
}

func (c *compiled) FibonacciIterative(n int32) (int64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return benchlib.FibonacciIterative(n)
}

func (c *compiled) IsPrime(n int64) (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	return benchlib.IsPrime(n), nil
}

func (c *compiled) CountPrimes(start, end int32) (int32, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return benchlib.CountPrimes(start, end), nil
}

func (c *compiled) MatrixMultiply(a, b []float64, n int) ([]float64, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, benchlib.ErrNegativeSize
	}
	out := make([]float64, len(a))
	if err := benchlib.MatrixMultiply(a, b, out, n); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *compiled) ComputeMathIntensive(x float64, iterations int32) (float64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return benchlib.ComputeMathIntensive(x, iterations)
}

func (c *compiled) SumArray(arr []float64) (float64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return benchlib.SumArray(arr), nil
}

func (c *compiled) ScaleArray(arr []float64, factor float64) error {
	if err := c.check(); err != nil {
		return err
	}
	benchlib.ScaleArray(arr, factor)
	return nil
}

func (c *compiled) CopyArray(src []float64) ([]float64, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	dst := make([]float64, len(src))
	if err := benchlib.CopyArray(src, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

func (c *compiled) DotProduct(a, b []float64) (float64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return benchlib.DotProduct(a, b)
}

func (c *compiled) ArrayReverse(arr []float64) error {
	if err := c.check(); err != nil {
		return err
	}
	benchlib.ArrayReverse(arr)
	return nil
}

func (c *compiled) SumStrided(arr []float64, stride int) (float64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return benchlib.SumStrided(arr, stride)
}

func (c *compiled) StringLength(s string) (int, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return benchlib.StringLength(terminated(s))
}

func (c *compiled) StringConcat(s1, s2 string) (string, error) {
	if err := c.check(); err != nil {
		return "", err
	}
	cs, err := benchlib.StringConcat([]byte(s1), []byte(s2))
	if err != nil {
		return "", err
	}
	out := cs.String()
	if err := cs.Free(); err != nil {
		return "", err
	}
	return out, nil
}

func (c *compiled) ProcessDataPoint(p Point) (float64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	dp, err := benchlib.NewDataPoint(p.ID, p.Value, p.Name)
	if err != nil {
		return 0, err
	}
	return benchlib.ProcessDataPoint(&dp)
}

func (c *compiled) SumDataPoints(points []Point) (float64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	dps, err := toDataPoints(points)
	if err != nil {
		return 0, err
	}
	return benchlib.SumDataPoints(dps), nil
}

func (c *compiled) MonteCarloPi(iterations int) (float64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return benchlib.MonteCarloPi(iterations)
}

func (c *compiled) BlurArray(input []float64, width, height int) ([]float64, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	out := make([]float64, len(input))
	if err := benchlib.BlurArray(input, out, width, height); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *compiled) SortArray(arr []float64) error {
	if err := c.check(); err != nil {
		return err
	}
	benchlib.SortArray(arr)
	return nil
}

func (c *compiled) AllocateAndSum(size int) (float64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	arr, err := benchlib.AllocateArray(size)
	if err != nil {
		return 0, err
	}
	sum := benchlib.SumArray(arr.Data())
	if err := arr.Free(); err != nil {
		return 0, err
	}
	return sum, nil
}

func (c *compiled) ApplyOperation(initial float64, iterations int32) (float64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return benchlib.ApplyOperation(initial, iterations)
}

func (c *compiled) ProcessBuffer(buf []byte) error {
	if err := c.check(); err != nil {
		return err
	}
	benchlib.ProcessBuffer(buf)
	return nil
}

func (c *compiled) Checksum(buf []byte) (uint32, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return benchlib.Checksum(buf), nil
}

func (c *compiled) ListOperations(size int) (int64, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	l, err := benchlib.CreateList(size)
	if err != nil {
		return 0, err
	}
	sum, err := benchlib.SumList(l)
	if ferr := l.Free(); err == nil {
		err = ferr
	}
	return sum, err
}

func (c *compiled) Popcount(n uint32) (int32, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return benchlib.Popcount(n), nil
}

func (c *compiled) BitwiseReduce(arr []uint32) (uint32, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	return benchlib.BitwiseReduce(arr), nil
}

// terminated returns s as a NUL-terminated byte buffer.
func terminated(s string) []byte {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return buf
}

func toDataPoints(points []Point) ([]benchlib.DataPoint, error) {
	dps := make([]benchlib.DataPoint, len(points))
	for i, p := range points {
		if err := dps[i].SetName(p.Name); err != nil {
			return nil, err
		}
		dps[i].ID = p.ID
		dps[i].Value = p.Value
	}
	return dps, nil
}
