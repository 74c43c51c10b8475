package pivotset

import "errors"

var (
	ErrNoObject            = errors.New("pivotset: no object")
	ErrNoGeometry          = errors.New("pivotset: object has no geometry")
	ErrDegenerateTransform = errors.New("pivotset: world transform is not invertible")
	ErrInvalidLocation     = errors.New("pivotset: invalid location")
)
