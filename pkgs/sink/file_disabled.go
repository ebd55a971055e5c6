//go:build nofatfs

package sink

func bindFile(_ Descriptor) (ByteSink, error) {
	return nil, ErrUnsupported
}
