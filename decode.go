package plist

import "io"

// A Decoder reads a property list from an input stream. The stream is
// fully buffered before parsing begins.
type Decoder struct {
	r    io.Reader
	opts []ParserOption
}

// NewDecoder returns a Decoder that reads from r with the given options.
func NewDecoder(r io.Reader, opts ...ParserOption) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the remainder of the stream and parses it as one
// property list document.
func (d *Decoder) Decode() (Value, error) {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return Parse(data, d.opts...)
}
