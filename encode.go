package plist

import "io"

// An Encoder writes property lists to an output stream.
type Encoder struct {
	w    io.Writer
	opts []WriterOption
}

// NewEncoder returns an Encoder that writes to w with the given options.
func NewEncoder(w io.Writer, opts ...WriterOption) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the property list rendering of v to the stream.
func (e *Encoder) Encode(v Value) error {
	out, err := Write(v, e.opts...)
	if err != nil {
		return err
	}
	_, err = e.w.Write(out)
	return err
}
