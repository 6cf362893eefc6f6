package decode

import "github.com/exfmt/rangefinder/format"

type decodeOpts struct {
	format format.Format
}

type Option func(*decodeOpts)

func DecodeFormat(f format.Format) Option {
	return func(o *decodeOpts) { o.format = f }
}
func DecodeJSON() Option {
	return DecodeFormat(format.JSONFormat)
}
func DecodeYAML() Option {
	return DecodeFormat(format.YAMLFormat)
}
